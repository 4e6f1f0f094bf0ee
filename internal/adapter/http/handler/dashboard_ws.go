package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/Temutjin2k/launch-dashboard/internal/domain/types"
	"github.com/Temutjin2k/launch-dashboard/internal/service/dashboard"
	wrap "github.com/Temutjin2k/launch-dashboard/pkg/logger/wrapper"
	"github.com/Temutjin2k/launch-dashboard/pkg/metrics"
	ws "github.com/Temutjin2k/launch-dashboard/pkg/wsHub"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const errorMessageType = "error"

// errorMessage reports a rejected control event. The session stays open.
type errorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// HandleWS godoc
// @Summary      Dashboard session
// @Description  Upgrades to a websocket. The server pushes both charts on connect. The client sends {"type":"site_changed","site":...} or {"type":"range_changed","range":[low,high]}; the server answers with {"type":"chart","chart":"pie|scatter","figure":...,"svg":...} per redrawn chart, or {"type":"error","error":...}.
// @Tags         Dashboard
// @Success      101  {string}  string  "Switching Protocols"
// @Router       /ws [get]
func (h *Dashboard) HandleWS(w http.ResponseWriter, r *http.Request) {
	id := uuid.New()
	ctx := wrap.WithSessionID(wrap.WithAction(r.Context(), types.ActionSessionOpened), id.String())

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already written an HTTP error
		h.log.Warn(wrap.ErrorCtx(ctx, err), "websocket upgrade failed", "error", err.Error())
		return
	}

	// closed by Close or the hub, not by the request context
	c := ws.NewConn(context.WithoutCancel(ctx), id, conn)
	if err := h.hub.Add(c); err != nil {
		h.log.Error(ctx, "failed to register session", err)
		conn.Close()
		return
	}
	gauge := metrics.WebSocketConnectionsGauge.WithLabelValues(h.cfg.ServiceName)
	gauge.Inc()
	h.log.Info(ctx, "session opened", "remote_addr", r.RemoteAddr)

	defer func() {
		gauge.Dec()
		// the hub may already have closed it during shutdown
		if err := h.hub.Delete(id); err != nil && !errors.Is(err, ws.ErrConnIsNotFound) {
			h.log.Warn(ctx, "failed to delete session", "error", err.Error())
		}
		h.log.Info(wrap.WithAction(ctx, types.ActionSessionClosed), "session closed")
	}()

	c.KeepAlive(h.cfg.PingInterval)

	session := dashboard.NewSession(h.service, h.renderer)
	updates, err := session.Initial(ctx)
	if err != nil {
		h.log.Error(wrap.ErrorCtx(ctx, err), "failed to render initial charts", err)
		_ = c.Send(errorMessage{Type: errorMessageType, Error: "failed to render charts"})
		return
	}
	for _, u := range updates {
		if err := c.Send(u); err != nil {
			h.log.Warn(ctx, "failed to send initial charts", "error", err.Error())
			return
		}
	}

	ctx = wrap.WithAction(ctx, types.ActionControlChanged)
	err = c.Listen(func(data []byte) error {
		msg, err := dashboard.ParseControlMessage(data)
		if err == nil {
			updates, err = session.Handle(ctx, msg)
		}
		metrics.RecordControlEvent(eventLabel(msg.Type), err)

		if err != nil {
			h.log.Warn(wrap.ErrorCtx(ctx, err), "control event rejected", "error", err.Error())
			// only a failed send ends the session
			return c.Send(errorMessage{Type: errorMessageType, Error: err.Error()})
		}

		for _, u := range updates {
			if err := c.Send(u); err != nil {
				return err
			}
		}
		h.log.Debug(wrap.WithSite(ctx, session.Controls().Site), "charts pushed", "event", msg.Type, "charts", len(updates))
		return nil
	})
	if err != nil && !isNormalClose(err) {
		h.log.Warn(ctx, "session ended with error", "error", err.Error())
	}
}

// eventLabel bounds the metric label to the known event types.
func eventLabel(t types.ControlEvent) string {
	switch t {
	case types.EventSiteChanged, types.EventRangeChanged:
		return string(t)
	default:
		return "unknown"
	}
}

func isNormalClose(err error) bool {
	var ce *websocket.CloseError
	if errors.As(err, &ce) {
		switch ce.Code {
		case websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived:
			return true
		}
	}
	return errors.Is(err, ws.ErrConnClosed)
}
