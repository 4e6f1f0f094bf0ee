package middleware

import (
	"net/http"

	"github.com/Temutjin2k/launch-dashboard/pkg/logger"
)

type Middleware struct {
	service     string
	compression bool
	log         logger.Logger
}

func NewMiddleware(service string, compression bool, log logger.Logger) *Middleware {
	return &Middleware{
		service:     service,
		compression: compression,
		log:         log,
	}
}

// Wrap applies the middleware chain. The outermost handler runs first.
func (m *Middleware) Wrap(next http.Handler) http.Handler {
	h := next
	if m.compression {
		h = m.Compress(h)
	}
	h = m.Metrics(h)
	h = m.Logging(h)
	h = m.RequestID(h)
	return m.Recover(h)
}
