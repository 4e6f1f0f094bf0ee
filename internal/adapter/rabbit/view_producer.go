package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Temutjin2k/launch-dashboard/internal/domain/models"
	"github.com/Temutjin2k/launch-dashboard/internal/domain/types"
	wrap "github.com/Temutjin2k/launch-dashboard/pkg/logger/wrapper"
	"github.com/Temutjin2k/launch-dashboard/pkg/metrics"
)

const (
	exchangeKind   = "topic"
	publishRetries = 3
	retryDelay     = 100 * time.Millisecond
)

// Client is the part of *rabbit.RabbitMQ the producer uses.
type Client interface {
	EnsureConnection(ctx context.Context) error
	DeclareExchange(name, kind string) error
	Publish(ctx context.Context, exchange, key string, body []byte) error
}

// ViewProducer publishes one message per chart computation. Routing key is
// view.<chart>, so subscribers can bind to view.* or to a single chart.
type ViewProducer struct {
	client   Client
	exchange string
	service  string
}

// NewViewProducer declares the topic exchange and returns a producer bound
// to it.
func NewViewProducer(client Client, exchange, service string) (*ViewProducer, error) {
	const op = "NewViewProducer"
	if err := client.DeclareExchange(exchange, exchangeKind); err != nil {
		return nil, fmt.Errorf("%s: failed to declare exchange %s: %w", op, exchange, err)
	}

	return &ViewProducer{
		client:   client,
		exchange: exchange,
		service:  service,
	}, nil
}

// PublishView sends event to the exchange.
func (p *ViewProducer) PublishView(ctx context.Context, event models.ViewEvent) (err error) {
	const op = "ViewProducer.PublishView"
	defer func() {
		metrics.RecordRabbitMQPublish(p.service, p.exchange, err)
	}()

	body, err := json.Marshal(event)
	if err != nil {
		ctx = wrap.WithAction(ctx, "marshal_view_event")
		return wrap.Error(ctx, fmt.Errorf("%s: failed to marshal message: %w", op, err))
	}

	key := RoutingKey(event.Chart)
	err = retry(ctx, publishRetries, retryDelay, func() error {
		if err := p.client.EnsureConnection(ctx); err != nil {
			return err
		}
		return p.client.Publish(ctx, p.exchange, key, body)
	})
	if err != nil {
		ctx = wrap.WithAction(ctx, types.ActionViewPublished)
		return wrap.Error(ctx, fmt.Errorf("%s: failed to publish %s: %w", op, key, err))
	}

	return nil
}

// RoutingKey returns the key a view of chart is published under.
func RoutingKey(chart string) string {
	return "view." + chart
}
