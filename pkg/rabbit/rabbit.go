package rabbit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Temutjin2k/launch-dashboard/internal/domain/types"
	"github.com/Temutjin2k/launch-dashboard/pkg/logger"
	wrap "github.com/Temutjin2k/launch-dashboard/pkg/logger/wrapper"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	heartbeat        = 10 * time.Second
	reconnectRetries = 5
)

var ErrClosed = errors.New("rabbitmq client is closed")

// RabbitMQ is a publishing client with one channel. Exchanges declared
// through it are declared again after a reconnect.
type RabbitMQ struct {
	mu        sync.Mutex
	conn      *amqp.Connection
	channel   *amqp.Channel
	exchanges map[string]string // name -> kind
	closed    bool
	dsn       string

	log logger.Logger
}

// New creates rabbitMQ client
func New(ctx context.Context, dsn string, log logger.Logger) (*RabbitMQ, error) {
	r := &RabbitMQ{
		exchanges: make(map[string]string),
		dsn:       dsn,
		log:       log,
	}

	conn, ch, err := dial(dsn)
	if err != nil {
		return nil, err
	}
	r.attach(conn, ch)

	log.Info(wrap.WithAction(ctx, types.ActionRabbitMQConnected), "connected to rabbitMQ")
	return r, nil
}

func dial(dsn string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.DialConfig(dsn, amqp.Config{Heartbeat: heartbeat})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	return conn, ch, nil
}

// attach stores the connection and watches it until it goes away. Callers
// either hold mu or own r exclusively.
func (r *RabbitMQ) attach(conn *amqp.Connection, ch *amqp.Channel) {
	r.conn, r.channel = conn, ch

	connClosed := conn.NotifyClose(make(chan *amqp.Error, 1))
	chClosed := ch.NotifyClose(make(chan *amqp.Error, 1))
	go r.watch(conn, connClosed, chClosed)
}

func (r *RabbitMQ) watch(conn *amqp.Connection, connClosed, chClosed <-chan *amqp.Error) {
	var closeErr *amqp.Error
	select {
	case closeErr = <-connClosed:
	case closeErr = <-chClosed:
	}

	ctx := wrap.WithAction(context.Background(), types.ActionRabbitConnectionClosed)
	if closeErr != nil {
		r.log.Error(ctx, "RabbitMQ connection lost", closeErr)
	} else {
		r.log.Debug(ctx, "RabbitMQ connection closed gracefully")
	}

	r.mu.Lock()
	// a reconnect may already have replaced it
	if r.conn == conn {
		r.channel = nil
	}
	r.mu.Unlock()
}

func (r *RabbitMQ) usableLocked() bool {
	return r.conn != nil && !r.conn.IsClosed() && r.channel != nil && !r.channel.IsClosed()
}

// EnsureConnection reconnects with a linear backoff when the connection or
// channel has been lost.
func (r *RabbitMQ) EnsureConnection(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if r.usableLocked() {
		return nil
	}
	if r.dsn == "" {
		return errors.New("dsn is empty: can't reconnect")
	}

	r.log.Warn(ctx, "rabbit connection closed, reconnecting...")

	var (
		conn *amqp.Connection
		ch   *amqp.Channel
		err  error
	)
	for i := range reconnectRetries {
		if conn, ch, err = dial(r.dsn); err == nil {
			break
		}

		wait := time.Duration(i+1) * 2 * time.Second
		r.log.Debug(ctx, "reconnect attempt failed", "attempt", i+1, "retry_in", wait.String())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	if err != nil {
		return fmt.Errorf("failed to reconnect to RabbitMQ: %w", err)
	}

	if r.conn != nil {
		_ = r.conn.Close()
	}
	r.attach(conn, ch)

	for name, kind := range r.exchanges {
		if err := declare(ch, name, kind); err != nil {
			return fmt.Errorf("redeclare exchange %s: %w", name, err)
		}
	}

	r.log.Info(wrap.WithAction(ctx, types.ActionRabbitReconnected), "RabbitMQ reconnected successfully")
	return nil
}

// DeclareExchange declares a durable exchange of the given kind.
func (r *RabbitMQ) DeclareExchange(name, kind string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.channel == nil {
		return fmt.Errorf("declare exchange %s: channel is closed", name)
	}
	if err := declare(r.channel, name, kind); err != nil {
		return err
	}
	r.exchanges[name] = kind
	return nil
}

func declare(ch *amqp.Channel, name, kind string) error {
	return ch.ExchangeDeclare(
		name,  // name
		kind,  // kind
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
}

// Publish sends a JSON body to exchange with routing key.
func (r *RabbitMQ) Publish(ctx context.Context, exchange, key string, body []byte) error {
	r.mu.Lock()
	ch := r.channel
	r.mu.Unlock()

	if ch == nil {
		return fmt.Errorf("publish to %s: channel is closed", exchange)
	}

	return ch.PublishWithContext(
		ctx,
		exchange, // exchange
		key,      // routing key
		false,    // mandatory
		false,    // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Transient,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
}

// Close closes the channel and then the connection. Closing twice is a no-op.
func (r *RabbitMQ) Close(ctx context.Context) error {
	ctx = wrap.WithAction(ctx, types.ActionRabbitConnectionClosing)

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	ch, conn := r.channel, r.conn
	r.channel, r.conn = nil, nil
	r.mu.Unlock()

	if ch != nil {
		if err := closeWithContext(ctx, ch.Close); err != nil && ctx.Err() == nil {
			r.log.Error(ctx, "error closing channel", err)
		}
	}

	if conn != nil {
		if err := closeWithContext(ctx, conn.Close); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("failed to close connection: %w", err)
		}
	}

	r.log.Info(wrap.WithAction(ctx, types.ActionRabbitConnectionClosed), "rabbitMQ closed")
	return nil
}

// closeWithContext stops waiting on fn once ctx is done.
func closeWithContext(ctx context.Context, fn func() error) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- fn()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
