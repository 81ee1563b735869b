package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const dialTimeout = 10 * time.Second

var errInvalidScheme = errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")

type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type connection interface {
	Channel() (channel, error)
	Close() error
}

type dialFunc func() (connection, error)

type amqpConnection struct{ conn *amqp.Connection }

func (c amqpConnection) Channel() (channel, error) {
	ch, err := c.conn.Channel()
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func (c amqpConnection) Close() error { return c.conn.Close() }

// EventProducer publishes notification events to a durable topic exchange.
// The connection is opened lazily and reopened after a failed publish, so a
// broker outage at startup only delays delivery.
type EventProducer struct {
	exchange string
	dial     dialFunc
	log      zerolog.Logger

	mu       sync.Mutex
	conn     connection
	ch       channel
	declared bool
}

// NewEventProducer validates the URL and returns a producer; no connection
// is made until the first Publish.
func NewEventProducer(amqpURL, exchange string, log zerolog.Logger) (*EventProducer, error) {
	cleanURL, err := sanitizeURL(amqpURL)
	if err != nil {
		return nil, err
	}
	dial := func() (connection, error) {
		conn, err := amqp.DialConfig(cleanURL, amqp.Config{Dial: amqp.DefaultDial(dialTimeout)})
		if err != nil {
			return nil, err
		}
		return amqpConnection{conn: conn}, nil
	}
	return newEventProducer(exchange, dial, log), nil
}

func newEventProducer(exchange string, dial dialFunc, log zerolog.Logger) *EventProducer {
	return &EventProducer{exchange: exchange, dial: dial, log: log}
}

func sanitizeURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	u, err := url.Parse(clean)
	if err != nil {
		return "", fmt.Errorf("parsing AMQP URL: %w", err)
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errInvalidScheme
	}
	return clean, nil
}

// Publish sends body as JSON with the given routing key. A failed publish
// drops the channel and retries once on a fresh one.
func (p *EventProducer) Publish(ctx context.Context, routingKey string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         payload,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.publishLocked(ctx, routingKey, msg)
	if err == nil {
		return nil
	}
	p.log.Warn().Err(err).Str("routing_key", routingKey).Msg("publish failed, reopening channel")
	p.resetChannelLocked()

	if err := p.publishLocked(ctx, routingKey, msg); err != nil {
		p.resetConnLocked()
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	return nil
}

func (p *EventProducer) publishLocked(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	if err := p.ensureChannelLocked(); err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
}

func (p *EventProducer) ensureChannelLocked() error {
	if p.conn == nil {
		conn, err := p.dial()
		if err != nil {
			return fmt.Errorf("dial broker: %w", err)
		}
		p.conn = conn
	}
	if p.ch == nil {
		ch, err := p.conn.Channel()
		if err != nil {
			p.resetConnLocked()
			return fmt.Errorf("open channel: %w", err)
		}
		p.ch = ch
		p.declared = false
	}
	if !p.declared {
		if err := p.ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
			p.resetChannelLocked()
			return fmt.Errorf("declare exchange %s: %w", p.exchange, err)
		}
		p.declared = true
	}
	return nil
}

func (p *EventProducer) resetChannelLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	p.ch = nil
	p.declared = false
}

func (p *EventProducer) resetConnLocked() {
	p.resetChannelLocked()
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.conn = nil
}

// Close releases the channel and connection.
func (p *EventProducer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resetConnLocked()
}
