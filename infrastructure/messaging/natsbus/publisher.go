// Package natsbus relays outbox events to NATS subjects.
package natsbus

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"
)

const DefaultSubjectPrefix = "ecommerce.events"

type Config struct {
	URL           string
	SubjectPrefix string
}

// Publisher does a core NATS publish and flushes, so a returned nil means the
// server received the message.
type Publisher struct {
	conn     *nats.Conn
	prefix   string
	ownsConn bool
}

func New(cfg Config) (*Publisher, error) {
	url := cfg.URL
	if url == "" {
		url = nats.DefaultURL
	}
	conn, err := nats.Connect(url, nats.Name("ecommerce-outbox"))
	if err != nil {
		return nil, fmt.Errorf("natsbus: connect %s: %w", url, err)
	}
	p, err := NewWithConn(conn, cfg.SubjectPrefix)
	if err != nil {
		conn.Close()
		return nil, err
	}
	p.ownsConn = true
	return p, nil
}

func NewWithConn(conn *nats.Conn, prefix string) (*Publisher, error) {
	if conn == nil {
		return nil, errors.New("natsbus: connection is required")
	}
	return &Publisher{conn: conn, prefix: normalizePrefix(prefix)}, nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), ".")
	if prefix == "" {
		return DefaultSubjectPrefix
	}
	return prefix
}

// Subject maps an event type to prefix.eventType.
func Subject(prefix, eventType string) string {
	return normalizePrefix(prefix) + "." + eventType
}

func (p *Publisher) Publish(ctx context.Context, eventType, payload string) error {
	msg := nats.NewMsg(Subject(p.prefix, eventType))
	msg.Header.Set("Event-Type", eventType)
	msg.Data = []byte(payload)

	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("natsbus: publish %s: %w", msg.Subject, err)
	}
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("natsbus: flush: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p.ownsConn {
		p.conn.Close()
	}
	return nil
}
