package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"express-hub/internal/lib/sl"

	"github.com/nats-io/nats.go"
)

type NATSPublisher struct {
	nc     *nats.Conn
	prefix string
}

func NewNATSPublisher(url, prefix string, log *slog.Logger) (*NATSPublisher, error) {
	opts := []nats.Option{
		nats.Name("express-hub"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Error("nats disconnected", sl.Err(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("nats reconnected", slog.String("url", nc.ConnectedUrl()))
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}

	return &NATSPublisher{nc: nc, prefix: prefix}, nil
}

// Subject is <prefix>.team.<team id>.<entity>.<action>.
func Subject(prefix string, c Change) string {
	return fmt.Sprintf("%s.team.%s.%s.%s", prefix, c.TeamID, c.Entity, c.Action)
}

func (p *NATSPublisher) Publish(ctx context.Context, c Change) error {
	const op = "events.NATSPublisher.Publish"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("%s: marshal: %w", op, err)
	}

	if err := p.nc.Publish(Subject(p.prefix, c), data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (p *NATSPublisher) Close() error {
	return p.nc.Drain()
}
