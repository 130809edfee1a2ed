package service

import (
	"context"
	"log/slog"

	"express-hub/internal/events"
	"express-hub/internal/lib/sl"
)

// Notify publishes a change that has already been committed. A broker
// failure is logged and swallowed, the mutation stands.
func Notify(ctx context.Context, log *slog.Logger, pub events.Publisher, c events.Change) {
	if err := pub.Publish(ctx, c); err != nil {
		log.Warn("failed to publish change",
			slog.String("entity", string(c.Entity)),
			slog.String("action", string(c.Action)),
			slog.String("entity_id", c.EntityID.String()),
			sl.Err(err),
		)
	}
}
