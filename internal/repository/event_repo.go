package repo

import (
	"context"

	"express-hub/internal/lib"
	"express-hub/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type EventRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewEventRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *EventRepo {
	return &EventRepo{
		db:     db,
		getter: c,
	}
}

func (r *EventRepo) Create(ctx context.Context, e *models.Event) error {
	const op = "event_repo.Create"

	query := `
		INSERT INTO events (id, team_id, title, description, event_type, start_date, end_date,
			location, is_all_day, reminder, created_at, updated_at)
		VALUES (:id, :team_id, :title, :description, :event_type, :start_date, :end_date,
			:location, :is_all_day, :reminder, :created_at, :updated_at);
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).NamedExecContext(ctx, query, e)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (r *EventRepo) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*models.Event, error) {
	const op = "event_repo.ListByTeam"

	query := `
		SELECT id, team_id, title, description, event_type, start_date, end_date,
			location, is_all_day, reminder, created_at, updated_at
		FROM events
		WHERE team_id = $1
		ORDER BY start_date ASC, id ASC;
	`

	events := []*models.Event{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &events, query, teamID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return events, nil
}

func (r *EventRepo) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	const op = "event_repo.DeleteByTeam"

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, `DELETE FROM events WHERE team_id = $1`, teamID)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}
