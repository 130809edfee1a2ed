package repo

import (
	"context"

	"express-hub/internal/lib"
	"express-hub/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type DispatchRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewDispatchRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *DispatchRepo {
	return &DispatchRepo{
		db:     db,
		getter: c,
	}
}

func (r *DispatchRepo) Create(ctx context.Context, d *models.PushDispatch) error {
	const op = "dispatch_repo.Create"

	query := `
		INSERT INTO push_dispatches (id, team_id, type, title, body, badge, recipients, sent_at)
		VALUES (:id, :team_id, :type, :title, :body, :badge, :recipients, :sent_at);
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).NamedExecContext(ctx, query, d)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (r *DispatchRepo) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*models.PushDispatch, error) {
	const op = "dispatch_repo.ListByTeam"

	query := `
		SELECT id, team_id, type, title, body, badge, recipients, sent_at
		FROM push_dispatches
		WHERE team_id = $1
		ORDER BY sent_at DESC;
	`

	dispatches := []*models.PushDispatch{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &dispatches, query, teamID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return dispatches, nil
}

func (r *DispatchRepo) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	const op = "dispatch_repo.DeleteByTeam"

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, `DELETE FROM push_dispatches WHERE team_id = $1`, teamID)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}
