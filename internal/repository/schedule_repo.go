package repo

import (
	"context"
	"database/sql"
	"errors"

	"express-hub/internal/lib"
	"express-hub/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const scheduleColumns = `id, team_id, event_type, opponent, location, start_time, end_time,
	is_home_game, notes, is_cancelled, cancellation_reason, result, team_score, opponent_score,
	created_at, updated_at`

type ScheduleRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewScheduleRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *ScheduleRepo {
	return &ScheduleRepo{
		db:     db,
		getter: c,
	}
}

func (r *ScheduleRepo) Create(ctx context.Context, s *models.Schedule) error {
	const op = "schedule_repo.Create"

	query := `
		INSERT INTO schedules (` + scheduleColumns + `)
		VALUES (:id, :team_id, :event_type, :opponent, :location, :start_time, :end_time,
			:is_home_game, :notes, :is_cancelled, :cancellation_reason, :result, :team_score,
			:opponent_score, :created_at, :updated_at);
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).NamedExecContext(ctx, query, s)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (r *ScheduleRepo) GetByID(ctx context.Context, scheduleID uuid.UUID) (*models.Schedule, error) {
	const op = "schedule_repo.GetByID"

	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1;`

	var s models.Schedule
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &s, query, scheduleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &s, nil
}

func (r *ScheduleRepo) ListByTeams(ctx context.Context, teamIDs []uuid.UUID) ([]*models.Schedule, error) {
	const op = "schedule_repo.ListByTeams"

	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE team_id = ANY($1::uuid[])
		ORDER BY start_time ASC, id ASC;
	`

	schedules := []*models.Schedule{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &schedules, query, uuidArrayParam(teamIDs))
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return schedules, nil
}

// Update overwrites the mutable fields of a schedule.
func (r *ScheduleRepo) Update(ctx context.Context, s *models.Schedule) error {
	const op = "schedule_repo.Update"

	query := `
		UPDATE schedules SET
			start_time = :start_time,
			end_time = :end_time,
			location = :location,
			opponent = :opponent,
			is_home_game = :is_home_game,
			notes = :notes,
			is_cancelled = :is_cancelled,
			cancellation_reason = :cancellation_reason,
			result = :result,
			team_score = :team_score,
			opponent_score = :opponent_score,
			updated_at = :updated_at
		WHERE id = :id;
	`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).NamedExecContext(ctx, query, s)
	if err != nil {
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *ScheduleRepo) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	const op = "schedule_repo.DeleteByTeam"

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, `DELETE FROM schedules WHERE team_id = $1`, teamID)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}
