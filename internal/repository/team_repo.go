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
	"github.com/lib/pq"
)

const teamColumns = `id, name, age_group, season, team_code, primary_color, secondary_color,
	coach_name, assistant_coach_name, manager_name, practice_location, home_venue,
	created_at, updated_at`

type TeamRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewTeamRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *TeamRepo {
	return &TeamRepo{
		db:     db,
		getter: c,
	}
}

func (r *TeamRepo) Create(ctx context.Context, team *models.Team) error {
	const op = "team_repo.Create"

	query := `
		INSERT INTO teams (` + teamColumns + `)
		VALUES (:id, :name, :age_group, :season, :team_code, :primary_color, :secondary_color,
			:coach_name, :assistant_coach_name, :manager_name, :practice_location, :home_venue,
			:created_at, :updated_at);
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).NamedExecContext(ctx, query, team)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == uniqueViolationCode {
				return ErrTeamCodeExists
			}
		}
		return lib.Err(op, err)
	}

	return nil
}

func (r *TeamRepo) GetByID(ctx context.Context, teamID uuid.UUID) (*models.Team, error) {
	const op = "team_repo.GetByID"

	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1;`

	var team models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &team, query, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &team, nil
}

func (r *TeamRepo) GetByCode(ctx context.Context, code string) (*models.Team, error) {
	const op = "team_repo.GetByCode"

	query := `SELECT ` + teamColumns + ` FROM teams WHERE team_code = $1;`

	var team models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &team, query, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &team, nil
}

func (r *TeamRepo) List(ctx context.Context) ([]*models.Team, error) {
	const op = "team_repo.List"

	query := `SELECT ` + teamColumns + ` FROM teams ORDER BY name ASC, created_at ASC;`

	teams := []*models.Team{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &teams, query)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return teams, nil
}

func (r *TeamRepo) Delete(ctx context.Context, teamID uuid.UUID) error {
	const op = "team_repo.Delete"

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, teamID)
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
