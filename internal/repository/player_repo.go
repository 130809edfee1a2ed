package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"express-hub/internal/lib"
	"express-hub/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const playerColumns = `id, team_id, first_name, last_name, jersey_number, position, is_active,
	date_of_birth, height, grade, parent_name, parent_email, parent_phone,
	emergency_contact, emergency_phone, medical_notes, photo_url, created_at, updated_at`

type PlayerRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewPlayerRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *PlayerRepo {
	return &PlayerRepo{
		db:     db,
		getter: c,
	}
}

func (r *PlayerRepo) Create(ctx context.Context, player *models.Player) error {
	const op = "player_repo.Create"

	query := `
		INSERT INTO players (` + playerColumns + `)
		VALUES (:id, :team_id, :first_name, :last_name, :jersey_number, :position, :is_active,
			:date_of_birth, :height, :grade, :parent_name, :parent_email, :parent_phone,
			:emergency_contact, :emergency_phone, :medical_notes, :photo_url, :created_at, :updated_at);
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).NamedExecContext(ctx, query, player)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (r *PlayerRepo) GetByID(ctx context.Context, playerID uuid.UUID) (*models.Player, error) {
	const op = "player_repo.GetByID"

	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1;`

	var player models.Player
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &player, query, playerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &player, nil
}

func (r *PlayerRepo) ListByTeam(ctx context.Context, teamID uuid.UUID, activeOnly bool) ([]*models.Player, error) {
	const op = "player_repo.ListByTeam"

	query := `
		SELECT ` + playerColumns + `
		FROM players
		WHERE team_id = $1 AND (NOT $2 OR is_active = TRUE);
	`

	players := []*models.Player{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &players, query, teamID, activeOnly)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return players, nil
}

func (r *PlayerRepo) SetIsActive(ctx context.Context, playerID uuid.UUID, isActive bool, updatedAt time.Time) error {
	const op = "player_repo.SetIsActive"

	query := `UPDATE players SET is_active = $1, updated_at = $2 WHERE id = $3`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, isActive, updatedAt, playerID)
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

func (r *PlayerRepo) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	const op = "player_repo.DeleteByTeam"

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, `DELETE FROM players WHERE team_id = $1`, teamID)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}
