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

const announcementColumns = `id, team_id, title, message, priority, category, is_pinned, is_read,
	expires_at, created_at, updated_at`

type AnnouncementRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewAnnouncementRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *AnnouncementRepo {
	return &AnnouncementRepo{
		db:     db,
		getter: c,
	}
}

func (r *AnnouncementRepo) Create(ctx context.Context, a *models.Announcement) error {
	const op = "announcement_repo.Create"

	query := `
		INSERT INTO announcements (` + announcementColumns + `)
		VALUES (:id, :team_id, :title, :message, :priority, :category, :is_pinned, :is_read,
			:expires_at, :created_at, :updated_at);
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).NamedExecContext(ctx, query, a)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (r *AnnouncementRepo) GetByID(ctx context.Context, announcementID uuid.UUID) (*models.Announcement, error) {
	const op = "announcement_repo.GetByID"

	query := `SELECT ` + announcementColumns + ` FROM announcements WHERE id = $1;`

	var a models.Announcement
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &a, query, announcementID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &a, nil
}

func (r *AnnouncementRepo) ListByTeams(ctx context.Context, teamIDs []uuid.UUID) ([]*models.Announcement, error) {
	const op = "announcement_repo.ListByTeams"

	query := `
		SELECT ` + announcementColumns + `
		FROM announcements
		WHERE team_id = ANY($1::uuid[])
		ORDER BY created_at DESC, id ASC;
	`

	announcements := []*models.Announcement{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &announcements, query, uuidArrayParam(teamIDs))
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return announcements, nil
}

// MarkRead flips is_read to true. It reports false when the row was already read.
// Nothing in this package writes is_read = false.
func (r *AnnouncementRepo) MarkRead(ctx context.Context, announcementID uuid.UUID) (bool, error) {
	const op = "announcement_repo.MarkRead"

	query := `UPDATE announcements SET is_read = TRUE WHERE id = $1 AND is_read = FALSE`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, announcementID)
	if err != nil {
		return false, lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, lib.Err(op, err)
	}

	return rowsAffected > 0, nil
}

func (r *AnnouncementRepo) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	const op = "announcement_repo.DeleteByTeam"

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, `DELETE FROM announcements WHERE team_id = $1`, teamID)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}
