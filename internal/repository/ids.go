package repo

import (
	"database/sql/driver"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// uuidArrayParam renders ids for "= ANY($1::uuid[])" parameters.
func uuidArrayParam(ids []uuid.UUID) driver.Valuer {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return pq.Array(out)
}
