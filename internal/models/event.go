package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultEventType     = "General"
	DefaultEventDuration = time.Hour
)

type Event struct {
	ID          uuid.UUID  `db:"id"`
	TeamID      uuid.UUID  `db:"team_id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	EventType   string     `db:"event_type"`
	StartDate   time.Time  `db:"start_date"`
	EndDate     *time.Time `db:"end_date"`
	Location    *string    `db:"location"`
	IsAllDay    bool       `db:"is_all_day"`
	// Reminder is the lead time in seconds.
	Reminder  *int64    `db:"reminder"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
