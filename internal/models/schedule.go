package models

import (
	"time"

	"github.com/google/uuid"
)

const DefaultScheduleDuration = 2 * time.Hour

type EventType string

const (
	EventPractice   EventType = "practice"
	EventGame       EventType = "game"
	EventTournament EventType = "tournament"
	EventScrimmage  EventType = "scrimmage"
	EventTeamEvent  EventType = "team_event"
	EventMeeting    EventType = "meeting"
)

var eventTypeTitles = map[EventType]string{
	EventPractice:   "Practice",
	EventGame:       "Game",
	EventTournament: "Tournament",
	EventScrimmage:  "Scrimmage",
	EventTeamEvent:  "Team Event",
	EventMeeting:    "Meeting",
}

func (t EventType) Valid() bool {
	_, ok := eventTypeTitles[t]
	return ok
}

// Title is the human readable name used in notification text.
func (t EventType) Title() string {
	if s, ok := eventTypeTitles[t]; ok {
		return s
	}
	return string(t)
}

type Schedule struct {
	ID                 uuid.UUID  `db:"id"`
	TeamID             uuid.UUID  `db:"team_id"`
	EventType          EventType  `db:"event_type"`
	Opponent           *string    `db:"opponent"`
	Location           string     `db:"location"`
	StartTime          time.Time  `db:"start_time"`
	EndTime            *time.Time `db:"end_time"`
	IsHomeGame         bool       `db:"is_home_game"`
	Notes              *string    `db:"notes"`
	IsCancelled        bool       `db:"is_cancelled"`
	CancellationReason *string    `db:"cancellation_reason"`
	Result             *string    `db:"result"`
	TeamScore          *int       `db:"team_score"`
	OpponentScore      *int       `db:"opponent_score"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

// WasModified reports whether the schedule changed after creation.
func (s *Schedule) WasModified() bool {
	return !s.UpdatedAt.Equal(s.CreatedAt)
}
