package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultSeason         = "2024-2025"
	DefaultPrimaryColor   = "#FF6B35"
	DefaultSecondaryColor = "#2C3E50"
)

// Team owns its players, schedules, announcements and events.
// Children reference the team by TeamID only, deletion goes through the team.
type Team struct {
	ID                 uuid.UUID `db:"id"`
	Name               string    `db:"name"`
	AgeGroup           string    `db:"age_group"`
	Season             string    `db:"season"`
	TeamCode           string    `db:"team_code"`
	PrimaryColor       string    `db:"primary_color"`
	SecondaryColor     string    `db:"secondary_color"`
	CoachName          *string   `db:"coach_name"`
	AssistantCoachName *string   `db:"assistant_coach_name"`
	ManagerName        *string   `db:"manager_name"`
	PracticeLocation   *string   `db:"practice_location"`
	HomeVenue          *string   `db:"home_venue"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}
