package models

import (
	"time"

	"github.com/google/uuid"
)

const DefaultPosition = "Guard"

type Player struct {
	ID               uuid.UUID  `db:"id"`
	TeamID           uuid.UUID  `db:"team_id"`
	FirstName        string     `db:"first_name"`
	LastName         string     `db:"last_name"`
	JerseyNumber     string     `db:"jersey_number"`
	Position         string     `db:"position"`
	IsActive         bool       `db:"is_active"`
	DateOfBirth      *time.Time `db:"date_of_birth"`
	Height           *string    `db:"height"`
	Grade            *string    `db:"grade"`
	ParentName       *string    `db:"parent_name"`
	ParentEmail      *string    `db:"parent_email"`
	ParentPhone      *string    `db:"parent_phone"`
	EmergencyContact *string    `db:"emergency_contact"`
	EmergencyPhone   *string    `db:"emergency_phone"`
	MedicalNotes     *string    `db:"medical_notes"`
	PhotoURL         *string    `db:"photo_url"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

func (p *Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

// DisplayName renders "First L.".
func (p *Player) DisplayName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + string([]rune(p.LastName)[:1]) + "."
}
