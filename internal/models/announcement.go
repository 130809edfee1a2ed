package models

import (
	"time"

	"github.com/google/uuid"
)

type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

var prioritySeverity = map[Priority]int{
	PriorityLow:    0,
	PriorityNormal: 1,
	PriorityHigh:   2,
	PriorityUrgent: 3,
}

func (p Priority) Valid() bool {
	_, ok := prioritySeverity[p]
	return ok
}

// Severity orders priorities, urgent is the highest.
func (p Priority) Severity() int {
	return prioritySeverity[p]
}

type Category string

const (
	CategoryGeneral     Category = "general"
	CategorySchedule    Category = "schedule"
	CategoryPractice    Category = "practice"
	CategoryGame        Category = "game"
	CategoryTournament  Category = "tournament"
	CategoryUniform     Category = "uniform"
	CategoryPayment     Category = "payment"
	CategoryTravel      Category = "travel"
	CategoryFundraising Category = "fundraising"
	CategorySocial      Category = "social"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryGeneral, CategorySchedule, CategoryPractice, CategoryGame, CategoryTournament,
		CategoryUniform, CategoryPayment, CategoryTravel, CategoryFundraising, CategorySocial:
		return true
	}
	return false
}

type Announcement struct {
	ID        uuid.UUID  `db:"id"`
	TeamID    uuid.UUID  `db:"team_id"`
	Title     string     `db:"title"`
	Message   string     `db:"message"`
	Priority  Priority   `db:"priority"`
	Category  Category   `db:"category"`
	IsPinned  bool       `db:"is_pinned"`
	IsRead    bool       `db:"is_read"`
	ExpiresAt *time.Time `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

// IsExpired is true once expiresAt <= now. Expired announcements stay stored.
func (a *Announcement) IsExpired(now time.Time) bool {
	return a.ExpiresAt != nil && !a.ExpiresAt.After(now)
}
