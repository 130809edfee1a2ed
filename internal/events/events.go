// Package events is the change-notification channel. Services publish a
// Change after their transaction commits so clients can pull a fresh snapshot.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Entity string

const (
	EntityTeam         Entity = "team"
	EntityPlayer       Entity = "player"
	EntitySchedule     Entity = "schedule"
	EntityAnnouncement Entity = "announcement"
	EntityEvent        Entity = "event"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionRead    Action = "read"
	ActionDeleted Action = "deleted"
)

type Change struct {
	TeamID   uuid.UUID `json:"team_id"`
	Entity   Entity    `json:"entity"`
	Action   Action    `json:"action"`
	EntityID uuid.UUID `json:"entity_id"`
	At       time.Time `json:"at"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Publisher --output=../service/mocks
type Publisher interface {
	Publish(ctx context.Context, c Change) error
}

// Noop is used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, Change) error { return nil }
