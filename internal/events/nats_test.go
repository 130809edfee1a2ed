package events_test

import (
	"context"
	"testing"
	"time"

	"express-hub/internal/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	teamID := uuid.MustParse("7c1f6a0e-3f43-4a52-9a8e-0b6ad5a3b2c1")
	c := events.Change{
		TeamID: teamID,
		Entity: events.EntityAnnouncement,
		Action: events.ActionRead,
		At:     time.Now(),
	}

	assert.Equal(t, "expresshub.team.7c1f6a0e-3f43-4a52-9a8e-0b6ad5a3b2c1.announcement.read", events.Subject("expresshub", c))
}

func TestNoop(t *testing.T) {
	var p events.Publisher = events.Noop{}
	assert.NoError(t, p.Publish(context.Background(), events.Change{}))
}
