package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationAnnouncement     NotificationType = "announcement"
	NotificationScheduleChange   NotificationType = "schedule_change"
	NotificationGameReminder     NotificationType = "game_reminder"
	NotificationPracticeReminder NotificationType = "practice_reminder"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationAnnouncement, NotificationScheduleChange, NotificationGameReminder, NotificationPracticeReminder:
		return true
	}
	return false
}

// NotificationItem is a projection of announcements and schedule changes.
// It is never persisted.
type NotificationItem struct {
	ID        string
	Title     string
	Message   string
	Timestamp time.Time
	Type      NotificationType
	Priority  Priority
	IsRead    bool
}

type FeedFilter string

const (
	FilterAll    FeedFilter = "all"
	FilterUnread FeedFilter = "unread"
	FilterUrgent FeedFilter = "urgent"
)

func (f FeedFilter) Valid() bool {
	return f == FilterAll || f == FilterUnread || f == FilterUrgent
}

// PushDispatch records a push that the gateway accepted.
type PushDispatch struct {
	ID         uuid.UUID        `db:"id"`
	TeamID     uuid.UUID        `db:"team_id"`
	Type       NotificationType `db:"type"`
	Title      string           `db:"title"`
	Body       string           `db:"body"`
	Badge      *int             `db:"badge"`
	Recipients int              `db:"recipients"`
	SentAt     time.Time        `db:"sent_at"`
}
