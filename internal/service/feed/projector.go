// Package feed derives the notification feed shown to parents. Nothing here
// is persisted, every call recomputes the list from the stored records.
package feed

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"express-hub/internal/models"
)

const (
	DefaultWindow       = 7 * 24 * time.Hour
	ScheduleChangeTitle = "Schedule Update"
	TimeLayout          = "Jan 2, 2006 at 3:04 PM"
)

// Project merges active announcements and recently changed schedules into
// one list, newest first. Equal timestamps are ordered by item id.
func Project(
	announcements []*models.Announcement,
	schedules []*models.Schedule,
	now time.Time,
	window time.Duration,
) []models.NotificationItem {
	items := make([]models.NotificationItem, 0, len(announcements)+len(schedules))

	for _, a := range announcements {
		if a.IsExpired(now) {
			continue
		}
		items = append(items, models.NotificationItem{
			ID:        a.ID.String(),
			Title:     a.Title,
			Message:   a.Message,
			Timestamp: a.CreatedAt,
			Type:      models.NotificationAnnouncement,
			Priority:  a.Priority,
			IsRead:    a.IsRead,
		})
	}

	for _, s := range schedules {
		if !s.WasModified() || now.Sub(s.UpdatedAt) > window {
			continue
		}
		items = append(items, models.NotificationItem{
			ID:        s.ID.String(),
			Title:     ScheduleChangeTitle,
			Message:   ScheduleChangeMessage(s),
			Timestamp: s.UpdatedAt,
			Type:      models.NotificationScheduleChange,
			Priority:  models.PriorityHigh,
			IsRead:    true,
		})
	}

	slices.SortStableFunc(items, func(a, b models.NotificationItem) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return items
}

func ScheduleChangeMessage(s *models.Schedule) string {
	return fmt.Sprintf("%s time changed to %s", s.EventType.Title(), s.StartTime.Format(TimeLayout))
}

// Apply returns the items that pass filter. The input slice is left intact.
func Apply(items []models.NotificationItem, filter models.FeedFilter) []models.NotificationItem {
	out := make([]models.NotificationItem, 0, len(items))
	for _, it := range items {
		switch filter {
		case models.FilterUnread:
			if it.IsRead {
				continue
			}
		case models.FilterUrgent:
			if it.Priority != models.PriorityUrgent {
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

func UnreadCount(items []models.NotificationItem) int {
	n := 0
	for _, it := range items {
		if !it.IsRead {
			n++
		}
	}
	return n
}
