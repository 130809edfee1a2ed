// Package deeplink describes the two navigation targets a push notification
// can carry: the schedule screen and the announcement screen.
package deeplink

import (
	"errors"
	"fmt"

	"express-hub/internal/models"
)

type Route string

const (
	RouteSchedule     Route = "schedule"
	RouteAnnouncement Route = "announcement"
)

const (
	keyRoute  = "route"
	keyID     = "id"
	keyAction = "action"
	keyType   = "type"
)

var ErrUnknownRoute = errors.New("unknown deep link route")

// Link is an opaque navigation request. ID and Action are optional.
type Link struct {
	Route  Route  `json:"route"`
	ID     string `json:"id,omitempty"`
	Action string `json:"action,omitempty"`
}

// ForNotification maps a push type to the screen it opens.
func ForNotification(t models.NotificationType, id string) (Link, error) {
	switch t {
	case models.NotificationAnnouncement:
		return Link{Route: RouteAnnouncement, ID: id}, nil
	case models.NotificationScheduleChange, models.NotificationGameReminder, models.NotificationPracticeReminder:
		return Link{Route: RouteSchedule, ID: id, Action: string(t)}, nil
	}
	return Link{}, fmt.Errorf("%w: notification type %q", ErrUnknownRoute, t)
}

// Payload renders the link as push "data" fields.
func (l Link) Payload() map[string]any {
	data := map[string]any{keyRoute: string(l.Route)}
	if l.ID != "" {
		data[keyID] = l.ID
	}
	if l.Action != "" {
		data[keyAction] = l.Action
	}
	return data
}

// Parse reads a link back from push data. Payloads without an explicit route
// fall back to the notification type, the way the parent app routes them.
func Parse(data map[string]any) (Link, error) {
	id, _ := data[keyID].(string)
	action, _ := data[keyAction].(string)

	if route, ok := data[keyRoute].(string); ok {
		switch Route(route) {
		case RouteSchedule, RouteAnnouncement:
			return Link{Route: Route(route), ID: id, Action: action}, nil
		}
		return Link{}, fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}

	t, ok := data[keyType].(string)
	if !ok {
		return Link{}, ErrUnknownRoute
	}

	switch t {
	case "schedule":
		return Link{Route: RouteSchedule, ID: id, Action: action}, nil
	}

	link, err := ForNotification(models.NotificationType(t), id)
	if err != nil {
		return Link{}, err
	}
	if action != "" {
		link.Action = action
	}
	return link, nil
}
