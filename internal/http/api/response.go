package api

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ErrInternalErr        = "INTERNAL_ERROR"
	ErrValidationErr      = "VALIDATION_ERROR"
	ErrBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeUnauthorized   = "UNAUTHORIZED"
	ErrCodeForbidden      = "FORBIDDEN"
	ErrCodeNoTeamSelected = "NO_TEAM_SELECTED"
	ErrCodeTeamCodeExists = "TEAM_CODE_EXISTS"
	ErrCodePushFailed     = "PUSH_FAILED"
)

type TeamResponse struct {
	Team TeamSchema `json:"team"`
}

type TeamListResponse struct {
	Teams []TeamSchema `json:"teams"`
}

type PlayerResponse struct {
	Player PlayerSchema `json:"player"`
}

type RosterResponse struct {
	TeamID  string         `json:"team_id"`
	Players []PlayerSchema `json:"players"`
}

type ScheduleResponse struct {
	Schedule ScheduleSchema `json:"schedule"`
}

type ScheduleListResponse struct {
	TeamID    string           `json:"team_id"`
	Schedules []ScheduleSchema `json:"schedules"`
}

type EventResponse struct {
	Event EventSchema `json:"event"`
}

type EventListResponse struct {
	TeamID string        `json:"team_id"`
	Events []EventSchema `json:"events"`
}

type AnnouncementResponse struct {
	Announcement AnnouncementSchema `json:"announcement"`
}

type AnnouncementListResponse struct {
	TeamID        string               `json:"team_id"`
	UnreadCount   int                  `json:"unread_count"`
	Announcements []AnnouncementSchema `json:"announcements"`
}

type FeedResponse struct {
	Filter      string               `json:"filter"`
	UnreadCount int                  `json:"unread_count"`
	Items       []NotificationSchema `json:"items"`
}

type PushResponse struct {
	TeamID     string `json:"team_id"`
	Type       string `json:"type"`
	Recipients int    `json:"recipients"`
}

type DispatchListResponse struct {
	TeamID     string           `json:"team_id"`
	Dispatches []DispatchSchema `json:"dispatches"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Error(code string, msg string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: msg,
		},
	}
}

func InternalError() ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrInternalErr,
			Message: "internal server error",
		},
	}
}

func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errMsgs []string
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is required", err.Field()))
		case "max":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must be no more than %s characters", err.Field(), err.Param()),
			)
		case "oneof":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' must be one of [%s]", err.Field(), err.Param()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is not valid", err.Field()))
		}
	}

	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrValidationErr,
			Message: strings.Join(errMsgs, ", "),
		},
	}
}
