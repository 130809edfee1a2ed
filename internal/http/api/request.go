package api

import "time"

type CreateTeamRequest struct {
	Name               string  `json:"name"                 validate:"required,max=64"`
	AgeGroup           string  `json:"age_group"            validate:"required,max=16"`
	Season             string  `json:"season"               validate:"max=32"`
	PrimaryColor       string  `json:"primary_color"        validate:"omitempty,hexcolor"`
	SecondaryColor     string  `json:"secondary_color"      validate:"omitempty,hexcolor"`
	CoachName          *string `json:"coach_name"           validate:"omitempty,max=128"`
	AssistantCoachName *string `json:"assistant_coach_name" validate:"omitempty,max=128"`
	ManagerName        *string `json:"manager_name"         validate:"omitempty,max=128"`
	PracticeLocation   *string `json:"practice_location"    validate:"omitempty,max=256"`
	HomeVenue          *string `json:"home_venue"           validate:"omitempty,max=256"`
}

type CreatePlayerRequest struct {
	FirstName        string     `json:"first_name"        validate:"required,max=64"`
	LastName         string     `json:"last_name"         validate:"required,max=64"`
	JerseyNumber     string     `json:"jersey_number"     validate:"required,max=3"`
	Position         string     `json:"position"          validate:"max=32"`
	DateOfBirth      *time.Time `json:"date_of_birth"`
	Height           *string    `json:"height"            validate:"omitempty,max=16"`
	Grade            *string    `json:"grade"             validate:"omitempty,max=16"`
	ParentName       *string    `json:"parent_name"       validate:"omitempty,max=128"`
	ParentEmail      *string    `json:"parent_email"      validate:"omitempty,email"`
	ParentPhone      *string    `json:"parent_phone"      validate:"omitempty,max=32"`
	EmergencyContact *string    `json:"emergency_contact" validate:"omitempty,max=128"`
	EmergencyPhone   *string    `json:"emergency_phone"   validate:"omitempty,max=32"`
	MedicalNotes     *string    `json:"medical_notes"     validate:"omitempty,max=1024"`
	PhotoURL         *string    `json:"photo_url"         validate:"omitempty,url"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type CreateScheduleRequest struct {
	EventType  string     `json:"event_type"   validate:"required,oneof=practice game tournament scrimmage team_event meeting"`
	Opponent   *string    `json:"opponent"     validate:"omitempty,max=128"`
	Location   string     `json:"location"     validate:"required,max=256"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
	IsHomeGame *bool      `json:"is_home_game"`
	Notes      *string    `json:"notes"        validate:"omitempty,max=1024"`
}

type RescheduleRequest struct {
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

type CancelScheduleRequest struct {
	Reason string `json:"reason" validate:"max=512"`
}

type RecordResultRequest struct {
	Result        string `json:"result"         validate:"required,oneof=win loss tie"`
	TeamScore     *int   `json:"team_score"     validate:"omitempty,gte=0"`
	OpponentScore *int   `json:"opponent_score" validate:"omitempty,gte=0"`
}

type CreateEventRequest struct {
	Title       string     `json:"title"       validate:"required,max=128"`
	Description *string    `json:"description" validate:"omitempty,max=1024"`
	EventType   string     `json:"event_type"  validate:"max=32"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Location    *string    `json:"location"    validate:"omitempty,max=256"`
	IsAllDay    bool       `json:"is_all_day"`
	Reminder    *int64     `json:"reminder"    validate:"omitempty,gte=0"`
}

// CreateAnnouncementRequest leaves emptiness checks to the composer,
// which trims whitespace before deciding.
type CreateAnnouncementRequest struct {
	Title     string     `json:"title"      validate:"max=200"`
	Message   string     `json:"message"    validate:"max=4000"`
	Priority  string     `json:"priority"`
	Category  string     `json:"category"`
	ExpiresAt *time.Time `json:"expires_at"`
	IsPinned  bool       `json:"is_pinned"`
}

type SendPushRequest struct {
	TeamID string `json:"team_id" validate:"required,uuid"`
	Title  string `json:"title"   validate:"required,max=200"`
	Body   string `json:"body"    validate:"required,max=4000"`
	Type   string `json:"type"    validate:"required,oneof=announcement schedule_change game_reminder practice_reminder"`
	Badge  *int   `json:"badge"   validate:"omitempty,gte=0"`
}
