package api

import "time"

type TeamSchema struct {
	ID                 string    `json:"team_id"`
	Name               string    `json:"name"`
	AgeGroup           string    `json:"age_group"`
	Season             string    `json:"season"`
	TeamCode           string    `json:"team_code"`
	PrimaryColor       string    `json:"primary_color"`
	SecondaryColor     string    `json:"secondary_color"`
	CoachName          *string   `json:"coach_name,omitempty"`
	AssistantCoachName *string   `json:"assistant_coach_name,omitempty"`
	ManagerName        *string   `json:"manager_name,omitempty"`
	PracticeLocation   *string   `json:"practice_location,omitempty"`
	HomeVenue          *string   `json:"home_venue,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

type PlayerSchema struct {
	ID               string     `json:"player_id"`
	TeamID           string     `json:"team_id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	DisplayName      string     `json:"display_name"`
	JerseyNumber     string     `json:"jersey_number"`
	Position         string     `json:"position"`
	IsActive         bool       `json:"is_active"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	Height           *string    `json:"height,omitempty"`
	Grade            *string    `json:"grade,omitempty"`
	ParentName       *string    `json:"parent_name,omitempty"`
	ParentEmail      *string    `json:"parent_email,omitempty"`
	ParentPhone      *string    `json:"parent_phone,omitempty"`
	EmergencyContact *string    `json:"emergency_contact,omitempty"`
	EmergencyPhone   *string    `json:"emergency_phone,omitempty"`
	MedicalNotes     *string    `json:"medical_notes,omitempty"`
	PhotoURL         *string    `json:"photo_url,omitempty"`
}

type ScheduleSchema struct {
	ID                 string     `json:"schedule_id"`
	TeamID             string     `json:"team_id"`
	EventType          string     `json:"event_type"`
	Opponent           *string    `json:"opponent,omitempty"`
	Location           string     `json:"location"`
	StartTime          time.Time  `json:"start_time"`
	EndTime            *time.Time `json:"end_time,omitempty"`
	IsHomeGame         bool       `json:"is_home_game"`
	Notes              *string    `json:"notes,omitempty"`
	IsCancelled        bool       `json:"is_cancelled"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	Result             *string    `json:"result,omitempty"`
	TeamScore          *int       `json:"team_score,omitempty"`
	OpponentScore      *int       `json:"opponent_score,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type AnnouncementSchema struct {
	ID        string     `json:"announcement_id"`
	TeamID    string     `json:"team_id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Priority  string     `json:"priority"`
	Category  string     `json:"category"`
	IsPinned  bool       `json:"is_pinned"`
	IsRead    bool       `json:"is_read"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type EventSchema struct {
	ID          string     `json:"event_id"`
	TeamID      string     `json:"team_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	EventType   string     `json:"event_type"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Location    *string    `json:"location,omitempty"`
	IsAllDay    bool       `json:"is_all_day"`
	Reminder    *int64     `json:"reminder,omitempty"`
}

type NotificationSchema struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Priority  string    `json:"priority"`
	IsRead    bool      `json:"is_read"`
}

type DispatchSchema struct {
	ID         string    `json:"dispatch_id"`
	TeamID     string    `json:"team_id"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Badge      *int      `json:"badge,omitempty"`
	Recipients int       `json:"recipients"`
	SentAt     time.Time `json:"sent_at"`
}
