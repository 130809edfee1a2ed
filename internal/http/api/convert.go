package api

import "express-hub/internal/models"

func FromTeam(t *models.Team) TeamSchema {
	return TeamSchema{
		ID:                 t.ID.String(),
		Name:               t.Name,
		AgeGroup:           t.AgeGroup,
		Season:             t.Season,
		TeamCode:           t.TeamCode,
		PrimaryColor:       t.PrimaryColor,
		SecondaryColor:     t.SecondaryColor,
		CoachName:          t.CoachName,
		AssistantCoachName: t.AssistantCoachName,
		ManagerName:        t.ManagerName,
		PracticeLocation:   t.PracticeLocation,
		HomeVenue:          t.HomeVenue,
		CreatedAt:          t.CreatedAt,
	}
}

func FromPlayer(p *models.Player) PlayerSchema {
	return PlayerSchema{
		ID:               p.ID.String(),
		TeamID:           p.TeamID.String(),
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		DisplayName:      p.DisplayName(),
		JerseyNumber:     p.JerseyNumber,
		Position:         p.Position,
		IsActive:         p.IsActive,
		DateOfBirth:      p.DateOfBirth,
		Height:           p.Height,
		Grade:            p.Grade,
		ParentName:       p.ParentName,
		ParentEmail:      p.ParentEmail,
		ParentPhone:      p.ParentPhone,
		EmergencyContact: p.EmergencyContact,
		EmergencyPhone:   p.EmergencyPhone,
		MedicalNotes:     p.MedicalNotes,
		PhotoURL:         p.PhotoURL,
	}
}

func FromSchedule(s *models.Schedule) ScheduleSchema {
	return ScheduleSchema{
		ID:                 s.ID.String(),
		TeamID:             s.TeamID.String(),
		EventType:          string(s.EventType),
		Opponent:           s.Opponent,
		Location:           s.Location,
		StartTime:          s.StartTime,
		EndTime:            s.EndTime,
		IsHomeGame:         s.IsHomeGame,
		Notes:              s.Notes,
		IsCancelled:        s.IsCancelled,
		CancellationReason: s.CancellationReason,
		Result:             s.Result,
		TeamScore:          s.TeamScore,
		OpponentScore:      s.OpponentScore,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func FromAnnouncement(a *models.Announcement) AnnouncementSchema {
	return AnnouncementSchema{
		ID:        a.ID.String(),
		TeamID:    a.TeamID.String(),
		Title:     a.Title,
		Message:   a.Message,
		Priority:  string(a.Priority),
		Category:  string(a.Category),
		IsPinned:  a.IsPinned,
		IsRead:    a.IsRead,
		ExpiresAt: a.ExpiresAt,
		CreatedAt: a.CreatedAt,
	}
}

func FromEvent(e *models.Event) EventSchema {
	return EventSchema{
		ID:          e.ID.String(),
		TeamID:      e.TeamID.String(),
		Title:       e.Title,
		Description: e.Description,
		EventType:   e.EventType,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Location:    e.Location,
		IsAllDay:    e.IsAllDay,
		Reminder:    e.Reminder,
	}
}

func FromNotification(n models.NotificationItem) NotificationSchema {
	return NotificationSchema{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Timestamp: n.Timestamp,
		Type:      string(n.Type),
		Priority:  string(n.Priority),
		IsRead:    n.IsRead,
	}
}

func FromDispatch(d *models.PushDispatch) DispatchSchema {
	return DispatchSchema{
		ID:         d.ID.String(),
		TeamID:     d.TeamID.String(),
		Type:       string(d.Type),
		Title:      d.Title,
		Body:       d.Body,
		Badge:      d.Badge,
		Recipients: d.Recipients,
		SentAt:     d.SentAt,
	}
}
