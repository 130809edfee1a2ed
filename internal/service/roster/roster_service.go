package roster

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"express-hub/internal/events"
	"express-hub/internal/http/api"
	"express-hub/internal/models"
	"express-hub/internal/service"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

var ErrIncompletePlayer = fmt.Errorf("%w: first name, last name and jersey number are required", service.ErrValidation)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PlayerStore
type PlayerStore interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, playerID uuid.UUID) (*models.Player, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID, activeOnly bool) ([]*models.Player, error)
	SetIsActive(ctx context.Context, playerID uuid.UUID, isActive bool, updatedAt time.Time) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamGetter
type TeamGetter interface {
	GetByID(ctx context.Context, teamID uuid.UUID) (*models.Team, error)
}

type RosterService struct {
	players   PlayerStore
	teams     TeamGetter
	trm       service.TransactionManager
	clock     clockwork.Clock
	publisher events.Publisher
	log       *slog.Logger
}

func NewRosterService(
	trm service.TransactionManager,
	players PlayerStore,
	teams TeamGetter,
	clock clockwork.Clock,
	publisher events.Publisher,
	log *slog.Logger,
) *RosterService {
	return &RosterService{
		players:   players,
		teams:     teams,
		trm:       trm,
		clock:     clock,
		publisher: publisher,
		log:       log,
	}
}

func (s *RosterService) AddPlayer(ctx context.Context, teamID uuid.UUID, in api.CreatePlayerRequest) (*api.PlayerSchema, error) {
	now := s.clock.Now()
	player := &models.Player{
		ID:               uuid.New(),
		TeamID:           teamID,
		FirstName:        strings.TrimSpace(in.FirstName),
		LastName:         strings.TrimSpace(in.LastName),
		JerseyNumber:     strings.TrimSpace(in.JerseyNumber),
		Position:         strings.TrimSpace(in.Position),
		IsActive:         true,
		DateOfBirth:      in.DateOfBirth,
		Height:           in.Height,
		Grade:            in.Grade,
		ParentName:       in.ParentName,
		ParentEmail:      in.ParentEmail,
		ParentPhone:      in.ParentPhone,
		EmergencyContact: in.EmergencyContact,
		EmergencyPhone:   in.EmergencyPhone,
		MedicalNotes:     in.MedicalNotes,
		PhotoURL:         in.PhotoURL,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if player.FirstName == "" || player.LastName == "" || player.JerseyNumber == "" {
		return nil, ErrIncompletePlayer
	}
	if player.Position == "" {
		player.Position = models.DefaultPosition
	}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.teams.GetByID(ctx, teamID); err != nil {
			return err
		}
		return s.players.Create(ctx, player)
	})
	if err != nil {
		return nil, err
	}

	service.Notify(ctx, s.log, s.publisher, events.Change{
		TeamID:   teamID,
		Entity:   events.EntityPlayer,
		Action:   events.ActionCreated,
		EntityID: player.ID,
		At:       now,
	})

	resp := api.FromPlayer(player)
	return &resp, nil
}

func (s *RosterService) List(ctx context.Context, teamID uuid.UUID, activeOnly bool) (*api.RosterResponse, error) {
	var players []*models.Player

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.teams.GetByID(ctx, teamID); err != nil {
			return err
		}
		var err error
		players, err = s.players.ListByTeam(ctx, teamID, activeOnly)
		return err
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(players, compareByJersey)

	resp := &api.RosterResponse{
		TeamID:  teamID.String(),
		Players: make([]api.PlayerSchema, 0, len(players)),
	}
	for _, p := range players {
		resp.Players = append(resp.Players, api.FromPlayer(p))
	}

	return resp, nil
}

func (s *RosterService) SetActive(ctx context.Context, playerID uuid.UUID, isActive bool) (*api.PlayerSchema, error) {
	var player *models.Player
	now := s.clock.Now()

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		var err error
		player, err = s.players.GetByID(ctx, playerID)
		if err != nil {
			return err
		}
		if player.IsActive == isActive {
			return nil
		}

		if err := s.players.SetIsActive(ctx, playerID, isActive, now); err != nil {
			return err
		}
		player.IsActive = isActive
		player.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	service.Notify(ctx, s.log, s.publisher, events.Change{
		TeamID:   player.TeamID,
		Entity:   events.EntityPlayer,
		Action:   events.ActionUpdated,
		EntityID: player.ID,
		At:       now,
	})

	resp := api.FromPlayer(player)
	return &resp, nil
}

// compareByJersey orders numerically when both jerseys are numbers, so
// "4" sorts before "12". Ties fall back to last and first name.
func compareByJersey(a, b *models.Player) int {
	na, errA := strconv.Atoi(a.JerseyNumber)
	nb, errB := strconv.Atoi(b.JerseyNumber)

	var c int
	if errA == nil && errB == nil {
		c = cmp.Compare(na, nb)
	} else {
		c = cmp.Compare(a.JerseyNumber, b.JerseyNumber)
	}
	if c != 0 {
		return c
	}

	if c = cmp.Compare(a.LastName, b.LastName); c != 0 {
		return c
	}
	return cmp.Compare(a.FirstName, b.FirstName)
}
