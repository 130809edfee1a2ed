package team

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"express-hub/internal/events"
	"express-hub/internal/http/api"
	"express-hub/internal/lib/teamcode"
	"express-hub/internal/models"
	repo "express-hub/internal/repository"
	"express-hub/internal/service"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const maxCodeAttempts = 5

var ErrMissingName = fmt.Errorf("%w: name and age group are required", service.ErrValidation)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamStore
type TeamStore interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, teamID uuid.UUID) (*models.Team, error)
	GetByCode(ctx context.Context, code string) (*models.Team, error)
	List(ctx context.Context) ([]*models.Team, error)
	Delete(ctx context.Context, teamID uuid.UUID) error
}

// TeamChildRemover deletes every row a team owns in one table.
//
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamChildRemover
type TeamChildRemover interface {
	DeleteByTeam(ctx context.Context, teamID uuid.UUID) error
}

type TeamService struct {
	teams     TeamStore
	children  []TeamChildRemover
	trm       service.TransactionManager
	clock     clockwork.Clock
	publisher events.Publisher
	log       *slog.Logger
	newCode   func() (string, error)
}

func NewTeamService(
	trm service.TransactionManager,
	teams TeamStore,
	clock clockwork.Clock,
	publisher events.Publisher,
	log *slog.Logger,
	children ...TeamChildRemover,
) *TeamService {
	return &TeamService{
		teams:     teams,
		children:  children,
		trm:       trm,
		clock:     clock,
		publisher: publisher,
		log:       log,
		newCode:   teamcode.Generate,
	}
}

// WithCodeGenerator replaces the random team code source.
func (s *TeamService) WithCodeGenerator(gen func() (string, error)) *TeamService {
	s.newCode = gen
	return s
}

func (s *TeamService) Create(ctx context.Context, in api.CreateTeamRequest) (*api.TeamSchema, error) {
	now := s.clock.Now()
	team := &models.Team{
		ID:                 uuid.New(),
		Name:               strings.TrimSpace(in.Name),
		AgeGroup:           strings.TrimSpace(in.AgeGroup),
		Season:             withDefault(in.Season, models.DefaultSeason),
		PrimaryColor:       withDefault(in.PrimaryColor, models.DefaultPrimaryColor),
		SecondaryColor:     withDefault(in.SecondaryColor, models.DefaultSecondaryColor),
		CoachName:          in.CoachName,
		AssistantCoachName: in.AssistantCoachName,
		ManagerName:        in.ManagerName,
		PracticeLocation:   in.PracticeLocation,
		HomeVenue:          in.HomeVenue,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if team.Name == "" || team.AgeGroup == "" {
		return nil, ErrMissingName
	}

	var err error
	for range maxCodeAttempts {
		team.TeamCode, err = s.newCode()
		if err != nil {
			return nil, err
		}

		err = s.trm.Do(ctx, func(ctx context.Context) error {
			return s.teams.Create(ctx, team)
		})
		if !errors.Is(err, repo.ErrTeamCodeExists) {
			break
		}
		s.log.Debug("team code collision, retrying", slog.String("team_code", team.TeamCode))
	}
	if err != nil {
		return nil, err
	}

	service.Notify(ctx, s.log, s.publisher, events.Change{
		TeamID:   team.ID,
		Entity:   events.EntityTeam,
		Action:   events.ActionCreated,
		EntityID: team.ID,
		At:       now,
	})

	resp := api.FromTeam(team)
	return &resp, nil
}

func (s *TeamService) Get(ctx context.Context, teamID uuid.UUID) (*api.TeamSchema, error) {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	resp := api.FromTeam(team)
	return &resp, nil
}

// GetByCode resolves the code a parent typed in to join a team.
func (s *TeamService) GetByCode(ctx context.Context, code string) (*api.TeamSchema, error) {
	code = teamcode.Normalize(code)
	if !teamcode.Valid(code) {
		return nil, repo.ErrNotFound
	}

	team, err := s.teams.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	resp := api.FromTeam(team)
	return &resp, nil
}

func (s *TeamService) List(ctx context.Context) (*api.TeamListResponse, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := &api.TeamListResponse{Teams: make([]api.TeamSchema, 0, len(teams))}
	for _, t := range teams {
		resp.Teams = append(resp.Teams, api.FromTeam(t))
	}

	return resp, nil
}

// Delete removes the team together with everything it owns.
func (s *TeamService) Delete(ctx context.Context, teamID uuid.UUID) error {
	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.teams.GetByID(ctx, teamID); err != nil {
			return err
		}
		for _, c := range s.children {
			if err := c.DeleteByTeam(ctx, teamID); err != nil {
				return err
			}
		}
		return s.teams.Delete(ctx, teamID)
	})
	if err != nil {
		return err
	}

	service.Notify(ctx, s.log, s.publisher, events.Change{
		TeamID:   teamID,
		Entity:   events.EntityTeam,
		Action:   events.ActionDeleted,
		EntityID: teamID,
		At:       s.clock.Now(),
	})

	return nil
}

func withDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}
