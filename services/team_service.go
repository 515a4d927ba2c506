package services

import (
	"context"
	"errors"

	"github.com/furuilin66/guandan/db"
	"github.com/furuilin66/guandan/models"
)

type TeamService interface {
	Login(ctx context.Context, teamName string) (*models.Team, error)
	Update(ctx context.Context, teamID string, input UpdateTeamInput) (*models.Team, error)
	List(ctx context.Context) ([]models.Team, error)
}

// UpdateTeamInput mirrors the PUT body: nil means "leave unchanged", so a
// team can clear its roster by sending an explicit empty members string.
type UpdateTeamInput struct {
	TeamName *string `json:"teamName"`
	Members  *string `json:"members"`
}

type teamService struct {
	store *db.Store
}

func NewTeamService(store *db.Store) TeamService {
	return &teamService{store: store}
}

// Login looks the team up by name and registers it on first sight. If a
// concurrent login registers the same name between the lookup and the
// create, the create's conflict is resolved by a second lookup.
func (s *teamService) Login(ctx context.Context, teamName string) (*models.Team, error) {
	if teamName == "" {
		return nil, ErrTeamNameRequired
	}

	team, err := s.store.FindTeamByName(teamName)
	if err == nil {
		return team, nil
	}
	if !errors.Is(err, db.ErrTeamNotFound) {
		return nil, err
	}

	team, err = s.store.CreateTeam(teamName)
	if errors.Is(err, db.ErrTeamNameConflict) {
		return s.store.FindTeamByName(teamName)
	}
	return team, err
}

func (s *teamService) Update(ctx context.Context, teamID string, input UpdateTeamInput) (*models.Team, error) {
	if input.TeamName == nil && input.Members == nil {
		return nil, ErrNoFieldsToUpdate
	}
	return s.store.UpdateTeam(teamID, db.TeamUpdate{
		TeamName: input.TeamName,
		Members:  input.Members,
	})
}

func (s *teamService) List(ctx context.Context) ([]models.Team, error) {
	return s.store.AllTeams()
}
