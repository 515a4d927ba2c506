package db

import (
	"fmt"
	"time"

	"github.com/furuilin66/guandan/models"
	"github.com/google/uuid"
)

// TeamUpdate carries the mutable team fields. A nil pointer leaves the field
// untouched; a non-nil empty TeamName is ignored rather than renaming a team
// to the empty string.
type TeamUpdate struct {
	TeamName *string
	Members  *string
}

// FindTeamByName returns the team whose name matches exactly, or
// ErrTeamNotFound.
func (s *Store) FindTeamByName(name string) (*models.Team, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range data.Teams {
		if data.Teams[i].TeamName == name {
			team := data.Teams[i]
			return &team, nil
		}
	}
	return nil, ErrTeamNotFound
}

// FindTeamByID returns the team with the given id, or ErrTeamNotFound.
func (s *Store) FindTeamByID(id string) (*models.Team, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range data.Teams {
		if data.Teams[i].TeamID == id {
			team := data.Teams[i]
			return &team, nil
		}
	}
	return nil, ErrTeamNotFound
}

// CreateTeam registers a new team under the given name. The uniqueness check
// runs under the same lock as the write, so two concurrent creates with the
// same name cannot both succeed.
func (s *Store) CreateTeam(name string) (*models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range data.Teams {
		if data.Teams[i].TeamName == name {
			return nil, fmt.Errorf("create team %q: %w", name, ErrTeamNameConflict)
		}
	}

	team := models.Team{
		TeamID:    uuid.NewString(),
		TeamName:  name,
		CreatedAt: time.Now().UTC(),
	}
	data.Teams = append(data.Teams, team)

	if err := s.save(data); err != nil {
		return nil, err
	}
	return &team, nil
}

// UpdateTeam renames a team and/or replaces its roster. Renaming to a name
// held by any other team fails with ErrTeamNameConflict.
func (s *Store) UpdateTeam(teamID string, update TeamUpdate) (*models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range data.Teams {
		if data.Teams[i].TeamID == teamID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("update team %s: %w", teamID, ErrTeamNotFound)
	}

	if update.TeamName != nil && *update.TeamName != "" {
		for i := range data.Teams {
			if data.Teams[i].TeamName == *update.TeamName && data.Teams[i].TeamID != teamID {
				return nil, fmt.Errorf("rename team to %q: %w", *update.TeamName, ErrTeamNameConflict)
			}
		}
		data.Teams[idx].TeamName = *update.TeamName
	}
	if update.Members != nil {
		data.Teams[idx].Members = *update.Members
	}

	if err := s.save(data); err != nil {
		return nil, err
	}
	team := data.Teams[idx]
	return &team, nil
}

// AllTeams returns every registered team.
func (s *Store) AllTeams() ([]models.Team, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}
	return data.Teams, nil
}
