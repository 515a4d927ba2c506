package db

import (
	"time"

	"github.com/furuilin66/guandan/models"
	"github.com/google/uuid"
)

// MatchParams is the caller-supplied part of a match record. Round and level
// range checks belong to the calling layer; the store records what it is
// given.
type MatchParams struct {
	TeamID       string
	Round        int
	OpponentName string
	Level        int
}

// CreateMatch records a round result, upserting by the (teamID, round)
// natural key: a second submission for the same team and round replaces the
// prior record's opponent, level and score while keeping the original
// matchId and creation time. The score is derived from the level; today the
// mapping is the identity.
func (s *Store) CreateMatch(params MatchParams) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	score := params.Level

	for i := range data.Matches {
		if data.Matches[i].TeamID == params.TeamID && data.Matches[i].Round == params.Round {
			data.Matches[i].OpponentName = params.OpponentName
			data.Matches[i].Level = params.Level
			data.Matches[i].Score = score

			if err := s.save(data); err != nil {
				return nil, err
			}
			match := data.Matches[i]
			return &match, nil
		}
	}

	match := models.Match{
		MatchID:      uuid.NewString(),
		TeamID:       params.TeamID,
		Round:        params.Round,
		OpponentName: params.OpponentName,
		Level:        params.Level,
		Score:        score,
		CreatedAt:    time.Now().UTC(),
	}
	data.Matches = append(data.Matches, match)

	if err := s.save(data); err != nil {
		return nil, err
	}
	return &match, nil
}

// MatchesByTeam returns the matches filed by one team, in file order.
func (s *Store) MatchesByTeam(teamID string) ([]models.Match, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}
	matches := []models.Match{}
	for _, m := range data.Matches {
		if m.TeamID == teamID {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

// AllMatches returns every recorded match.
func (s *Store) AllMatches() ([]models.Match, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}
	return data.Matches, nil
}
