package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/furuilin66/guandan/db"
	"github.com/furuilin66/guandan/live"
	"github.com/furuilin66/guandan/models"
)

type MatchService interface {
	Record(ctx context.Context, input RecordMatchInput) (*RecordMatchResult, error)
	TeamMatches(ctx context.Context, teamID string) ([]models.MatchWithOpponent, error)
	Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
}

type RecordMatchInput struct {
	TeamID       string `json:"teamId"`
	Round        int    `json:"round"`
	OpponentName string `json:"opponentName"`
	Level        int    `json:"level"`
}

// RecordMatchResult reports the score awarded for the submitted round and
// the team's running total across all rounds.
type RecordMatchResult struct {
	Score      int `json:"score"`
	TotalScore int `json:"totalScore"`
}

type matchService struct {
	store  *db.Store
	hub    *live.Hub
	logger *slog.Logger
}

// NewMatchService wires the store to the live hub; hub may be nil when no
// websocket feed is running.
func NewMatchService(store *db.Store, hub *live.Hub, logger *slog.Logger) MatchService {
	return &matchService{store: store, hub: hub, logger: logger}
}

// Record validates and files one round result for a team, then pushes the
// refreshed leaderboard to connected websocket clients.
func (s *matchService) Record(ctx context.Context, input RecordMatchInput) (*RecordMatchResult, error) {
	if input.Round < models.MinRound || input.Round > models.MaxRound {
		return nil, ErrRoundOutOfRange
	}
	if input.Level < models.MinLevel || input.Level > models.MaxLevel {
		return nil, ErrLevelOutOfRange
	}

	if _, err := s.store.FindTeamByID(input.TeamID); err != nil {
		return nil, err
	}

	match, err := s.store.CreateMatch(db.MatchParams{
		TeamID:       input.TeamID,
		Round:        input.Round,
		OpponentName: input.OpponentName,
		Level:        input.Level,
	})
	if err != nil {
		return nil, err
	}

	matches, err := s.store.MatchesByTeam(input.TeamID)
	if err != nil {
		return nil, err
	}
	totalScore := 0
	for _, m := range matches {
		totalScore += m.Score
	}

	s.broadcastLeaderboard()

	return &RecordMatchResult{Score: match.Score, TotalScore: totalScore}, nil
}

// TeamMatches returns one team's filings enriched with the opponent's score
// for the same round, resolved by exact team-name match.
func (s *matchService) TeamMatches(ctx context.Context, teamID string) ([]models.MatchWithOpponent, error) {
	matches, err := s.store.MatchesByTeam(teamID)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.MatchWithOpponent, 0, len(matches))
	for _, m := range matches {
		item := models.MatchWithOpponent{Match: m}

		opponent, err := s.store.FindTeamByName(m.OpponentName)
		if err != nil && !errors.Is(err, db.ErrTeamNotFound) {
			return nil, err
		}
		if err == nil {
			opponentMatches, err := s.store.MatchesByTeam(opponent.TeamID)
			if err != nil {
				return nil, err
			}
			for _, om := range opponentMatches {
				if om.Round == m.Round {
					score := om.Score
					item.OpponentScore = &score
					break
				}
			}
		}

		enriched = append(enriched, item)
	}
	return enriched, nil
}

func (s *matchService) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	return s.store.Leaderboard()
}

func (s *matchService) broadcastLeaderboard() {
	if s.hub == nil {
		return
	}
	rankings, err := s.store.Leaderboard()
	if err != nil {
		s.logger.Error("failed to compute leaderboard for broadcast", slog.Any("error", err))
		return
	}
	s.hub.Broadcast(live.Message{Type: live.MessageLeaderboardUpdated, Payload: rankings})
}
