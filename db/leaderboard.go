package db

import (
	"sort"
	"time"

	"github.com/furuilin66/guandan/models"
)

// Leaderboard derives the current standings from the two collections in one
// snapshot read.
//
// Each team's entry sums its match scores and cross-references every round
// against the record filed by the team whose name equals the stored
// opponentName: if such a team exists and has exactly one match for the same
// round, its score becomes opponentScore, otherwise opponentScore stays nil.
// Entries are ordered by total score descending; equal totals are broken by
// earliest team registration, then name, so the ordering is deterministic.
func (s *Store) Leaderboard() ([]models.LeaderboardEntry, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}

	teamIDByName := make(map[string]string, len(data.Teams))
	matchesByTeam := make(map[string][]models.Match, len(data.Teams))
	for _, t := range data.Teams {
		teamIDByName[t.TeamName] = t.TeamID
	}
	for _, m := range data.Matches {
		matchesByTeam[m.TeamID] = append(matchesByTeam[m.TeamID], m)
	}

	type ranked struct {
		entry     models.LeaderboardEntry
		createdAt time.Time
	}

	entries := make([]ranked, 0, len(data.Teams))
	for _, team := range data.Teams {
		teamMatches := matchesByTeam[team.TeamID]

		totalScore := 0
		rounds := make([]models.RoundResult, 0, len(teamMatches))
		for _, m := range teamMatches {
			totalScore += m.Score

			var opponentScore *int
			if opponentID, ok := teamIDByName[m.OpponentName]; ok {
				for _, om := range matchesByTeam[opponentID] {
					if om.Round == m.Round {
						score := om.Score
						opponentScore = &score
						break
					}
				}
			}

			rounds = append(rounds, models.RoundResult{
				Round:         m.Round,
				Score:         m.Score,
				Opponent:      m.OpponentName,
				Level:         m.Level,
				OpponentScore: opponentScore,
			})
		}
		sort.Slice(rounds, func(i, j int) bool { return rounds[i].Round < rounds[j].Round })

		entries = append(entries, ranked{
			entry: models.LeaderboardEntry{
				TeamID:     team.TeamID,
				TeamName:   team.TeamName,
				Members:    team.Members,
				TotalScore: totalScore,
				Rounds:     rounds,
			},
			createdAt: team.CreatedAt,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].entry.TotalScore != entries[j].entry.TotalScore {
			return entries[i].entry.TotalScore > entries[j].entry.TotalScore
		}
		if !entries[i].createdAt.Equal(entries[j].createdAt) {
			return entries[i].createdAt.Before(entries[j].createdAt)
		}
		return entries[i].entry.TeamName < entries[j].entry.TeamName
	})

	leaderboard := make([]models.LeaderboardEntry, len(entries))
	for i := range entries {
		entries[i].entry.Rank = i + 1
		leaderboard[i] = entries[i].entry
	}
	return leaderboard, nil
}
