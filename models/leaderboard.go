package models

// RoundResult is one round of a team's leaderboard entry. OpponentScore is
// nil when no team with that exact name exists or the opponent has not filed
// a match for the same round.
type RoundResult struct {
	Round         int    `json:"round"`
	Score         int    `json:"score"`
	Opponent      string `json:"opponent"`
	Level         int    `json:"level"`
	OpponentScore *int   `json:"opponentScore"`
}

// LeaderboardEntry is the derived per-team summary. It is computed on every
// read and never persisted.
type LeaderboardEntry struct {
	Rank       int           `json:"rank"`
	TeamID     string        `json:"teamId"`
	TeamName   string        `json:"teamName"`
	Members    string        `json:"members,omitempty"`
	TotalScore int           `json:"totalScore"`
	Rounds     []RoundResult `json:"rounds"`
}
