package models

import "time"

// Levels a team can report reaching in a round: 2-10 numeric, 11=J, 12=Q,
// 13=K, 14=A.
const (
	MinLevel = 2
	MaxLevel = 14
)

// Rounds are numbered 1..MaxRound; every team files at most one result per
// round.
const (
	MinRound = 1
	MaxRound = 3
)

// Match is one team's self-reported result for one round. OpponentName is a
// plain string, not a foreign key: opponents register independently and file
// their own side of the round, so the two records are cross-referenced by
// name only when the leaderboard is computed.
type Match struct {
	MatchID      string    `json:"matchId"`
	TeamID       string    `json:"teamId"`
	Round        int       `json:"round"`
	OpponentName string    `json:"opponentName"`
	Level        int       `json:"level"`
	Score        int       `json:"score"`
	CreatedAt    time.Time `json:"createdAt"`
}

// MatchWithOpponent is a match enriched with the score the named opponent
// filed for the same round, if any.
type MatchWithOpponent struct {
	Match
	OpponentScore *int `json:"opponentScore"`
}
