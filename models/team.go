package models

import "time"

// Team is a self-registered tournament team. TeamName is unique across all
// teams; Members is a free-text roster the team edits itself.
type Team struct {
	TeamID    string    `json:"teamId"`
	TeamName  string    `json:"teamName"`
	Members   string    `json:"members,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
