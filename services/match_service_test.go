package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/furuilin66/guandan/db"
	"github.com/furuilin66/guandan/models"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecordValidatesInput(t *testing.T) {
	store := newTestStore(t)
	team, err := store.CreateTeam("Tigers")
	require.NoError(t, err)

	svc := NewMatchService(store, nil, discardLogger())
	ctx := context.Background()

	tests := []struct {
		name    string
		input   RecordMatchInput
		wantErr error
	}{
		{
			name:    "round too low",
			input:   RecordMatchInput{TeamID: team.TeamID, Round: 0, OpponentName: "Bears", Level: 5},
			wantErr: ErrRoundOutOfRange,
		},
		{
			name:    "round too high",
			input:   RecordMatchInput{TeamID: team.TeamID, Round: 4, OpponentName: "Bears", Level: 5},
			wantErr: ErrRoundOutOfRange,
		},
		{
			name:    "level too low",
			input:   RecordMatchInput{TeamID: team.TeamID, Round: 1, OpponentName: "Bears", Level: 1},
			wantErr: ErrLevelOutOfRange,
		},
		{
			name:    "level too high",
			input:   RecordMatchInput{TeamID: team.TeamID, Round: 1, OpponentName: "Bears", Level: 15},
			wantErr: ErrLevelOutOfRange,
		},
		{
			name:    "unknown team",
			input:   RecordMatchInput{TeamID: "no-such-id", Round: 1, OpponentName: "Bears", Level: 5},
			wantErr: db.ErrTeamNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Record(ctx, tt.input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecordAccumulatesTotalScore(t *testing.T) {
	store := newTestStore(t)
	team, err := store.CreateTeam("Tigers")
	require.NoError(t, err)

	svc := NewMatchService(store, nil, discardLogger())
	ctx := context.Background()

	first, err := svc.Record(ctx, RecordMatchInput{TeamID: team.TeamID, Round: 1, OpponentName: "Bears", Level: 13})
	require.NoError(t, err)
	require.Equal(t, 13, first.Score)
	require.Equal(t, 13, first.TotalScore)

	second, err := svc.Record(ctx, RecordMatchInput{TeamID: team.TeamID, Round: 2, OpponentName: "Lions", Level: 4})
	require.NoError(t, err)
	require.Equal(t, 4, second.Score)
	require.Equal(t, 17, second.TotalScore)

	// Resubmitting round 1 replaces, not adds.
	third, err := svc.Record(ctx, RecordMatchInput{TeamID: team.TeamID, Round: 1, OpponentName: "Bears", Level: 2})
	require.NoError(t, err)
	require.Equal(t, 2, third.Score)
	require.Equal(t, 6, third.TotalScore)
}

func TestTeamMatchesEnrichment(t *testing.T) {
	store := newTestStore(t)
	tigers, err := store.CreateTeam("Tigers")
	require.NoError(t, err)
	bears, err := store.CreateTeam("Bears")
	require.NoError(t, err)

	svc := NewMatchService(store, nil, discardLogger())
	ctx := context.Background()

	_, err = svc.Record(ctx, RecordMatchInput{TeamID: tigers.TeamID, Round: 1, OpponentName: "Bears", Level: 13})
	require.NoError(t, err)
	_, err = svc.Record(ctx, RecordMatchInput{TeamID: tigers.TeamID, Round: 2, OpponentName: "Ghosts", Level: 7})
	require.NoError(t, err)
	_, err = svc.Record(ctx, RecordMatchInput{TeamID: bears.TeamID, Round: 1, OpponentName: "Tigers", Level: 10})
	require.NoError(t, err)

	matches, err := svc.TeamMatches(ctx, tigers.TeamID)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	byRound := map[int]models.MatchWithOpponent{}
	for _, m := range matches {
		byRound[m.Round] = m
	}

	require.NotNil(t, byRound[1].OpponentScore)
	require.Equal(t, 10, *byRound[1].OpponentScore)
	require.Nil(t, byRound[2].OpponentScore)
}
