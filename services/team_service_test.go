package services

import (
	"context"
	"testing"

	"github.com/furuilin66/guandan/db"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *db.Store {
	t.Helper()
	store, err := db.Open(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestTeamLoginRegistersOnFirstSight(t *testing.T) {
	svc := NewTeamService(newTestStore(t))
	ctx := context.Background()

	team, err := svc.Login(ctx, "Tigers")
	require.NoError(t, err)
	require.NotEmpty(t, team.TeamID)

	again, err := svc.Login(ctx, "Tigers")
	require.NoError(t, err)
	require.Equal(t, team.TeamID, again.TeamID)

	teams, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 1)
}

func TestTeamLoginRequiresName(t *testing.T) {
	svc := NewTeamService(newTestStore(t))

	_, err := svc.Login(context.Background(), "")
	require.ErrorIs(t, err, ErrTeamNameRequired)
}

func TestTeamUpdate(t *testing.T) {
	store := newTestStore(t)
	svc := NewTeamService(store)
	ctx := context.Background()

	tigers, err := svc.Login(ctx, "Tigers")
	require.NoError(t, err)
	_, err = svc.Login(ctx, "Bears")
	require.NoError(t, err)

	t.Run("no fields", func(t *testing.T) {
		_, err := svc.Update(ctx, tigers.TeamID, UpdateTeamInput{})
		require.ErrorIs(t, err, ErrNoFieldsToUpdate)
	})

	t.Run("rename conflict", func(t *testing.T) {
		name := "Bears"
		_, err := svc.Update(ctx, tigers.TeamID, UpdateTeamInput{TeamName: &name})
		require.ErrorIs(t, err, db.ErrTeamNameConflict)
	})

	t.Run("unknown team", func(t *testing.T) {
		members := "Ann"
		_, err := svc.Update(ctx, "no-such-id", UpdateTeamInput{Members: &members})
		require.ErrorIs(t, err, db.ErrTeamNotFound)
	})

	t.Run("rename and roster", func(t *testing.T) {
		name := "Lions"
		members := "Ann, Bob"
		team, err := svc.Update(ctx, tigers.TeamID, UpdateTeamInput{TeamName: &name, Members: &members})
		require.NoError(t, err)
		require.Equal(t, "Lions", team.TeamName)
		require.Equal(t, "Ann, Bob", team.Members)
	})
}
