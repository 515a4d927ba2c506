package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestResetDatabaseRequiresPassword(t *testing.T) {
	store := newTestStore(t)
	_, err := store.CreateTeam("Tigers")
	require.NoError(t, err)

	svc := NewAuthService(store, nil, discardLogger(), "secret", "")

	err = svc.ResetDatabase(context.Background(), "wrong")
	require.ErrorIs(t, err, ErrResetPasswordInvalid)

	teams, err := store.AllTeams()
	require.NoError(t, err)
	require.Len(t, teams, 1)
}

func TestResetDatabaseWithPlainPassword(t *testing.T) {
	store := newTestStore(t)
	_, err := store.CreateTeam("Tigers")
	require.NoError(t, err)

	svc := NewAuthService(store, nil, discardLogger(), "secret", "")
	require.NoError(t, svc.ResetDatabase(context.Background(), "secret"))

	teams, err := store.AllTeams()
	require.NoError(t, err)
	require.Empty(t, teams)
}

func TestResetDatabaseWithBcryptHash(t *testing.T) {
	store := newTestStore(t)
	_, err := store.CreateTeam("Tigers")
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	// The hash takes precedence over any plain password.
	svc := NewAuthService(store, nil, discardLogger(), "ignored", string(hash))

	err = svc.ResetDatabase(context.Background(), "ignored")
	require.ErrorIs(t, err, ErrResetPasswordInvalid)

	require.NoError(t, svc.ResetDatabase(context.Background(), "secret"))

	teams, err := store.AllTeams()
	require.NoError(t, err)
	require.Empty(t, teams)
}
