package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"

	"github.com/furuilin66/guandan/db"
	"github.com/furuilin66/guandan/live"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	ResetDatabase(ctx context.Context, password string) error
}

type authService struct {
	store         *db.Store
	hub           *live.Hub
	logger        *slog.Logger
	adminPassword string
	adminHash     string
}

// NewAuthService guards the whole-database reset behind the admin password.
// When a bcrypt hash is configured it takes precedence over the plain
// password; the plain comparison is constant-time either way.
func NewAuthService(store *db.Store, hub *live.Hub, logger *slog.Logger, adminPassword, adminHash string) AuthService {
	return &authService{
		store:         store,
		hub:           hub,
		logger:        logger,
		adminPassword: adminPassword,
		adminHash:     adminHash,
	}
}

func (s *authService) ResetDatabase(ctx context.Context, password string) error {
	if !s.checkPassword(password) {
		return ErrResetPasswordInvalid
	}

	if err := s.store.Reset(); err != nil {
		return err
	}
	s.logger.Info("database reset")

	if s.hub != nil {
		rankings, err := s.store.Leaderboard()
		if err != nil {
			s.logger.Error("failed to compute leaderboard for broadcast", slog.Any("error", err))
			return nil
		}
		s.hub.Broadcast(live.Message{Type: live.MessageLeaderboardUpdated, Payload: rankings})
	}
	return nil
}

func (s *authService) checkPassword(password string) bool {
	if s.adminHash != "" {
		err := bcrypt.CompareHashAndPassword([]byte(s.adminHash), []byte(password))
		if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.logger.Error("failed to compare admin password hash", slog.Any("error", err))
		}
		return err == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.adminPassword), []byte(password)) == 1
}
