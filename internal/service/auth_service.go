package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srcmarket/backoffice/internal/model"
)

// ErrUnauthenticated covers every way a session token can fail to
// resolve to a seller: malformed, unknown, expired, or owned by a
// non-seller account
var ErrUnauthenticated = errors.New("unauthenticated")

// SessionStore is the persistence contract for seller sessions
type SessionStore interface {
	GetByToken(ctx context.Context, token uuid.UUID) (*model.Session, error)
}

// UserStore resolves full user records for authentication
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// AuthService resolves session tokens to acting seller ids. Session
// creation belongs to the login flow, outside this service.
type AuthService struct {
	sessions SessionStore
	users    UserStore
	logger   *zap.Logger
}

func NewAuthService(sessions SessionStore, users UserStore, logger *zap.Logger) *AuthService {
	return &AuthService{
		sessions: sessions,
		users:    users,
		logger:   logger,
	}
}

// ResolveSeller maps a bearer token to the authenticated seller's id
func (s *AuthService) ResolveSeller(ctx context.Context, rawToken string) (int64, error) {
	token, err := uuid.Parse(rawToken)
	if err != nil {
		return 0, ErrUnauthenticated
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		s.logger.Error("Failed to load session", zap.Error(err))
		return 0, errors.Join(ErrPersistence, err)
	}

	if session == nil || session.IsExpired(time.Now()) {
		return 0, ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		s.logger.Error("Failed to load session user",
			zap.Int64("user_id", session.UserID),
			zap.Error(err),
		)
		return 0, errors.Join(ErrPersistence, err)
	}

	if user == nil || !user.IsSeller {
		return 0, ErrUnauthenticated
	}

	return user.ID, nil
}
