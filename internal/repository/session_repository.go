package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/srcmarket/backoffice/internal/model"
	"github.com/srcmarket/backoffice/internal/repository/base"
)

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

// GetByToken fetches a session by its token, nil when it does not exist.
// Expiry is checked by the caller, not here.
func (r *SessionRepository) GetByToken(ctx context.Context, token uuid.UUID) (*model.Session, error) {
	query := `
		SELECT token, user_id, created_at, expires_at
		FROM sessions
		WHERE token = $1
	`

	var session model.Session
	err := r.pool.QueryRow(ctx, query, token).Scan(
		&session.Token,
		&session.UserID,
		&session.CreatedAt,
		&session.ExpiresAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, base.ClassifyErr(fmt.Errorf("get session: %w", err))
	}

	return &session, nil
}
