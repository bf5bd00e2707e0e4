package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/srcmarket/backoffice/internal/model"
	"github.com/srcmarket/backoffice/internal/repository/base"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// GetByID fetches one user, nil when it does not exist
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT id, username, email, is_seller, created_at
		FROM users
		WHERE id = $1
	`

	var user model.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.IsSeller,
		&user.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, base.ClassifyErr(fmt.Errorf("get user: %w", err))
	}

	return &user, nil
}

// DisplayInfoByIDs fetches display data for a batch of users, keyed by id.
// Missing ids are simply absent from the result.
func (r *UserRepository) DisplayInfoByIDs(ctx context.Context, ids []int64) (map[int64]model.UserDisplayInfo, error) {
	infos := make(map[int64]model.UserDisplayInfo, len(ids))
	if len(ids) == 0 {
		return infos, nil
	}

	query := `
		SELECT id, username, email
		FROM users
		WHERE id = ANY($1)
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, base.ClassifyErr(fmt.Errorf("get users by ids: %w", err))
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int64
			info model.UserDisplayInfo
		)
		if err := rows.Scan(&id, &info.Username, &info.Email); err != nil {
			return nil, fmt.Errorf("scan user display info: %w", err)
		}
		infos[id] = info
	}

	if err := rows.Err(); err != nil {
		return nil, base.ClassifyErr(fmt.Errorf("iterate users: %w", err))
	}

	return infos, nil
}
