package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/srcmarket/backoffice/internal/model"
	"github.com/srcmarket/backoffice/internal/repository/base"
)

type AccessRequestRepository struct {
	pool *pgxpool.Pool
}

func NewAccessRequestRepository(pool *pgxpool.Pool) *AccessRequestRepository {
	return &AccessRequestRepository{pool: pool}
}

// Create inserts a new pending request; used by the buyer-facing flow
func (r *AccessRequestRepository) Create(ctx context.Context, req *model.AccessRequest) error {
	query := `
		INSERT INTO access_requests (buyer_id, seller_id, product_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		req.BuyerID,
		req.SellerID,
		req.ProductID,
		req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return base.ClassifyErr(fmt.Errorf("create access request: %w", err))
	}

	return nil
}

// GetByID fetches one request, nil when it does not exist
func (r *AccessRequestRepository) GetByID(ctx context.Context, id int64) (*model.AccessRequest, error) {
	query := `
		SELECT id, buyer_id, seller_id, product_id, status, created_at, updated_at
		FROM access_requests
		WHERE id = $1
	`

	var req model.AccessRequest
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID,
		&req.BuyerID,
		&req.SellerID,
		&req.ProductID,
		&req.Status,
		&req.CreatedAt,
		&req.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, base.ClassifyErr(fmt.Errorf("get access request: %w", err))
	}

	return &req, nil
}

// ListBySeller returns a seller's requests. With a status filter the list
// is ordered by most recent activity; without one pending requests come
// first, then approved, then rejected, most recent first within each group.
func (r *AccessRequestRepository) ListBySeller(ctx context.Context, sellerID int64, status string) ([]*model.AccessRequest, error) {
	var (
		query string
		args  []interface{}
	)

	if status == "" {
		query = `
			SELECT id, buyer_id, seller_id, product_id, status, created_at, updated_at
			FROM access_requests
			WHERE seller_id = $1
			ORDER BY
				CASE status
					WHEN 'pending' THEN 0
					WHEN 'approved' THEN 1
					ELSE 2
				END,
				updated_at DESC
		`
		args = []interface{}{sellerID}
	} else {
		query = `
			SELECT id, buyer_id, seller_id, product_id, status, created_at, updated_at
			FROM access_requests
			WHERE seller_id = $1 AND status = $2
			ORDER BY updated_at DESC
		`
		args = []interface{}{sellerID, status}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, base.ClassifyErr(fmt.Errorf("list seller requests: %w", err))
	}
	defer rows.Close()

	var requests []*model.AccessRequest
	for rows.Next() {
		var req model.AccessRequest
		err := rows.Scan(
			&req.ID,
			&req.BuyerID,
			&req.SellerID,
			&req.ProductID,
			&req.Status,
			&req.CreatedAt,
			&req.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan access request: %w", err)
		}
		requests = append(requests, &req)
	}

	if err := rows.Err(); err != nil {
		return nil, base.ClassifyErr(fmt.Errorf("iterate requests: %w", err))
	}

	return requests, nil
}

// CountBySeller counts a seller's requests per status. Statuses with no
// rows are present with a zero count.
func (r *AccessRequestRepository) CountBySeller(ctx context.Context, sellerID int64) (map[string]int, error) {
	query := `
		SELECT status, COUNT(*)
		FROM access_requests
		WHERE seller_id = $1
		GROUP BY status
	`

	rows, err := r.pool.Query(ctx, query, sellerID)
	if err != nil {
		return nil, base.ClassifyErr(fmt.Errorf("count seller requests: %w", err))
	}
	defer rows.Close()

	counts := map[string]int{
		model.RequestStatusPending:  0,
		model.RequestStatusApproved: 0,
		model.RequestStatusRejected: 0,
	}

	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, base.ClassifyErr(fmt.Errorf("iterate status counts: %w", err))
	}

	return counts, nil
}

// SetStatus updates the status and refreshes updated_at in one statement.
// Returns the updated row, nil when the request does not exist.
func (r *AccessRequestRepository) SetStatus(ctx context.Context, id int64, status string) (*model.AccessRequest, error) {
	query := `
		UPDATE access_requests
		SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING id, buyer_id, seller_id, product_id, status, created_at, updated_at
	`

	var req model.AccessRequest
	err := r.pool.QueryRow(ctx, query, status, id).Scan(
		&req.ID,
		&req.BuyerID,
		&req.SellerID,
		&req.ProductID,
		&req.Status,
		&req.CreatedAt,
		&req.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, base.ClassifyErr(fmt.Errorf("update request status: %w", err))
	}

	return &req, nil
}
