package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/srcmarket/backoffice/internal/model"
	"github.com/srcmarket/backoffice/internal/repository/base"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// GetByID fetches one product, nil when it does not exist
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `
		SELECT id, seller_id, name, image_url, is_active, created_at
		FROM products
		WHERE id = $1
	`

	var product model.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.SellerID,
		&product.Name,
		&product.ImageURL,
		&product.IsActive,
		&product.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, base.ClassifyErr(fmt.Errorf("get product: %w", err))
	}

	return &product, nil
}

// DisplayInfoByIDs fetches display data for a batch of products, keyed by id.
// Missing ids are simply absent from the result.
func (r *ProductRepository) DisplayInfoByIDs(ctx context.Context, ids []int64) (map[int64]model.ProductDisplayInfo, error) {
	infos := make(map[int64]model.ProductDisplayInfo, len(ids))
	if len(ids) == 0 {
		return infos, nil
	}

	query := `
		SELECT id, name, image_url
		FROM products
		WHERE id = ANY($1)
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, base.ClassifyErr(fmt.Errorf("get products by ids: %w", err))
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int64
			info model.ProductDisplayInfo
		)
		if err := rows.Scan(&id, &info.Name, &info.ImageURL); err != nil {
			return nil, fmt.Errorf("scan product display info: %w", err)
		}
		infos[id] = info
	}

	if err := rows.Err(); err != nil {
		return nil, base.ClassifyErr(fmt.Errorf("iterate products: %w", err))
	}

	return infos, nil
}
