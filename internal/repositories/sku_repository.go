package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/superadmin-catalog/internal/models"
	"github.com/aaravmahajanofficial/superadmin-catalog/internal/utils"
)

type SkuRepository interface {
	CreateSku(ctx context.Context, sku *models.Sku) error
	GetSkuByID(ctx context.Context, id int64) (*models.Sku, error)
	ListSkusByProduct(ctx context.Context, productID int64) ([]*models.Sku, error)
}

type skuRepository struct {
	DB *sql.DB
}

func NewSkuRepo(db *sql.DB) SkuRepository {
	return &skuRepository{DB: db}
}

// CreateSku relies on the unique index on skus.sku: the conflict check and
// the insert happen in one statement. A product deleted between the caller's
// lookup and this insert surfaces as ErrProductNotFound through the foreign key.
func (r *skuRepository) CreateSku(ctx context.Context, sku *models.Sku) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO skus (product_id, sku, color, size, supplies_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (sku) DO NOTHING
		RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, sku.ProductID, sku.Code, sku.Color, sku.Size, sku.SuppliesAt).
		Scan(&sku.ID, &sku.CreatedAt, &sku.UpdatedAt)

	switch {
	case errors.Is(err, sql.ErrNoRows), hasPQCode(err, uniqueViolation):
		return fmt.Errorf("sku %q: %w", sku.Code, ErrDuplicateSku)
	case hasPQCode(err, foreignKeyViolation):
		return fmt.Errorf("product %d: %w", sku.ProductID, ErrProductNotFound)
	case err != nil:
		return fmt.Errorf("inserting sku: %w", err)
	}

	return nil
}

func (r *skuRepository) GetSkuByID(ctx context.Context, id int64) (*models.Sku, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	sku := &models.Sku{}

	query := `SELECT id, product_id, sku, color, size, supplies_at, created_at, updated_at FROM skus WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&sku.ID, &sku.ProductID, &sku.Code, &sku.Color, &sku.Size, &sku.SuppliesAt, &sku.CreatedAt, &sku.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sku %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying sku: %w", err)
	}

	return sku, nil
}

func (r *skuRepository) ListSkusByProduct(ctx context.Context, productID int64) ([]*models.Sku, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, product_id, sku, color, size, supplies_at, created_at, updated_at FROM skus WHERE product_id = $1 ORDER BY id`

	rows, err := r.DB.QueryContext(dbCtx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("listing skus: %w", err)
	}

	defer rows.Close()

	skus := []*models.Sku{}

	for rows.Next() {
		sku := &models.Sku{}

		if err := rows.Scan(&sku.ID, &sku.ProductID, &sku.Code, &sku.Color, &sku.Size, &sku.SuppliesAt, &sku.CreatedAt, &sku.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning sku: %w", err)
		}

		skus = append(skus, sku)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating skus: %w", err)
	}

	return skus, nil
}
