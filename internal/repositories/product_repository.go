package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/utils"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id string) ([]models.Product, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, price::text, COALESCE(sale_price::text, ''), image, COALESCE(description, '')
		FROM products
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	defer rows.Close()

	return scanProducts(rows)
}

// GetProductByID returns every matching row. The table intends uniqueness but
// the query does not assume it, so callers get a slice.
func (r *productRepository) GetProductByID(ctx context.Context, id string) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, price::text, COALESCE(sale_price::text, ''), image, COALESCE(description, '')
		FROM products
		WHERE id = $1
	`

	rows, err := r.DB.QueryContext(dbCtx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}

	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {

	var products []models.Product

	for rows.Next() {

		var product models.Product

		err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.SalePrice, &product.Image, &product.Description)

		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
