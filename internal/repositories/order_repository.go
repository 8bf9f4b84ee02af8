package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/utils"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

// CreateOrder writes the order header and every item in one transaction, so a
// failed item insert never leaves a headless order behind.
func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin order transaction: %w", err)
	}

	defer tx.Rollback()

	query := `
		INSERT INTO orders (id, cost, name, email, status, city, address, phone, date, products_ids)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = tx.ExecContext(dbCtx, query, order.ID, order.Cost, order.Name, order.Email, order.Status, order.City, order.Address, order.Phone, order.Date, order.ProductIDs)

	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range order.Items {

		query := `
			INSERT INTO order_items (order_id, product_id, product_name, product_price, product_image, product_quantity, order_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`

		_, err := tx.ExecContext(dbCtx, query, order.ID, item.ProductID, item.Name, item.Price, item.Image, item.Quantity, item.OrderDate)

		if err != nil {
			return fmt.Errorf("failed to insert order item %s: %w", item.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}
