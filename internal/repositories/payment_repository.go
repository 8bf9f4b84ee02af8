package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"storefront/internal/models"
	"storefront/internal/utils"
)

type PaymentRepository interface {
	RecordPayment(ctx context.Context, payment *models.Payment) error
}

type paymentRepository struct {
	DB *sql.DB
}

func NewPaymentRepo(db *sql.DB) PaymentRepository {
	return &paymentRepository{DB: db}
}

// RecordPayment inserts the payment row and flips the order to paid on a
// single pooled connection. Each statement is best-effort: a failure is
// logged, the other statement still runs, and the caller sees success. Only
// failing to check out a connection is reported as an error.
func (r *paymentRepository) RecordPayment(ctx context.Context, payment *models.Payment) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	conn, err := r.DB.Conn(dbCtx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}

	defer conn.Close()

	insertQuery := `
		INSERT INTO payments (order_id, transaction_id, date)
		VALUES ($1, $2, $3)
	`

	if _, err := conn.ExecContext(dbCtx, insertQuery, payment.OrderID, payment.TransactionID, payment.Date); err != nil {
		slog.Error("Failed to insert payment",
			slog.Int64("orderId", payment.OrderID),
			slog.String("error", err.Error()))
	}

	updateQuery := `
		UPDATE orders SET status = $1 WHERE id = $2
	`

	if _, err := conn.ExecContext(dbCtx, updateQuery, models.OrderStatusPaid, payment.OrderID); err != nil {
		slog.Error("Failed to update order status",
			slog.Int64("orderId", payment.OrderID),
			slog.String("error", err.Error()))
	}

	return nil
}
