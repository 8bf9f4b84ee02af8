package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"storefront/internal/models"
	repository "storefront/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOrderRepoTest(t *testing.T) (repository.OrderRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewOrderRepo(db)
	require.NotNil(t, repo, "NewOrderRepo should return a non-nil repository")

	return repo, mock
}

func testOrder() *models.Order {
	now := time.Now()

	return &models.Order{
		ID:         now.UnixMilli(),
		Cost:       32.00,
		Name:       "Jordan Doe",
		Email:      "jordan@example.com",
		Status:     models.OrderStatusNotPaid,
		City:       "Springfield",
		Address:    "12 Elm Street",
		Phone:      "555-0101",
		Date:       now,
		ProductIDs: "1,2",
		Items: []models.OrderItem{
			{OrderID: now.UnixMilli(), ProductID: "1", Name: "Widget", Price: "10.00", Image: "/img/widget.png", Quantity: 2, OrderDate: now},
			{OrderID: now.UnixMilli(), ProductID: "2", Name: "Gadget", Price: "12.00", Image: "/img/gadget.png", Quantity: 1, OrderDate: now},
		},
	}
}

var (
	expectedOrderInsertSQL = regexp.QuoteMeta(`
		INSERT INTO orders (id, cost, name, email, status, city, address, phone, date, products_ids)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`)
	expectedItemInsertSQL = regexp.QuoteMeta(`
			INSERT INTO order_items (order_id, product_id, product_name, product_price, product_image, product_quantity, order_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`)
)

func TestCreateOrder(t *testing.T) {
	repo, mock := setupOrderRepoTest(t)
	ctx := context.Background()
	order := testOrder()

	t.Run("Success - One Order Row Plus One Row Per Item", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(expectedOrderInsertSQL).
			WithArgs(order.ID, order.Cost, order.Name, order.Email, order.Status, order.City, order.Address, order.Phone, order.Date, order.ProductIDs).
			WillReturnResult(sqlmock.NewResult(1, 1))

		for _, item := range order.Items {
			mock.ExpectExec(expectedItemInsertSQL).
				WithArgs(order.ID, item.ProductID, item.Name, item.Price, item.Image, item.Quantity, item.OrderDate).
				WillReturnResult(sqlmock.NewResult(1, 1))
		}

		mock.ExpectCommit()

		err := repo.CreateOrder(ctx, order)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Order Insert Rolls Back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(expectedOrderInsertSQL).
			WithArgs(order.ID, order.Cost, order.Name, order.Email, order.Status, order.City, order.Address, order.Phone, order.Date, order.ProductIDs).
			WillReturnError(errors.New("duplicate key"))
		mock.ExpectRollback()

		err := repo.CreateOrder(ctx, order)

		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to insert order")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Item Insert Rolls Back Everything", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(expectedOrderInsertSQL).
			WithArgs(order.ID, order.Cost, order.Name, order.Email, order.Status, order.City, order.Address, order.Phone, order.Date, order.ProductIDs).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(expectedItemInsertSQL).
			WithArgs(order.ID, order.Items[0].ProductID, order.Items[0].Name, order.Items[0].Price, order.Items[0].Image, order.Items[0].Quantity, order.Items[0].OrderDate).
			WillReturnError(errors.New("constraint violation"))
		mock.ExpectRollback()

		err := repo.CreateOrder(ctx, order)

		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to insert order item")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
