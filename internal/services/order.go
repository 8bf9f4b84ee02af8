package service

import (
	"context"
	"strings"
	"time"

	"storefront/internal/errors"
	"storefront/internal/models"
	repository "storefront/internal/repositories"
	"storefront/internal/session"
)

type OrderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// PlaceOrder turns the session cart into a persisted order. The cart is
// cleared and the order id parked on the session only after the write
// committed; a storage fault leaves the cart untouched.
//
// The order id is derived from the placement timestamp, matching the ids
// already in the orders table. Two checkouts inside the same millisecond
// would collide.
func (s *OrderService) PlaceOrder(ctx context.Context, req *models.PlaceOrderRequest, state *session.State) (*models.Order, error) {

	if len(state.Cart) == 0 {
		return nil, errors.BadRequestError("Cannot place an order with an empty cart")
	}

	now := time.Now()

	productIDs := make([]string, 0, len(state.Cart))
	for _, item := range state.Cart {
		productIDs = append(productIDs, item.ProductID)
	}

	order := &models.Order{
		ID:         now.UnixMilli(),
		Cost:       state.Total,
		Name:       req.Name,
		Email:      req.Email,
		Status:     models.OrderStatusNotPaid,
		City:       req.City,
		Address:    req.Address,
		Phone:      req.Phone,
		Date:       now,
		ProductIDs: strings.Join(productIDs, ","),
	}

	for _, item := range state.Cart {
		order.Items = append(order.Items, models.OrderItem{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.EffectivePrice(),
			Image:     item.Image,
			Quantity:  item.Quantity,
			OrderDate: now,
		})
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, errors.DatabaseError("Failed to place order").WithError(err)
	}

	state.Cart = nil
	state.Total = 0
	state.OrderID = order.ID

	return order, nil
}
