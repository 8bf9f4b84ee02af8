package service

import (
	"storefront/internal/models"
	"storefront/internal/session"
)

// CartService mutates the session-held cart. Every mutation recomputes the
// running total before the state goes back to the session store, so the two
// can never drift apart.
type CartService struct{}

func NewCartService() *CartService {
	return &CartService{}
}

// AddItem appends a new line item, or bumps the quantity when the product is
// already in the cart.
func (s *CartService) AddItem(state *session.State, req *models.AddToCartRequest) {

	for i := range state.Cart {
		if state.Cart[i].ProductID == req.ProductID {
			state.Cart[i].Quantity += req.Quantity
			state.Total = ComputeTotal(state.Cart)

			return
		}
	}

	state.Cart = append(state.Cart, models.CartItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		SalePrice: req.SalePrice,
		Quantity:  req.Quantity,
		Image:     req.Image,
	})
	state.Total = ComputeTotal(state.Cart)
}

// RemoveItem drops the line item for the product. Removing something that is
// not in the cart is a no-op, not an error.
func (s *CartService) RemoveItem(state *session.State, productID string) {

	for i := range state.Cart {
		if state.Cart[i].ProductID == productID {
			state.Cart = append(state.Cart[:i], state.Cart[i+1:]...)

			break
		}
	}

	state.Total = ComputeTotal(state.Cart)
}

// AdjustQuantity moves a line item's quantity one step in the given
// direction. Decreasing floors at 1; getting to zero takes an explicit
// RemoveItem. Unknown products are a no-op.
func (s *CartService) AdjustQuantity(state *session.State, productID string, direction models.QuantityDirection) {

	for i := range state.Cart {
		if state.Cart[i].ProductID != productID {
			continue
		}

		switch direction {
		case models.QuantityIncrease:
			state.Cart[i].Quantity++
		case models.QuantityDecrease:
			if state.Cart[i].Quantity > 1 {
				state.Cart[i].Quantity--
			}
		}

		break
	}

	state.Total = ComputeTotal(state.Cart)
}

// ComputeTotal sums unit price times quantity over the cart, where the unit
// price is the sale price when present and the base price otherwise.
func ComputeTotal(cart []models.CartItem) float64 {

	var total float64

	for _, item := range cart {
		total += item.UnitPrice() * float64(item.Quantity)
	}

	return total
}
