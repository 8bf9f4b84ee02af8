package models

import "strconv"

// CartItem is a denormalized snapshot of a product at the time it was added,
// plus the requested quantity. A cart holds at most one item per product id.
type CartItem struct {
	ProductID string `json:"id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	SalePrice string `json:"sale_price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
}

// UnitPrice prefers the sale price when one is set, falling back to the base
// price. Unparseable snapshots price as zero.
func (i CartItem) UnitPrice() float64 {

	raw := i.Price
	if i.SalePrice != "" {
		raw = i.SalePrice
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}

	return price
}

// EffectivePrice is the decimal string that UnitPrice parses, kept verbatim
// for the order_items snapshot.
func (i CartItem) EffectivePrice() string {
	if i.SalePrice != "" {
		return i.SalePrice
	}

	return i.Price
}

type AddToCartRequest struct {
	ProductID string `validate:"required"`
	Name      string `validate:"required"`
	Price     string `validate:"required,numeric"`
	SalePrice string `validate:"omitempty,numeric"`
	Quantity  int    `validate:"required,min=1"`
	Image     string
}

type QuantityDirection string

const (
	QuantityIncrease QuantityDirection = "increase"
	QuantityDecrease QuantityDirection = "decrease"
)

type EditQuantityRequest struct {
	ProductID string            `validate:"required"`
	Direction QuantityDirection `validate:"required,oneof=increase decrease"`
}
