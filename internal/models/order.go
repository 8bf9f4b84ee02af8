package models

import "time"

type OrderStatus string

const (
	OrderStatusNotPaid OrderStatus = "not_paid"
	OrderStatusPaid    OrderStatus = "paid"
)

type Order struct {
	ID         int64       `json:"id"`
	Cost       float64     `json:"cost"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Status     OrderStatus `json:"status"`
	City       string      `json:"city"`
	Address    string      `json:"address"`
	Phone      string      `json:"phone"`
	Date       time.Time   `json:"date"`
	ProductIDs string      `json:"products_ids"`
	Items      []OrderItem `json:"items"`
}

type OrderItem struct {
	OrderID   int64     `json:"order_id"`
	ProductID string    `json:"product_id"`
	Name      string    `json:"product_name"`
	Price     string    `json:"product_price"`
	Image     string    `json:"product_image"`
	Quantity  int       `json:"product_quantity"`
	OrderDate time.Time `json:"order_date"`
}

type PlaceOrderRequest struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Phone   string `validate:"required"`
	City    string `validate:"required"`
	Address string `validate:"required"`
}
