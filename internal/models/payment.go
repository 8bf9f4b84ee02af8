package models

import "time"

// Payment records a transaction confirmation supplied by the payment page.
// Immutable once written.
type Payment struct {
	OrderID       int64     `json:"order_id"`
	TransactionID string    `json:"transaction_id"`
	Date          time.Time `json:"date"`
}
