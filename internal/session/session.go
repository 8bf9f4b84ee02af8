package session

import (
	"context"

	"storefront/internal/models"
)

// State is everything the storefront keeps per client between requests: the
// cart, its running total, and the id of the order awaiting payment. Handlers
// load it, mutate it, and save it back; nothing holds it across requests.
type State struct {
	Cart    []models.CartItem `json:"cart"`
	Total   float64           `json:"total"`
	OrderID int64             `json:"order_id,omitempty"`
}

// Store persists State keyed by session id. A missing session yields a fresh
// empty State, never an error.
type Store interface {
	Get(ctx context.Context, sid string) (*State, error)
	Save(ctx context.Context, sid string, state *State) error
}
