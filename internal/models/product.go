package models

// Product rows are maintained outside this service; the catalog only reads
// them. Prices stay in their stored decimal-string form so the cart can carry
// them unchanged as a snapshot.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	SalePrice   string `json:"sale_price"`
	Image       string `json:"image"`
	Description string `json:"description"`
}
