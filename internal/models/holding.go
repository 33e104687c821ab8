package models

// Holding represents a single investment position owned by a user
type Holding struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	CurrentValue  float64 `json:"current_value"`
	PurchasePrice float64 `json:"purchase_price"`
}
