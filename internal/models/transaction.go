package models

// Transaction types
const (
	TransactionBuy  = "buy"
	TransactionSell = "sell"
)

// DateLayout is the fixed-width UTC layout used for Transaction.Date,
// so stored dates sort lexically in chronological order.
const DateLayout = "2006-01-02T15:04:05.000Z"

// Transaction represents a buy or sell event. Transactions are never updated.
type Transaction struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	AssetName string  `json:"asset_name"`
	Type      string  `json:"type"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
	Date      string  `json:"date"`
}
