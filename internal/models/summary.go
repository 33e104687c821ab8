package models

// PortfolioSummary represents the performance of a user's holdings
type PortfolioSummary struct {
	TotalCurrentValue  float64              `json:"total_current_value"`
	TotalPurchasePrice float64              `json:"total_purchase_price"`
	TotalGain          float64              `json:"total_gain"`
	PerformancePct     float64              `json:"performance_pct"` // TotalGain / TotalPurchasePrice * 100
	Holdings           []HoldingPerformance `json:"holdings"`
}

// HoldingPerformance represents the performance of a single holding
type HoldingPerformance struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	CurrentValue   float64 `json:"current_value"`
	PurchasePrice  float64 `json:"purchase_price"`
	Gain           float64 `json:"gain"`
	PerformancePct float64 `json:"performance_pct"`
}
