package service

import (
	"context"

	"github.com/hrshiniA/portfolio-app/internal/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Summary computes gains and performance over the caller's holdings.
func (s *Service) Summary(ctx context.Context, userID int64) (*models.PortfolioSummary, error) {
	holdings, err := s.ListHoldings(ctx, userID)
	if err != nil {
		return nil, err
	}
	return summarize(holdings), nil
}

func summarize(holdings []models.Holding) *models.PortfolioSummary {
	summary := &models.PortfolioSummary{Holdings: make([]models.HoldingPerformance, 0, len(holdings))}
	totalCurrent, totalPurchase := decimal.Zero, decimal.Zero

	for _, h := range holdings {
		current := decimal.NewFromFloat(h.CurrentValue)
		purchase := decimal.NewFromFloat(h.PurchasePrice)
		gain := current.Sub(purchase)
		totalCurrent = totalCurrent.Add(current)
		totalPurchase = totalPurchase.Add(purchase)

		summary.Holdings = append(summary.Holdings, models.HoldingPerformance{
			ID:             h.ID,
			Name:           h.Name,
			Type:           h.Type,
			CurrentValue:   h.CurrentValue,
			PurchasePrice:  h.PurchasePrice,
			Gain:           gain.InexactFloat64(),
			PerformancePct: percent(gain, purchase),
		})
	}

	totalGain := totalCurrent.Sub(totalPurchase)
	summary.TotalCurrentValue = totalCurrent.InexactFloat64()
	summary.TotalPurchasePrice = totalPurchase.InexactFloat64()
	summary.TotalGain = totalGain.InexactFloat64()
	summary.PerformancePct = percent(totalGain, totalPurchase)
	return summary
}

// percent returns part/whole*100 rounded to two places, or 0 when whole is 0.
func percent(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).Round(2).InexactFloat64()
}
