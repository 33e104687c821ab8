package service

import (
	"math"
	"testing"

	"github.com/hrshiniA/portfolio-app/internal/apperr"
	"github.com/stretchr/testify/assert"
)

func ptr(f float64) *float64 { return &f }

func TestHoldingInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      HoldingInput
		wantErr string
	}{
		{"valid", HoldingInput{Name: "AAPL", Type: "stock", CurrentValue: 150, PurchasePrice: 100}, ""},
		{"zero current value", HoldingInput{Name: "AAPL", Type: "stock", CurrentValue: 0, PurchasePrice: 100}, ""},
		{"explicit quantity", HoldingInput{Name: "AAPL", Type: "stock", CurrentValue: 1, PurchasePrice: 1, Quantity: ptr(3)}, ""},
		{"missing name", HoldingInput{Type: "stock", CurrentValue: 1, PurchasePrice: 1}, "name is required"},
		{"blank type", HoldingInput{Name: "AAPL", Type: "  ", CurrentValue: 1, PurchasePrice: 1}, "type is required"},
		{"negative current value", HoldingInput{Name: "AAPL", Type: "stock", CurrentValue: -1, PurchasePrice: 1}, "current_value must be zero or greater"},
		{"NaN current value", HoldingInput{Name: "AAPL", Type: "stock", CurrentValue: math.NaN(), PurchasePrice: 1}, "current_value must be zero or greater"},
		{"zero purchase price", HoldingInput{Name: "AAPL", Type: "stock", CurrentValue: 1, PurchasePrice: 0}, "purchase_price must be greater than zero"},
		{"infinite purchase price", HoldingInput{Name: "AAPL", Type: "stock", CurrentValue: 1, PurchasePrice: math.Inf(1)}, "purchase_price must be greater than zero"},
		{"zero quantity", HoldingInput{Name: "AAPL", Type: "stock", CurrentValue: 1, PurchasePrice: 1, Quantity: ptr(0)}, "quantity must be greater than zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestHoldingInputQuantityDefault(t *testing.T) {
	in := HoldingInput{}
	assert.Equal(t, 1.0, in.quantity())

	in.Quantity = ptr(4)
	assert.Equal(t, 4.0, in.quantity())
}

func TestTransactionInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      TransactionInput
		wantErr string
	}{
		{"buy", TransactionInput{AssetName: "AAPL", Type: "buy", Quantity: 1, Price: 100}, ""},
		{"sell uppercase", TransactionInput{AssetName: "AAPL", Type: "SELL", Quantity: 1, Price: 100}, ""},
		{"free price", TransactionInput{AssetName: "AAPL", Type: "buy", Quantity: 1, Price: 0}, ""},
		{"missing asset", TransactionInput{Type: "buy", Quantity: 1, Price: 1}, "asset_name is required"},
		{"unknown type", TransactionInput{AssetName: "AAPL", Type: "hold", Quantity: 1, Price: 1}, "type must be buy or sell"},
		{"zero quantity", TransactionInput{AssetName: "AAPL", Type: "buy", Quantity: 0, Price: 1}, "quantity must be greater than zero"},
		{"negative price", TransactionInput{AssetName: "AAPL", Type: "buy", Quantity: 1, Price: -5}, "price must be zero or greater"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestSummarizeWithoutHoldings(t *testing.T) {
	summary := summarize(nil)
	assert.NotNil(t, summary.Holdings)
	assert.Zero(t, summary.PerformancePct)
	assert.Zero(t, summary.TotalGain)
}
