package service

import (
	"math"
	"strings"

	"github.com/hrshiniA/portfolio-app/internal/apperr"
	"github.com/hrshiniA/portfolio-app/internal/auth"
	"github.com/hrshiniA/portfolio-app/internal/models"
)

// Credentials is the body of /register and /login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *Credentials) normalize() {
	c.Username = strings.TrimSpace(c.Username)
}

func (c *Credentials) validate() error {
	c.normalize()
	if c.Username == "" {
		return apperr.Validation("username is required")
	}
	if c.Password == "" {
		return apperr.Validation("password is required")
	}
	if len(c.Password) > auth.MaxPasswordLength {
		return apperr.Validation("password must be at most 72 bytes")
	}
	return nil
}

// HoldingInput is the body of POST and PUT /portfolio. Quantity only
// applies on creation, where it defaults to 1.
type HoldingInput struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	CurrentValue  float64  `json:"current_value"`
	PurchasePrice float64  `json:"purchase_price"`
	Quantity      *float64 `json:"quantity,omitempty"`
}

func (in *HoldingInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Type = strings.TrimSpace(in.Type)
	switch {
	case in.Name == "":
		return apperr.Validation("name is required")
	case in.Type == "":
		return apperr.Validation("type is required")
	case !finite(in.CurrentValue) || in.CurrentValue < 0:
		return apperr.Validation("current_value must be zero or greater")
	case !finite(in.PurchasePrice) || in.PurchasePrice <= 0:
		return apperr.Validation("purchase_price must be greater than zero")
	case in.Quantity != nil && (!finite(*in.Quantity) || *in.Quantity <= 0):
		return apperr.Validation("quantity must be greater than zero")
	}
	return nil
}

func (in *HoldingInput) quantity() float64 {
	if in.Quantity == nil {
		return 1
	}
	return *in.Quantity
}

func (in *HoldingInput) holding(userID int64) *models.Holding {
	return &models.Holding{
		UserID:        userID,
		Name:          in.Name,
		Type:          in.Type,
		CurrentValue:  in.CurrentValue,
		PurchasePrice: in.PurchasePrice,
	}
}

// TransactionInput is the body of POST /transactions.
type TransactionInput struct {
	AssetName string  `json:"asset_name"`
	Type      string  `json:"type"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
}

func (in *TransactionInput) validate() error {
	in.AssetName = strings.TrimSpace(in.AssetName)
	in.Type = strings.ToLower(strings.TrimSpace(in.Type))
	switch {
	case in.AssetName == "":
		return apperr.Validation("asset_name is required")
	case in.Type != models.TransactionBuy && in.Type != models.TransactionSell:
		return apperr.Validation("type must be buy or sell")
	case !finite(in.Quantity) || in.Quantity <= 0:
		return apperr.Validation("quantity must be greater than zero")
	case !finite(in.Price) || in.Price < 0:
		return apperr.Validation("price must be zero or greater")
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
