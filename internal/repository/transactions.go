package repository

import (
	"context"
	"fmt"

	"github.com/hrshiniA/portfolio-app/internal/models"
)

// ListTransactions returns every transaction owned by userID in insertion order.
func (r *Repository) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	query := r.rebind(`
		SELECT id, user_id, asset_name, type, quantity, price, date
		FROM transactions
		WHERE user_id = ?
		ORDER BY id`)
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txs := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.AssetName, &t.Type, &t.Quantity, &t.Price, &t.Date); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

// CreateTransaction appends a transaction to the log
func (r *Repository) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	return r.insertTransaction(ctx, r.db, t)
}

func (r *Repository) insertTransaction(ctx context.Context, q rowQuerier, t *models.Transaction) error {
	query := r.rebind(`
		INSERT INTO transactions (user_id, asset_name, type, quantity, price, date)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`)
	err := q.QueryRowContext(ctx, query, t.UserID, t.AssetName, t.Type, t.Quantity, t.Price, t.Date).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}
