package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hrshiniA/portfolio-app/internal/models"
)

// rowQuerier is satisfied by both *sql.DB and *sql.Tx.
type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ListHoldings returns every holding owned by userID in insertion order.
func (r *Repository) ListHoldings(ctx context.Context, userID int64) ([]models.Holding, error) {
	query := r.rebind(`
		SELECT id, user_id, name, type, current_value, purchase_price
		FROM portfolios
		WHERE user_id = ?
		ORDER BY id`)
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	defer rows.Close()

	holdings := []models.Holding{}
	for rows.Next() {
		var h models.Holding
		if err := rows.Scan(&h.ID, &h.UserID, &h.Name, &h.Type, &h.CurrentValue, &h.PurchasePrice); err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}
		holdings = append(holdings, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	return holdings, nil
}

// FindHolding retrieves a holding by id. Holdings owned by another user are
// reported as ErrNotFound.
func (r *Repository) FindHolding(ctx context.Context, userID, id int64) (*models.Holding, error) {
	h := &models.Holding{}
	query := r.rebind(`
		SELECT id, user_id, name, type, current_value, purchase_price
		FROM portfolios
		WHERE id = ? AND user_id = ?`)
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&h.ID, &h.UserID, &h.Name, &h.Type, &h.CurrentValue, &h.PurchasePrice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find holding: %w", err)
	}
	return h, nil
}

// CreateHolding inserts a holding together with its opening transaction.
// Both rows are written in one database transaction.
func (r *Repository) CreateHolding(ctx context.Context, h *models.Holding, opening *models.Transaction) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if err = r.insertHolding(ctx, tx, h); err != nil {
		return err
	}
	if opening != nil {
		if err = r.insertTransaction(ctx, tx, opening); err != nil {
			return err
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit holding: %w", err)
	}
	return nil
}

// UpdateHolding overwrites the mutable fields of a holding. The statement is
// scoped to h.UserID; ErrNotFound means no row matched.
func (r *Repository) UpdateHolding(ctx context.Context, h *models.Holding) error {
	query := r.rebind(`
		UPDATE portfolios
		SET name = ?, type = ?, current_value = ?, purchase_price = ?
		WHERE id = ? AND user_id = ?`)
	res, err := r.db.ExecContext(ctx, query, h.Name, h.Type, h.CurrentValue, h.PurchasePrice, h.ID, h.UserID)
	if err != nil {
		return fmt.Errorf("failed to update holding: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update holding: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) insertHolding(ctx context.Context, q rowQuerier, h *models.Holding) error {
	query := r.rebind(`
		INSERT INTO portfolios (user_id, name, type, current_value, purchase_price)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`)
	err := q.QueryRowContext(ctx, query, h.UserID, h.Name, h.Type, h.CurrentValue, h.PurchasePrice).Scan(&h.ID)
	if err != nil {
		return fmt.Errorf("failed to create holding: %w", err)
	}
	return nil
}
