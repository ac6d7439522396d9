package repository

import (
	"context"
	"fmt"

	"ringside/database"
	"ringside/models"

	"github.com/google/uuid"
)

// TipRepository implements the TipRepository interface
type TipRepository struct {
	q queryable
}

// NewTipRepository creates a new tip repository
func NewTipRepository(db *database.DB) *TipRepository {
	return &TipRepository{q: db.Pool}
}

// newTipRepositoryWithTx creates a new tip repository with a transaction
func newTipRepositoryWithTx(tx queryable) *TipRepository {
	return &TipRepository{q: tx}
}

// Create creates a new tip
func (r *TipRepository) Create(ctx context.Context, tip *models.Tip) error {
	query := `
		INSERT INTO tips (fighter_id, amount)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query, tip.FighterID, tip.Amount).Scan(&tip.ID, &tip.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create tip: %w", err)
	}

	return nil
}

// GetByFighter returns all tips for a fighter
func (r *TipRepository) GetByFighter(ctx context.Context, fighterID uuid.UUID) ([]*models.Tip, error) {
	query := `
		SELECT id, fighter_id, amount, created_at
		FROM tips
		WHERE fighter_id = $1
		ORDER BY created_at
	`

	rows, err := r.q.Query(ctx, query, fighterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tips for fighter %s: %w", fighterID, err)
	}
	defer rows.Close()

	var tips []*models.Tip
	for rows.Next() {
		var tip models.Tip
		if err := rows.Scan(&tip.ID, &tip.FighterID, &tip.Amount, &tip.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tip: %w", err)
		}
		tips = append(tips, &tip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tips: %w", err)
	}

	return tips, nil
}
