package repository

import (
	"context"
	"fmt"

	"ringside/database"
	"ringside/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FighterRepository implements the FighterRepository interface
type FighterRepository struct {
	q queryable
}

// NewFighterRepository creates a new fighter repository
func NewFighterRepository(db *database.DB) *FighterRepository {
	return &FighterRepository{q: db.Pool}
}

// newFighterRepositoryWithTx creates a new fighter repository with a transaction
func newFighterRepositoryWithTx(tx queryable) *FighterRepository {
	return &FighterRepository{q: tx}
}

// GetByID retrieves a fighter by ID
func (r *FighterRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Fighter, error) {
	query := `
		SELECT id, display_name, record, record_base, last_5_form, current_win_streak,
		       stripe_account_id, created_at, updated_at
		FROM fighters
		WHERE id = $1
	`

	var fighter models.Fighter
	err := r.q.QueryRow(ctx, query, id).Scan(
		&fighter.ID,
		&fighter.DisplayName,
		&fighter.Record,
		&fighter.RecordBase,
		&fighter.Last5Form,
		&fighter.CurrentWinStreak,
		&fighter.StripeAccountID,
		&fighter.CreatedAt,
		&fighter.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fighter %s: %w", id, err)
	}

	return &fighter, nil
}

// Create creates a new fighter profile
func (r *FighterRepository) Create(ctx context.Context, fighter *models.Fighter) error {
	query := `
		INSERT INTO fighters (display_name, record, record_base, last_5_form, current_win_streak, stripe_account_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	if fighter.Record == "" {
		fighter.Record = "0-0-0"
	}
	if fighter.RecordBase == "" {
		fighter.RecordBase = "0-0-0"
	}

	err := r.q.QueryRow(ctx, query,
		fighter.DisplayName,
		fighter.Record,
		fighter.RecordBase,
		fighter.Last5Form,
		fighter.CurrentWinStreak,
		fighter.StripeAccountID,
	).Scan(&fighter.ID, &fighter.CreatedAt, &fighter.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create fighter: %w", err)
	}

	return nil
}

// UpdateRecord writes the derived record fields back onto the profile
func (r *FighterRepository) UpdateRecord(ctx context.Context, id uuid.UUID, record, recordBase, last5Form string, streak int) error {
	query := `
		UPDATE fighters
		SET record = $1, record_base = $2, last_5_form = $3, current_win_streak = $4, updated_at = NOW()
		WHERE id = $5
	`

	result, err := r.q.Exec(ctx, query, record, recordBase, last5Form, streak, id)
	if err != nil {
		return fmt.Errorf("failed to update record for fighter %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("fighter %s not found", id)
	}

	return nil
}

// UpdateStripeAccount links or replaces the fighter's payout account
func (r *FighterRepository) UpdateStripeAccount(ctx context.Context, id uuid.UUID, accountID string) error {
	query := `
		UPDATE fighters
		SET stripe_account_id = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.q.Exec(ctx, query, accountID, id)
	if err != nil {
		return fmt.Errorf("failed to update stripe account for fighter %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("fighter %s not found", id)
	}

	return nil
}
