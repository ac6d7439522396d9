package repository

import (
	"context"
	"fmt"

	"ringside/database"
	"ringside/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrganizerRepository implements the OrganizerRepository interface
type OrganizerRepository struct {
	q queryable
}

// NewOrganizerRepository creates a new organizer repository
func NewOrganizerRepository(db *database.DB) *OrganizerRepository {
	return &OrganizerRepository{q: db.Pool}
}

// newOrganizerRepositoryWithTx creates a new organizer repository with a transaction
func newOrganizerRepositoryWithTx(tx queryable) *OrganizerRepository {
	return &OrganizerRepository{q: tx}
}

// GetByID retrieves an organizer by ID
func (r *OrganizerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Organizer, error) {
	query := `
		SELECT id, display_name, stripe_account_id, created_at, updated_at
		FROM organizers
		WHERE id = $1
	`

	var organizer models.Organizer
	err := r.q.QueryRow(ctx, query, id).Scan(
		&organizer.ID,
		&organizer.DisplayName,
		&organizer.StripeAccountID,
		&organizer.CreatedAt,
		&organizer.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get organizer %s: %w", id, err)
	}

	return &organizer, nil
}

// Create creates a new organizer profile
func (r *OrganizerRepository) Create(ctx context.Context, organizer *models.Organizer) error {
	query := `
		INSERT INTO organizers (display_name, stripe_account_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := r.q.QueryRow(ctx, query, organizer.DisplayName, organizer.StripeAccountID).
		Scan(&organizer.ID, &organizer.CreatedAt, &organizer.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create organizer: %w", err)
	}

	return nil
}

// UpdateStripeAccount links or replaces the organizer's payout account
func (r *OrganizerRepository) UpdateStripeAccount(ctx context.Context, id uuid.UUID, accountID string) error {
	query := `
		UPDATE organizers
		SET stripe_account_id = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.q.Exec(ctx, query, accountID, id)
	if err != nil {
		return fmt.Errorf("failed to update stripe account for organizer %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("organizer %s not found", id)
	}

	return nil
}
