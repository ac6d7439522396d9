package repository

import (
	"context"
	"fmt"

	"ringside/database"
	"ringside/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BoutRepository implements the BoutRepository interface
type BoutRepository struct {
	q queryable
}

// NewBoutRepository creates a new bout repository
func NewBoutRepository(db *database.DB) *BoutRepository {
	return &BoutRepository{q: db.Pool}
}

// newBoutRepositoryWithTx creates a new bout repository with a transaction
func newBoutRepositoryWithTx(tx queryable) *BoutRepository {
	return &BoutRepository{q: tx}
}

// Create creates a new bout
func (r *BoutRepository) Create(ctx context.Context, bout *models.Bout) error {
	query := `
		INSERT INTO bouts (event_id, red_fighter_id, blue_fighter_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query, bout.EventID, bout.RedFighterID, bout.BlueFighterID).
		Scan(&bout.ID, &bout.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create bout: %w", err)
	}

	return nil
}

// GetByID retrieves a bout by its ID
func (r *BoutRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Bout, error) {
	query := `
		SELECT id, event_id, red_fighter_id, blue_fighter_id, winner_side, created_at, resolved_at
		FROM bouts
		WHERE id = $1
	`

	var bout models.Bout
	err := r.q.QueryRow(ctx, query, id).Scan(
		&bout.ID,
		&bout.EventID,
		&bout.RedFighterID,
		&bout.BlueFighterID,
		&bout.WinnerSide,
		&bout.CreatedAt,
		&bout.ResolvedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bout %s: %w", id, err)
	}

	return &bout, nil
}

// Update updates a bout's winner side and resolution timestamp
func (r *BoutRepository) Update(ctx context.Context, bout *models.Bout) error {
	query := `
		UPDATE bouts
		SET winner_side = $1, resolved_at = $2
		WHERE id = $3
	`

	result, err := r.q.Exec(ctx, query, bout.WinnerSide, bout.ResolvedAt, bout.ID)
	if err != nil {
		return fmt.Errorf("failed to update bout %s: %w", bout.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("bout %s not found", bout.ID)
	}

	return nil
}

// GetResolvedByFighter returns resolved bouts where the fighter occupied
// either corner, ordered by creation timestamp
func (r *BoutRepository) GetResolvedByFighter(ctx context.Context, fighterID uuid.UUID) ([]*models.Bout, error) {
	query := `
		SELECT id, event_id, red_fighter_id, blue_fighter_id, winner_side, created_at, resolved_at
		FROM bouts
		WHERE (red_fighter_id = $1 OR blue_fighter_id = $1)
		  AND winner_side IS NOT NULL
		ORDER BY created_at
	`

	rows, err := r.q.Query(ctx, query, fighterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get resolved bouts for fighter %s: %w", fighterID, err)
	}
	defer rows.Close()

	return scanBouts(rows)
}

// GetByEvent returns all bouts on an event card
func (r *BoutRepository) GetByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.Bout, error) {
	query := `
		SELECT id, event_id, red_fighter_id, blue_fighter_id, winner_side, created_at, resolved_at
		FROM bouts
		WHERE event_id = $1
		ORDER BY created_at
	`

	rows, err := r.q.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bouts for event %s: %w", eventID, err)
	}
	defer rows.Close()

	return scanBouts(rows)
}

func scanBouts(rows pgx.Rows) ([]*models.Bout, error) {
	var bouts []*models.Bout
	for rows.Next() {
		var bout models.Bout
		err := rows.Scan(
			&bout.ID,
			&bout.EventID,
			&bout.RedFighterID,
			&bout.BlueFighterID,
			&bout.WinnerSide,
			&bout.CreatedAt,
			&bout.ResolvedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bout: %w", err)
		}
		bouts = append(bouts, &bout)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bouts: %w", err)
	}

	return bouts, nil
}
