package repository

import (
	"context"
	"fmt"

	"ringside/database"
	"ringside/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FightHistoryRepository implements the FightHistoryRepository interface
type FightHistoryRepository struct {
	q queryable
}

// NewFightHistoryRepository creates a new fight history repository
func NewFightHistoryRepository(db *database.DB) *FightHistoryRepository {
	return &FightHistoryRepository{q: db.Pool}
}

// newFightHistoryRepositoryWithTx creates a new fight history repository with a transaction
func newFightHistoryRepositoryWithTx(tx queryable) *FightHistoryRepository {
	return &FightHistoryRepository{q: tx}
}

// Create creates a new fight-history entry
func (r *FightHistoryRepository) Create(ctx context.Context, entry *models.FightHistory) error {
	query := `
		INSERT INTO fight_history (fighter_id, opponent_name, result, event_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query, entry.FighterID, entry.OpponentName, entry.Result, entry.EventDate).
		Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create fight history entry: %w", err)
	}

	return nil
}

// GetByID retrieves a fight-history entry by ID
func (r *FightHistoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FightHistory, error) {
	query := `
		SELECT id, fighter_id, opponent_name, result, event_date, created_at
		FROM fight_history
		WHERE id = $1
	`

	var entry models.FightHistory
	err := r.q.QueryRow(ctx, query, id).Scan(
		&entry.ID,
		&entry.FighterID,
		&entry.OpponentName,
		&entry.Result,
		&entry.EventDate,
		&entry.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fight history entry %s: %w", id, err)
	}

	return &entry, nil
}

// Update updates a fight-history entry
func (r *FightHistoryRepository) Update(ctx context.Context, entry *models.FightHistory) error {
	query := `
		UPDATE fight_history
		SET opponent_name = $1, result = $2, event_date = $3
		WHERE id = $4
	`

	result, err := r.q.Exec(ctx, query, entry.OpponentName, entry.Result, entry.EventDate, entry.ID)
	if err != nil {
		return fmt.Errorf("failed to update fight history entry %s: %w", entry.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("fight history entry %s not found", entry.ID)
	}

	return nil
}

// Delete removes a fight-history entry
func (r *FightHistoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.q.Exec(ctx, `DELETE FROM fight_history WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete fight history entry %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("fight history entry %s not found", id)
	}

	return nil
}

// GetByFighter returns all entries for a fighter ordered by event date
func (r *FightHistoryRepository) GetByFighter(ctx context.Context, fighterID uuid.UUID) ([]*models.FightHistory, error) {
	query := `
		SELECT id, fighter_id, opponent_name, result, event_date, created_at
		FROM fight_history
		WHERE fighter_id = $1
		ORDER BY event_date
	`

	rows, err := r.q.Query(ctx, query, fighterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fight history for fighter %s: %w", fighterID, err)
	}
	defer rows.Close()

	var entries []*models.FightHistory
	for rows.Next() {
		var entry models.FightHistory
		err := rows.Scan(
			&entry.ID,
			&entry.FighterID,
			&entry.OpponentName,
			&entry.Result,
			&entry.EventDate,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fight history entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fight history: %w", err)
	}

	return entries, nil
}
