package repository

import (
	"context"
	"fmt"
	"time"

	"ringside/database"
)

// RateLimitRepository implements a fixed-window request counter backed by
// the database, so counts survive restarts and are shared across
// instances. The increment-and-check is a single atomic statement.
type RateLimitRepository struct {
	q queryable
}

// NewRateLimitRepository creates a new rate limit repository
func NewRateLimitRepository(db *database.DB) *RateLimitRepository {
	return &RateLimitRepository{q: db.Pool}
}

// Increment atomically increments and returns the counter for the key
// within the window starting at windowStart
func (r *RateLimitRepository) Increment(ctx context.Context, key string, windowStart time.Time) (int, error) {
	query := `
		INSERT INTO rate_limits (key, window_start, count)
		VALUES ($1, $2, 1)
		ON CONFLICT (key, window_start)
		DO UPDATE SET count = rate_limits.count + 1
		RETURNING count
	`

	var count int
	if err := r.q.QueryRow(ctx, query, key, windowStart).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to increment rate limit for %q: %w", key, err)
	}

	return count, nil
}

// Prune removes windows older than the cutoff
func (r *RateLimitRepository) Prune(ctx context.Context, cutoff time.Time) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM rate_limits WHERE window_start < $1`, cutoff); err != nil {
		return fmt.Errorf("failed to prune rate limit windows: %w", err)
	}
	return nil
}
