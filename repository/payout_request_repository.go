package repository

import (
	"context"
	"fmt"

	"ringside/database"
	"ringside/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PayoutRequestRepository implements the PayoutRequestRepository interface
type PayoutRequestRepository struct {
	q queryable
}

// NewPayoutRequestRepository creates a new payout request repository
func NewPayoutRequestRepository(db *database.DB) *PayoutRequestRepository {
	return &PayoutRequestRepository{q: db.Pool}
}

// newPayoutRequestRepositoryWithTx creates a new payout request repository with a transaction
func newPayoutRequestRepositoryWithTx(tx queryable) *PayoutRequestRepository {
	return &PayoutRequestRepository{q: tx}
}

// Create creates a new payout request
func (r *PayoutRequestRepository) Create(ctx context.Context, request *models.PayoutRequest) error {
	query := `
		INSERT INTO payout_requests (payee_id, payee_type, event_id, amount_requested, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, requested_at
	`

	if request.Status == "" {
		request.Status = models.PayoutStatusPending
	}

	err := r.q.QueryRow(ctx, query,
		request.PayeeID,
		request.PayeeType,
		request.EventID,
		request.AmountRequested,
		request.Status,
	).Scan(&request.ID, &request.RequestedAt)

	if err != nil {
		return fmt.Errorf("failed to create payout request: %w", err)
	}

	return nil
}

// GetByID retrieves a payout request by ID
func (r *PayoutRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PayoutRequest, error) {
	query := `
		SELECT id, payee_id, payee_type, event_id, amount_requested, status,
		       transfer_id, failure_reason, requested_at, processed_at
		FROM payout_requests
		WHERE id = $1
	`

	var request models.PayoutRequest
	err := r.q.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.PayeeID,
		&request.PayeeType,
		&request.EventID,
		&request.AmountRequested,
		&request.Status,
		&request.TransferID,
		&request.FailureReason,
		&request.RequestedAt,
		&request.ProcessedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payout request %s: %w", id, err)
	}

	return &request, nil
}

// Update updates a payout request's status and processing fields
func (r *PayoutRequestRepository) Update(ctx context.Context, request *models.PayoutRequest) error {
	query := `
		UPDATE payout_requests
		SET status = $1, transfer_id = $2, failure_reason = $3, processed_at = $4
		WHERE id = $5
	`

	result, err := r.q.Exec(ctx, query,
		request.Status,
		request.TransferID,
		request.FailureReason,
		request.ProcessedAt,
		request.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payout request %s: %w", request.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payout request %s not found", request.ID)
	}

	return nil
}

// GetByPayee returns all requests for a payee, newest first
func (r *PayoutRequestRepository) GetByPayee(ctx context.Context, payeeID uuid.UUID) ([]*models.PayoutRequest, error) {
	query := `
		SELECT id, payee_id, payee_type, event_id, amount_requested, status,
		       transfer_id, failure_reason, requested_at, processed_at
		FROM payout_requests
		WHERE payee_id = $1
		ORDER BY requested_at DESC
	`

	rows, err := r.q.Query(ctx, query, payeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payout requests for payee %s: %w", payeeID, err)
	}
	defer rows.Close()

	var requests []*models.PayoutRequest
	for rows.Next() {
		var request models.PayoutRequest
		err := rows.Scan(
			&request.ID,
			&request.PayeeID,
			&request.PayeeType,
			&request.EventID,
			&request.AmountRequested,
			&request.Status,
			&request.TransferID,
			&request.FailureReason,
			&request.RequestedAt,
			&request.ProcessedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payout request: %w", err)
		}
		requests = append(requests, &request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payout requests: %w", err)
	}

	return requests, nil
}
