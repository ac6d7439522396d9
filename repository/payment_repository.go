package repository

import (
	"context"
	"fmt"

	"ringside/database"
	"ringside/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PaymentRepository implements the PaymentRepository interface
type PaymentRepository struct {
	q queryable
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *database.DB) *PaymentRepository {
	return &PaymentRepository{q: db.Pool}
}

// newPaymentRepositoryWithTx creates a new payment repository with a transaction
func newPaymentRepositoryWithTx(tx queryable) *PaymentRepository {
	return &PaymentRepository{q: tx}
}

// Create creates a payment together with its allocations
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (event_id, organizer_id, amount_paid, platform_fee)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		payment.EventID,
		payment.OrganizerID,
		payment.AmountPaid,
		payment.PlatformFee,
	).Scan(&payment.ID, &payment.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	for _, allocation := range payment.Allocations {
		allocation.PaymentID = payment.ID

		err := r.q.QueryRow(ctx,
			`INSERT INTO payment_allocations (payment_id, fighter_id, amount) VALUES ($1, $2, $3) RETURNING id`,
			allocation.PaymentID, allocation.FighterID, allocation.Amount,
		).Scan(&allocation.ID)

		if err != nil {
			return fmt.Errorf("failed to create payment allocation: %w", err)
		}
	}

	return nil
}

// GetByFighter returns payments carrying at least one allocation for the
// fighter, allocations included
func (r *PaymentRepository) GetByFighter(ctx context.Context, fighterID uuid.UUID) ([]*models.Payment, error) {
	query := `
		SELECT DISTINCT p.id, p.event_id, p.organizer_id, p.amount_paid, p.platform_fee, p.created_at
		FROM payments p
		JOIN payment_allocations pa ON pa.payment_id = p.id
		WHERE pa.fighter_id = $1
		ORDER BY p.created_at
	`

	rows, err := r.q.Query(ctx, query, fighterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments for fighter %s: %w", fighterID, err)
	}

	payments, err := scanPayments(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachAllocations(ctx, payments); err != nil {
		return nil, err
	}

	return payments, nil
}

// GetByOrganizer returns payments for the organizer's events, allocations
// included
func (r *PaymentRepository) GetByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]*models.Payment, error) {
	query := `
		SELECT id, event_id, organizer_id, amount_paid, platform_fee, created_at
		FROM payments
		WHERE organizer_id = $1
		ORDER BY created_at
	`

	rows, err := r.q.Query(ctx, query, organizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments for organizer %s: %w", organizerID, err)
	}

	payments, err := scanPayments(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachAllocations(ctx, payments); err != nil {
		return nil, err
	}

	return payments, nil
}

func scanPayments(rows pgx.Rows) ([]*models.Payment, error) {
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		var payment models.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.EventID,
			&payment.OrganizerID,
			&payment.AmountPaid,
			&payment.PlatformFee,
			&payment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}

// attachAllocations loads the allocation lists for a batch of payments
func (r *PaymentRepository) attachAllocations(ctx context.Context, payments []*models.Payment) error {
	if len(payments) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*models.Payment, len(payments))
	ids := make([]uuid.UUID, 0, len(payments))
	for _, p := range payments {
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	query := `
		SELECT id, payment_id, fighter_id, amount
		FROM payment_allocations
		WHERE payment_id = ANY($1)
		ORDER BY id
	`

	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to get payment allocations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var allocation models.PaymentAllocation
		err := rows.Scan(
			&allocation.ID,
			&allocation.PaymentID,
			&allocation.FighterID,
			&allocation.Amount,
		)
		if err != nil {
			return fmt.Errorf("failed to scan payment allocation: %w", err)
		}
		if payment, ok := byID[allocation.PaymentID]; ok {
			payment.Allocations = append(payment.Allocations, &allocation)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate payment allocations: %w", err)
	}

	return nil
}
