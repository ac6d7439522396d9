package service

import (
	"testing"

	"ringside/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func paymentWithAllocation(fighterID uuid.UUID, amount int64) *models.Payment {
	return &models.Payment{
		ID:          uuid.New(),
		EventID:     uuid.New(),
		OrganizerID: uuid.New(),
		Allocations: []*models.PaymentAllocation{
			{ID: uuid.New(), FighterID: fighterID, Amount: amount},
		},
	}
}

func requestWithStatus(status models.PayoutStatus, amount int64) *models.PayoutRequest {
	return &models.PayoutRequest{
		ID:              uuid.New(),
		AmountRequested: amount,
		Status:          status,
	}
}

func TestComputeFighterBalance(t *testing.T) {
	fighterID := uuid.New()

	t.Run("allocations plus tips minus reserved", func(t *testing.T) {
		payments := []*models.Payment{
			paymentWithAllocation(fighterID, 3000),
			paymentWithAllocation(fighterID, 2000),
		}
		tips := []*models.Tip{
			{ID: uuid.New(), FighterID: fighterID, Amount: 600},
			{ID: uuid.New(), FighterID: fighterID, Amount: 400},
		}
		requests := []*models.PayoutRequest{
			requestWithStatus(models.PayoutStatusProcessed, 2000),
		}

		balance := ComputeFighterBalance(fighterID, payments, tips, requests)

		assert.Equal(t, int64(5000), balance.AllocationEarnings)
		assert.Equal(t, int64(1000), balance.TipEarnings)
		assert.Equal(t, int64(6000), balance.Total)
		assert.Equal(t, int64(2000), balance.Reserved)
		assert.Equal(t, int64(4000), balance.Available)
	})

	t.Run("other fighters earnings excluded", func(t *testing.T) {
		otherID := uuid.New()
		payments := []*models.Payment{
			paymentWithAllocation(fighterID, 1000),
			paymentWithAllocation(otherID, 9000),
		}
		tips := []*models.Tip{
			{ID: uuid.New(), FighterID: otherID, Amount: 500},
		}

		balance := ComputeFighterBalance(fighterID, payments, tips, nil)

		assert.Equal(t, int64(1000), balance.Total)
		assert.Equal(t, int64(1000), balance.Available)
	})

	t.Run("only reserving statuses reduce availability", func(t *testing.T) {
		payments := []*models.Payment{paymentWithAllocation(fighterID, 10000)}
		requests := []*models.PayoutRequest{
			requestWithStatus(models.PayoutStatusPending, 1000),
			requestWithStatus(models.PayoutStatusApproved, 2000),
			requestWithStatus(models.PayoutStatusProcessed, 3000),
			requestWithStatus(models.PayoutStatusRejected, 4000),
			requestWithStatus(models.PayoutStatusFailed, 5000),
		}

		balance := ComputeFighterBalance(fighterID, payments, nil, requests)

		assert.Equal(t, int64(6000), balance.Reserved)
		assert.Equal(t, int64(4000), balance.Available)
	})

	t.Run("empty inputs", func(t *testing.T) {
		balance := ComputeFighterBalance(fighterID, nil, nil, nil)

		assert.Equal(t, int64(0), balance.Total)
		assert.Equal(t, int64(0), balance.Available)
	})
}

func TestComputeOrganizerBalance(t *testing.T) {
	t.Run("share after fee and fighter allocations", func(t *testing.T) {
		fighterID := uuid.New()
		payments := []*models.Payment{
			{
				ID:          uuid.New(),
				AmountPaid:  10000,
				PlatformFee: 1000,
				Allocations: []*models.PaymentAllocation{
					{ID: uuid.New(), FighterID: fighterID, Amount: 4000},
				},
			},
		}
		requests := []*models.PayoutRequest{
			requestWithStatus(models.PayoutStatusPending, 2000),
		}

		balance := ComputeOrganizerBalance(payments, requests)

		assert.Equal(t, int64(10000), balance.EventRevenue)
		assert.Equal(t, int64(1000), balance.PlatformFee)
		assert.Equal(t, int64(4000), balance.FighterShare)
		assert.Equal(t, int64(5000), balance.OrganizerShare)
		assert.Equal(t, int64(2000), balance.Reserved)
		assert.Equal(t, int64(3000), balance.Available)
	})

	t.Run("share never goes negative", func(t *testing.T) {
		payments := []*models.Payment{
			{
				ID:          uuid.New(),
				AmountPaid:  1000,
				PlatformFee: 500,
				Allocations: []*models.PaymentAllocation{
					{ID: uuid.New(), FighterID: uuid.New(), Amount: 800},
				},
			},
		}

		balance := ComputeOrganizerBalance(payments, nil)

		assert.Equal(t, int64(0), balance.OrganizerShare)
		assert.Equal(t, int64(0), balance.Available)
	})
}
