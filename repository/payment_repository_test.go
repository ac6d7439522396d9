package repository

import (
	"context"
	"testing"

	"ringside/models"
	"ringside/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRepository(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	fighterRepo := NewFighterRepository(testDB.DB)
	organizerRepo := NewOrganizerRepository(testDB.DB)
	eventRepo := NewEventRepository(testDB.DB)
	repo := NewPaymentRepository(testDB.DB)

	fighter := testutil.CreateTestFighter("Iris Kato")
	require.NoError(t, fighterRepo.Create(ctx, fighter))
	otherFighter := testutil.CreateTestFighter("Lena Brooks")
	require.NoError(t, fighterRepo.Create(ctx, otherFighter))

	organizer := testutil.CreateTestOrganizer("Apex Promotions")
	require.NoError(t, organizerRepo.Create(ctx, organizer))

	event := testutil.CreateTestEvent(organizer.ID, "Apex 12")
	require.NoError(t, eventRepo.Create(ctx, event))

	t.Run("create persists allocations", func(t *testing.T) {
		payment := &models.Payment{
			EventID:     event.ID,
			OrganizerID: organizer.ID,
			AmountPaid:  10000,
			PlatformFee: 1000,
			Allocations: []*models.PaymentAllocation{
				{FighterID: fighter.ID, Amount: 3000},
				{FighterID: otherFighter.ID, Amount: 2000},
			},
		}

		require.NoError(t, repo.Create(ctx, payment))
		assert.NotZero(t, payment.ID)
		for _, a := range payment.Allocations {
			assert.NotZero(t, a.ID)
			assert.Equal(t, payment.ID, a.PaymentID)
		}
	})

	t.Run("get by fighter includes all allocations of matched payments", func(t *testing.T) {
		payments, err := repo.GetByFighter(ctx, fighter.ID)
		require.NoError(t, err)
		require.Len(t, payments, 1)

		// Both allocations come back; balance math filters by fighter
		assert.Len(t, payments[0].Allocations, 2)
		assert.Equal(t, int64(10000), payments[0].AmountPaid)
	})

	t.Run("get by fighter excludes unrelated payments", func(t *testing.T) {
		unallocated := &models.Payment{
			EventID:     event.ID,
			OrganizerID: organizer.ID,
			AmountPaid:  5000,
			PlatformFee: 500,
		}
		require.NoError(t, repo.Create(ctx, unallocated))

		payments, err := repo.GetByFighter(ctx, fighter.ID)
		require.NoError(t, err)
		assert.Len(t, payments, 1)
	})

	t.Run("get by organizer returns every payment", func(t *testing.T) {
		payments, err := repo.GetByOrganizer(ctx, organizer.ID)
		require.NoError(t, err)
		assert.Len(t, payments, 2)
	})
}
