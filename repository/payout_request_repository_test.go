package repository

import (
	"context"
	"testing"
	"time"

	"ringside/models"
	"ringside/repository/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayoutRequestRepository_CreateAndGet(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewPayoutRequestRepository(testDB.DB)
	ctx := context.Background()

	t.Run("missing request returns nil", func(t *testing.T) {
		request, err := repo.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, request)
	})

	t.Run("create defaults to pending", func(t *testing.T) {
		request := &models.PayoutRequest{
			PayeeID:         uuid.New(),
			PayeeType:       models.PayeeTypeFighter,
			AmountRequested: 4000,
		}

		err := repo.Create(ctx, request)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, request.ID)
		assert.False(t, request.RequestedAt.IsZero())

		found, err := repo.GetByID(ctx, request.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, models.PayoutStatusPending, found.Status)
		assert.Equal(t, int64(4000), found.AmountRequested)
		assert.Nil(t, found.TransferID)
		assert.Nil(t, found.ProcessedAt)
	})

	t.Run("non positive amount violates constraint", func(t *testing.T) {
		request := testutil.CreateTestPayoutRequest(uuid.New(), models.PayeeTypeFighter, 0)
		err := repo.Create(ctx, request)
		assert.Error(t, err)
	})
}

func TestPayoutRequestRepository_Update(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewPayoutRequestRepository(testDB.DB)
	ctx := context.Background()

	request := testutil.CreateTestPayoutRequest(uuid.New(), models.PayeeTypeFighter, 4000)
	require.NoError(t, repo.Create(ctx, request))

	t.Run("processed with transfer id", func(t *testing.T) {
		transferID := "tr_abc123"
		now := time.Now()
		request.Status = models.PayoutStatusProcessed
		request.TransferID = &transferID
		request.ProcessedAt = &now

		require.NoError(t, repo.Update(ctx, request))

		found, err := repo.GetByID(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PayoutStatusProcessed, found.Status)
		require.NotNil(t, found.TransferID)
		assert.Equal(t, transferID, *found.TransferID)
		assert.NotNil(t, found.ProcessedAt)
	})

	t.Run("failed with reason", func(t *testing.T) {
		failing := testutil.CreateTestPayoutRequest(uuid.New(), models.PayeeTypeOrganizer, 2000)
		require.NoError(t, repo.Create(ctx, failing))

		reason := "account cannot receive transfers"
		now := time.Now()
		failing.Status = models.PayoutStatusFailed
		failing.FailureReason = &reason
		failing.ProcessedAt = &now

		require.NoError(t, repo.Update(ctx, failing))

		found, err := repo.GetByID(ctx, failing.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PayoutStatusFailed, found.Status)
		require.NotNil(t, found.FailureReason)
		assert.Equal(t, reason, *found.FailureReason)
	})

	t.Run("missing request errors", func(t *testing.T) {
		missing := testutil.CreateTestPayoutRequest(uuid.New(), models.PayeeTypeFighter, 1000)
		missing.ID = uuid.New()
		err := repo.Update(ctx, missing)
		assert.Error(t, err)
	})
}

func TestPayoutRequestRepository_GetByPayee(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewPayoutRequestRepository(testDB.DB)
	ctx := context.Background()

	payeeID := uuid.New()
	otherID := uuid.New()

	for _, amount := range []int64{1000, 2000, 3000} {
		require.NoError(t, repo.Create(ctx, testutil.CreateTestPayoutRequest(payeeID, models.PayeeTypeFighter, amount)))
	}
	require.NoError(t, repo.Create(ctx, testutil.CreateTestPayoutRequest(otherID, models.PayeeTypeFighter, 9000)))

	requests, err := repo.GetByPayee(ctx, payeeID)
	require.NoError(t, err)
	require.Len(t, requests, 3)

	for _, r := range requests {
		assert.Equal(t, payeeID, r.PayeeID)
	}

	// Newest first
	for i := 1; i < len(requests); i++ {
		assert.False(t, requests[i].RequestedAt.After(requests[i-1].RequestedAt))
	}
}
