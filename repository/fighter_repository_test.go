package repository

import (
	"context"
	"testing"

	"ringside/repository/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFighterRepository_CreateAndGet(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewFighterRepository(testDB.DB)
	ctx := context.Background()

	t.Run("missing fighter returns nil", func(t *testing.T) {
		fighter, err := repo.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, fighter)
	})

	t.Run("create fills defaults", func(t *testing.T) {
		fighter := testutil.CreateTestFighter("Ana Silva")
		fighter.Record = ""
		fighter.RecordBase = ""

		err := repo.Create(ctx, fighter)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, fighter.ID)
		assert.False(t, fighter.CreatedAt.IsZero())

		found, err := repo.GetByID(ctx, fighter.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Ana Silva", found.DisplayName)
		assert.Equal(t, "0-0-0", found.Record)
		assert.Equal(t, "0-0-0", found.RecordBase)
		assert.Equal(t, 0, found.CurrentWinStreak)
		assert.Nil(t, found.StripeAccountID)
	})
}

func TestFighterRepository_UpdateRecord(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewFighterRepository(testDB.DB)
	ctx := context.Background()

	fighter := testutil.CreateTestFighter("Marco Reyes")
	require.NoError(t, repo.Create(ctx, fighter))

	t.Run("writes derived fields", func(t *testing.T) {
		err := repo.UpdateRecord(ctx, fighter.ID, "11-3-1", "10-2-1", "WLWWW", 3)
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, fighter.ID)
		require.NoError(t, err)
		assert.Equal(t, "11-3-1", found.Record)
		assert.Equal(t, "10-2-1", found.RecordBase)
		assert.Equal(t, "WLWWW", found.Last5Form)
		assert.Equal(t, 3, found.CurrentWinStreak)
	})

	t.Run("missing fighter errors", func(t *testing.T) {
		err := repo.UpdateRecord(ctx, uuid.New(), "1-0-0", "0-0-0", "W", 1)
		assert.Error(t, err)
	})
}

func TestFighterRepository_UpdateStripeAccount(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewFighterRepository(testDB.DB)
	ctx := context.Background()

	fighter := testutil.CreateTestFighter("Dana Cole")
	require.NoError(t, repo.Create(ctx, fighter))

	require.NoError(t, repo.UpdateStripeAccount(ctx, fighter.ID, "acct_12345"))

	found, err := repo.GetByID(ctx, fighter.ID)
	require.NoError(t, err)
	require.NotNil(t, found.StripeAccountID)
	assert.Equal(t, "acct_12345", *found.StripeAccountID)
	assert.True(t, found.HasPayoutAccount())
}
