package service

import (
	"context"
	"testing"
	"time"

	"ringside/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupRecordServiceMocks() (*MockUnitOfWorkFactory, *MockUnitOfWork, *MockFighterRepository, *MockBoutRepository, *MockFightHistoryRepository) {
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockFighterRepo := new(MockFighterRepository)
	mockBoutRepo := new(MockBoutRepository)
	mockHistoryRepo := new(MockFightHistoryRepository)

	mockUoW.SetRepositories(mockFighterRepo, nil, nil, mockBoutRepo, mockHistoryRepo, nil, nil, nil, nil)
	mockFactory.On("Create").Return(mockUoW)

	return mockFactory, mockUoW, mockFighterRepo, mockBoutRepo, mockHistoryRepo
}

func TestRecordService_RefreshRecord(t *testing.T) {
	ctx := context.Background()
	fighterID := uuid.New()

	mockFactory, mockUoW, mockFighterRepo, mockBoutRepo, mockHistoryRepo := setupRecordServiceMocks()
	service := NewRecordService(mockFactory)

	fighter := &models.Fighter{
		ID:         fighterID,
		RecordBase: "10-2-1",
	}

	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	opponentID := uuid.New()
	side := models.WinnerSideBlue
	bouts := []*models.Bout{
		{
			ID:            uuid.New(),
			RedFighterID:  fighterID,
			BlueFighterID: opponentID,
			WinnerSide:    &side,
			CreatedAt:     base,
			ResolvedAt:    &base,
		},
	}
	history := []*models.FightHistory{
		{
			ID:        uuid.New(),
			FighterID: fighterID,
			Result:    models.FightResultWin,
			EventDate: base.AddDate(0, 0, 5),
		},
	}

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockFighterRepo.On("GetByID", ctx, fighterID).Return(fighter, nil)
	mockBoutRepo.On("GetResolvedByFighter", ctx, fighterID).Return(bouts, nil)
	mockHistoryRepo.On("GetByFighter", ctx, fighterID).Return(history, nil)
	mockFighterRepo.On("UpdateRecord", ctx, fighterID, "11-3-1", "10-2-1", "LW", 1).Return(nil)

	updated, err := service.RefreshRecord(ctx, fighterID)

	assert.NoError(t, err)
	assert.Equal(t, "11-3-1", updated.Record)
	assert.Equal(t, "LW", updated.Last5Form)
	assert.Equal(t, 1, updated.CurrentWinStreak)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockFighterRepo.AssertExpectations(t)
	mockBoutRepo.AssertExpectations(t)
	mockHistoryRepo.AssertExpectations(t)
}

func TestRecordService_RefreshRecord_FighterMissing(t *testing.T) {
	ctx := context.Background()
	fighterID := uuid.New()

	mockFactory, mockUoW, mockFighterRepo, _, _ := setupRecordServiceMocks()
	service := NewRecordService(mockFactory)

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockFighterRepo.On("GetByID", ctx, fighterID).Return(nil, nil)

	fighter, err := service.RefreshRecord(ctx, fighterID)

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, fighter)
	mockUoW.AssertNotCalled(t, "Commit")
}

func TestRecordService_SetRecord(t *testing.T) {
	ctx := context.Background()
	fighterID := uuid.New()

	mockFactory, mockUoW, mockFighterRepo, mockBoutRepo, mockHistoryRepo := setupRecordServiceMocks()
	service := NewRecordService(mockFactory)

	fighter := &models.Fighter{
		ID:         fighterID,
		RecordBase: "0-0-0",
	}

	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	history := []*models.FightHistory{
		{
			ID:        uuid.New(),
			FighterID: fighterID,
			Result:    models.FightResultWin,
			EventDate: base,
		},
	}

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockFighterRepo.On("GetByID", ctx, fighterID).Return(fighter, nil)
	mockBoutRepo.On("GetResolvedByFighter", ctx, fighterID).Return([]*models.Bout{}, nil)
	mockHistoryRepo.On("GetByFighter", ctx, fighterID).Return(history, nil)

	// Claimed total 15-4-2 minus the platform win gives baseline 14-4-2
	mockFighterRepo.On("UpdateRecord", ctx, fighterID, "15-4-2", "14-4-2", "W", 1).Return(nil)

	updated, err := service.SetRecord(ctx, fighterID, models.RecordTriple{Wins: 15, Losses: 4, Draws: 2})

	assert.NoError(t, err)
	assert.Equal(t, "15-4-2", updated.Record)
	assert.Equal(t, "14-4-2", updated.RecordBase)

	mockFighterRepo.AssertExpectations(t)
}

func TestRecordService_ResolveBout(t *testing.T) {
	ctx := context.Background()
	redID := uuid.New()
	blueID := uuid.New()
	boutID := uuid.New()

	mockFactory, mockUoW, mockFighterRepo, mockBoutRepo, mockHistoryRepo := setupRecordServiceMocks()
	mockBus := new(MockEventPublisher)
	mockUoW.SetEventBus(mockBus)
	service := NewRecordService(mockFactory)

	bout := &models.Bout{
		ID:            boutID,
		EventID:       uuid.New(),
		RedFighterID:  redID,
		BlueFighterID: blueID,
		CreatedAt:     time.Now(),
	}

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockBus.On("Publish", mock.Anything).Return()

	mockBoutRepo.On("GetByID", ctx, boutID).Return(bout, nil)
	mockBoutRepo.On("Update", ctx, mock.MatchedBy(func(b *models.Bout) bool {
		return b.ID == boutID && b.WinnerSide != nil && *b.WinnerSide == models.WinnerSideRed && b.ResolvedAt != nil
	})).Return(nil)

	// Both corners get refreshed inside the same transaction
	for _, fighterID := range []uuid.UUID{redID, blueID} {
		mockFighterRepo.On("GetByID", ctx, fighterID).Return(&models.Fighter{ID: fighterID, RecordBase: "0-0-0"}, nil)
		mockBoutRepo.On("GetResolvedByFighter", ctx, fighterID).Return([]*models.Bout{bout}, nil)
		mockHistoryRepo.On("GetByFighter", ctx, fighterID).Return([]*models.FightHistory{}, nil)
	}
	mockFighterRepo.On("UpdateRecord", ctx, redID, "1-0-0", "0-0-0", "W", 1).Return(nil)
	mockFighterRepo.On("UpdateRecord", ctx, blueID, "0-1-0", "0-0-0", "L", 0).Return(nil)

	resolved, err := service.ResolveBout(ctx, boutID, models.WinnerSideRed)

	assert.NoError(t, err)
	assert.True(t, resolved.IsResolved())

	mockBoutRepo.AssertExpectations(t)
	mockFighterRepo.AssertExpectations(t)
}

func TestRecordService_ResolveBout_InvalidSide(t *testing.T) {
	ctx := context.Background()

	mockFactory, _, _, _, _ := setupRecordServiceMocks()
	service := NewRecordService(mockFactory)

	bout, err := service.ResolveBout(ctx, uuid.New(), models.WinnerSide("purple"))

	assert.Error(t, err)
	assert.Nil(t, bout)
}

func TestRecordService_AddFightHistory_RefreshesRecord(t *testing.T) {
	ctx := context.Background()
	fighterID := uuid.New()

	mockFactory, mockUoW, mockFighterRepo, mockBoutRepo, mockHistoryRepo := setupRecordServiceMocks()
	service := NewRecordService(mockFactory)

	entry := &models.FightHistory{
		FighterID: fighterID,
		Result:    models.FightResultWin,
		EventDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockHistoryRepo.On("Create", ctx, entry).Return(nil)
	mockFighterRepo.On("GetByID", ctx, fighterID).Return(&models.Fighter{ID: fighterID, RecordBase: "3-1-0"}, nil)
	mockBoutRepo.On("GetResolvedByFighter", ctx, fighterID).Return([]*models.Bout{}, nil)
	mockHistoryRepo.On("GetByFighter", ctx, fighterID).Return([]*models.FightHistory{entry}, nil)
	mockFighterRepo.On("UpdateRecord", ctx, fighterID, "4-1-0", "3-1-0", "W", 1).Return(nil)

	created, err := service.AddFightHistory(ctx, entry)

	assert.NoError(t, err)
	assert.Equal(t, entry, created)

	mockHistoryRepo.AssertExpectations(t)
	mockFighterRepo.AssertExpectations(t)
}

func TestRecordService_AddFightHistory_InvalidResult(t *testing.T) {
	ctx := context.Background()

	mockFactory, _, _, _, _ := setupRecordServiceMocks()
	service := NewRecordService(mockFactory)

	entry := &models.FightHistory{
		FighterID: uuid.New(),
		Result:    models.FightResult("forfeit"),
		EventDate: time.Now(),
	}

	created, err := service.AddFightHistory(ctx, entry)

	assert.Error(t, err)
	assert.Nil(t, created)
}
