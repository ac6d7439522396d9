package service

import (
	"context"
	"fmt"
	"time"

	"ringside/events"
	"ringside/models"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type recordService struct {
	uowFactory UnitOfWorkFactory
}

// NewRecordService creates a new record service
func NewRecordService(uowFactory UnitOfWorkFactory) RecordService {
	return &recordService{
		uowFactory: uowFactory,
	}
}

// RefreshRecord recomputes and persists a fighter's derived record fields
func (s *recordService) RefreshRecord(ctx context.Context, fighterID uuid.UUID) (*models.Fighter, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	fighter, err := s.refreshFighter(ctx, uow, fighterID)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return fighter, nil
}

// refreshFighter recomputes one fighter's record within an open unit of work
func (s *recordService) refreshFighter(ctx context.Context, uow UnitOfWork, fighterID uuid.UUID) (*models.Fighter, error) {
	fighter, err := uow.FighterRepository().GetByID(ctx, fighterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fighter: %w", err)
	}
	if fighter == nil {
		return nil, fmt.Errorf("fighter %s: %w", fighterID, models.ErrNotFound)
	}

	bouts, err := uow.BoutRepository().GetResolvedByFighter(ctx, fighterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get resolved bouts: %w", err)
	}

	history, err := uow.FightHistoryRepository().GetByFighter(ctx, fighterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fight history: %w", err)
	}

	summary := ComputeRecord(fighterID, fighter.RecordBase, bouts, history)

	record := summary.Total.String()
	if err := uow.FighterRepository().UpdateRecord(ctx, fighterID, record, fighter.RecordBase, summary.Last5, summary.Streak); err != nil {
		return nil, fmt.Errorf("failed to update fighter record: %w", err)
	}

	fighter.Record = record
	fighter.Last5Form = summary.Last5
	fighter.CurrentWinStreak = summary.Streak

	uow.EventBus().Publish(events.RecordUpdatedEvent{
		FighterID: fighterID,
		Record:    record,
		Last5Form: summary.Last5,
		Streak:    summary.Streak,
	})

	return fighter, nil
}

// SetRecord reverse-calculates the baseline from a manually supplied
// total record, then recomputes so the persisted total matches it.
func (s *recordService) SetRecord(ctx context.Context, fighterID uuid.UUID, newTotal models.RecordTriple) (*models.Fighter, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	fighter, err := uow.FighterRepository().GetByID(ctx, fighterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fighter: %w", err)
	}
	if fighter == nil {
		return nil, fmt.Errorf("fighter %s: %w", fighterID, models.ErrNotFound)
	}

	bouts, err := uow.BoutRepository().GetResolvedByFighter(ctx, fighterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get resolved bouts: %w", err)
	}

	history, err := uow.FightHistoryRepository().GetByFighter(ctx, fighterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fight history: %w", err)
	}

	baseline := ReverseBaseline(fighterID, newTotal, bouts, history).String()
	summary := ComputeRecord(fighterID, baseline, bouts, history)

	record := summary.Total.String()
	if err := uow.FighterRepository().UpdateRecord(ctx, fighterID, record, baseline, summary.Last5, summary.Streak); err != nil {
		return nil, fmt.Errorf("failed to update fighter record: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"fighterID": fighterID,
		"record":    record,
		"baseline":  baseline,
	}).Info("Fighter record baseline recalculated")

	fighter.Record = record
	fighter.RecordBase = baseline
	fighter.Last5Form = summary.Last5
	fighter.CurrentWinStreak = summary.Streak

	return fighter, nil
}

// ResolveBout records a bout result and refreshes both corner fighters
func (s *recordService) ResolveBout(ctx context.Context, boutID uuid.UUID, winnerSide models.WinnerSide) (*models.Bout, error) {
	if !winnerSide.IsValid() {
		return nil, fmt.Errorf("invalid winner side %q", winnerSide)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	bout, err := uow.BoutRepository().GetByID(ctx, boutID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bout: %w", err)
	}
	if bout == nil {
		return nil, fmt.Errorf("bout %s: %w", boutID, models.ErrNotFound)
	}

	now := time.Now()
	bout.WinnerSide = &winnerSide
	bout.ResolvedAt = &now

	if err := uow.BoutRepository().Update(ctx, bout); err != nil {
		return nil, fmt.Errorf("failed to update bout: %w", err)
	}

	// Both corners' derived records are stale once a result lands
	if _, err := s.refreshFighter(ctx, uow, bout.RedFighterID); err != nil {
		return nil, fmt.Errorf("failed to refresh red corner: %w", err)
	}
	if _, err := s.refreshFighter(ctx, uow, bout.BlueFighterID); err != nil {
		return nil, fmt.Errorf("failed to refresh blue corner: %w", err)
	}

	uow.EventBus().Publish(events.BoutResolvedEvent{
		BoutID:     bout.ID,
		EventID:    bout.EventID,
		WinnerSide: winnerSide,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return bout, nil
}

// AddFightHistory adds a manual entry and refreshes the fighter's record
func (s *recordService) AddFightHistory(ctx context.Context, entry *models.FightHistory) (*models.FightHistory, error) {
	if !entry.Result.IsValid() {
		return nil, fmt.Errorf("invalid fight result %q", entry.Result)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.FightHistoryRepository().Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create fight history entry: %w", err)
	}

	if _, err := s.refreshFighter(ctx, uow, entry.FighterID); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return entry, nil
}

// UpdateFightHistory edits a manual entry and refreshes the record
func (s *recordService) UpdateFightHistory(ctx context.Context, entry *models.FightHistory) error {
	if !entry.Result.IsValid() {
		return fmt.Errorf("invalid fight result %q", entry.Result)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.FightHistoryRepository().Update(ctx, entry); err != nil {
		return fmt.Errorf("failed to update fight history entry: %w", err)
	}

	if _, err := s.refreshFighter(ctx, uow, entry.FighterID); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteFightHistory removes a manual entry and refreshes the record
func (s *recordService) DeleteFightHistory(ctx context.Context, entryID uuid.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	entry, err := uow.FightHistoryRepository().GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("failed to get fight history entry: %w", err)
	}
	if entry == nil {
		return fmt.Errorf("fight history entry %s: %w", entryID, models.ErrNotFound)
	}

	if err := uow.FightHistoryRepository().Delete(ctx, entryID); err != nil {
		return fmt.Errorf("failed to delete fight history entry: %w", err)
	}

	if _, err := s.refreshFighter(ctx, uow, entry.FighterID); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
