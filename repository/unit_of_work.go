package repository

import (
	"context"
	"fmt"

	"ringside/database"
	"ringside/events"
	"ringside/service"

	"github.com/jackc/pgx/v5"
)

// unitOfWork implements the UnitOfWork interface
type unitOfWork struct {
	db               *database.DB
	tx               pgx.Tx
	ctx              context.Context
	transactionalBus *events.TransactionalBus

	fighterRepo       service.FighterRepository
	organizerRepo     service.OrganizerRepository
	eventRepo         service.EventRepository
	boutRepo          service.BoutRepository
	fightHistoryRepo  service.FightHistoryRepository
	paymentRepo       service.PaymentRepository
	tipRepo           service.TipRepository
	payoutRequestRepo service.PayoutRequestRepository
	notificationRepo  service.NotificationRepository
}

type unitOfWorkFactory struct {
	db       *database.DB
	eventBus *events.Bus
}

// NewUnitOfWorkFactory creates a new UnitOfWork factory
func NewUnitOfWorkFactory(db *database.DB, eventBus *events.Bus) service.UnitOfWorkFactory {
	return &unitOfWorkFactory{
		db:       db,
		eventBus: eventBus,
	}
}

func (f *unitOfWorkFactory) Create() service.UnitOfWork {
	return &unitOfWork{
		db:               f.db,
		transactionalBus: events.NewTransactionalBus(f.eventBus),
	}
}

// Begin starts a new transaction
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx

	// Create repositories with the transaction
	u.fighterRepo = newFighterRepositoryWithTx(tx)
	u.organizerRepo = newOrganizerRepositoryWithTx(tx)
	u.eventRepo = newEventRepositoryWithTx(tx)
	u.boutRepo = newBoutRepositoryWithTx(tx)
	u.fightHistoryRepo = newFightHistoryRepositoryWithTx(tx)
	u.paymentRepo = newPaymentRepositoryWithTx(tx)
	u.tipRepo = newTipRepositoryWithTx(tx)
	u.payoutRequestRepo = newPayoutRequestRepositoryWithTx(tx)
	u.notificationRepo = newNotificationRepositoryWithTx(tx)

	return nil
}

// Commit commits the transaction
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	if err := u.tx.Commit(u.ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.tx = nil

	// Flush pending events after successful commit
	if u.transactionalBus != nil {
		u.transactionalBus.Flush(u.ctx)
	}

	return nil
}

// Rollback rolls back the transaction
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil // Nothing to rollback
	}

	err := u.tx.Rollback(u.ctx)
	if err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.tx = nil

	// Discard pending events on rollback
	if u.transactionalBus != nil {
		u.transactionalBus.Discard()
	}

	return nil
}

// FighterRepository returns the fighter repository for this unit of work
func (u *unitOfWork) FighterRepository() service.FighterRepository {
	if u.fighterRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.fighterRepo
}

// OrganizerRepository returns the organizer repository for this unit of work
func (u *unitOfWork) OrganizerRepository() service.OrganizerRepository {
	if u.organizerRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.organizerRepo
}

// EventRepository returns the event repository for this unit of work
func (u *unitOfWork) EventRepository() service.EventRepository {
	if u.eventRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.eventRepo
}

// BoutRepository returns the bout repository for this unit of work
func (u *unitOfWork) BoutRepository() service.BoutRepository {
	if u.boutRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.boutRepo
}

// FightHistoryRepository returns the fight history repository for this unit of work
func (u *unitOfWork) FightHistoryRepository() service.FightHistoryRepository {
	if u.fightHistoryRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.fightHistoryRepo
}

// PaymentRepository returns the payment repository for this unit of work
func (u *unitOfWork) PaymentRepository() service.PaymentRepository {
	if u.paymentRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.paymentRepo
}

// TipRepository returns the tip repository for this unit of work
func (u *unitOfWork) TipRepository() service.TipRepository {
	if u.tipRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.tipRepo
}

// PayoutRequestRepository returns the payout request repository for this unit of work
func (u *unitOfWork) PayoutRequestRepository() service.PayoutRequestRepository {
	if u.payoutRequestRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.payoutRequestRepo
}

// NotificationRepository returns the notification repository for this unit of work
func (u *unitOfWork) NotificationRepository() service.NotificationRepository {
	if u.notificationRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.notificationRepo
}

// EventBus returns the transactional event bus for this unit of work
func (u *unitOfWork) EventBus() service.EventPublisher {
	if u.transactionalBus == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.transactionalBus
}
