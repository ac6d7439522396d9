package service

import (
	"context"
	"time"

	"ringside/events"
	"ringside/models"

	"github.com/google/uuid"
)

// FighterRepository defines the interface for fighter profile data access
type FighterRepository interface {
	// GetByID retrieves a fighter by ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.Fighter, error)

	// Create creates a new fighter profile
	Create(ctx context.Context, fighter *models.Fighter) error

	// UpdateRecord writes the derived record fields back onto the profile
	UpdateRecord(ctx context.Context, id uuid.UUID, record, recordBase, last5Form string, streak int) error

	// UpdateStripeAccount links or replaces the fighter's payout account
	UpdateStripeAccount(ctx context.Context, id uuid.UUID, accountID string) error
}

// OrganizerRepository defines the interface for organizer profile data access
type OrganizerRepository interface {
	// GetByID retrieves an organizer by ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.Organizer, error)

	// Create creates a new organizer profile
	Create(ctx context.Context, organizer *models.Organizer) error

	// UpdateStripeAccount links or replaces the organizer's payout account
	UpdateStripeAccount(ctx context.Context, id uuid.UUID, accountID string) error
}

// EventRepository defines the interface for event data access
type EventRepository interface {
	// GetByID retrieves an event by ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)

	// Create creates a new event
	Create(ctx context.Context, event *models.Event) error
}

// BoutRepository defines the interface for bout data access
type BoutRepository interface {
	// Create creates a new bout
	Create(ctx context.Context, bout *models.Bout) error

	// GetByID retrieves a bout by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.Bout, error)

	// Update updates a bout's winner side and resolution timestamp
	Update(ctx context.Context, bout *models.Bout) error

	// GetResolvedByFighter returns resolved bouts where the fighter
	// occupied either corner, ordered by creation timestamp
	GetResolvedByFighter(ctx context.Context, fighterID uuid.UUID) ([]*models.Bout, error)

	// GetByEvent returns all bouts on an event card
	GetByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.Bout, error)
}

// FightHistoryRepository defines the interface for manual fight-history rows
type FightHistoryRepository interface {
	// Create creates a new fight-history entry
	Create(ctx context.Context, entry *models.FightHistory) error

	// GetByID retrieves a fight-history entry by ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.FightHistory, error)

	// Update updates a fight-history entry
	Update(ctx context.Context, entry *models.FightHistory) error

	// Delete removes a fight-history entry
	Delete(ctx context.Context, id uuid.UUID) error

	// GetByFighter returns all entries for a fighter ordered by event date
	GetByFighter(ctx context.Context, fighterID uuid.UUID) ([]*models.FightHistory, error)
}

// PaymentRepository defines the interface for payment data access
type PaymentRepository interface {
	// Create creates a payment together with its allocations
	Create(ctx context.Context, payment *models.Payment) error

	// GetByFighter returns payments carrying at least one allocation for
	// the fighter, allocations included
	GetByFighter(ctx context.Context, fighterID uuid.UUID) ([]*models.Payment, error)

	// GetByOrganizer returns payments for the organizer's events,
	// allocations included
	GetByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]*models.Payment, error)
}

// TipRepository defines the interface for tip data access
type TipRepository interface {
	// Create creates a new tip
	Create(ctx context.Context, tip *models.Tip) error

	// GetByFighter returns all tips for a fighter
	GetByFighter(ctx context.Context, fighterID uuid.UUID) ([]*models.Tip, error)
}

// PayoutRequestRepository defines the interface for payout request data access
type PayoutRequestRepository interface {
	// Create creates a new payout request
	Create(ctx context.Context, request *models.PayoutRequest) error

	// GetByID retrieves a payout request by ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.PayoutRequest, error)

	// Update updates a payout request's status and processing fields
	Update(ctx context.Context, request *models.PayoutRequest) error

	// GetByPayee returns all requests for a payee, newest first
	GetByPayee(ctx context.Context, payeeID uuid.UUID) ([]*models.PayoutRequest, error)
}

// NotificationRepository defines the interface for notification persistence
type NotificationRepository interface {
	// Create creates a new notification
	Create(ctx context.Context, notification *models.Notification) error

	// GetByRecipient returns notifications for a profile, newest first
	GetByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]*models.Notification, error)

	// MarkRead stamps a notification as read
	MarkRead(ctx context.Context, id uuid.UUID) error
}

// RateLimiter defines the interface for the fixed-window request counter
type RateLimiter interface {
	// Increment atomically increments and returns the counter for the key
	// within the window starting at windowStart
	Increment(ctx context.Context, key string, windowStart time.Time) (int, error)
}

// PaymentClient defines the interface to the external payment processor
type PaymentClient interface {
	// AccountPayoutsEnabled reports whether the connected account has
	// completed onboarding and can receive transfers
	AccountPayoutsEnabled(ctx context.Context, accountID string) (bool, error)

	// CreateTransfer moves the exact cent amount to the destination
	// account and returns the processor's transfer identifier
	CreateTransfer(ctx context.Context, accountID string, amountCents int64, requestID uuid.UUID) (string, error)
}

// RecordService defines the interface for fighter record operations
type RecordService interface {
	// RefreshRecord recomputes and persists a fighter's derived record
	RefreshRecord(ctx context.Context, fighterID uuid.UUID) (*models.Fighter, error)

	// SetRecord reverse-calculates the stored baseline so future
	// recomputation reproduces the supplied total record
	SetRecord(ctx context.Context, fighterID uuid.UUID, newTotal models.RecordTriple) (*models.Fighter, error)

	// ResolveBout records a bout result and refreshes both corners
	ResolveBout(ctx context.Context, boutID uuid.UUID, winnerSide models.WinnerSide) (*models.Bout, error)

	// AddFightHistory adds a manual entry and refreshes the record
	AddFightHistory(ctx context.Context, entry *models.FightHistory) (*models.FightHistory, error)

	// UpdateFightHistory edits a manual entry and refreshes the record
	UpdateFightHistory(ctx context.Context, entry *models.FightHistory) error

	// DeleteFightHistory removes a manual entry and refreshes the record
	DeleteFightHistory(ctx context.Context, entryID uuid.UUID) error
}

// PayoutAction is the processing decision taken on a payout request
type PayoutAction string

const (
	PayoutActionApprove PayoutAction = "approve"
	PayoutActionReject  PayoutAction = "reject"
)

// PayoutService defines the interface for payout operations
type PayoutService interface {
	// GetFighterBalance computes a fighter's earned and available balance
	GetFighterBalance(ctx context.Context, fighterID uuid.UUID) (*models.FighterBalance, error)

	// GetOrganizerBalance computes an organizer's share and available balance
	GetOrganizerBalance(ctx context.Context, organizerID uuid.UUID) (*models.OrganizerBalance, error)

	// RequestPayout validates the amount against the available balance
	// and creates a pending payout request
	RequestPayout(ctx context.Context, payeeID uuid.UUID, payeeType models.PayeeType, eventID *uuid.UUID, amountCents int64) (*models.PayoutRequest, error)

	// ProcessPayout approves or rejects a pending request. Approval
	// invokes the payment processor and transitions to processed or failed.
	ProcessPayout(ctx context.Context, requestID uuid.UUID, action PayoutAction, actorID uuid.UUID) (*models.PayoutRequest, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Repository getters
	FighterRepository() FighterRepository
	OrganizerRepository() OrganizerRepository
	EventRepository() EventRepository
	BoutRepository() BoutRepository
	FightHistoryRepository() FightHistoryRepository
	PaymentRepository() PaymentRepository
	TipRepository() TipRepository
	PayoutRequestRepository() PayoutRequestRepository
	NotificationRepository() NotificationRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	// Create creates a new UnitOfWork instance
	Create() UnitOfWork
}
