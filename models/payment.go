package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment represents a stream payment collected for an event, including
// the per-fighter allocations carved out of it.
type Payment struct {
	ID          uuid.UUID `db:"id"`
	EventID     uuid.UUID `db:"event_id"`
	OrganizerID uuid.UUID `db:"organizer_id"`
	AmountPaid  int64     `db:"amount_paid"`
	PlatformFee int64     `db:"platform_fee"`
	CreatedAt   time.Time `db:"created_at"`

	Allocations []*PaymentAllocation `db:"-"`
}

// PaymentAllocation is a portion of a payment earmarked for a fighter.
// Allocations are only written once the associated offer is accepted, so
// fighter earnings never include fee-bearing unaccepted revenue.
type PaymentAllocation struct {
	ID        uuid.UUID `db:"id"`
	PaymentID uuid.UUID `db:"payment_id"`
	FighterID uuid.UUID `db:"fighter_id"`
	Amount    int64     `db:"amount"`
}

// Tip is a direct tip to a fighter, outside any event payment
type Tip struct {
	ID        uuid.UUID `db:"id"`
	FighterID uuid.UUID `db:"fighter_id"`
	Amount    int64     `db:"amount"`
	CreatedAt time.Time `db:"created_at"`
}
