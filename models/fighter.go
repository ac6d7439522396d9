package models

import (
	"time"

	"github.com/google/uuid"
)

// Fighter represents a fighter profile with its derived record fields
type Fighter struct {
	ID               uuid.UUID `db:"id"`
	DisplayName      string    `db:"display_name"`
	Record           string    `db:"record"`
	RecordBase       string    `db:"record_base"`
	Last5Form        string    `db:"last_5_form"`
	CurrentWinStreak int       `db:"current_win_streak"`
	StripeAccountID  *string   `db:"stripe_account_id"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// HasPayoutAccount checks whether a payment-processor account is linked
func (f *Fighter) HasPayoutAccount() bool {
	return f.StripeAccountID != nil && *f.StripeAccountID != ""
}

// Organizer represents an event organizer (gym or promotion) profile
type Organizer struct {
	ID              uuid.UUID `db:"id"`
	DisplayName     string    `db:"display_name"`
	StripeAccountID *string   `db:"stripe_account_id"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// HasPayoutAccount checks whether a payment-processor account is linked
func (o *Organizer) HasPayoutAccount() bool {
	return o.StripeAccountID != nil && *o.StripeAccountID != ""
}

// Event represents a fight event owned by an organizer
type Event struct {
	ID          uuid.UUID `db:"id"`
	OrganizerID uuid.UUID `db:"organizer_id"`
	Name        string    `db:"name"`
	StartsAt    time.Time `db:"starts_at"`
	CreatedAt   time.Time `db:"created_at"`
}
