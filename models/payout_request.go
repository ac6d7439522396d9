package models

import (
	"time"

	"github.com/google/uuid"
)

// PayeeType identifies who a payout request pays
type PayeeType string

const (
	PayeeTypeFighter   PayeeType = "fighter"
	PayeeTypeOrganizer PayeeType = "organizer"
)

// PayoutStatus represents the state of a payout request
type PayoutStatus string

const (
	PayoutStatusPending   PayoutStatus = "pending"
	PayoutStatusApproved  PayoutStatus = "approved"
	PayoutStatusRejected  PayoutStatus = "rejected"
	PayoutStatusProcessed PayoutStatus = "processed"
	PayoutStatusFailed    PayoutStatus = "failed"
)

// Reserves reports whether a request in this status counts against the
// payee's available balance. Processed requests stay reserved because the
// money has left; rejected and failed requests release their amount.
func (s PayoutStatus) Reserves() bool {
	return s == PayoutStatusPending || s == PayoutStatusApproved || s == PayoutStatusProcessed
}

// IsTerminal reports whether no further transitions are allowed
func (s PayoutStatus) IsTerminal() bool {
	return s == PayoutStatusProcessed || s == PayoutStatusRejected || s == PayoutStatusFailed
}

// PayoutRequest represents a payee's request to withdraw earned balance
type PayoutRequest struct {
	ID              uuid.UUID    `db:"id"`
	PayeeID         uuid.UUID    `db:"payee_id"`
	PayeeType       PayeeType    `db:"payee_type"`
	EventID         *uuid.UUID   `db:"event_id"`
	AmountRequested int64        `db:"amount_requested"`
	Status          PayoutStatus `db:"status"`
	TransferID      *string      `db:"transfer_id"`
	FailureReason   *string      `db:"failure_reason"`
	RequestedAt     time.Time    `db:"requested_at"`
	ProcessedAt     *time.Time   `db:"processed_at"`
}

// CanBeRejected checks the request is still in an actionable status
func (r *PayoutRequest) CanBeRejected() bool {
	return r.Status == PayoutStatusPending || r.Status == PayoutStatusApproved
}

// CanBeApproved checks the request is still in an actionable status
func (r *PayoutRequest) CanBeApproved() bool {
	return r.Status == PayoutStatusPending || r.Status == PayoutStatusApproved
}

// FighterBalance is the derived earnings state for a fighter payee
type FighterBalance struct {
	AllocationEarnings int64
	TipEarnings        int64
	Reserved           int64
	Total              int64
	Available          int64
}

// OrganizerBalance is the derived earnings state for an organizer payee
type OrganizerBalance struct {
	EventRevenue   int64
	PlatformFee    int64
	FighterShare   int64
	OrganizerShare int64
	Reserved       int64
	Available      int64
}
