package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidAmount is returned when a payout amount is not positive
	ErrInvalidAmount = errors.New("payout amount must be a positive number of cents")

	// ErrPayeeNotOnboarded is returned when the payee has no linked,
	// fully-onboarded payment-processor account
	ErrPayeeNotOnboarded = errors.New("payee has no fully-onboarded payout account")

	// ErrAlreadyProcessed is returned when a request is not in an
	// actionable status
	ErrAlreadyProcessed = errors.New("payout request has already been processed")

	// ErrUnauthorized is returned when the actor may not process the request
	ErrUnauthorized = errors.New("actor is not authorized to process this payout request")
)

// FormatCents renders an integer cent amount as a decimal dollar string
// with two places, e.g. 4000 -> "40.00".
func FormatCents(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

// InsufficientBalanceError is returned when a payout request exceeds the
// payee's available balance at request time.
type InsufficientBalanceError struct {
	RequestedCents int64
	AvailableCents int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: requested $%s but only $%s is available",
		FormatCents(e.RequestedCents), FormatCents(e.AvailableCents))
}

// TransferFailedError is returned when the payment processor rejects a
// transfer. The request is left in the failed status with the reason
// recorded; no retry is attempted.
type TransferFailedError struct {
	RequestID string
	Reason    string
}

func (e *TransferFailedError) Error() string {
	return fmt.Sprintf("processor transfer failed for payout request %s: %s", e.RequestID, e.Reason)
}
