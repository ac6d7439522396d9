// Package payments wraps the Stripe API behind the service.PaymentClient
// interface so payout processing can be tested without the network.
package payments

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeClient talks to Stripe connected accounts and transfers
type StripeClient struct {
	api *client.API
}

// NewStripeClient creates a Stripe-backed payment client
func NewStripeClient(apiKey string) *StripeClient {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &StripeClient{api: api}
}

// AccountPayoutsEnabled reports whether the connected account has
// completed onboarding and can receive transfers
func (c *StripeClient) AccountPayoutsEnabled(ctx context.Context, accountID string) (bool, error) {
	params := &stripe.AccountParams{}
	params.Context = ctx

	account, err := c.api.Accounts.GetByID(accountID, params)
	if err != nil {
		return false, fmt.Errorf("failed to fetch stripe account %s: %w", accountID, err)
	}

	return account.DetailsSubmitted && account.PayoutsEnabled, nil
}

// CreateTransfer moves the exact cent amount to the destination account
// and returns Stripe's transfer identifier
func (c *StripeClient) CreateTransfer(ctx context.Context, accountID string, amountCents int64, requestID uuid.UUID) (string, error) {
	params := &stripe.TransferParams{
		Amount:      stripe.Int64(amountCents),
		Currency:    stripe.String(string(stripe.CurrencyUSD)),
		Destination: stripe.String(accountID),
	}
	params.Context = ctx
	params.AddMetadata("payout_request_id", requestID.String())

	transfer, err := c.api.Transfers.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe transfer to %s failed: %w", accountID, err)
	}

	return transfer.ID, nil
}
