package service

import (
	"ringside/models"

	"github.com/google/uuid"
)

// reservedAmount sums amount_requested over requests whose status still
// counts against the payee's balance (pending, approved, processed).
func reservedAmount(requests []*models.PayoutRequest) int64 {
	var reserved int64
	for _, r := range requests {
		if r != nil && r.Status.Reserves() {
			reserved += r.AmountRequested
		}
	}
	return reserved
}

// ComputeFighterBalance derives a fighter's earnings and available
// balance from allocation payments, tips and existing payout requests.
// Platform fees never appear here: allocations are only written for
// accepted offers and are already net amounts.
func ComputeFighterBalance(fighterID uuid.UUID, payments []*models.Payment, tips []*models.Tip, requests []*models.PayoutRequest) *models.FighterBalance {
	var allocationEarnings int64
	for _, p := range payments {
		if p == nil {
			continue
		}
		for _, a := range p.Allocations {
			if a != nil && a.FighterID == fighterID {
				allocationEarnings += a.Amount
			}
		}
	}

	var tipEarnings int64
	for _, t := range tips {
		if t != nil && t.FighterID == fighterID {
			tipEarnings += t.Amount
		}
	}

	reserved := reservedAmount(requests)
	total := allocationEarnings + tipEarnings

	return &models.FighterBalance{
		AllocationEarnings: allocationEarnings,
		TipEarnings:        tipEarnings,
		Reserved:           reserved,
		Total:              total,
		Available:          total - reserved,
	}
}

// ComputeOrganizerBalance derives an organizer's share of stream revenue
// after the platform fee and all fighter allocations, and the balance
// still available after existing payout requests.
func ComputeOrganizerBalance(payments []*models.Payment, requests []*models.PayoutRequest) *models.OrganizerBalance {
	var eventRevenue, platformFee, fighterShare int64
	for _, p := range payments {
		if p == nil {
			continue
		}
		eventRevenue += p.AmountPaid
		platformFee += p.PlatformFee
		for _, a := range p.Allocations {
			if a != nil {
				fighterShare += a.Amount
			}
		}
	}

	organizerShare := max(int64(0), eventRevenue-platformFee-fighterShare)
	reserved := reservedAmount(requests)

	return &models.OrganizerBalance{
		EventRevenue:   eventRevenue,
		PlatformFee:    platformFee,
		FighterShare:   fighterShare,
		OrganizerShare: organizerShare,
		Reserved:       reserved,
		Available:      organizerShare - reserved,
	}
}
