package testutil

import (
	"time"

	"ringside/models"

	"github.com/google/uuid"
)

// CreateTestFighter creates a fighter model with default values
func CreateTestFighter(displayName string) *models.Fighter {
	now := time.Now()
	return &models.Fighter{
		DisplayName: displayName,
		Record:      "0-0-0",
		RecordBase:  "0-0-0",
		Last5Form:   "",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CreateTestFighterWithBaseline creates a fighter with a specific stored baseline
func CreateTestFighterWithBaseline(displayName, baseline string) *models.Fighter {
	fighter := CreateTestFighter(displayName)
	fighter.RecordBase = baseline
	fighter.Record = baseline
	return fighter
}

// CreateTestOrganizer creates an organizer model with default values
func CreateTestOrganizer(displayName string) *models.Organizer {
	now := time.Now()
	return &models.Organizer{
		DisplayName: displayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CreateTestEvent creates an event owned by the given organizer
func CreateTestEvent(organizerID uuid.UUID, name string) *models.Event {
	return &models.Event{
		OrganizerID: organizerID,
		Name:        name,
		StartsAt:    time.Now().Add(24 * time.Hour),
	}
}

// CreateTestBout creates an unresolved bout between two fighters
func CreateTestBout(eventID, redFighterID, blueFighterID uuid.UUID) *models.Bout {
	return &models.Bout{
		EventID:       eventID,
		RedFighterID:  redFighterID,
		BlueFighterID: blueFighterID,
	}
}

// CreateTestFightHistory creates an off-platform fight entry
func CreateTestFightHistory(fighterID uuid.UUID, result models.FightResult, eventDate time.Time) *models.FightHistory {
	return &models.FightHistory{
		FighterID:    fighterID,
		OpponentName: "Test Opponent",
		Result:       result,
		EventDate:    eventDate,
	}
}

// CreateTestPayment creates an event payment with a single allocation for
// the given fighter
func CreateTestPayment(eventID, organizerID, fighterID uuid.UUID, amountPaid, platformFee, allocation int64) *models.Payment {
	return &models.Payment{
		EventID:     eventID,
		OrganizerID: organizerID,
		AmountPaid:  amountPaid,
		PlatformFee: platformFee,
		Allocations: []*models.PaymentAllocation{
			{FighterID: fighterID, Amount: allocation},
		},
	}
}

// CreateTestTip creates a direct tip to a fighter
func CreateTestTip(fighterID uuid.UUID, amount int64) *models.Tip {
	return &models.Tip{
		FighterID: fighterID,
		Amount:    amount,
	}
}

// CreateTestPayoutRequest creates a pending payout request
func CreateTestPayoutRequest(payeeID uuid.UUID, payeeType models.PayeeType, amount int64) *models.PayoutRequest {
	return &models.PayoutRequest{
		PayeeID:         payeeID,
		PayeeType:       payeeType,
		AmountRequested: amount,
		Status:          models.PayoutStatusPending,
	}
}
