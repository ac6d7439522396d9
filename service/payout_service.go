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

type payoutService struct {
	uowFactory UnitOfWorkFactory
	payments   PaymentClient
	adminIDs   []uuid.UUID
}

// NewPayoutService creates a new payout service. adminIDs are the
// platform administrators allowed to process any payout request.
func NewPayoutService(uowFactory UnitOfWorkFactory, payments PaymentClient, adminIDs []uuid.UUID) PayoutService {
	return &payoutService{
		uowFactory: uowFactory,
		payments:   payments,
		adminIDs:   adminIDs,
	}
}

func (s *payoutService) isAdmin(actorID uuid.UUID) bool {
	for _, id := range s.adminIDs {
		if id == actorID {
			return true
		}
	}
	return false
}

// GetFighterBalance computes a fighter's earned and available balance
func (s *payoutService) GetFighterBalance(ctx context.Context, fighterID uuid.UUID) (*models.FighterBalance, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	return s.fighterBalance(ctx, uow, fighterID)
}

func (s *payoutService) fighterBalance(ctx context.Context, uow UnitOfWork, fighterID uuid.UUID) (*models.FighterBalance, error) {
	payments, err := uow.PaymentRepository().GetByFighter(ctx, fighterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	tips, err := uow.TipRepository().GetByFighter(ctx, fighterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tips: %w", err)
	}

	requests, err := uow.PayoutRequestRepository().GetByPayee(ctx, fighterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payout requests: %w", err)
	}

	return ComputeFighterBalance(fighterID, payments, tips, requests), nil
}

// GetOrganizerBalance computes an organizer's share and available balance
func (s *payoutService) GetOrganizerBalance(ctx context.Context, organizerID uuid.UUID) (*models.OrganizerBalance, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	return s.organizerBalance(ctx, uow, organizerID)
}

func (s *payoutService) organizerBalance(ctx context.Context, uow UnitOfWork, organizerID uuid.UUID) (*models.OrganizerBalance, error) {
	payments, err := uow.PaymentRepository().GetByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	requests, err := uow.PayoutRequestRepository().GetByPayee(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payout requests: %w", err)
	}

	return ComputeOrganizerBalance(payments, requests), nil
}

// RequestPayout validates the amount against the payee's available
// balance and inserts a pending request. The balance check and the insert
// are a read-then-write sequence with no lock between them; two
// concurrent requests can both pass the check.
func (s *payoutService) RequestPayout(ctx context.Context, payeeID uuid.UUID, payeeType models.PayeeType, eventID *uuid.UUID, amountCents int64) (*models.PayoutRequest, error) {
	if amountCents <= 0 {
		return nil, models.ErrInvalidAmount
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	var available int64
	switch payeeType {
	case models.PayeeTypeFighter:
		balance, err := s.fighterBalance(ctx, uow, payeeID)
		if err != nil {
			return nil, err
		}
		available = balance.Available
	case models.PayeeTypeOrganizer:
		balance, err := s.organizerBalance(ctx, uow, payeeID)
		if err != nil {
			return nil, err
		}
		available = balance.Available
	default:
		return nil, fmt.Errorf("unknown payee type %q", payeeType)
	}

	if amountCents > available {
		return nil, &models.InsufficientBalanceError{
			RequestedCents: amountCents,
			AvailableCents: available,
		}
	}

	request := &models.PayoutRequest{
		PayeeID:         payeeID,
		PayeeType:       payeeType,
		EventID:         eventID,
		AmountRequested: amountCents,
		Status:          models.PayoutStatusPending,
	}

	if err := uow.PayoutRequestRepository().Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create payout request: %w", err)
	}

	uow.EventBus().Publish(events.PayoutRequestedEvent{
		RequestID: request.ID,
		PayeeID:   payeeID,
		PayeeType: payeeType,
		Amount:    amountCents,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"requestID": request.ID,
		"payeeID":   payeeID,
		"payeeType": payeeType,
		"amount":    amountCents,
	}).Info("Payout request created")

	return request, nil
}

// ProcessPayout approves or rejects a payout request on behalf of an actor
func (s *payoutService) ProcessPayout(ctx context.Context, requestID uuid.UUID, action PayoutAction, actorID uuid.UUID) (*models.PayoutRequest, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	request, err := uow.PayoutRequestRepository().GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payout request: %w", err)
	}
	if request == nil {
		return nil, fmt.Errorf("payout request %s: %w", requestID, models.ErrNotFound)
	}

	if err := s.authorizeActor(ctx, uow, request, actorID); err != nil {
		return nil, err
	}

	switch action {
	case PayoutActionReject:
		return s.rejectRequest(ctx, uow, request)
	case PayoutActionApprove:
		return s.approveRequest(ctx, uow, request)
	default:
		return nil, fmt.Errorf("unknown payout action %q", action)
	}
}

// authorizeActor enforces who may process a request: fighter payouts can
// be processed by the event's organizer or a platform admin; organizer
// payouts by a platform admin only.
func (s *payoutService) authorizeActor(ctx context.Context, uow UnitOfWork, request *models.PayoutRequest, actorID uuid.UUID) error {
	if s.isAdmin(actorID) {
		return nil
	}

	if request.PayeeType == models.PayeeTypeFighter && request.EventID != nil {
		event, err := uow.EventRepository().GetByID(ctx, *request.EventID)
		if err != nil {
			return fmt.Errorf("failed to get event: %w", err)
		}
		if event != nil && event.OrganizerID == actorID {
			return nil
		}
	}

	return models.ErrUnauthorized
}

func (s *payoutService) rejectRequest(ctx context.Context, uow UnitOfWork, request *models.PayoutRequest) (*models.PayoutRequest, error) {
	if !request.CanBeRejected() {
		return nil, models.ErrAlreadyProcessed
	}

	oldStatus := request.Status
	now := time.Now()
	request.Status = models.PayoutStatusRejected
	request.ProcessedAt = &now

	if err := uow.PayoutRequestRepository().Update(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update payout request: %w", err)
	}

	uow.EventBus().Publish(events.PayoutStatusChangeEvent{
		RequestID: request.ID,
		PayeeID:   request.PayeeID,
		PayeeType: request.PayeeType,
		OldStatus: oldStatus,
		NewStatus: request.Status,
		Amount:    request.AmountRequested,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return request, nil
}

func (s *payoutService) approveRequest(ctx context.Context, uow UnitOfWork, request *models.PayoutRequest) (*models.PayoutRequest, error) {
	if !request.CanBeApproved() {
		return nil, models.ErrAlreadyProcessed
	}

	accountID, err := s.payoutAccount(ctx, uow, request)
	if err != nil {
		return nil, err
	}

	enabled, err := s.payments.AccountPayoutsEnabled(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to check payout account: %w", err)
	}
	if !enabled {
		return nil, models.ErrPayeeNotOnboarded
	}

	oldStatus := request.Status
	now := time.Now()

	transferID, transferErr := s.payments.CreateTransfer(ctx, accountID, request.AmountRequested, request.ID)
	if transferErr != nil {
		// Terminal failure: record the reason, never retry. Manual
		// reconciliation picks these up.
		reason := transferErr.Error()
		request.Status = models.PayoutStatusFailed
		request.FailureReason = &reason
		request.ProcessedAt = &now

		if err := uow.PayoutRequestRepository().Update(ctx, request); err != nil {
			return nil, fmt.Errorf("failed to record transfer failure: %w", err)
		}

		uow.EventBus().Publish(events.PayoutStatusChangeEvent{
			RequestID: request.ID,
			PayeeID:   request.PayeeID,
			PayeeType: request.PayeeType,
			OldStatus: oldStatus,
			NewStatus: request.Status,
			Amount:    request.AmountRequested,
			Reason:    reason,
		})

		if err := uow.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}

		log.WithFields(log.Fields{
			"requestID": request.ID,
			"reason":    reason,
		}).Error("Payout transfer failed")

		return request, &models.TransferFailedError{RequestID: request.ID.String(), Reason: reason}
	}

	request.Status = models.PayoutStatusProcessed
	request.TransferID = &transferID
	request.ProcessedAt = &now

	if err := uow.PayoutRequestRepository().Update(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update payout request: %w", err)
	}

	uow.EventBus().Publish(events.PayoutStatusChangeEvent{
		RequestID: request.ID,
		PayeeID:   request.PayeeID,
		PayeeType: request.PayeeType,
		OldStatus: oldStatus,
		NewStatus: request.Status,
		Amount:    request.AmountRequested,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"requestID":  request.ID,
		"transferID": transferID,
		"amount":     request.AmountRequested,
	}).Info("Payout transfer processed")

	return request, nil
}

// payoutAccount resolves the payee's linked payment-processor account
func (s *payoutService) payoutAccount(ctx context.Context, uow UnitOfWork, request *models.PayoutRequest) (string, error) {
	switch request.PayeeType {
	case models.PayeeTypeFighter:
		fighter, err := uow.FighterRepository().GetByID(ctx, request.PayeeID)
		if err != nil {
			return "", fmt.Errorf("failed to get fighter: %w", err)
		}
		if fighter == nil || !fighter.HasPayoutAccount() {
			return "", models.ErrPayeeNotOnboarded
		}
		return *fighter.StripeAccountID, nil
	case models.PayeeTypeOrganizer:
		organizer, err := uow.OrganizerRepository().GetByID(ctx, request.PayeeID)
		if err != nil {
			return "", fmt.Errorf("failed to get organizer: %w", err)
		}
		if organizer == nil || !organizer.HasPayoutAccount() {
			return "", models.ErrPayeeNotOnboarded
		}
		return *organizer.StripeAccountID, nil
	default:
		return "", fmt.Errorf("unknown payee type %q", request.PayeeType)
	}
}
