// Package notify turns domain events into persisted in-app notifications.
package notify

import (
	"context"
	"fmt"

	"ringside/events"
	"ringside/models"
	"ringside/service"

	log "github.com/sirupsen/logrus"
)

// Notifier writes a notification row for the payee whenever a payout
// request changes state.
type Notifier struct {
	uowFactory service.UnitOfWorkFactory
}

// NewNotifier creates a notifier
func NewNotifier(uowFactory service.UnitOfWorkFactory) *Notifier {
	return &Notifier{uowFactory: uowFactory}
}

// Register subscribes the notifier to the event bus
func (n *Notifier) Register(bus *events.Bus) {
	bus.Subscribe(events.EventTypePayoutStatusChange, n.handlePayoutStatusChange)
}

func (n *Notifier) handlePayoutStatusChange(ctx context.Context, event events.Event) {
	change, ok := event.(events.PayoutStatusChangeEvent)
	if !ok {
		return
	}

	kind, body := describeChange(change)
	if kind == "" {
		return
	}

	requestID := change.RequestID
	notification := &models.Notification{
		RecipientID: change.PayeeID,
		Kind:        kind,
		Body:        body,
		RelatedID:   &requestID,
	}

	uow := n.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.WithError(err).Error("Failed to begin notification transaction")
		return
	}
	defer uow.Rollback()

	if err := uow.NotificationRepository().Create(ctx, notification); err != nil {
		log.WithError(err).WithField("requestID", change.RequestID).
			Error("Failed to persist payout notification")
		return
	}

	if err := uow.Commit(); err != nil {
		log.WithError(err).Error("Failed to commit notification transaction")
	}
}

func describeChange(change events.PayoutStatusChangeEvent) (models.NotificationKind, string) {
	amount := models.FormatCents(change.Amount)

	switch change.NewStatus {
	case models.PayoutStatusApproved:
		return models.NotificationKindPayoutApproved,
			fmt.Sprintf("Your payout request for $%s was approved.", amount)
	case models.PayoutStatusRejected:
		return models.NotificationKindPayoutRejected,
			fmt.Sprintf("Your payout request for $%s was rejected.", amount)
	case models.PayoutStatusProcessed:
		return models.NotificationKindPayoutProcessed,
			fmt.Sprintf("Your payout of $%s has been sent.", amount)
	case models.PayoutStatusFailed:
		return models.NotificationKindPayoutFailed,
			fmt.Sprintf("Your payout of $%s could not be sent. Our team will follow up.", amount)
	}

	return "", ""
}
