package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind categorizes a notification for the client
type NotificationKind string

const (
	NotificationKindPayoutApproved  NotificationKind = "payout_approved"
	NotificationKindPayoutRejected  NotificationKind = "payout_rejected"
	NotificationKindPayoutProcessed NotificationKind = "payout_processed"
	NotificationKindPayoutFailed    NotificationKind = "payout_failed"
	NotificationKindRecordUpdated   NotificationKind = "record_updated"
)

// Notification is a persisted in-app notification for a profile
type Notification struct {
	ID          uuid.UUID        `db:"id"`
	RecipientID uuid.UUID        `db:"recipient_id"`
	Kind        NotificationKind `db:"kind"`
	Body        string           `db:"body"`
	RelatedID   *uuid.UUID       `db:"related_id"`
	CreatedAt   time.Time        `db:"created_at"`
	ReadAt      *time.Time       `db:"read_at"`
}
