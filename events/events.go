package events

import (
	"context"
	"sync"

	"ringside/models"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeRecordUpdated      EventType = "record_updated"
	EventTypeBoutResolved       EventType = "bout_resolved"
	EventTypePayoutRequested    EventType = "payout_requested"
	EventTypePayoutStatusChange EventType = "payout_status_change"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// RecordUpdatedEvent fires when a fighter's derived record fields change
type RecordUpdatedEvent struct {
	FighterID uuid.UUID
	Record    string
	Last5Form string
	Streak    int
}

func (e RecordUpdatedEvent) Type() EventType {
	return EventTypeRecordUpdated
}

// BoutResolvedEvent fires when a bout's winner side is recorded
type BoutResolvedEvent struct {
	BoutID     uuid.UUID
	EventID    uuid.UUID
	WinnerSide models.WinnerSide
}

func (e BoutResolvedEvent) Type() EventType {
	return EventTypeBoutResolved
}

// PayoutRequestedEvent fires when a new payout request is created
type PayoutRequestedEvent struct {
	RequestID uuid.UUID
	PayeeID   uuid.UUID
	PayeeType models.PayeeType
	Amount    int64
}

func (e PayoutRequestedEvent) Type() EventType {
	return EventTypePayoutRequested
}

// PayoutStatusChangeEvent fires on every payout request state transition
type PayoutStatusChangeEvent struct {
	RequestID uuid.UUID
	PayeeID   uuid.UUID
	PayeeType models.PayeeType
	OldStatus models.PayoutStatus
	NewStatus models.PayoutStatus
	Amount    int64
	Reason    string
}

func (e PayoutStatusChangeEvent) Type() EventType {
	return EventTypePayoutStatusChange
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	// Call handlers asynchronously to avoid blocking the caller
	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}

// TransactionalBus stashes events published during a unit of work and
// forwards them to the real bus only after the transaction commits.
type TransactionalBus struct {
	real    *Bus
	pending []Event
}

func NewTransactionalBus(real *Bus) *TransactionalBus {
	return &TransactionalBus{real: real}
}

func (b *TransactionalBus) Publish(e Event) {
	b.pending = append(b.pending, e)
}

// Flush emits all pending events. Called after a successful commit.
// Events outlive the transaction, so they are emitted on a fresh context.
func (b *TransactionalBus) Flush(ctx context.Context) {
	eventCtx := context.Background()

	for _, ev := range b.pending {
		b.real.Emit(eventCtx, ev)
	}
	b.pending = nil
}

// Discard drops pending events. Called after a rollback.
func (b *TransactionalBus) Discard() {
	b.pending = nil
}
