package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"ringside/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func collectEvents(bus *Bus, eventType EventType) (*sync.WaitGroup, func() []Event) {
	var mu sync.Mutex
	var received []Event
	var wg sync.WaitGroup

	bus.Subscribe(eventType, func(ctx context.Context, event Event) {
		defer wg.Done()
		mu.Lock()
		received = append(received, event)
		mu.Unlock()
	})

	return &wg, func() []Event {
		mu.Lock()
		defer mu.Unlock()
		out := make([]Event, len(received))
		copy(out, received)
		return out
	}
}

func TestBus_EmitReachesSubscribers(t *testing.T) {
	bus := NewBus()
	wg, events := collectEvents(bus, EventTypeRecordUpdated)

	wg.Add(1)
	bus.Emit(context.Background(), RecordUpdatedEvent{
		FighterID: uuid.New(),
		Record:    "3-0-0",
		Streak:    3,
	})
	wg.Wait()

	received := events()
	assert.Len(t, received, 1)
	assert.Equal(t, "3-0-0", received[0].(RecordUpdatedEvent).Record)
}

func TestBus_HandlerPanicDoesNotPropagate(t *testing.T) {
	bus := NewBus()

	bus.Subscribe(EventTypeBoutResolved, func(ctx context.Context, event Event) {
		panic("handler failure")
	})
	wg, events := collectEvents(bus, EventTypeBoutResolved)

	wg.Add(1)
	bus.Emit(context.Background(), BoutResolvedEvent{
		BoutID:     uuid.New(),
		WinnerSide: models.WinnerSideRed,
	})
	wg.Wait()

	// Give the panicking goroutine time to unwind; the test fails by
	// crashing if the recover is missing.
	time.Sleep(10 * time.Millisecond)
	assert.Len(t, events(), 1)
}

func TestTransactionalBus(t *testing.T) {
	t.Run("flush forwards pending events", func(t *testing.T) {
		real := NewBus()
		wg, events := collectEvents(real, EventTypePayoutRequested)

		txBus := NewTransactionalBus(real)
		txBus.Publish(PayoutRequestedEvent{RequestID: uuid.New(), Amount: 4000})
		txBus.Publish(PayoutRequestedEvent{RequestID: uuid.New(), Amount: 2000})

		// Nothing is delivered before the flush
		assert.Empty(t, events())

		wg.Add(2)
		txBus.Flush(context.Background())
		wg.Wait()

		assert.Len(t, events(), 2)
	})

	t.Run("discard drops pending events", func(t *testing.T) {
		real := NewBus()
		_, events := collectEvents(real, EventTypePayoutRequested)

		txBus := NewTransactionalBus(real)
		txBus.Publish(PayoutRequestedEvent{RequestID: uuid.New(), Amount: 4000})
		txBus.Discard()
		txBus.Flush(context.Background())

		time.Sleep(10 * time.Millisecond)
		assert.Empty(t, events())
	})
}
