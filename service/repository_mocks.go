package service

import (
	"context"
	"time"

	"ringside/events"
	"ringside/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFighterRepository is a mock implementation of FighterRepository
type MockFighterRepository struct {
	mock.Mock
}

func (m *MockFighterRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Fighter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Fighter), args.Error(1)
}

func (m *MockFighterRepository) Create(ctx context.Context, fighter *models.Fighter) error {
	args := m.Called(ctx, fighter)
	return args.Error(0)
}

func (m *MockFighterRepository) UpdateRecord(ctx context.Context, id uuid.UUID, record, recordBase, last5Form string, streak int) error {
	args := m.Called(ctx, id, record, recordBase, last5Form, streak)
	return args.Error(0)
}

func (m *MockFighterRepository) UpdateStripeAccount(ctx context.Context, id uuid.UUID, accountID string) error {
	args := m.Called(ctx, id, accountID)
	return args.Error(0)
}

// MockOrganizerRepository is a mock implementation of OrganizerRepository
type MockOrganizerRepository struct {
	mock.Mock
}

func (m *MockOrganizerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Organizer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organizer), args.Error(1)
}

func (m *MockOrganizerRepository) Create(ctx context.Context, organizer *models.Organizer) error {
	args := m.Called(ctx, organizer)
	return args.Error(0)
}

func (m *MockOrganizerRepository) UpdateStripeAccount(ctx context.Context, id uuid.UUID, accountID string) error {
	args := m.Called(ctx, id, accountID)
	return args.Error(0)
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventRepository) Create(ctx context.Context, event *models.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockBoutRepository is a mock implementation of BoutRepository
type MockBoutRepository struct {
	mock.Mock
}

func (m *MockBoutRepository) Create(ctx context.Context, bout *models.Bout) error {
	args := m.Called(ctx, bout)
	return args.Error(0)
}

func (m *MockBoutRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Bout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bout), args.Error(1)
}

func (m *MockBoutRepository) Update(ctx context.Context, bout *models.Bout) error {
	args := m.Called(ctx, bout)
	return args.Error(0)
}

func (m *MockBoutRepository) GetResolvedByFighter(ctx context.Context, fighterID uuid.UUID) ([]*models.Bout, error) {
	args := m.Called(ctx, fighterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bout), args.Error(1)
}

func (m *MockBoutRepository) GetByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.Bout, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bout), args.Error(1)
}

// MockFightHistoryRepository is a mock implementation of FightHistoryRepository
type MockFightHistoryRepository struct {
	mock.Mock
}

func (m *MockFightHistoryRepository) Create(ctx context.Context, entry *models.FightHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockFightHistoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FightHistory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FightHistory), args.Error(1)
}

func (m *MockFightHistoryRepository) Update(ctx context.Context, entry *models.FightHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockFightHistoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFightHistoryRepository) GetByFighter(ctx context.Context, fighterID uuid.UUID) ([]*models.FightHistory, error) {
	args := m.Called(ctx, fighterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FightHistory), args.Error(1)
}

// MockPaymentRepository is a mock implementation of PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByFighter(ctx context.Context, fighterID uuid.UUID) ([]*models.Payment, error) {
	args := m.Called(ctx, fighterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]*models.Payment, error) {
	args := m.Called(ctx, organizerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Payment), args.Error(1)
}

// MockTipRepository is a mock implementation of TipRepository
type MockTipRepository struct {
	mock.Mock
}

func (m *MockTipRepository) Create(ctx context.Context, tip *models.Tip) error {
	args := m.Called(ctx, tip)
	return args.Error(0)
}

func (m *MockTipRepository) GetByFighter(ctx context.Context, fighterID uuid.UUID) ([]*models.Tip, error) {
	args := m.Called(ctx, fighterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tip), args.Error(1)
}

// MockPayoutRequestRepository is a mock implementation of PayoutRequestRepository
type MockPayoutRequestRepository struct {
	mock.Mock
}

func (m *MockPayoutRequestRepository) Create(ctx context.Context, request *models.PayoutRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockPayoutRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PayoutRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PayoutRequest), args.Error(1)
}

func (m *MockPayoutRequestRepository) Update(ctx context.Context, request *models.PayoutRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockPayoutRequestRepository) GetByPayee(ctx context.Context, payeeID uuid.UUID) ([]*models.PayoutRequest, error) {
	args := m.Called(ctx, payeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PayoutRequest), args.Error(1)
}

// MockNotificationRepository is a mock implementation of NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]*models.Notification, error) {
	args := m.Called(ctx, recipientID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRateLimiter is a mock implementation of RateLimiter
type MockRateLimiter struct {
	mock.Mock
}

func (m *MockRateLimiter) Increment(ctx context.Context, key string, windowStart time.Time) (int, error) {
	args := m.Called(ctx, key, windowStart)
	return args.Int(0), args.Error(1)
}

// MockPaymentClient is a mock implementation of PaymentClient
type MockPaymentClient struct {
	mock.Mock
}

func (m *MockPaymentClient) AccountPayoutsEnabled(ctx context.Context, accountID string) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentClient) CreateTransfer(ctx context.Context, accountID string, amountCents int64, requestID uuid.UUID) (string, error) {
	args := m.Called(ctx, accountID, amountCents, requestID)
	return args.String(0), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher for testing
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Called(event)
}

// noopEventPublisher swallows events in tests that don't assert on them
type noopEventPublisher struct{}

func (noopEventPublisher) Publish(events.Event) {}

// MockUnitOfWork is a mock implementation of UnitOfWork. Begin, Commit
// and Rollback are mocked; repository getters return whatever was wired
// in with SetRepositories.
type MockUnitOfWork struct {
	mock.Mock

	fighters       FighterRepository
	organizers     OrganizerRepository
	eventRepo      EventRepository
	bouts          BoutRepository
	history        FightHistoryRepository
	paymentsRepo   PaymentRepository
	tips           TipRepository
	payoutRequests PayoutRequestRepository
	notifications  NotificationRepository
	eventBus       EventPublisher
}

// SetRepositories wires the repositories the test cares about. Nil is
// fine for repositories the code under test never touches.
func (m *MockUnitOfWork) SetRepositories(
	fighters FighterRepository,
	organizers OrganizerRepository,
	eventRepo EventRepository,
	bouts BoutRepository,
	history FightHistoryRepository,
	paymentsRepo PaymentRepository,
	tips TipRepository,
	payoutRequests PayoutRequestRepository,
	notifications NotificationRepository,
) {
	m.fighters = fighters
	m.organizers = organizers
	m.eventRepo = eventRepo
	m.bouts = bouts
	m.history = history
	m.paymentsRepo = paymentsRepo
	m.tips = tips
	m.payoutRequests = payoutRequests
	m.notifications = notifications
}

// SetEventBus wires the publisher returned by EventBus
func (m *MockUnitOfWork) SetEventBus(bus EventPublisher) {
	m.eventBus = bus
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) FighterRepository() FighterRepository {
	return m.fighters
}

func (m *MockUnitOfWork) OrganizerRepository() OrganizerRepository {
	return m.organizers
}

func (m *MockUnitOfWork) EventRepository() EventRepository {
	return m.eventRepo
}

func (m *MockUnitOfWork) BoutRepository() BoutRepository {
	return m.bouts
}

func (m *MockUnitOfWork) FightHistoryRepository() FightHistoryRepository {
	return m.history
}

func (m *MockUnitOfWork) PaymentRepository() PaymentRepository {
	return m.paymentsRepo
}

func (m *MockUnitOfWork) TipRepository() TipRepository {
	return m.tips
}

func (m *MockUnitOfWork) PayoutRequestRepository() PayoutRequestRepository {
	return m.payoutRequests
}

func (m *MockUnitOfWork) NotificationRepository() NotificationRepository {
	return m.notifications
}

func (m *MockUnitOfWork) EventBus() EventPublisher {
	if m.eventBus == nil {
		m.eventBus = noopEventPublisher{}
	}
	return m.eventBus
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}
