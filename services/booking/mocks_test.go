package booking

import (
	"context"
	"sync"

	referenceRepo "eventra/database/repository/reference"
	"eventra/models"

	"go.uber.org/zap"
)

// mockBookingRepo implements bookingRepo.BookingRepository with overridable
// function fields.
type mockBookingRepo struct {
	CreateFn         func(ctx context.Context, b *models.Booking) error
	GetByReferenceFn func(ctx context.Context, reference string) (*models.Booking, error)
	UpdateStatusFn   func(ctx context.Context, reference string, from, to models.BookingStatus) (*models.Booking, error)
	ListByCustomerFn func(ctx context.Context, customerID string) ([]models.Booking, error)
	ListByProviderFn func(ctx context.Context, providerID string) ([]models.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	return m.CreateFn(ctx, b)
}

func (m *mockBookingRepo) GetByReference(ctx context.Context, reference string) (*models.Booking, error) {
	return m.GetByReferenceFn(ctx, reference)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, reference string, from, to models.BookingStatus) (*models.Booking, error) {
	return m.UpdateStatusFn(ctx, reference, from, to)
}

func (m *mockBookingRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	return m.ListByCustomerFn(ctx, customerID)
}

func (m *mockBookingRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return m.ListByProviderFn(ctx, providerID)
}

// mockOfferingRepo implements offeringRepo.OfferedServiceRepository.
type mockOfferingRepo struct {
	CreateFn          func(ctx context.Context, svc *models.OfferedService) error
	GetByIDFn         func(ctx context.Context, id string) (*models.OfferedService, error)
	UpdateFn          func(ctx context.Context, svc *models.OfferedService) error
	SetAvailabilityFn func(ctx context.Context, id string, available bool) error
	ListByProviderFn  func(ctx context.Context, providerID string) ([]models.OfferedService, error)
	ListAvailableFn   func(ctx context.Context) ([]models.OfferedService, error)
}

func (m *mockOfferingRepo) Create(ctx context.Context, svc *models.OfferedService) error {
	return m.CreateFn(ctx, svc)
}

func (m *mockOfferingRepo) GetByID(ctx context.Context, id string) (*models.OfferedService, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockOfferingRepo) Update(ctx context.Context, svc *models.OfferedService) error {
	return m.UpdateFn(ctx, svc)
}

func (m *mockOfferingRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	return m.SetAvailabilityFn(ctx, id, available)
}

func (m *mockOfferingRepo) ListByProvider(ctx context.Context, providerID string) ([]models.OfferedService, error) {
	return m.ListByProviderFn(ctx, providerID)
}

func (m *mockOfferingRepo) ListAvailable(ctx context.Context) ([]models.OfferedService, error) {
	return m.ListAvailableFn(ctx)
}

// mockReferenceRepo implements referenceRepo.ReferenceRepository.
type mockReferenceRepo struct {
	ReserveFn func(ctx context.Context, code string) error
	ExistsFn  func(ctx context.Context, code string) (bool, error)
}

func (m *mockReferenceRepo) Reserve(ctx context.Context, code string) error {
	return m.ReserveFn(ctx, code)
}

func (m *mockReferenceRepo) Exists(ctx context.Context, code string) (bool, error) {
	return m.ExistsFn(ctx, code)
}

// memoryLedger is an in-memory issued-code ledger with the same atomicity
// guarantee as the Mongo unique index.
type memoryLedger struct {
	mu    sync.Mutex
	codes map[string]struct{}
}

func newMemoryLedger() *memoryLedger {
	return &memoryLedger{codes: make(map[string]struct{})}
}

func (l *memoryLedger) Reserve(ctx context.Context, code string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.codes[code]; ok {
		return referenceRepo.ErrCodeTaken
	}
	l.codes[code] = struct{}{}
	return nil
}

func (l *memoryLedger) Exists(ctx context.Context, code string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.codes[code]
	return ok, nil
}

func (l *memoryLedger) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.codes)
}

func testBooking(status models.BookingStatus) *models.Booking {
	return &models.Booking{
		Reference:   "REF1234XYZ",
		CustomerID:  "cust-1",
		ServiceID:   "svc-1",
		ProviderID:  "prov-1",
		RequestName: "Garden cleanup",
		Price:       120,
		Status:      status,
	}
}

func newTestService(repo *mockBookingRepo, offerings *mockOfferingRepo) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:      repo,
		Offerings: offerings,
		Logger:    zap.NewNop(),
	}
}
