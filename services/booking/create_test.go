package booking

import (
	"context"
	"errors"
	"testing"

	offeringRepo "eventra/database/repository/offering"
	"eventra/models"
	"eventra/services/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func availableOffering() *models.OfferedService {
	return &models.OfferedService{
		ID:         "svc-1",
		ProviderID: "prov-1",
		Name:       "Garden Cleanup",
		Price:      120,
		Available:  true,
	}
}

func createTestService(t *testing.T, svc *models.OfferedService) (*DefaultBookingService, *[]events.Event) {
	t.Helper()

	offerings := &mockOfferingRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.OfferedService, error) {
			if svc == nil || id != svc.ID {
				return nil, offeringRepo.ErrNotFound
			}
			copied := *svc
			return &copied, nil
		},
	}
	repo := &mockBookingRepo{
		CreateFn: func(ctx context.Context, b *models.Booking) error { return nil },
	}

	d, published := recordingDispatcher(t)
	return &DefaultBookingService{
		Repo:      repo,
		Offerings: offerings,
		Refs:      &ReferenceGenerator{Refs: newMemoryLedger()},
		Events:    d,
		Logger:    zap.NewNop(),
	}, published
}

func TestCreateBooking(t *testing.T) {
	svc, published := createTestService(t, availableOffering())

	b, err := svc.CreateBooking(context.Background(), "cust-1", models.CreateBookingRequest{
		ServiceID:   "svc-1",
		RequestName: "Weekend cleanup",
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, b.Status)
	assert.Equal(t, "cust-1", b.CustomerID)
	assert.Equal(t, "prov-1", b.ProviderID, "provider is derived from the offered service")
	assert.Equal(t, 120.0, b.Price)
	assert.Len(t, b.Reference, 10)
	require.Len(t, *published, 1)
	assert.Equal(t, events.BookingCreated, (*published)[0].Type())
}

func TestCreateBookingPriceIsSnapshotted(t *testing.T) {
	offering := availableOffering()
	svc, _ := createTestService(t, offering)

	b, err := svc.CreateBooking(context.Background(), "cust-1", models.CreateBookingRequest{
		ServiceID:   "svc-1",
		RequestName: "Weekend cleanup",
	})
	require.NoError(t, err)

	// The provider raises the live price after the booking was made.
	offering.Price = 999

	assert.Equal(t, 120.0, b.Price, "booking keeps the price captured at creation")
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _ := createTestService(t, availableOffering())

	t.Run("missing service id", func(t *testing.T) {
		_, err := svc.CreateBooking(context.Background(), "cust-1", models.CreateBookingRequest{RequestName: "x"})
		var validation *ValidationError
		require.ErrorAs(t, err, &validation)
	})

	t.Run("missing request name", func(t *testing.T) {
		_, err := svc.CreateBooking(context.Background(), "cust-1", models.CreateBookingRequest{ServiceID: "svc-1"})
		var validation *ValidationError
		require.ErrorAs(t, err, &validation)
	})
}

func TestCreateBookingUnknownService(t *testing.T) {
	svc, _ := createTestService(t, nil)

	_, err := svc.CreateBooking(context.Background(), "cust-1", models.CreateBookingRequest{
		ServiceID:   "svc-missing",
		RequestName: "x",
	})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "offered service", notFound.Resource)
}

func TestCreateBookingUnavailableService(t *testing.T) {
	offering := availableOffering()
	offering.Available = false
	svc, _ := createTestService(t, offering)

	_, err := svc.CreateBooking(context.Background(), "cust-1", models.CreateBookingRequest{
		ServiceID:   "svc-1",
		RequestName: "x",
	})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestCreateBookingOwnServiceRejected(t *testing.T) {
	svc, _ := createTestService(t, availableOffering())

	_, err := svc.CreateBooking(context.Background(), "prov-1", models.CreateBookingRequest{
		ServiceID:   "svc-1",
		RequestName: "x",
	})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestCreateBookingStorageFailure(t *testing.T) {
	svc, published := createTestService(t, availableOffering())
	svc.Repo = &mockBookingRepo{
		CreateFn: func(ctx context.Context, b *models.Booking) error {
			return errors.New("write concern not satisfied")
		},
	}

	_, err := svc.CreateBooking(context.Background(), "cust-1", models.CreateBookingRequest{
		ServiceID:   "svc-1",
		RequestName: "x",
	})

	var infra *InfrastructureError
	require.ErrorAs(t, err, &infra)
	assert.Empty(t, *published, "no event may be published for a booking that was not persisted")
}
