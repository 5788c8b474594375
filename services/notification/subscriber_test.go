package notification

import (
	"context"
	"errors"
	"testing"

	userRepo "eventra/database/repository/user"
	"eventra/models"
	"eventra/services/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func subscriberFixture() (*Subscriber, *recordingNotificationService) {
	customer := &models.User{ID: "cust-1", FirstName: "Ada", LastName: "Lovelace", Role: models.RoleCustomer}
	provider := &models.User{ID: "prov-1", FirstName: "Grace", LastName: "Hopper", Role: models.RoleServiceProvider}
	service := &models.OfferedService{ID: "svc-1", ProviderID: "prov-1", Name: "Garden Cleanup"}

	store := &recordingNotificationService{}
	sub := &Subscriber{
		Notifications: store,
		Users: &mockUserRepo{
			GetByIDFn: func(ctx context.Context, id string) (*models.User, error) {
				switch id {
				case customer.ID:
					return customer, nil
				case provider.ID:
					return provider, nil
				}
				return nil, userRepo.ErrNotFound
			},
		},
		Offerings: &mockOfferingRepo{
			GetByIDFn: func(ctx context.Context, id string) (*models.OfferedService, error) {
				return service, nil
			},
		},
		Logger: zap.NewNop(),
	}
	return sub, store
}

func subscriberBooking() models.Booking {
	return models.Booking{
		Reference:   "REF1234XYZ",
		CustomerID:  "cust-1",
		ServiceID:   "svc-1",
		ProviderID:  "prov-1",
		RequestName: "Weekend cleanup",
		Status:      models.StatusPending,
	}
}

func TestBookingCreatedNotifiesProvider(t *testing.T) {
	sub, store := subscriberFixture()
	d := events.NewDispatcher(zap.NewNop())
	sub.Register(d)

	d.Publish(events.CreatedEvent{Snapshot: subscriberBooking()})

	require.Len(t, store.created, 1)
	n := store.created[0]
	assert.Equal(t, "prov-1", n.RecipientID)
	assert.Equal(t, models.NotificationNewBookingRequest, n.Type)
	assert.Equal(t, "REF1234XYZ", n.BookingReference)
}

func TestBookingAcceptedNotifiesCustomer(t *testing.T) {
	sub, store := subscriberFixture()
	d := events.NewDispatcher(zap.NewNop())
	sub.Register(d)

	d.Publish(events.AcceptedEvent{Snapshot: subscriberBooking()})

	require.Len(t, store.created, 1)
	assert.Equal(t, "cust-1", store.created[0].RecipientID)
	assert.Equal(t, models.NotificationBookingRequestAccepted, store.created[0].Type)
}

func TestBookingRejectedNotifiesCustomer(t *testing.T) {
	sub, store := subscriberFixture()
	d := events.NewDispatcher(zap.NewNop())
	sub.Register(d)

	d.Publish(events.RejectedEvent{Snapshot: subscriberBooking()})

	require.Len(t, store.created, 1)
	assert.Equal(t, "cust-1", store.created[0].RecipientID)
	assert.Equal(t, models.NotificationBookingRequestRejected, store.created[0].Type)
}

func TestPaymentConfirmedNotifiesBothSides(t *testing.T) {
	sub, store := subscriberFixture()
	d := events.NewDispatcher(zap.NewNop())
	sub.Register(d)

	d.Publish(events.PaymentConfirmedEvent{Snapshot: subscriberBooking()})

	require.Len(t, store.created, 2, "payment confirmation fans out to customer and provider")
	assert.Equal(t, "cust-1", store.created[0].RecipientID)
	assert.Equal(t, "prov-1", store.created[1].RecipientID)
	for _, n := range store.created {
		assert.Equal(t, models.NotificationBookingConfirmed, n.Type)
	}
	assert.NotEqual(t, store.created[0].Body, store.created[1].Body, "each side gets role-appropriate copy")
}

func TestCancelledByProviderCarriesReason(t *testing.T) {
	sub, store := subscriberFixture()
	d := events.NewDispatcher(zap.NewNop())
	sub.Register(d)

	d.Publish(events.CancelledByProviderEvent{
		Snapshot: subscriberBooking(),
		Reason:   "equipment breakdown",
	})

	require.Len(t, store.created, 1)
	assert.Equal(t, "cust-1", store.created[0].RecipientID)
	assert.Contains(t, store.created[0].Body, "Reason: equipment breakdown")
}

func TestCancelledByCustomerNotifiesProvider(t *testing.T) {
	sub, store := subscriberFixture()
	d := events.NewDispatcher(zap.NewNop())
	sub.Register(d)

	d.Publish(events.CancelledByCustomerEvent{Snapshot: subscriberBooking()})

	require.Len(t, store.created, 1)
	assert.Equal(t, "prov-1", store.created[0].RecipientID)
	assert.Equal(t, models.NotificationBookingCancelledByCustomer, store.created[0].Type)
}

func TestPaymentFailedAndCompletedNotifyCustomer(t *testing.T) {
	sub, store := subscriberFixture()
	d := events.NewDispatcher(zap.NewNop())
	sub.Register(d)

	d.Publish(events.PaymentFailedEvent{Snapshot: subscriberBooking()})
	d.Publish(events.CompletedEvent{Snapshot: subscriberBooking()})

	require.Len(t, store.created, 2)
	assert.Equal(t, models.NotificationBookingPaymentFailed, store.created[0].Type)
	assert.Equal(t, models.NotificationBookingCompleted, store.created[1].Type)
	for _, n := range store.created {
		assert.Equal(t, "cust-1", n.RecipientID)
	}
}

func TestResolveFailureReturnsError(t *testing.T) {
	sub, _ := subscriberFixture()
	sub.Users = &mockUserRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.User, error) {
			return nil, userRepo.ErrNotFound
		},
	}

	err := sub.handleBookingCreated(context.Background(), events.CreatedEvent{Snapshot: subscriberBooking()})
	require.Error(t, err)
	assert.ErrorIs(t, err, userRepo.ErrNotFound)
}

func TestStoreFailurePropagatesToDispatcher(t *testing.T) {
	sub, store := subscriberFixture()
	store.err = errors.New("store down")

	err := sub.handleBookingAccepted(context.Background(), events.AcceptedEvent{Snapshot: subscriberBooking()})
	require.Error(t, err)
}
