package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventra/models"
	"eventra/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockBookingService implements booking.BookingService with overridable
// function fields.
type mockBookingService struct {
	CreateBookingFn         func(ctx context.Context, customerID string, req models.CreateBookingRequest) (*models.Booking, error)
	AcceptBookingFn         func(ctx context.Context, reference string, actor models.Actor) (*models.Booking, error)
	RejectBookingFn         func(ctx context.Context, reference string, actor models.Actor) (*models.Booking, error)
	CustomerCancelBookingFn func(ctx context.Context, reference string, actor models.Actor) (*models.Booking, error)
	ProviderCancelBookingFn func(ctx context.Context, reference string, actor models.Actor, reason string) (*models.Booking, error)
	ConfirmPaymentFn        func(ctx context.Context, reference string) (*models.Booking, error)
	FailPaymentFn           func(ctx context.Context, reference string) (*models.Booking, error)
	MarkCompletedFn         func(ctx context.Context, reference string, actor models.Actor) (*models.Booking, error)
	GetByReferenceFn        func(ctx context.Context, reference string, actor models.Actor) (*models.Booking, error)
	ListMineAsCustomerFn    func(ctx context.Context, customerID string) ([]models.Booking, error)
	ListMineAsProviderFn    func(ctx context.Context, providerID string) ([]models.Booking, error)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, customerID string, req models.CreateBookingRequest) (*models.Booking, error) {
	return m.CreateBookingFn(ctx, customerID, req)
}

func (m *mockBookingService) AcceptBooking(ctx context.Context, reference string, actor models.Actor) (*models.Booking, error) {
	return m.AcceptBookingFn(ctx, reference, actor)
}

func (m *mockBookingService) RejectBooking(ctx context.Context, reference string, actor models.Actor) (*models.Booking, error) {
	return m.RejectBookingFn(ctx, reference, actor)
}

func (m *mockBookingService) CustomerCancelBooking(ctx context.Context, reference string, actor models.Actor) (*models.Booking, error) {
	return m.CustomerCancelBookingFn(ctx, reference, actor)
}

func (m *mockBookingService) ProviderCancelBooking(ctx context.Context, reference string, actor models.Actor, reason string) (*models.Booking, error) {
	return m.ProviderCancelBookingFn(ctx, reference, actor, reason)
}

func (m *mockBookingService) ConfirmPayment(ctx context.Context, reference string) (*models.Booking, error) {
	return m.ConfirmPaymentFn(ctx, reference)
}

func (m *mockBookingService) FailPayment(ctx context.Context, reference string) (*models.Booking, error) {
	return m.FailPaymentFn(ctx, reference)
}

func (m *mockBookingService) MarkCompleted(ctx context.Context, reference string, actor models.Actor) (*models.Booking, error) {
	return m.MarkCompletedFn(ctx, reference, actor)
}

func (m *mockBookingService) GetByReference(ctx context.Context, reference string, actor models.Actor) (*models.Booking, error) {
	return m.GetByReferenceFn(ctx, reference, actor)
}

func (m *mockBookingService) ListMineAsCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	return m.ListMineAsCustomerFn(ctx, customerID)
}

func (m *mockBookingService) ListMineAsProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return m.ListMineAsProviderFn(ctx, providerID)
}

func actorInjector(actor models.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("actor", actor)
		c.Next()
	}
}

func bookingRouter(svc booking.BookingService, actor models.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, zap.NewNop())

	r := gin.New()
	r.Use(actorInjector(actor))
	r.POST("/api/bookings", h.CreateBooking)
	r.POST("/api/bookings/:reference/accept", h.AcceptBooking)
	r.POST("/api/bookings/:reference/provider-cancel", h.ProviderCancelBooking)
	r.GET("/api/bookings/:reference", h.GetBookingByReference)
	return r
}

func TestCreateBookingEndpoint(t *testing.T) {
	customer := models.Actor{ID: "cust-1", Role: models.RoleCustomer}
	svc := &mockBookingService{
		CreateBookingFn: func(ctx context.Context, customerID string, req models.CreateBookingRequest) (*models.Booking, error) {
			return &models.Booking{Reference: "REF1234XYZ", CustomerID: customerID, Status: models.StatusPending}, nil
		},
	}
	r := bookingRouter(svc, customer)

	body, _ := json.Marshal(gin.H{"serviceId": "svc-1", "requestName": "Weekend cleanup"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "REF1234XYZ")
}

func TestCreateBookingEndpointRejectsProviders(t *testing.T) {
	provider := models.Actor{ID: "prov-1", Role: models.RoleServiceProvider}
	r := bookingRouter(&mockBookingService{}, provider)

	body, _ := json.Marshal(gin.H{"serviceId": "svc-1", "requestName": "x"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBookingErrorMapping(t *testing.T) {
	provider := models.Actor{ID: "prov-1", Role: models.RoleServiceProvider}

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", &booking.NotFoundError{Resource: "booking", Key: "X"}, http.StatusNotFound},
		{"forbidden", &booking.ForbiddenError{Message: "nope"}, http.StatusForbidden},
		{"invalid transition", &booking.InvalidTransitionError{Current: models.StatusConfirmed, Attempted: models.StatusCancelled}, http.StatusConflict},
		{"validation", &booking.ValidationError{Message: "bad"}, http.StatusBadRequest},
		{"infrastructure", &booking.InfrastructureError{Op: "update"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockBookingService{
				AcceptBookingFn: func(ctx context.Context, reference string, actor models.Actor) (*models.Booking, error) {
					return nil, tt.err
				},
			}
			r := bookingRouter(svc, provider)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/bookings/REF1234XYZ/accept", nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestInvalidTransitionResponseCarriesBothStates(t *testing.T) {
	provider := models.Actor{ID: "prov-1", Role: models.RoleServiceProvider}
	svc := &mockBookingService{
		AcceptBookingFn: func(ctx context.Context, reference string, actor models.Actor) (*models.Booking, error) {
			return nil, &booking.InvalidTransitionError{
				Current:   models.StatusAcceptedAwaitingPayment,
				Attempted: models.StatusAcceptedAwaitingPayment,
			}
		},
	}
	r := bookingRouter(svc, provider)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/REF1234XYZ/accept", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ACCEPTED_AWAITING_PAYMENT", resp["currentStatus"])
	assert.Equal(t, "ACCEPTED_AWAITING_PAYMENT", resp["attemptedStatus"])
}

func TestProviderCancelPassesReason(t *testing.T) {
	provider := models.Actor{ID: "prov-1", Role: models.RoleServiceProvider}
	var gotReason string
	svc := &mockBookingService{
		ProviderCancelBookingFn: func(ctx context.Context, reference string, actor models.Actor, reason string) (*models.Booking, error) {
			gotReason = reason
			return &models.Booking{Reference: reference, Status: models.StatusCancelled}, nil
		},
	}
	r := bookingRouter(svc, provider)

	body, _ := json.Marshal(gin.H{"reason": "equipment breakdown"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/REF1234XYZ/provider-cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "equipment breakdown", gotReason)
}
