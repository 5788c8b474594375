package handlers

import (
	"errors"
	"net/http"

	"eventra/middleware"
	"eventra/models"
	"eventra/services/booking"
	"eventra/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// respondBookingError maps the booking error taxonomy onto HTTP statuses.
// Raw persistence errors never leak; anything unclassified is a 500.
func respondBookingError(c *gin.Context, err error) {
	var notFound *booking.NotFoundError
	var forbidden *booking.ForbiddenError
	var invalid *booking.InvalidTransitionError
	var validation *booking.ValidationError

	switch {
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, notFound.Error(), "")
	case errors.As(err, &forbidden):
		utils.JSONError(c, http.StatusForbidden, forbidden.Error(), "")
	case errors.As(err, &invalid):
		c.JSON(http.StatusConflict, gin.H{
			"message":         invalid.Error(),
			"currentStatus":   invalid.Current,
			"attemptedStatus": invalid.Attempted,
		})
	case errors.As(err, &validation):
		utils.JSONError(c, http.StatusBadRequest, validation.Error(), "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok || actor.Role != models.RoleCustomer {
		utils.JSONError(c, http.StatusForbidden, "Only customers can create bookings", "")
		return
	}

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), actor.ID, req)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking request submitted successfully. Awaiting provider confirmation.",
		"booking": b,
	})
}

// AcceptBooking handles POST /api/bookings/:reference/accept.
func (h *BookingHandler) AcceptBooking(c *gin.Context) {
	h.applyTransition(c, "Booking request accepted by provider. Now awaiting payment from customer.",
		func(c *gin.Context, actor models.Actor) (*models.Booking, error) {
			return h.Service.AcceptBooking(c.Request.Context(), c.Param("reference"), actor)
		})
}

// RejectBooking handles POST /api/bookings/:reference/reject.
func (h *BookingHandler) RejectBooking(c *gin.Context) {
	h.applyTransition(c, "Booking request rejected by provider.",
		func(c *gin.Context, actor models.Actor) (*models.Booking, error) {
			return h.Service.RejectBooking(c.Request.Context(), c.Param("reference"), actor)
		})
}

// CustomerCancelBooking handles POST /api/bookings/:reference/cancel.
func (h *BookingHandler) CustomerCancelBooking(c *gin.Context) {
	h.applyTransition(c, "Booking request cancelled by customer.",
		func(c *gin.Context, actor models.Actor) (*models.Booking, error) {
			return h.Service.CustomerCancelBooking(c.Request.Context(), c.Param("reference"), actor)
		})
}

// ProviderCancelBooking handles POST /api/bookings/:reference/provider-cancel.
func (h *BookingHandler) ProviderCancelBooking(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	// Reason is optional; an empty body is fine.
	_ = c.ShouldBindJSON(&input)

	h.applyTransition(c, "Booking request cancelled by provider.",
		func(c *gin.Context, actor models.Actor) (*models.Booking, error) {
			return h.Service.ProviderCancelBooking(c.Request.Context(), c.Param("reference"), actor, input.Reason)
		})
}

// MarkCompleted handles POST /api/bookings/:reference/complete.
func (h *BookingHandler) MarkCompleted(c *gin.Context) {
	h.applyTransition(c, "Booking marked as completed.",
		func(c *gin.Context, actor models.Actor) (*models.Booking, error) {
			return h.Service.MarkCompleted(c.Request.Context(), c.Param("reference"), actor)
		})
}

func (h *BookingHandler) applyTransition(c *gin.Context, message string, apply func(*gin.Context, models.Actor) (*models.Booking, error)) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	b, err := apply(c, actor)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "booking": b})
}

// GetBookingByReference handles GET /api/bookings/:reference.
func (h *BookingHandler) GetBookingByReference(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	b, err := h.Service.GetByReference(c.Request.Context(), c.Param("reference"), actor)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// MyBookingsAsCustomer handles GET /api/bookings/customer.
func (h *BookingHandler) MyBookingsAsCustomer(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	bookings, err := h.Service.ListMineAsCustomer(c.Request.Context(), actor.ID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// MyBookingsAsProvider handles GET /api/bookings/provider.
func (h *BookingHandler) MyBookingsAsProvider(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}
	if actor.Role != models.RoleServiceProvider {
		utils.JSONError(c, http.StatusForbidden, "User is not a service provider", "")
		return
	}

	bookings, err := h.Service.ListMineAsProvider(c.Request.Context(), actor.ID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
