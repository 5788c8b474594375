package handlers

import (
	"net/http"

	"eventra/services/booking"
	"eventra/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler simulates the payment gateway. The gateway is the only
// caller allowed to drive a booking into CONFIRMED or PAYMENT_FAILED; the
// endpoint acts as the trusted system component.
type PaymentHandler struct {
	Bookings booking.BookingService
	Logger   *zap.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(bookings booking.BookingService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Bookings: bookings, Logger: logger}
}

// ProcessPayment handles POST /api/payments/process. The simulated gateway
// accepts any card and settles immediately; SimulateFailure forces the
// failure branch for testing clients.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var input struct {
		BookingReference string `json:"bookingReference" binding:"required"`
		CardNumber       string `json:"cardNumber"`
		SimulateFailure  bool   `json:"simulateFailure"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if input.SimulateFailure {
		b, err := h.Bookings.FailPayment(c.Request.Context(), input.BookingReference)
		if err != nil {
			respondBookingError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment failed. Booking closed.", "booking": b})
		return
	}

	b, err := h.Bookings.ConfirmPayment(c.Request.Context(), input.BookingReference)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	h.Logger.Info("payment processed", zap.String("bookingReference", input.BookingReference))
	c.JSON(http.StatusOK, gin.H{"message": "Booking payment confirmed. Booking is now CONFIRMED.", "booking": b})
}
