package routes

import (
	userRepo "eventra/database/repository/user"
	"eventra/handlers"
	"eventra/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers and the repository the auth
// middleware validates tokens against.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth          *handlers.AuthHandler
	Bookings      *handlers.BookingHandler
	Offerings     *handlers.OfferingHandler
	Notifications *handlers.NotificationHandler
	Payments      *handlers.PaymentHandler
}

// RegisterAuthRoutes registers registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.PUT("/fcm-token", hb.Auth.SetFCMToken)
	}
}

// RegisterBookingRoutes registers all endpoints for the booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Bookings.CreateBooking)
		api.GET("/customer", hb.Bookings.MyBookingsAsCustomer)
		api.GET("/provider", hb.Bookings.MyBookingsAsProvider)
		api.GET("/:reference", hb.Bookings.GetBookingByReference)
		api.POST("/:reference/accept", hb.Bookings.AcceptBooking)
		api.POST("/:reference/reject", hb.Bookings.RejectBooking)
		api.POST("/:reference/cancel", hb.Bookings.CustomerCancelBooking)
		api.POST("/:reference/provider-cancel", hb.Bookings.ProviderCancelBooking)
		api.POST("/:reference/complete", hb.Bookings.MarkCompleted)
	}
}

// RegisterOfferingRoutes registers the offered-service catalogue endpoints.
func RegisterOfferingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Offerings.ListAvailable)

		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Offerings.CreateOffering)
		api.GET("/mine", hb.Offerings.MyOfferings)
		api.GET("/:id", hb.Offerings.GetOffering)
		api.PUT("/:id/price", hb.Offerings.UpdatePrice)
		api.PUT("/:id/availability", hb.Offerings.SetAvailability)
	}
}

// RegisterNotificationRoutes registers the in-app notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Notifications.MyNotifications)
		api.PUT("/:id/read", hb.Notifications.MarkRead)
	}
}

// RegisterPaymentRoutes registers the simulated payment gateway endpoint.
func RegisterPaymentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/process", hb.Payments.ProcessPayment)
	}
}

// SetupRoutes wires every route group onto the router.
func SetupRoutes(r *gin.Engine, hb *HandlerBundle) {
	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterOfferingRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
}
