package routes

import (
	"net/http"
	"time"

	"bookit/handlers"
	"bookit/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogueRoutes registers service catalogue endpoints. Reads are
// public; mutations require an authenticated admin.
func RegisterCatalogueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Catalogue.ListServices)
		api.GET("/:id", hb.Catalogue.GetService)

		admin := api.Group("")
		admin.Use(middleware.AuthRequired(hb.UserRepo), middleware.AdminRequired())
		admin.POST("", hb.Catalogue.CreateService)
		admin.PATCH("/:id", hb.Catalogue.UpdateService)
		admin.DELETE("/:id", hb.Catalogue.DeleteService)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.AuthRequired(hb.UserRepo))
		api.POST("", hb.Booking.CreateBooking)
		api.GET("", hb.Booking.ListBookings)
		api.GET("/upcoming/me", hb.Booking.UpcomingBookings)
		api.GET("/:id", hb.Booking.GetBooking)
		api.PATCH("/:id", hb.Booking.UpdateBooking)
		api.DELETE("/:id", hb.Booking.CancelBooking)
	}
}

// RegisterReviewRoutes sets up the review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("/booking/:bookingID", hb.Review.GetReviewByBooking)
		api.GET("/:id", hb.Review.GetReview)

		protected := api.Group("")
		protected.Use(middleware.AuthRequired(hb.UserRepo))
		protected.POST("", hb.Review.CreateReview)
		protected.PATCH("/:id", hb.Review.UpdateReview)
		protected.DELETE("/:id", hb.Review.DeleteReview)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogueRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterHealthRoute(r)
}
