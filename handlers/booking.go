package handlers

import (
	"net/http"
	"strconv"
	"time"

	"bookit/middleware"
	"bookit/models"
	"bookit/services/booking"
	"bookit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking engine over HTTP. It binds payloads,
// hands everything to the service, and translates the error taxonomy; no
// business rules live here.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input struct {
		ServiceID       string    `json:"service_id" binding:"required"`
		StartTime       time.Time `json:"start_time" binding:"required"`
		DurationMinutes int       `json:"duration_minutes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	actor := middleware.ActorFrom(c)
	duration := time.Duration(input.DurationMinutes) * time.Minute
	b, err := h.Svc.CreateBooking(c.Request.Context(), actor, input.ServiceID, input.StartTime, duration)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListBookings handles GET /api/bookings with optional status/from/to filters.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	var filter models.BookingFilter

	if raw := c.Query("status"); raw != "" {
		status, err := models.ParseBookingStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		filter.Status = status
	}
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' timestamp"})
			return
		}
		filter.From = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' timestamp"})
			return
		}
		filter.To = t
	}
	if raw := c.Query("user_id"); raw != "" {
		filter.UserID = raw
	}

	actor := middleware.ActorFrom(c)
	bookings, err := h.Svc.ListBookings(c.Request.Context(), actor, filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	b, err := h.Svc.GetBooking(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBooking handles PATCH /api/bookings/:id. A start_time moves the
// booking (reschedule); a status drives a lifecycle transition. Sending
// both applies the reschedule first.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var input struct {
		StartTime       *time.Time `json:"start_time"`
		DurationMinutes int        `json:"duration_minutes"`
		Status          *string    `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.StartTime == nil && input.Status == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	actor := middleware.ActorFrom(c)
	bookingID := c.Param("id")

	var (
		b   *models.Booking
		err error
	)
	if input.StartTime != nil {
		duration := time.Duration(input.DurationMinutes) * time.Minute
		b, err = h.Svc.RescheduleBooking(c.Request.Context(), actor, bookingID, *input.StartTime, duration)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
	}
	if input.Status != nil {
		target, perr := models.ParseBookingStatus(*input.Status)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": perr.Error()})
			return
		}
		b, err = h.Svc.TransitionBooking(c.Request.Context(), actor, bookingID, target)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, b)
}

// CancelBooking handles DELETE /api/bookings/:id. Cancellation is soft: the
// record stays for audit and review linkage, only the window is freed.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	b, err := h.Svc.CancelBooking(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpcomingBookings handles GET /api/bookings/upcoming/me.
func (h *BookingHandler) UpcomingBookings(c *gin.Context) {
	daysAhead := 30
	if raw := c.Query("days_ahead"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 365 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days_ahead must be between 1 and 365"})
			return
		}
		daysAhead = n
	}

	actor := middleware.ActorFrom(c)
	bookings, err := h.Svc.UpcomingBookings(c.Request.Context(), actor, daysAhead)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
