package handlers

import (
	"net/http"

	"bookit/middleware"
	"bookit/services/review"
	"bookit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler exposes the review gate over HTTP.
type ReviewHandler struct {
	Svc    review.ReviewService
	Logger *zap.Logger
}

// NewReviewHandler constructs a ReviewHandler.
func NewReviewHandler(svc review.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{Svc: svc, Logger: logger}
}

// CreateReview handles POST /api/reviews.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var input struct {
		BookingID string `json:"booking_id" binding:"required"`
		Rating    int    `json:"rating" binding:"required"`
		Comment   string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	actor := middleware.ActorFrom(c)
	r, err := h.Svc.CreateReview(c.Request.Context(), actor, input.BookingID, input.Rating, input.Comment)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// GetReview handles GET /api/reviews/:id.
func (h *ReviewHandler) GetReview(c *gin.Context) {
	r, err := h.Svc.GetReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// GetReviewByBooking handles GET /api/reviews/booking/:bookingID.
func (h *ReviewHandler) GetReviewByBooking(c *gin.Context) {
	r, err := h.Svc.GetByBooking(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// UpdateReview handles PATCH /api/reviews/:id.
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	var input struct {
		Rating  *int    `json:"rating"`
		Comment *string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	actor := middleware.ActorFrom(c)
	r, err := h.Svc.UpdateReview(c.Request.Context(), actor, c.Param("id"), input.Rating, input.Comment)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// DeleteReview handles DELETE /api/reviews/:id.
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if err := h.Svc.DeleteReview(c.Request.Context(), actor, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "review deleted"})
}
