package handlers

import (
	"net/http"
	"strconv"

	"bookit/middleware"
	"bookit/models"
	"bookit/services/catalogue"
	"bookit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogueHandler exposes the service catalogue over HTTP.
type CatalogueHandler struct {
	Svc    catalogue.CatalogueService
	Logger *zap.Logger
}

// NewCatalogueHandler constructs a CatalogueHandler.
func NewCatalogueHandler(svc catalogue.CatalogueService, logger *zap.Logger) *CatalogueHandler {
	return &CatalogueHandler{Svc: svc, Logger: logger}
}

// ListServices handles GET /api/services.
func (h *CatalogueHandler) ListServices(c *gin.Context) {
	var filter models.ServiceFilter
	filter.Query = c.Query("q")

	if raw := c.Query("price_min"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price_min"})
			return
		}
		filter.PriceMin = v
	}
	if raw := c.Query("price_max"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price_max"})
			return
		}
		filter.PriceMax = v
	}
	if raw := c.Query("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid active flag"})
			return
		}
		filter.Active = &v
	}

	services, err := h.Svc.ListServices(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetService handles GET /api/services/:id.
func (h *CatalogueHandler) GetService(c *gin.Context) {
	svc, err := h.Svc.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// CreateService handles POST /api/services (admin).
func (h *CatalogueHandler) CreateService(c *gin.Context) {
	var input struct {
		Title           string  `json:"title" binding:"required"`
		Description     string  `json:"description"`
		Price           float64 `json:"price"`
		DurationMinutes int     `json:"duration_minutes" binding:"required"`
		Active          *bool   `json:"active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}
	svc := &models.Service{
		Title:           input.Title,
		Description:     input.Description,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
		Active:          active,
	}

	actor := middleware.ActorFrom(c)
	created, err := h.Svc.CreateService(c.Request.Context(), actor, svc)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateService handles PATCH /api/services/:id (admin).
func (h *CatalogueHandler) UpdateService(c *gin.Context) {
	var input struct {
		Title           *string  `json:"title"`
		Description     *string  `json:"description"`
		Price           *float64 `json:"price"`
		DurationMinutes *int     `json:"duration_minutes"`
		Active          *bool    `json:"active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	fields := map[string]interface{}{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.DurationMinutes != nil {
		fields["duration_minutes"] = *input.DurationMinutes
	}
	if input.Active != nil {
		fields["active"] = *input.Active
	}

	actor := middleware.ActorFrom(c)
	svc, err := h.Svc.UpdateService(c.Request.Context(), actor, c.Param("id"), fields)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteService handles DELETE /api/services/:id (admin).
func (h *CatalogueHandler) DeleteService(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if err := h.Svc.DeleteService(c.Request.Context(), actor, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "service deleted"})
}
