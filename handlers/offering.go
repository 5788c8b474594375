package handlers

import (
	"errors"
	"net/http"

	offeringRepo "eventra/database/repository/offering"
	"eventra/middleware"
	"eventra/models"
	"eventra/services/offering"
	"eventra/utils"

	"github.com/gin-gonic/gin"
)

// OfferingHandler exposes the offered-service catalogue.
type OfferingHandler struct {
	Service offering.OfferedServiceService
}

// NewOfferingHandler creates a new OfferingHandler.
func NewOfferingHandler(svc offering.OfferedServiceService) *OfferingHandler {
	return &OfferingHandler{Service: svc}
}

func respondOfferingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, offeringRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "offered service not found", "")
	case errors.Is(err, offering.ErrNotOwner):
		utils.JSONError(c, http.StatusForbidden, err.Error(), "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func requireProvider(c *gin.Context) (models.Actor, bool) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return actor, false
	}
	if actor.Role != models.RoleServiceProvider {
		utils.JSONError(c, http.StatusForbidden, "User is not a service provider", "")
		return actor, false
	}
	return actor, true
}

// CreateOffering handles POST /api/services.
func (h *OfferingHandler) CreateOffering(c *gin.Context) {
	actor, ok := requireProvider(c)
	if !ok {
		return
	}

	var req offering.CreateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	svc, err := h.Service.Create(c.Request.Context(), actor.ID, req)
	if err != nil {
		respondOfferingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": svc})
}

// GetOffering handles GET /api/services/:id.
func (h *OfferingHandler) GetOffering(c *gin.Context) {
	svc, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondOfferingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// UpdatePrice handles PUT /api/services/:id/price.
func (h *OfferingHandler) UpdatePrice(c *gin.Context) {
	actor, ok := requireProvider(c)
	if !ok {
		return
	}

	var input struct {
		Price float64 `json:"price" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	svc, err := h.Service.UpdatePrice(c.Request.Context(), actor.ID, c.Param("id"), input.Price)
	if err != nil {
		respondOfferingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// SetAvailability handles PUT /api/services/:id/availability.
func (h *OfferingHandler) SetAvailability(c *gin.Context) {
	actor, ok := requireProvider(c)
	if !ok {
		return
	}

	var input struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.SetAvailability(c.Request.Context(), actor.ID, c.Param("id"), *input.Available); err != nil {
		respondOfferingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "availability updated"})
}

// MyOfferings handles GET /api/services/mine.
func (h *OfferingHandler) MyOfferings(c *gin.Context) {
	actor, ok := requireProvider(c)
	if !ok {
		return
	}

	services, err := h.Service.ListByProvider(c.Request.Context(), actor.ID)
	if err != nil {
		respondOfferingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ListAvailable handles GET /api/services.
func (h *OfferingHandler) ListAvailable(c *gin.Context) {
	services, err := h.Service.ListAvailable(c.Request.Context())
	if err != nil {
		respondOfferingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}
