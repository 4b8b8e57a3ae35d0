package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bloodlink/bloodlink-backend/internal/middleware"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/services"
)

// DonorHandler handles donor directory HTTP requests
type DonorHandler struct {
	donorService *services.DonorService
}

// NewDonorHandler creates a new DonorHandler
func NewDonorHandler(donorService *services.DonorService) *DonorHandler {
	return &DonorHandler{donorService: donorService}
}

// GetDonors handles GET /donors
func (h *DonorHandler) GetDonors(c *gin.Context) {
	filter := models.DonorFilter{
		BloodType: c.Query("blood_type"),
		Location:  c.Query("location"),
	}
	if raw := c.Query("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "available must be a boolean"})
			return
		}
		filter.Available = &available
	}

	donors, err := h.donorService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, donors)
}

// GetMyDonorProfile handles GET /donors/me
func (h *DonorHandler) GetMyDonorProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user.Role != models.RoleDonor {
		c.JSON(http.StatusForbidden, gin.H{"error": "only donors can access this endpoint"})
		return
	}

	donor, err := h.donorService.GetByUser(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, donor)
}

// UpdateAvailability handles PUT /donors/me/availability
func (h *DonorHandler) UpdateAvailability(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user.Role != models.RoleDonor {
		c.JSON(http.StatusForbidden, gin.H{"error": "only donors can access this endpoint"})
		return
	}

	var req models.AvailabilityUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.donorService.UpdateAvailability(c.Request.Context(), user.ID, *req.Available); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "availability updated successfully", "available": *req.Available})
}

// GetLeaderboard handles GET /donors/leaderboard
func (h *DonorHandler) GetLeaderboard(c *gin.Context) {
	entries, err := h.donorService.Leaderboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
