package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bloodlink/bloodlink-backend/internal/services"
)

// StatsHandler handles stats, activity feed and compatibility requests
type StatsHandler struct {
	statsService *services.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats handles GET /stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetActivities handles GET /activities
func (h *StatsHandler) GetActivities(c *gin.Context) {
	activities, err := h.statsService.Activities(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, activities)
}

// CheckCompatibility handles GET /compatibility
func (h *StatsHandler) CheckCompatibility(c *gin.Context) {
	donorType := c.Query("donor_type")
	recipientType := c.Query("recipient_type")
	if donorType == "" || recipientType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "donor_type and recipient_type are required"})
		return
	}

	compatible, explanation := services.ResolveCompatibility(donorType, recipientType)
	c.JSON(http.StatusOK, gin.H{
		"donor_type":     donorType,
		"recipient_type": recipientType,
		"compatible":     compatible,
		"explanation":    explanation,
	})
}
