package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bloodlink/bloodlink-backend/internal/middleware"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/services"
)

// DonationHandler handles donation recording and history HTTP requests
type DonationHandler struct {
	donationService *services.DonationService
}

// NewDonationHandler creates a new DonationHandler
func NewDonationHandler(donationService *services.DonationService) *DonationHandler {
	return &DonationHandler{donationService: donationService}
}

// RecordDonation handles POST /donations
func (h *DonationHandler) RecordDonation(c *gin.Context) {
	var req models.DonationCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	donation, err := h.donationService.Record(c.Request.Context(), middleware.CurrentUser(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, donation)
}

// GetHistory handles GET /donations/history
func (h *DonationHandler) GetHistory(c *gin.Context) {
	donations, err := h.donationService.History(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, donations)
}
