package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bloodlink/bloodlink-backend/internal/middleware"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/services"
)

// RequestHandler handles blood request HTTP requests
type RequestHandler struct {
	requestService *services.RequestService
}

// NewRequestHandler creates a new RequestHandler
func NewRequestHandler(requestService *services.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// CreateRequest handles POST /blood-requests
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req models.BloodRequestCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.requestService.Create(c.Request.Context(), middleware.CurrentUser(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// GetRequests handles GET /blood-requests
func (h *RequestHandler) GetRequests(c *gin.Context) {
	requests, err := h.requestService.List(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// UpdateRequest handles PUT /blood-requests/:id
func (h *RequestHandler) UpdateRequest(c *gin.Context) {
	var req models.BloodRequestStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.requestService.UpdateStatus(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "request updated successfully", "status": req.Status})
}
