package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nexgen/internal/service"
)

// PincodeHandler handles pincode lookup endpoints.
type PincodeHandler struct {
	pincodeService service.PincodeService
}

// NewPincodeHandler creates a new PincodeHandler.
func NewPincodeHandler(pincodeService service.PincodeService) *PincodeHandler {
	return &PincodeHandler{pincodeService: pincodeService}
}

// Get handles GET /api/v1/pincodes/:pincode
func (h *PincodeHandler) Get(c *gin.Context) {
	loc, err := h.pincodeService.Lookup(c.Request.Context(), c.Param("pincode"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"city": loc.City, "state": loc.State})
}

// Zone handles GET /api/v1/zones?origin=&destination=
func (h *PincodeHandler) Zone(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")
	if origin == "" || destination == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "origin and destination are required")
		return
	}

	result, err := h.pincodeService.Zone(c.Request.Context(), origin, destination)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
