package handlers

import (
	"net/http"
	"strconv"

	"core/models"
	"core/services"

	"github.com/gin-gonic/gin"
)

type PairingHandler struct {
	pairingService *services.PairingService
}

func NewPairingHandler(pairingService *services.PairingService) *PairingHandler {
	return &PairingHandler{
		pairingService: pairingService,
	}
}

// GetPairing retrieves a pairing by id
// @Summary Get a pairing
// @Description Pairing with both players and the running win tallies
// @Tags pairings
// @Produce json
// @Param id path int true "Pairing ID"
// @Success 200 {object} models.PairingItem
// @Failure 404 {object} map[string]string
// @Router /pairings/{id} [get]
func (h *PairingHandler) GetPairing(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid pairing id",
		})
		return
	}

	pairing, err := h.pairingService.GetPairingByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pairing)
}

// UpdatePairingStatus eliminates or reactivates a pairing
// @Summary Update a pairing's status
// @Description Set a pairing to active or eliminated; eliminated pairings are skipped on round advancement
// @Tags pairings
// @Accept json
// @Produce json
// @Param id path int true "Pairing ID"
// @Param status body models.UpdatePairingRequest true "New status"
// @Success 200 {object} models.PairingItem
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/pairings/{id} [patch]
func (h *PairingHandler) UpdatePairingStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid pairing id",
		})
		return
	}

	var req models.UpdatePairingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	pairing, err := h.pairingService.UpdatePairingStatus(uint(id), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pairing)
}
