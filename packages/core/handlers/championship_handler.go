package handlers

import (
	"net/http"
	"strconv"

	"core/models"
	"core/services"

	"github.com/gin-gonic/gin"
)

type ChampionshipHandler struct {
	championshipService *services.ChampionshipService
	pairingService      *services.PairingService
	roundService        *services.RoundService
	statsService        *services.StatsService
}

func NewChampionshipHandler(
	championshipService *services.ChampionshipService,
	pairingService *services.PairingService,
	roundService *services.RoundService,
	statsService *services.StatsService,
) *ChampionshipHandler {
	return &ChampionshipHandler{
		championshipService: championshipService,
		pairingService:      pairingService,
		roundService:        roundService,
		statsService:        statsService,
	}
}

func championshipIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid championship id",
		})
		return 0, false
	}
	return uint(id), true
}

// CreateChampionship creates a new championship
// @Summary Create a championship
// @Description Create a new championship, active by default
// @Tags championships
// @Accept json
// @Produce json
// @Param championship body models.CreateChampionshipRequest true "Championship data"
// @Success 201 {object} models.Championship
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /admin/championships [post]
func (h *ChampionshipHandler) CreateChampionship(c *gin.Context) {
	var req models.CreateChampionshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	championship, err := h.championshipService.CreateChampionship(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, championship)
}

// ListChampionshipSummaries lists all championships with counters
// @Summary List championships (admin)
// @Description List every championship with its current round and roster, pairing and game counters
// @Tags championships
// @Produce json
// @Success 200 {array} models.ChampionshipSummary
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /admin/championships [get]
func (h *ChampionshipHandler) ListChampionshipSummaries(c *gin.Context) {
	summaries, err := h.championshipService.GetChampionshipSummaries()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// GetChampionship retrieves a championship by id
// @Summary Get a championship
// @Tags championships
// @Produce json
// @Param id path int true "Championship ID"
// @Success 200 {object} models.Championship
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/championships/{id} [get]
func (h *ChampionshipHandler) GetChampionship(c *gin.Context) {
	id, ok := championshipIDParam(c)
	if !ok {
		return
	}

	championship, err := h.championshipService.GetChampionshipByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, championship)
}

// UpdateChampionship updates a championship's name or status
// @Summary Update a championship
// @Description Update the name and/or status of a championship
// @Tags championships
// @Accept json
// @Produce json
// @Param id path int true "Championship ID"
// @Param championship body models.UpdateChampionshipRequest true "Fields to update"
// @Success 200 {object} models.Championship
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/championships/{id} [patch]
func (h *ChampionshipHandler) UpdateChampionship(c *gin.Context) {
	id, ok := championshipIDParam(c)
	if !ok {
		return
	}

	var req models.UpdateChampionshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	championship, err := h.championshipService.UpdateChampionship(id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, championship)
}

// DeleteChampionship deletes a championship and everything under it
// @Summary Delete a championship
// @Description Delete a championship; its pairings, games and roster memberships are removed with it
// @Tags championships
// @Produce json
// @Param id path int true "Championship ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/championships/{id} [delete]
func (h *ChampionshipHandler) DeleteChampionship(c *gin.Context) {
	id, ok := championshipIDParam(c)
	if !ok {
		return
	}

	if err := h.championshipService.DeleteChampionship(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Championship deleted successfully",
	})
}

// ListPublicChampionships lists all championships
// @Summary List championships
// @Tags championships
// @Produce json
// @Success 200 {array} models.Championship
// @Router /championships [get]
func (h *ChampionshipHandler) ListPublicChampionships(c *gin.Context) {
	championships, err := h.championshipService.GetAllChampionships()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, championships)
}

// SetRosterStatus changes a user's roster status in a championship
// @Summary Eliminate or reinstate a roster member
// @Description Set a user's roster status within a championship to active or eliminated
// @Tags championships
// @Accept json
// @Produce json
// @Param id path int true "Championship ID"
// @Param userId path int true "User ID"
// @Param status body models.UpdateRosterStatusRequest true "New roster status"
// @Success 200 {object} models.UserChampionship
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/championships/{id}/users/{userId} [patch]
func (h *ChampionshipHandler) SetRosterStatus(c *gin.Context) {
	id, ok := championshipIDParam(c)
	if !ok {
		return
	}

	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user id",
		})
		return
	}

	var req models.UpdateRosterStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	membership, err := h.championshipService.SetRosterStatus(id, uint(userID), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, membership)
}

// GeneratePairings pairs up the given users within a championship
// @Summary Generate pairings
// @Description Enroll the given users in the championship and pair them randomly; an odd leftover is reported unpaired
// @Tags pairings
// @Accept json
// @Produce json
// @Param id path int true "Championship ID"
// @Param request body models.GeneratePairingsRequest true "User ids to pair"
// @Success 201 {object} models.GeneratePairingsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /admin/championships/{id}/generate-pairings [post]
func (h *ChampionshipHandler) GeneratePairings(c *gin.Context) {
	id, ok := championshipIDParam(c)
	if !ok {
		return
	}

	var req models.GeneratePairingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	response, err := h.pairingService.GeneratePairings(id, req.UserIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListChampionshipPairings lists a championship's pairings
// @Summary List pairings of a championship
// @Tags pairings
// @Produce json
// @Param id path int true "Championship ID"
// @Success 200 {array} models.PairingItem
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/championships/{id}/pairings [get]
func (h *ChampionshipHandler) ListChampionshipPairings(c *gin.Context) {
	id, ok := championshipIDParam(c)
	if !ok {
		return
	}

	pairings, err := h.pairingService.GetChampionshipPairings(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pairings)
}

// AdvanceRound moves a championship to its next round
// @Summary Advance the round
// @Description Forfeit every unfinished game of the current round and open a new game for each active pairing
// @Tags rounds
// @Produce json
// @Param id path int true "Championship ID"
// @Success 200 {object} models.AdvanceRoundResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /admin/championships/{id}/advance-round [post]
func (h *ChampionshipHandler) AdvanceRound(c *gin.Context) {
	id, ok := championshipIDParam(c)
	if !ok {
		return
	}

	response, err := h.roundService.AdvanceRound(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetChampionshipStats aggregates counters for a championship
// @Summary Championship statistics
// @Description Roster, pairing and game counters for a championship, with games bucketed per round
// @Tags stats
// @Produce json
// @Param id path int true "Championship ID"
// @Success 200 {object} models.ChampionshipStats
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /admin/championships/{id}/stats [get]
func (h *ChampionshipHandler) GetChampionshipStats(c *gin.Context) {
	id, ok := championshipIDParam(c)
	if !ok {
		return
	}

	stats, err := h.statsService.GetChampionshipStats(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
