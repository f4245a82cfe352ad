package handlers

import (
	"net/http"
	"strconv"

	"core/models"
	"core/services"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// GetGame retrieves a game by internal id
// @Summary Get a game
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} models.Game
// @Failure 404 {object} map[string]string
// @Router /games/{id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid game id",
		})
		return
	}

	game, err := h.gameService.GetGameByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// GetGameByExternalID retrieves a game by external id
// @Summary Get a game by external id
// @Tags games
// @Produce json
// @Param externalId path string true "External game ID"
// @Success 200 {object} models.Game
// @Failure 404 {object} map[string]string
// @Router /games/external/{externalId} [get]
func (h *GameHandler) GetGameByExternalID(c *gin.Context) {
	game, err := h.gameService.GetGameByExternalID(c.Param("externalId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// StartGame claims a pending game for an external match
// @Summary Start a game
// @Description Claim the pending game between two players, swapping in the external match id. Calling it again with the same id returns the already started game unchanged.
// @Tags games
// @Accept json
// @Produce json
// @Param request body models.StartGameRequest true "Players and external match id"
// @Success 200 {object} models.Game
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /games/start [post]
func (h *GameHandler) StartGame(c *gin.Context) {
	var req models.StartGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	game, err := h.gameService.StartGame(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// RecordResult records the winner of a game
// @Summary Record a game result
// @Description Finish a game, set its winner and bump the pairing's win tally. A finished game cannot be recorded again.
// @Tags games
// @Accept json
// @Produce json
// @Param request body models.GameResultRequest true "Game and winner external ids"
// @Success 200 {object} models.GameResultResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /games/result [post]
func (h *GameHandler) RecordResult(c *gin.Context) {
	var req models.GameResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	result, err := h.gameService.RecordResult(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
