package handlers

import (
	"net/http"

	"core/models"
	"core/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser registers a new user
// @Summary Create a user
// @Description Register a user under the external id the upstream system knows them by
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.CreateUserRequest true "User data"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /admin/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	user, err := h.userService.CreateUser(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ListUsers lists every registered user
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUserByExternalID retrieves a user by external id
// @Summary Get a user
// @Tags users
// @Produce json
// @Param externalId path string true "External user ID"
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]string
// @Router /users/{externalId} [get]
func (h *UserHandler) GetUserByExternalID(c *gin.Context) {
	user, err := h.userService.GetUserByExternalID(c.Param("externalId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUserTournaments lists a user's championship enrollments
// @Summary Get a user's tournaments
// @Description List every championship the user is enrolled in with their roster status
// @Tags users
// @Produce json
// @Param externalId path string true "External user ID"
// @Success 200 {array} models.UserTournamentStatus
// @Failure 404 {object} map[string]string
// @Router /users/{externalId}/tournaments [get]
func (h *UserHandler) GetUserTournaments(c *gin.Context) {
	tournaments, err := h.userService.GetUserTournaments(c.Param("externalId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tournaments)
}

// GetUserGames returns a user's game history
// @Summary Get a user's games
// @Description Game history across all championships, newest round first
// @Tags users
// @Produce json
// @Param externalId path string true "External user ID"
// @Success 200 {array} models.GameHistoryItem
// @Failure 404 {object} map[string]string
// @Router /users/{externalId}/games [get]
func (h *UserHandler) GetUserGames(c *gin.Context) {
	games, err := h.userService.GetUserGames(c.Param("externalId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, games)
}
