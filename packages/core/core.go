package core

import (
	"core/handlers"
	"core/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	ChampionshipHandler *handlers.ChampionshipHandler
	ChampionshipService *services.ChampionshipService
	UserHandler         *handlers.UserHandler
	UserService         *services.UserService
	PairingHandler      *handlers.PairingHandler
	PairingService      *services.PairingService
	RoundService        *services.RoundService
	GameHandler         *handlers.GameHandler
	GameService         *services.GameService
	StatsService        *services.StatsService
	db                  *gorm.DB
}

func NewModule(db *gorm.DB) *Module {
	championshipService := services.NewChampionshipService(db)
	userService := services.NewUserService(db)
	pairingService := services.NewPairingService(db)
	roundService := services.NewRoundService(db)
	gameService := services.NewGameService(db)
	statsService := services.NewStatsService(db)

	championshipHandler := handlers.NewChampionshipHandler(championshipService, pairingService, roundService, statsService)
	userHandler := handlers.NewUserHandler(userService)
	pairingHandler := handlers.NewPairingHandler(pairingService)
	gameHandler := handlers.NewGameHandler(gameService)

	return &Module{
		ChampionshipHandler: championshipHandler,
		ChampionshipService: championshipService,
		UserHandler:         userHandler,
		UserService:         userService,
		PairingHandler:      pairingHandler,
		PairingService:      pairingService,
		RoundService:        roundService,
		GameHandler:         gameHandler,
		GameService:         gameService,
		StatsService:        statsService,
		db:                  db,
	}
}

// SetupRoutes registers the public read surface, the external match hooks and
// the admin routes. adminAuth is supplied by the auth module so core stays
// free of any dependency on it.
func (m *Module) SetupRoutes(r *gin.Engine, adminAuth gin.HandlerFunc) {
	r.GET("/championships", m.ChampionshipHandler.ListPublicChampionships)
	r.GET("/championships/:id", m.ChampionshipHandler.GetChampionship)
	r.GET("/pairings/:id", m.PairingHandler.GetPairing)

	users := r.Group("/users")
	{
		users.GET("/:externalId", m.UserHandler.GetUserByExternalID)
		users.GET("/:externalId/tournaments", m.UserHandler.GetUserTournaments)
		users.GET("/:externalId/games", m.UserHandler.GetUserGames)
	}

	games := r.Group("/games")
	{
		games.GET("/:id", m.GameHandler.GetGame)
		games.GET("/external/:externalId", m.GameHandler.GetGameByExternalID)
		games.POST("/start", m.GameHandler.StartGame)
		games.POST("/result", m.GameHandler.RecordResult)
	}

	admin := r.Group("/admin", adminAuth)
	{
		admin.POST("/championships", m.ChampionshipHandler.CreateChampionship)
		admin.GET("/championships", m.ChampionshipHandler.ListChampionshipSummaries)
		admin.GET("/championships/:id", m.ChampionshipHandler.GetChampionship)
		admin.PATCH("/championships/:id", m.ChampionshipHandler.UpdateChampionship)
		admin.DELETE("/championships/:id", m.ChampionshipHandler.DeleteChampionship)
		admin.PATCH("/championships/:id/users/:userId", m.ChampionshipHandler.SetRosterStatus)
		admin.POST("/championships/:id/generate-pairings", m.ChampionshipHandler.GeneratePairings)
		admin.GET("/championships/:id/pairings", m.ChampionshipHandler.ListChampionshipPairings)
		admin.POST("/championships/:id/advance-round", m.ChampionshipHandler.AdvanceRound)
		admin.GET("/championships/:id/stats", m.ChampionshipHandler.GetChampionshipStats)
		admin.PATCH("/pairings/:id", m.PairingHandler.UpdatePairingStatus)

		admin.POST("/users", m.UserHandler.CreateUser)
		admin.GET("/users", m.UserHandler.ListUsers)
	}
}
