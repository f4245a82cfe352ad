package main

import (
	"log"
	"os"
	"strings"
	"time"

	"auth"
	"core"
	"zehnly-championship-api/config"
	_ "zehnly-championship-api/docs" // Swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Zehnly Championship API
// @version         1.0
// @description     Tournament bracket bookkeeping backend with JWT admin auth

// @contact.name   API Support

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.ConnectDatabase()

	r := gin.Default()

	r.Use(cors.New(corsConfig()))

	// Auth module owns /admin/login, /admin/refresh and /admin/logout,
	// plus the periodic refresh token cleanup.
	authModule := auth.NewModule(config.DB, config.LoadAuthConfig())
	authModule.SetupRoutes(r)

	if err := authModule.StartScheduler(); err != nil {
		log.Printf("Failed to start scheduler: %v", err)
	}
	defer authModule.StopScheduler()

	coreModule := core.NewModule(config.DB)
	coreModule.SetupRoutes(r, authModule.JWTMiddleware())

	// Swagger endpoint
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Zehnly Championship API", "docs": "/swagger/index.html"})
	})
	r.GET("/health", healthHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	r.Run(":" + port)
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.MaxAge = 12 * time.Hour

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		cfg.AllowAllOrigins = true
		return cfg
	}

	cfg.AllowOrigins = strings.Split(origins, ",")
	return cfg
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Message  string `json:"message" example:"Server is running"`
	Database string `json:"database" example:"connected"`
}

// @Summary Health Check
// @Description Check if the server is running and database is connected
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func healthHandler(c *gin.Context) {
	database := "connected"
	if sqlDB, err := config.DB.DB(); err != nil || sqlDB.Ping() != nil {
		database = "unavailable"
	}

	c.JSON(200, HealthResponse{
		Message:  "Server is running",
		Database: database,
	})
}
