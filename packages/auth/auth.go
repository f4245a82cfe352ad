package auth

import (
	"auth/cron"
	"auth/handlers"
	"auth/middleware"
	"auth/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Config porte l'unique identifiant admin partagé et les paramètres JWT.
// Soit AdminPasswordHash (bcrypt) soit AdminPassword (clair) doit être
// renseigné; le hash est prioritaire.
type Config = models.Config

type Module struct {
	Handler   *handlers.AuthHandler
	Scheduler *cron.Scheduler
	Config    Config
}

func NewModule(db *gorm.DB, cfg Config) *Module {
	return &Module{
		Handler:   handlers.NewAuthHandler(db, cfg),
		Scheduler: cron.NewScheduler(db),
		Config:    cfg,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	{
		admin.POST("/login", m.Handler.Login)
		admin.POST("/refresh", m.Handler.RefreshToken)
		admin.POST("/logout", m.Handler.Logout)
	}
}

// JWTMiddleware protège les routes admin avec le token d'accès.
func (m *Module) JWTMiddleware() gin.HandlerFunc {
	return middleware.JWTMiddleware(m.Config)
}

// StartScheduler démarre le nettoyage périodique des refresh tokens.
func (m *Module) StartScheduler() error {
	return m.Scheduler.Start()
}

func (m *Module) StopScheduler() {
	m.Scheduler.Stop()
}

func GetAdminEmail(c *gin.Context) (string, bool) {
	return middleware.GetAdminEmail(c)
}
