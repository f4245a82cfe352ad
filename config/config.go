package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"auth"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase opens the Postgres connection from DATABASE_URL.
// TranslateError lets services detect duplicate-key violations with
// errors.Is(err, gorm.ErrDuplicatedKey) regardless of the driver.
func ConnectDatabase() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db
	log.Println("Database connection established")
}

// LoadAuthConfig builds the auth module configuration from the environment.
// Admin credentials and the JWT secret travel in this struct instead of
// package-level globals so the auth collaborator gets them explicitly at
// process start.
func LoadAuthConfig() auth.Config {
	cfg := auth.Config{
		JWTSecret:         []byte(os.Getenv("JWT_SECRET_KEY")),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AccessTokenExpiry: 60 * time.Minute,
	}

	if len(cfg.JWTSecret) == 0 {
		log.Fatal("JWT_SECRET_KEY environment variable not set")
	}
	if cfg.AdminEmail == "" {
		log.Fatal("ADMIN_EMAIL environment variable not set")
	}
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		log.Fatal("Neither ADMIN_PASSWORD nor ADMIN_PASSWORD_HASH is set")
	}

	if minutes := os.Getenv("JWT_EXPIRE_MINUTES"); minutes != "" {
		if m, err := strconv.Atoi(minutes); err == nil && m > 0 {
			cfg.AccessTokenExpiry = time.Duration(m) * time.Minute
		} else {
			log.Printf("Ignoring invalid JWT_EXPIRE_MINUTES value %q", minutes)
		}
	}

	return cfg
}
