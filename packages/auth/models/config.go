package models

import (
	"time"
)

// Config regroupe le secret JWT et l'identifiant admin partagé. Le backend
// ne connaît qu'un seul compte; tout token d'accès est émis pour AdminEmail.
type Config struct {
	JWTSecret         []byte
	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string
	AccessTokenExpiry time.Duration
}
