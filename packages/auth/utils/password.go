package utils

import (
	"crypto/subtle"

	"auth/models"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hache un mot de passe avec bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compare un mot de passe avec son hash bcrypt
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// VerifyAdminCredentials vérifie le couple email/mot de passe contre la
// configuration. Le hash bcrypt est prioritaire; à défaut la comparaison se
// fait en temps constant sur le mot de passe en clair.
func VerifyAdminCredentials(cfg models.Config, email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(cfg.AdminEmail)) == 1

	var passwordOK bool
	if cfg.AdminPasswordHash != "" {
		passwordOK = CheckPassword(password, cfg.AdminPasswordHash)
	} else {
		passwordOK = subtle.ConstantTimeCompare([]byte(password), []byte(cfg.AdminPassword)) == 1
	}

	return emailOK && passwordOK
}
