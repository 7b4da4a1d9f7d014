// Command user_seed bcrypt-hashes a password and prints a ready-to-paste
// users-file entry for it. The users file itself is never written; the
// operator owns that file.
package main

import (
	"log"
	"os"

	"github.com/Ramiogue/dashboard-app2/internal/config"
	"github.com/Ramiogue/dashboard-app2/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

func main() {
	config.LoadEnv()

	username := os.Getenv("SEED_USERNAME")
	password := os.Getenv("SEED_PASSWORD")
	name := os.Getenv("SEED_NAME")
	email := os.Getenv("SEED_EMAIL")
	merchantID := os.Getenv("SEED_MERCHANT_ID")

	if username == "" || password == "" || merchantID == "" {
		log.Fatal("SEED_USERNAME, SEED_PASSWORD, and SEED_MERCHANT_ID must be set in environment")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	entry := map[string]map[string]models.User{
		"users": {
			username: {
				Name:         name,
				Email:        email,
				PasswordHash: string(hashedPassword),
				MerchantID:   merchantID,
			},
		},
	}

	out, err := yaml.Marshal(entry)
	if err != nil {
		log.Fatal("Failed to render users entry:", err)
	}

	os.Stdout.Write(out)
}
