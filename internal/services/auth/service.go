package auth

import (
	"log"

	"github.com/Ramiogue/dashboard-app2/internal/identity"
	"github.com/Ramiogue/dashboard-app2/internal/models"
	"github.com/Ramiogue/dashboard-app2/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Login(username, password string) (*models.User, string, string, error)
	RefreshTokens(refreshToken string) (string, string, error)
}

type service struct {
	provider *identity.Provider
}

func NewService(provider *identity.Provider) Service {
	return &service{
		provider: provider,
	}
}

func (s *service) Login(username, password string) (*models.User, string, string, error) {
	user, err := s.provider.Lookup(username)
	if err != nil {
		log.Printf("Login failed: user not found for username %q", username)
		return nil, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Printf("Login failed: incorrect password for user %q", user.Username)
		return nil, "", "", ErrInvalidCredentials
	}

	// The merchant binding has to exist before a dashboard session makes
	// sense; a valid password with no binding is an operator config error.
	user, err = s.provider.Merchant(user.Username)
	if err != nil {
		return nil, "", "", err
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&models.UserClaims{
		Username:   user.Username,
		Name:       user.Name,
		Email:      user.Email,
		MerchantID: user.MerchantID,
	})
	if err != nil {
		log.Println("Error generating tokens:", err)
		return nil, "", "", ErrTokenGeneration
	}

	return user, accessToken, refreshToken, nil
}

func (s *service) RefreshTokens(refreshToken string) (string, string, error) {
	claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return "", "", ErrInvalidRefreshToken
	}

	// Re-resolve the user so an edited users file takes effect on refresh.
	user, err := s.provider.Merchant(claims.Username)
	if err != nil {
		return "", "", err
	}

	return utils.GenerateTokens(&models.UserClaims{
		Username:   user.Username,
		Name:       user.Name,
		Email:      user.Email,
		MerchantID: user.MerchantID,
	})
}
