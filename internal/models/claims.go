package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims carries the authenticated session through request handling.
// MerchantID travels in the token so the dashboard pipeline never has to
// consult ambient state to know which merchant it is rendering for.
type UserClaims struct {
	jwt.RegisteredClaims
	Username   string `json:"username"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	MerchantID string `json:"merchant_id"`
}
