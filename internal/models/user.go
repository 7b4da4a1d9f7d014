package models

// User is one entry of the static users file maintained by the identity
// provider. PasswordHash is a bcrypt hash; MerchantID is the exact business
// name string expected in the transactions extract for this merchant's rows.
type User struct {
	Username     string `yaml:"-" json:"username"`
	Name         string `yaml:"name" json:"name"`
	Email        string `yaml:"email" json:"email"`
	PasswordHash string `yaml:"password_hash" json:"-"`
	MerchantID   string `yaml:"merchant_id" json:"merchant_id"`
}
