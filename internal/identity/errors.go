package identity

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrMerchantMappingNotFound = errors.New("merchant mapping not found for this user")
)
