package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/Ramiogue/dashboard-app2/internal/identity"
	"github.com/Ramiogue/dashboard-app2/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testProvider(t *testing.T) *identity.Provider {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("M001@123"), bcrypt.MinCost)
	require.NoError(t, err)

	content := fmt.Sprintf(`users:
  M001:
    name: Merchant A
    email: a@example.com
    password_hash: %q
    merchant_id: "M001 - Merchant A"
  unbound:
    name: No Mapping
    email: x@example.com
    password_hash: %q
`, hash, hash)

	path := filepath.Join(t.TempDir(), "users.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	provider, err := identity.Load(path)
	require.NoError(t, err)
	return provider
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewService(testProvider(t))

	t.Run("valid credentials issue a token pair", func(t *testing.T) {
		user, access, refresh, err := svc.Login("M001", "M001@123")
		require.NoError(t, err)

		assert.Equal(t, "M001 - Merchant A", user.MerchantID)
		require.NotEmpty(t, access)
		require.NotEmpty(t, refresh)

		claims, err := utils.ParseToken(access)
		require.NoError(t, err)
		assert.Equal(t, "M001", claims.Username)
		assert.Equal(t, "M001 - Merchant A", claims.MerchantID)
	})

	t.Run("case-insensitive username", func(t *testing.T) {
		user, _, _, err := svc.Login("m001", "M001@123")
		require.NoError(t, err)
		assert.Equal(t, "M001", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, _, err := svc.Login("M001", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, _, err := svc.Login("ghost", "M001@123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("valid password without merchant binding", func(t *testing.T) {
		_, _, _, err := svc.Login("unbound", "M001@123")
		assert.ErrorIs(t, err, identity.ErrMerchantMappingNotFound)
	})
}

func TestService_RefreshTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewService(testProvider(t))

	_, _, refresh, err := svc.Login("M001", "M001@123")
	require.NoError(t, err)

	t.Run("valid refresh token rotates the pair", func(t *testing.T) {
		access, newRefresh, err := svc.RefreshTokens(refresh)
		require.NoError(t, err)

		claims, err := utils.ParseToken(access)
		require.NoError(t, err)
		assert.Equal(t, "M001 - Merchant A", claims.MerchantID)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, _, err := svc.RefreshTokens("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})
}
