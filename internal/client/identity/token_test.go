package identity

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/mpavlenko/recipekeeper/internal/common"
)

var testSecret = []byte("test-secret")

func makeToken(t *testing.T, email string, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
		Email: email,
	})
	s, err := token.SignedString(testSecret)
	require.NoError(t, err)
	return s
}

func TestUserIDFromToken(t *testing.T) {
	tok := makeToken(t, "cook@example.com", time.Hour)

	id, err := UserIDFromToken(tok, testSecret)
	require.NoError(t, err)
	require.Equal(t, "cook@example.com", id)
}

func TestUserIDFromToken_WrongKey(t *testing.T) {
	tok := makeToken(t, "cook@example.com", time.Hour)

	_, err := UserIDFromToken(tok, []byte("other-key"))
	require.Error(t, err)
}

func TestUserIDFromToken_Expired(t *testing.T) {
	tok := makeToken(t, "cook@example.com", -time.Minute)

	_, err := UserIDFromToken(tok, testSecret)
	require.Error(t, err)
}

func TestUserIDFromToken_MissingEmail(t *testing.T) {
	tok := makeToken(t, "", time.Hour)

	_, err := UserIDFromToken(tok, testSecret)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestUserIDFromTokenUnverified(t *testing.T) {
	tok := makeToken(t, "cook@example.com", time.Hour)

	id, err := UserIDFromTokenUnverified(tok)
	require.NoError(t, err)
	require.Equal(t, "cook@example.com", id)

	_, err = UserIDFromTokenUnverified("garbage")
	require.Error(t, err)
}
