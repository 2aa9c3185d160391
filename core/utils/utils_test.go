package utils

import (
	"strings"
	"testing"
	"time"

	"meeting-planner/core/config"
	"meeting-planner/core/constants"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T, secret string, minutes int) {
	t.Helper()
	config.Set(&config.Config{
		JWT: config.JWTConfig{Secret: secret, Issuer: "meeting-planner-test", ExpireInMinutes: minutes},
	})
}

func TestToken(t *testing.T) {
	userID := uuid.New()
	meetingID := uuid.New()

	t.Run("round trip keeps claims", func(t *testing.T) {
		setTestConfig(t, "secret-a", 60)

		token, err := GenerateToken(userID, meetingID, constants.TokenRoleHost)
		require.NoError(t, err)

		claims, err := ValidateAndParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, meetingID, claims.MeetingID)
		assert.Equal(t, constants.ScopeTokenAccess, claims.Scope)
		assert.Equal(t, "meeting-planner-test", claims.Issuer)
		assert.True(t, claims.IsHost())
		assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("member is not host", func(t *testing.T) {
		setTestConfig(t, "secret-a", 60)

		token, err := GenerateToken(userID, meetingID, constants.TokenRoleMember)
		require.NoError(t, err)

		claims, err := ValidateAndParseToken(token)
		require.NoError(t, err)
		assert.False(t, claims.IsHost())
	})

	t.Run("other secret is rejected", func(t *testing.T) {
		setTestConfig(t, "secret-a", 60)
		token, err := GenerateToken(userID, meetingID, constants.TokenRoleHost)
		require.NoError(t, err)

		setTestConfig(t, "secret-b", 60)
		_, err = ValidateAndParseToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token reports expiry", func(t *testing.T) {
		setTestConfig(t, "secret-a", 60)

		claims := TokenClaims{
			UserID:    userID,
			MeetingID: meetingID,
			Role:      constants.TokenRoleHost,
			Scope:     constants.ScopeTokenAccess,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret-a"))
		require.NoError(t, err)

		_, err = ValidateAndParseToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong scope is rejected", func(t *testing.T) {
		setTestConfig(t, "secret-a", 60)

		claims := TokenClaims{UserID: userID, Scope: "reset_password"}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret-a"))
		require.NoError(t, err)

		_, err = ValidateAndParseToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestPassword(t *testing.T) {
	hashed, err := HashPassword("0000")
	require.NoError(t, err)

	assert.NotEqual(t, "0000", hashed)
	assert.True(t, CheckPassword(hashed, "0000"))
	assert.False(t, CheckPassword(hashed, "1111"))
	assert.False(t, CheckPassword("not-a-hash", "0000"))
}

func TestGenerateMeetingCode(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		wantPrefix string
	}{
		{name: "slugged title", title: "Weekly Sync!", wantPrefix: "weekly-sync-"},
		{name: "long title is truncated", title: "quarterly planning offsite for everyone", wantPrefix: "quarterly-planning-offsi-"},
		{name: "symbols only", title: "!!!", wantPrefix: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := GenerateMeetingCode(tt.title)
			require.NoError(t, err)

			require.True(t, strings.HasPrefix(code, tt.wantPrefix), code)
			assert.Len(t, strings.TrimPrefix(code, tt.wantPrefix), constants.MeetingCodeLength)
		})
	}

	a, err := GenerateMeetingCode("same")
	require.NoError(t, err)
	b, err := GenerateMeetingCode("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
