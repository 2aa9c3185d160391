package utils

import (
	"errors"
	"fmt"
	"time"

	"meeting-planner/core/config"
	"meeting-planner/core/constants"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenClaims identifies one participant of one meeting.
type TokenClaims struct {
	UserID    uuid.UUID `json:"user_id"`
	MeetingID uuid.UUID `json:"meeting_id"`
	Role      string    `json:"role"`
	Scope     string    `json:"scope"`
	jwt.RegisteredClaims
}

func (c *TokenClaims) IsHost() bool {
	return c.Role == constants.TokenRoleHost
}

func tokenSettings() (secret []byte, issuer string, ttl time.Duration) {
	ttl = constants.AccessTokenTTL
	cfg, ok := config.GetSafe()
	if !ok {
		return nil, "", ttl
	}
	if cfg.JWT.ExpireInMinutes > 0 {
		ttl = time.Duration(cfg.JWT.ExpireInMinutes) * time.Minute
	}
	return []byte(cfg.JWT.Secret), cfg.JWT.Issuer, ttl
}

func GenerateToken(userID, meetingID uuid.UUID, role string) (string, error) {
	secret, issuer, ttl := tokenSettings()
	if len(secret) == 0 {
		return "", errors.New("jwt secret is not configured")
	}

	now := time.Now()
	claims := TokenClaims{
		UserID:    userID,
		MeetingID: meetingID,
		Role:      role,
		Scope:     constants.ScopeTokenAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ValidateAndParseToken verifies signature, expiry and scope. Expired tokens
// are reported with an error wrapping jwt.ErrTokenExpired.
func ValidateAndParseToken(tokenString string) (*TokenClaims, error) {
	secret, _, _ := tokenSettings()
	if len(secret) == 0 {
		return nil, errors.New("jwt secret is not configured")
	}

	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Scope != constants.ScopeTokenAccess {
		return nil, fmt.Errorf("%w: unexpected scope %q", ErrInvalidToken, claims.Scope)
	}
	return claims, nil
}
