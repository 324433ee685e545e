package service

import (
	"errors"
	"fmt"
	"time"

	"herotech/internal/config"
	"herotech/pkg/timer"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService signs and verifies the bearer tokens used by the cart routes.
// Claims are whatever the client posted to the token endpoint; no schema is
// imposed beyond the expiry this service adds.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service from the configured secret
func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret: []byte(cfg.Auth.Secret),
		ttl:    time.Duration(cfg.Auth.TokenTTLMins) * time.Minute,
	}
}

// Issue signs the claims payload with HS256 and the configured expiry.
func (s *TokenService) Issue(claims map[string]any) (string, error) {
	mapClaims := jwt.MapClaims{}
	for k, v := range claims {
		mapClaims[k] = v
	}
	mapClaims["exp"] = time.Now().Add(s.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the decoded claims. The
// returned error matches exactly one of ErrTokenMalformed, ErrTokenExpired
// or ErrTokenInvalid.
func (s *TokenService) Verify(tokenString string) (jwt.MapClaims, error) {
	defer timer.Track("Verify Access Token")()

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
		}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
