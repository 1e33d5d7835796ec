package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ridequest/rideon-api/internal/config"
)

// Principal kinds embedded in token claims. Scoping tokens by kind
// keeps a parent token from ever resolving against the volunteers
// table, even when the numeric ids collide.
const (
	KindParent    = "parent"
	KindVolunteer = "volunteer"
)

const tokenTTL = 365 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// IssueToken signs an HS256 token carrying the principal's id and
// kind, valid for one year. There is no refresh mechanism.
func IssueToken(cfg *config.Config, kind string, id uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":   id,
		"kind": kind,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseToken verifies the signature and expiry and returns the
// embedded kind and principal id. Any failure maps to
// ErrInvalidToken.
func ParseToken(cfg *config.Config, tokenStr string) (string, uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", 0, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", 0, ErrInvalidToken
	}
	idFloat, ok := claims["id"].(float64)
	if !ok {
		return "", 0, ErrInvalidToken
	}
	kind, ok := claims["kind"].(string)
	if !ok || (kind != KindParent && kind != KindVolunteer) {
		return "", 0, ErrInvalidToken
	}
	return kind, uint(idFloat), nil
}
