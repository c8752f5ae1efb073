package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DeviceCookieName is the cookie carrying the signed device token.
const DeviceCookieName = "cq_device_token"

// NewDeviceID creates a fresh opaque device identifier.
func NewDeviceID() string {
	return uuid.New().String()
}

// SignDeviceToken wraps a device id in an HS256 token. Signing keeps the
// cookie opaque: a client cannot mint or edit a device id, only present the
// one it was issued.
func SignDeviceToken(secret []byte, deviceID string, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   deviceID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseDeviceToken verifies a token and returns the device id inside it.
func ParseDeviceToken(secret []byte, token string) (string, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	claims := &jwt.RegisteredClaims{}

	parsed, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", errors.New("invalid device token")
	}
	return claims.Subject, nil
}
