package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"certquiz/internal/quiz"
	"certquiz/internal/security"
)

type contextKey string

const deviceIDKey contextKey = "deviceID"

// Middleware bundles the cross-cutting HTTP concerns.
type Middleware struct {
	secret []byte
}

// NewMiddleware creates middleware with the device-token signing secret.
func NewMiddleware(secret []byte) *Middleware {
	return &Middleware{secret: secret}
}

// RequireDevice authenticates the request via the device cookie. Requests
// without a valid signed token are rejected before reaching the handler.
func (m *Middleware) RequireDevice(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(security.DeviceCookieName)
		if err != nil {
			respondError(w, quiz.Unauthenticated("device not initialized"))
			return
		}
		deviceID, err := security.ParseDeviceToken(m.secret, cookie.Value)
		if err != nil {
			respondError(w, quiz.Unauthenticated("invalid device token"))
			return
		}
		ctx := context.WithValue(r.Context(), deviceIDKey, deviceID)
		next(w, r.WithContext(ctx))
	}
}

// DeviceIDFromContext returns the device id set by RequireDevice.
func DeviceIDFromContext(ctx context.Context) string {
	deviceID, _ := ctx.Value(deviceIDKey).(string)
	return deviceID
}

// Logging logs each request with its duration.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}
