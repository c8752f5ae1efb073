package security

import (
	"net/http"
	"time"
)

// IsSecureRequest determines if the request is over HTTPS. Checks the TLS
// connection, the X-Forwarded-Proto header (for reverse proxies), and the
// URL scheme.
func IsSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "https" {
		return true
	}
	if r.URL.Scheme == "https" {
		return true
	}
	return false
}

// CreateDeviceCookie builds the long-lived device cookie with proper
// security flags. The Secure flag follows the request scheme.
func CreateDeviceCookie(r *http.Request, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     DeviceCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	}
}

