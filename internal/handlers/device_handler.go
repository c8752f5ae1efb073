package handlers

import (
	"net/http"
	"time"

	"certquiz/internal/security"
)

// DeviceHandler issues and refreshes the anonymous device identity.
type DeviceHandler struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewDeviceHandler creates a device handler.
func NewDeviceHandler(secret []byte, ttl time.Duration) *DeviceHandler {
	return &DeviceHandler{secret: secret, ttl: ttl, now: time.Now}
}

// Init establishes the device identity. A request carrying a valid token
// keeps its device id and gets a refreshed expiry; anything else gets a
// fresh id. The endpoint is idempotent from the client's point of view.
func (h *DeviceHandler) Init(w http.ResponseWriter, r *http.Request) {
	deviceID := ""
	if cookie, err := r.Cookie(security.DeviceCookieName); err == nil {
		if id, err := security.ParseDeviceToken(h.secret, cookie.Value); err == nil {
			deviceID = id
		}
	}
	if deviceID == "" {
		deviceID = security.NewDeviceID()
	}

	now := h.now()
	token, err := security.SignDeviceToken(h.secret, deviceID, h.ttl, now)
	if err != nil {
		respondError(w, err)
		return
	}

	http.SetCookie(w, security.CreateDeviceCookie(r, token, now.Add(h.ttl)))
	respondJSON(w, http.StatusOK, map[string]string{"deviceId": deviceID})
}
