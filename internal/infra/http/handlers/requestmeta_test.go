package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRequestMeta(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/waitlist", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0)")
	req.Header.Set("Referer", "https://napoleonai.app/?utm_source=linkedin&utm_medium=social&utm_campaign=exec-launch")
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

	meta := ExtractRequestMeta(req)

	assert.Equal(t, "203.0.113.9", meta.IPAddress)
	assert.Equal(t, "mobile", meta.DeviceType)
	assert.Equal(t, "linkedin", meta.UTMSource)
	assert.Equal(t, "social", meta.UTMMedium)
	assert.Equal(t, "exec-launch", meta.UTMCampaign)
	assert.Equal(t, "landing_page", meta.Source)
}

func TestGetClientIPPrecedence(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1:1234", getClientIP(req))

	req.Header.Set("X-Real-IP", "198.51.100.7")
	assert.Equal(t, "198.51.100.7", getClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", getClientIP(req))
}

func TestDeviceTypeFromUserAgent(t *testing.T) {
	assert.Equal(t, "mobile", deviceTypeFromUserAgent("Mozilla/5.0 (Linux; Android 14)"))
	assert.Equal(t, "tablet", deviceTypeFromUserAgent("Mozilla/5.0 (iPad; CPU OS 17_0)"))
	assert.Equal(t, "tablet", deviceTypeFromUserAgent("Mozilla/5.0 (Linux; Android 14; Tablet)"))
	assert.Equal(t, "desktop", deviceTypeFromUserAgent("Mozilla/5.0 (Macintosh; Intel Mac OS X)"))
	assert.Equal(t, "desktop", deviceTypeFromUserAgent(""))
}
