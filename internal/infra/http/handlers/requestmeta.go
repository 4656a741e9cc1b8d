package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/napoleonai/waitlist-api/internal/usecase"
)

// ExtractRequestMeta pulls the attribution data out of the request headers:
// client IP, device type from the user agent, and UTM parameters carried on
// the referer URL.
func ExtractRequestMeta(r *http.Request) usecase.RequestMeta {
	userAgent := r.Header.Get("User-Agent")
	referer := r.Header.Get("Referer")

	return usecase.RequestMeta{
		IPAddress:   getClientIP(r),
		UserAgent:   userAgent,
		Referrer:    referer,
		UTMSource:   extractUTMParam(referer, "utm_source"),
		UTMMedium:   extractUTMParam(referer, "utm_medium"),
		UTMCampaign: extractUTMParam(referer, "utm_campaign"),
		DeviceType:  deviceTypeFromUserAgent(userAgent),
		Source:      "landing_page",
	}
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// first hop is the client, the rest are proxies
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

func extractUTMParam(rawURL, param string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Query().Get(param)
}

func deviceTypeFromUserAgent(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "android") && !strings.Contains(ua, "tablet"):
		return "mobile"
	case strings.Contains(ua, "ipad"), strings.Contains(ua, "tablet"), strings.Contains(ua, "kindle"):
		return "tablet"
	default:
		return "desktop"
	}
}
