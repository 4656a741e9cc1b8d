package entity

import (
	"context"
	"time"
)

// AnalyticsEvent is one behavioral signal from the landing page: a page view,
// a scroll milestone, a CTA click, or a server-side tracking event. Stored in
// executive_analytics, append-only.
type AnalyticsEvent struct {
	ID              string                 `json:"id,omitempty"`
	SessionID       string                 `json:"session_id"`
	UserID          string                 `json:"user_id,omitempty"`
	EventType       string                 `json:"event_type"`
	PageURL         string                 `json:"page_url,omitempty"`
	TimeOnPage      int                    `json:"time_on_page"`
	ScrollDepth     int                    `json:"scroll_depth"`
	CTAClicks       int                    `json:"cta_clicks"`
	ConversionEvent bool                   `json:"conversion_event"`
	DeviceType      string                 `json:"device_type,omitempty"`
	TrafficSource   string                 `json:"traffic_source,omitempty"`
	UserAgent       string                 `json:"user_agent,omitempty"`
	Referrer        string                 `json:"referrer,omitempty"`
	UTMSource       string                 `json:"utm_source,omitempty"`
	UTMMedium       string                 `json:"utm_medium,omitempty"`
	UTMCampaign     string                 `json:"utm_campaign,omitempty"`
	EventData       map[string]interface{} `json:"event_data,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

// Event types that count as conversions in the funnel.
var conversionEventTypes = map[string]bool{
	"waitlist_signup":    true,
	"demo_request":       true,
	"early_access_click": true,
	"form_complete":      true,
}

func IsConversionEvent(eventType string) bool {
	return conversionEventTypes[eventType]
}

type AnalyticsRepositoryInterface interface {
	InsertEvent(ctx context.Context, event *AnalyticsEvent) error
	InsertEventsBatch(ctx context.Context, events []AnalyticsEvent) error
}
