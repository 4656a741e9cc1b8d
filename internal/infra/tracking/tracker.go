package tracking

import (
	"context"
	"time"

	"github.com/napoleonai/waitlist-api/internal/entity"
)

// Events originating in request handlers carry no browser session.
const serverSession = "server"

// AnalyticsTracker records server-side events into the analytics table.
// It is constructed once in main and injected wherever tracking is needed;
// there is no package-level instance on purpose.
type AnalyticsTracker struct {
	Repo entity.AnalyticsRepositoryInterface
}

func NewAnalyticsTracker(repo entity.AnalyticsRepositoryInterface) *AnalyticsTracker {
	return &AnalyticsTracker{Repo: repo}
}

// TrackEvent writes one event. Callers on the request path treat the error
// as advisory: log it, never propagate it into the response.
func (t *AnalyticsTracker) TrackEvent(ctx context.Context, eventType string, payload map[string]interface{}) error {
	event := &entity.AnalyticsEvent{
		SessionID:       serverSession,
		EventType:       eventType,
		ConversionEvent: entity.IsConversionEvent(eventType),
		EventData:       payload,
		CreatedAt:       time.Now(),
	}
	return t.Repo.InsertEvent(ctx, event)
}
