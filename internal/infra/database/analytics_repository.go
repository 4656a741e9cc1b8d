package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/napoleonai/waitlist-api/internal/entity"
)

type AnalyticsRepository struct {
	DB *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

const insertEventQuery = `
	INSERT INTO executive_analytics (
		session_id, user_id, event_type, page_url,
		time_on_page, scroll_depth, cta_clicks, conversion_event,
		device_type, traffic_source, user_agent, referrer,
		utm_source, utm_medium, utm_campaign, event_data, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
`

func (r *AnalyticsRepository) InsertEvent(ctx context.Context, event *entity.AnalyticsEvent) error {
	eventData, err := marshalEventData(event.EventData)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, insertEventQuery,
		event.SessionID,
		nullString(event.UserID),
		event.EventType,
		nullString(event.PageURL),
		event.TimeOnPage,
		event.ScrollDepth,
		event.CTAClicks,
		event.ConversionEvent,
		nullString(event.DeviceType),
		nullString(event.TrafficSource),
		nullString(event.UserAgent),
		nullString(event.Referrer),
		nullString(event.UTMSource),
		nullString(event.UTMMedium),
		nullString(event.UTMCampaign),
		eventData,
		createdAtOrNow(event.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert analytics event: %w", err)
	}

	return nil
}

// InsertEventsBatch writes a whole client-side batch in one transaction so a
// partial flush never leaves half a session behind.
func (r *AnalyticsRepository) InsertEventsBatch(ctx context.Context, events []entity.AnalyticsEvent) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertEventQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare batch insert: %w", err)
	}
	defer stmt.Close()

	for i := range events {
		event := &events[i]
		eventData, err := marshalEventData(event.EventData)
		if err != nil {
			return err
		}
		_, err = stmt.ExecContext(ctx,
			event.SessionID,
			nullString(event.UserID),
			event.EventType,
			nullString(event.PageURL),
			event.TimeOnPage,
			event.ScrollDepth,
			event.CTAClicks,
			event.ConversionEvent,
			nullString(event.DeviceType),
			nullString(event.TrafficSource),
			nullString(event.UserAgent),
			nullString(event.Referrer),
			nullString(event.UTMSource),
			nullString(event.UTMMedium),
			nullString(event.UTMCampaign),
			eventData,
			createdAtOrNow(event.CreatedAt),
		)
		if err != nil {
			return fmt.Errorf("failed to insert event in batch: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}

	return nil
}

func marshalEventData(data map[string]interface{}) ([]byte, error) {
	if data == nil {
		return nil, nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event data: %w", err)
	}
	return b, nil
}

func createdAtOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
