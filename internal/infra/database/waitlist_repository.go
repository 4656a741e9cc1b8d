package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"
	"github.com/napoleonai/waitlist-api/internal/entity"
)

type WaitlistRepository struct {
	DB *sql.DB
}

func NewWaitlistRepository(db *sql.DB) *WaitlistRepository {
	return &WaitlistRepository{DB: db}
}

func (r *WaitlistRepository) Insert(ctx context.Context, entry *entity.WaitlistEntry) error {
	query := `
		INSERT INTO executive_waitlist (
			id, email, first_name, last_name, company, role,
			company_size, phone_number, linkedin_profile, industry,
			executive_level, company_tier, priority_score, priority, estimated_value,
			source, ip_address, user_agent, referrer,
			utm_source, utm_medium, utm_campaign, device_type,
			conversion_time, scroll_depth, cta_clicked,
			status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
		RETURNING id, created_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		entry.ID,
		entry.Email,
		entry.FirstName,
		entry.LastName,
		entry.Company,
		entry.Role,
		string(entry.CompanySize),
		nullString(entry.PhoneNumber),
		nullString(entry.LinkedinProfile),
		nullString(entry.Industry),
		string(entry.ExecutiveLevel),
		string(entry.CompanyTier),
		entry.PriorityScore,
		string(entry.Priority),
		entry.EstimatedValue,
		entry.Source,
		nullString(entry.IPAddress),
		nullString(entry.UserAgent),
		nullString(entry.Referrer),
		nullString(entry.UTMSource),
		nullString(entry.UTMMedium),
		nullString(entry.UTMCampaign),
		entry.DeviceType,
		entry.ConversionTime,
		entry.ScrollDepth,
		entry.CTAClicked,
		entry.Status,
		entry.CreatedAt,
	).Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}
		log.Printf("waitlist insert failed: %v", err)
		return err
	}

	return nil
}

func (r *WaitlistRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM executive_waitlist WHERE status = $1`,
		status,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Stats calls the aggregate function maintained in the database, the same
// one the Supabase dashboard uses.
func (r *WaitlistRepository) Stats(ctx context.Context) (*entity.WaitlistStats, error) {
	stats := &entity.WaitlistStats{
		ByLevel:       make(map[string]int),
		ByCompanySize: make(map[string]int),
	}

	err := r.DB.QueryRowContext(ctx,
		`SELECT total_signups, today_signups FROM get_executive_waitlist_stats()`,
	).Scan(&stats.TotalSignups, &stats.TodaySignups)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx,
		`SELECT executive_level, COUNT(*) FROM executive_waitlist GROUP BY executive_level`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var level string
		var count int
		if err := rows.Scan(&level, &count); err != nil {
			return nil, err
		}
		stats.ByLevel[level] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sizeRows, err := r.DB.QueryContext(ctx,
		`SELECT company_size, COUNT(*) FROM executive_waitlist GROUP BY company_size`,
	)
	if err != nil {
		return nil, err
	}
	defer sizeRows.Close()
	for sizeRows.Next() {
		var size string
		var count int
		if err := sizeRows.Scan(&size, &count); err != nil {
			return nil, err
		}
		stats.ByCompanySize[size] = count
	}
	if err := sizeRows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
