package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmailAlreadyExists = errors.New("email already on the waitlist")

// CompanySize is the self-reported employer size from the signup form.
type CompanySize string

const (
	SizeStartup    CompanySize = "startup"
	SizeSmall      CompanySize = "small"
	SizeMedium     CompanySize = "medium"
	SizeLarge      CompanySize = "large"
	SizeEnterprise CompanySize = "enterprise"
	SizeFortune500 CompanySize = "fortune500"
)

// ValidCompanySize reports whether s is one of the closed enum values.
func ValidCompanySize(s CompanySize) bool {
	switch s {
	case SizeStartup, SizeSmall, SizeMedium, SizeLarge, SizeEnterprise, SizeFortune500:
		return true
	}
	return false
}

// ExecutiveLevel is the coarse seniority classification derived from the job
// title. It drives the priority bucket and the estimated wait time.
type ExecutiveLevel string

const (
	LevelCSuite   ExecutiveLevel = "c-suite"
	LevelVP       ExecutiveLevel = "vp"
	LevelDirector ExecutiveLevel = "director"
	LevelSenior   ExecutiveLevel = "senior"
	LevelOther    ExecutiveLevel = "other"
)

// TitleRank is the fine-grained title classification. It feeds the estimated
// monetary value only, never the priority bucket. Kept deliberately separate
// from ExecutiveLevel: the two tables have different granularity and drifted
// apart in production, and sales depends on the fine one.
type TitleRank string

const (
	RankCEO       TitleRank = "ceo"
	RankCFO       TitleRank = "cfo"
	RankCOO       TitleRank = "coo"
	RankCTO       TitleRank = "cto"
	RankPresident TitleRank = "president"
	RankFounder   TitleRank = "founder"
	RankEVP       TitleRank = "evp"
	RankSVP       TitleRank = "svp"
	RankVP        TitleRank = "vp"
	RankDirector  TitleRank = "director"
	RankOther     TitleRank = "other"
)

// CompanyTier is the coarse employer classification used for scoring.
type CompanyTier string

const (
	TierEnterprise CompanyTier = "enterprise"
	TierGrowth     CompanyTier = "growth"
	TierStartup    CompanyTier = "startup"
)

// Priority is the externally visible urgency bucket of a waitlist entry.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

const StatusPending = "pending"

// WaitlistEntry is one executive signup as stored in executive_waitlist.
// Only the sanitized projection of the form ever reaches this struct.
type WaitlistEntry struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Role      string `json:"role"`

	CompanySize     CompanySize `json:"company_size"`
	PhoneNumber     string      `json:"phone_number,omitempty"`
	LinkedinProfile string      `json:"linkedin_profile,omitempty"`
	Industry        string      `json:"industry,omitempty"`

	ExecutiveLevel ExecutiveLevel `json:"executive_level"`
	CompanyTier    CompanyTier    `json:"company_tier"`
	PriorityScore  int            `json:"priority_score"`
	Priority       Priority       `json:"priority"`
	EstimatedValue int            `json:"estimated_value"`

	// Request metadata captured at signup time.
	Source         string `json:"source"`
	IPAddress      string `json:"ip_address,omitempty"`
	UserAgent      string `json:"user_agent,omitempty"`
	Referrer       string `json:"referrer,omitempty"`
	UTMSource      string `json:"utm_source,omitempty"`
	UTMMedium      string `json:"utm_medium,omitempty"`
	UTMCampaign    string `json:"utm_campaign,omitempty"`
	DeviceType     string `json:"device_type"`
	ConversionTime int    `json:"conversion_time"`
	ScrollDepth    int    `json:"scroll_depth"`
	CTAClicked     string `json:"cta_clicked"`

	Status    string    `json:"status"` // pending, verified, contacted, converted
	CreatedAt time.Time `json:"created_at"`
}

// NewWaitlistEntry fills in the server-generated fields.
func NewWaitlistEntry() *WaitlistEntry {
	return &WaitlistEntry{
		ID:        uuid.New().String(),
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}
}

// WaitlistStats is the aggregate view returned by the stats query.
type WaitlistStats struct {
	TotalSignups  int            `json:"total_signups"`
	TodaySignups  int            `json:"today_signups"`
	ByLevel       map[string]int `json:"by_level"`
	ByCompanySize map[string]int `json:"by_company_size"`
}

type WaitlistRepositoryInterface interface {
	Insert(ctx context.Context, entry *WaitlistEntry) error
	CountByStatus(ctx context.Context, status string) (int, error)
	Stats(ctx context.Context) (*WaitlistStats, error)
}
