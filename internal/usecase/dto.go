package usecase

import "github.com/napoleonai/waitlist-api/internal/entity"

// WaitlistSubmission is the raw signup form as posted by the landing page.
// Field names follow the frontend's camelCase wire format.
type WaitlistSubmission struct {
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Company         string `json:"company"`
	Role            string `json:"role"`
	CompanySize     string `json:"companySize"`
	PhoneNumber     string `json:"phoneNumber,omitempty"`
	LinkedinProfile string `json:"linkedinProfile,omitempty"`
	Industry        string `json:"industry,omitempty"`
	TermsAccepted   bool   `json:"termsAccepted"`
	PrivacyAccepted bool   `json:"privacyAccepted"`

	// Behavioral context sent along with the form, stored as-is.
	ConversionTime int    `json:"conversionTime,omitempty"`
	ScrollDepth    int    `json:"scrollDepth,omitempty"`
	CTAClicked     string `json:"ctaClicked,omitempty"`
}

// RequestMeta carries the request-derived attribution data the handler
// extracts from headers. The use case never touches *http.Request.
type RequestMeta struct {
	IPAddress   string
	UserAgent   string
	Referrer    string
	UTMSource   string
	UTMMedium   string
	UTMCampaign string
	DeviceType  string
	Source      string
}

// SignupData is the payload of an accepted signup response.
type SignupData struct {
	ID                string                `json:"id"`
	EstimatedPosition int                   `json:"estimatedPosition"`
	EstimatedWaitTime string                `json:"estimatedWaitTime"`
	Priority          entity.Priority       `json:"priority"`
	ExecutiveLevel    entity.ExecutiveLevel `json:"executiveLevel"`
	NextSteps         []string              `json:"nextSteps"`
}

type SignupOutput struct {
	Data    *SignupData `json:"data"`
	Message string      `json:"message"`
}

// LevelBreakdown and SizeBreakdown are rows of the public stats tables.
type LevelBreakdown struct {
	Level      string  `json:"level"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type SizeBreakdown struct {
	Size       string  `json:"size"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type StatsOutput struct {
	TotalExecutives     int              `json:"totalExecutives"`
	TodaySignups        int              `json:"todaySignups"`
	ConversionRate      float64          `json:"conversionRate"`
	AverageTimeToSignup int              `json:"averageTimeToSignup"`
	TopExecutiveLevels  []LevelBreakdown `json:"topExecutiveLevels"`
	TopCompanySizes     []SizeBreakdown  `json:"topCompanySizes"`
}
