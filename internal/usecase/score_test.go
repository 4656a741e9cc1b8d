package usecase

import (
	"testing"

	"github.com/napoleonai/waitlist-api/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestIsBusinessEmail(t *testing.T) {
	assert.True(t, IsBusinessEmail("jane@acme.com"))
	assert.False(t, IsBusinessEmail("jane@gmail.com"))
	assert.False(t, IsBusinessEmail("jane@fastmail.com"))
	assert.False(t, IsBusinessEmail("no-at-sign"))
	assert.False(t, IsBusinessEmail(""))
}

func TestCalculatePriorityScoreFullStack(t *testing.T) {
	data := WaitlistSubmission{
		Email:           "jane@acme.com",
		Role:            "CEO",
		CompanySize:     "fortune500",
		LinkedinProfile: "https://linkedin.com/in/janedoe",
	}
	// 10 (c-suite) + 8 (enterprise) + 3 (business email) + 2 (linkedin)
	assert.Equal(t, 23, CalculatePriorityScore(data))
}

func TestPriorityScoreMonotonicInSeniority(t *testing.T) {
	roles := []string{"CEO", "VP of Sales", "Director of Sales", "Senior Account Executive", "Analyst"}

	prev := 1 << 30
	for _, role := range roles {
		data := WaitlistSubmission{Email: "jane@acme.com", Role: role, CompanySize: "medium"}
		score := CalculatePriorityScore(data)
		assert.LessOrEqual(t, score, prev, role)
		prev = score
	}
}

func TestPriorityScoreMonotonicInCompanyTier(t *testing.T) {
	sizes := []string{"fortune500", "medium", "startup"}

	prev := 1 << 30
	for _, size := range sizes {
		data := WaitlistSubmission{Email: "jane@acme.com", Role: "Director", CompanySize: size}
		score := CalculatePriorityScore(data)
		assert.LessOrEqual(t, score, prev, size)
		prev = score
	}
}

func TestPriorityBucketThresholds(t *testing.T) {
	assert.Equal(t, entity.PriorityCritical, PriorityBucket(15))
	assert.Equal(t, entity.PriorityCritical, PriorityBucket(23))
	assert.Equal(t, entity.PriorityHigh, PriorityBucket(14))
	assert.Equal(t, entity.PriorityHigh, PriorityBucket(10))
	assert.Equal(t, entity.PriorityMedium, PriorityBucket(9))
	assert.Equal(t, entity.PriorityMedium, PriorityBucket(6))
	assert.Equal(t, entity.PriorityLow, PriorityBucket(5))
	assert.Equal(t, entity.PriorityLow, PriorityBucket(0))
}

func TestEstimatedValue(t *testing.T) {
	// ceo base 10000 × fortune500 2.5
	assert.Equal(t, 25000, EstimatedValue("CEO", entity.SizeFortune500, ""))
	// director base 2000 × startup 0.8
	assert.Equal(t, 1600, EstimatedValue("Director of IT", entity.SizeStartup, ""))
	// industry multiplier applies on top: cto 7000 × large 1.5 × finance 1.3
	assert.Equal(t, 13650, EstimatedValue("CTO", entity.SizeLarge, "finance"))
	// unknown title and size fall back to base 1000 × 1.0
	assert.Equal(t, 1000, EstimatedValue("Staff Engineer", entity.CompanySize("unknown"), ""))
}

func TestEstimatedValueIndependentOfPriorityBucket(t *testing.T) {
	// An SVP and a VP land in the same coarse vp tier (same bucket inputs)
	// but carry different estimated values. The two scoring paths must not
	// be merged.
	svp := WaitlistSubmission{Email: "a@acme.com", Role: "SVP Sales", CompanySize: "large"}
	vp := WaitlistSubmission{Email: "b@acme.com", Role: "VP Sales", CompanySize: "large"}

	assert.Equal(t, CalculatePriorityScore(svp), CalculatePriorityScore(vp))
	assert.NotEqual(t,
		EstimatedValue(svp.Role, entity.SizeLarge, ""),
		EstimatedValue(vp.Role, entity.SizeLarge, ""),
	)
}

func TestCalculateWaitTime(t *testing.T) {
	// c-suite with score 20: 3 days × max(0.3, 0) = 0.9, ceil to 1
	assert.Equal(t, "1 day", CalculateWaitTime(20, entity.LevelCSuite))
	// score past 20 still floors at the 0.3 modifier
	assert.Equal(t, "1 day", CalculateWaitTime(23, entity.LevelCSuite))
	// other with score 0: 30 days × 1.0 = 30 → weeks
	assert.Equal(t, "5 weeks", CalculateWaitTime(0, entity.LevelOther))
	// vp with score 10: 7 × 0.5 = 3.5 → 4 days
	assert.Equal(t, "4 days", CalculateWaitTime(10, entity.LevelVP))
	// director with score 4: 14 × 0.8 = 11.2 → 12 days → 2 weeks
	assert.Equal(t, "2 weeks", CalculateWaitTime(4, entity.LevelDirector))
}
