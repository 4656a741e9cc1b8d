package usecase

import (
	"math"

	"github.com/napoleonai/waitlist-api/internal/entity"
)

var consumerEmailDomains = map[string]bool{
	"gmail.com":      true,
	"yahoo.com":      true,
	"hotmail.com":    true,
	"outlook.com":    true,
	"aol.com":        true,
	"icloud.com":     true,
	"live.com":       true,
	"msn.com":        true,
	"ymail.com":      true,
	"protonmail.com": true,
	"mail.com":       true,
	"gmx.com":        true,
	"zoho.com":       true,
	"fastmail.com":   true,
	"hey.com":        true,
}

// IsBusinessEmail reports whether the address belongs to a company domain
// rather than a consumer webmail provider.
func IsBusinessEmail(email string) bool {
	domain := CompanyDomain(email)
	if domain == "" {
		return false
	}
	return !consumerEmailDomains[domain]
}

var levelScores = map[entity.ExecutiveLevel]int{
	entity.LevelCSuite:   10,
	entity.LevelVP:       7,
	entity.LevelDirector: 5,
	entity.LevelSenior:   3,
	entity.LevelOther:    1,
}

var tierScores = map[entity.CompanyTier]int{
	entity.TierEnterprise: 8,
	entity.TierGrowth:     5,
	entity.TierStartup:    3,
}

const (
	businessEmailBonus = 3
	linkedinBonus      = 2
)

// CalculatePriorityScore is the weighted sum behind the priority bucket:
// seniority + company tier + business-email bonus + LinkedIn bonus.
func CalculatePriorityScore(data WaitlistSubmission) int {
	score := levelScores[ExecutiveLevelFromRole(data.Role)]
	score += tierScores[CompanyTierFromSize(entity.CompanySize(data.CompanySize))]
	if IsBusinessEmail(data.Email) {
		score += businessEmailBonus
	}
	if data.LinkedinProfile != "" {
		score += linkedinBonus
	}
	return score
}

// PriorityBucket maps a raw score onto the urgency bucket.
func PriorityBucket(score int) entity.Priority {
	switch {
	case score >= 15:
		return entity.PriorityCritical
	case score >= 10:
		return entity.PriorityHigh
	case score >= 6:
		return entity.PriorityMedium
	default:
		return entity.PriorityLow
	}
}

// Base customer value in dollars by fine-grained title rank.
var rankBaseValues = map[entity.TitleRank]float64{
	entity.RankCEO:       10000,
	entity.RankCFO:       8000,
	entity.RankCOO:       8000,
	entity.RankCTO:       7000,
	entity.RankPresident: 9000,
	entity.RankFounder:   8500,
	entity.RankEVP:       6000,
	entity.RankSVP:       5000,
	entity.RankVP:        4000,
	entity.RankDirector:  2000,
	entity.RankOther:     1000,
}

var companySizeMultipliers = map[entity.CompanySize]float64{
	entity.SizeFortune500: 2.5,
	entity.SizeEnterprise: 2.0,
	entity.SizeLarge:      1.5,
	entity.SizeMedium:     1.2,
	entity.SizeSmall:      1.0,
	entity.SizeStartup:    0.8,
}

var industryMultipliers = map[string]float64{
	"finance":    1.3,
	"consulting": 1.2,
	"technology": 1.2,
	"healthcare": 1.1,
	"legal":      1.1,
}

// EstimatedValue computes the potential customer value stored with the
// entry. This path is intentionally independent from the priority score:
// sales reads this number, the queue reads the bucket.
func EstimatedValue(role string, size entity.CompanySize, industry string) int {
	base, ok := rankBaseValues[TitleRankFromRole(role)]
	if !ok {
		base = 1000
	}
	sizeMult, ok := companySizeMultipliers[size]
	if !ok {
		sizeMult = 1.0
	}
	industryMult, ok := industryMultipliers[industry]
	if !ok {
		industryMult = 1.0
	}
	return int(math.Round(base * sizeMult * industryMult))
}
