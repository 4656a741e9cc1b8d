package usecase

import (
	"strings"
	"unicode"

	"github.com/napoleonai/waitlist-api/internal/entity"
)

// Ordered keyword rules for the coarse seniority classifier. First match
// wins, so c-suite keywords must be checked before "vp", "vp" before
// "director", and so on.
var executiveLevelRules = []struct {
	level    entity.ExecutiveLevel
	keywords []string
}{
	{entity.LevelCSuite, []string{
		"ceo", "chief executive", "cfo", "chief financial",
		"coo", "chief operating", "cto", "chief technology",
		"president", "founder",
	}},
	{entity.LevelVP, []string{"vp", "evp", "svp", "vice president"}},
	{entity.LevelDirector, []string{"director"}},
	{entity.LevelSenior, []string{"senior", "head of", "lead", "principal"}},
}

// roleMatches checks one keyword against the lowercased title. Phrases match
// as substrings; single words must match a whole token, otherwise the acronym
// keywords fire inside longer words ("director" contains "cto").
func roleMatches(roleLower, keyword string) bool {
	if strings.ContainsRune(keyword, ' ') {
		return strings.Contains(roleLower, keyword)
	}
	for _, token := range strings.FieldsFunc(roleLower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if token == keyword {
			return true
		}
	}
	return false
}

// ExecutiveLevelFromRole classifies a free-text job title into the coarse
// seniority tier used for priority bucketing and wait-time estimation.
func ExecutiveLevelFromRole(role string) entity.ExecutiveLevel {
	roleLower := strings.ToLower(role)
	for _, rule := range executiveLevelRules {
		for _, kw := range rule.keywords {
			if roleMatches(roleLower, kw) {
				return rule.level
			}
		}
	}
	return entity.LevelOther
}

// Ordered keyword rules for the fine-grained title classifier. This one only
// feeds the estimated monetary value; do not merge it with the coarse rules
// above, the keyword sets differ on purpose.
var titleRankRules = []struct {
	rank     entity.TitleRank
	keywords []string
}{
	{entity.RankCEO, []string{"ceo", "chief executive"}},
	{entity.RankCFO, []string{"cfo", "chief financial"}},
	{entity.RankCOO, []string{"coo", "chief operating"}},
	{entity.RankCTO, []string{"cto", "chief technology"}},
	{entity.RankPresident, []string{"president"}},
	{entity.RankFounder, []string{"founder"}},
	{entity.RankEVP, []string{"evp", "executive vp"}},
	{entity.RankSVP, []string{"svp", "senior vp"}},
	{entity.RankVP, []string{"vp", "vice president"}},
	{entity.RankDirector, []string{"director"}},
}

// TitleRankFromRole classifies a job title at valuation granularity.
func TitleRankFromRole(role string) entity.TitleRank {
	roleLower := strings.ToLower(role)
	for _, rule := range titleRankRules {
		for _, kw := range rule.keywords {
			if roleMatches(roleLower, kw) {
				return rule.rank
			}
		}
	}
	return entity.RankOther
}

// CompanyTierFromSize maps the form's size enum onto the scoring tier.
func CompanyTierFromSize(size entity.CompanySize) entity.CompanyTier {
	switch size {
	case entity.SizeFortune500, entity.SizeEnterprise, entity.SizeLarge:
		return entity.TierEnterprise
	case entity.SizeMedium:
		return entity.TierGrowth
	case entity.SizeSmall, entity.SizeStartup:
		return entity.TierStartup
	default:
		return entity.TierGrowth
	}
}
