package usecase

import (
	"testing"

	"github.com/napoleonai/waitlist-api/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestExecutiveLevelFromRole(t *testing.T) {
	tests := []struct {
		role string
		want entity.ExecutiveLevel
	}{
		{"CEO", entity.LevelCSuite},
		{"ceo & co-founder", entity.LevelCSuite},
		{"Chief Executive Officer", entity.LevelCSuite},
		{"Chief Financial Officer", entity.LevelCSuite},
		{"President", entity.LevelCSuite},
		{"Founder", entity.LevelCSuite},
		{"VP of Engineering", entity.LevelVP},
		{"SVP Sales", entity.LevelVP},
		{"Director of Operations", entity.LevelDirector},
		{"Senior Product Manager", entity.LevelSenior},
		{"Head of Growth", entity.LevelSenior},
		{"Principal Engineer", entity.LevelSenior},
		{"Software Engineer", entity.LevelOther},
		{"", entity.LevelOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExecutiveLevelFromRole(tt.role), tt.role)
	}
}

func TestExecutiveLevelPrecedence(t *testing.T) {
	// c-suite keywords win over the lower tiers they often co-occur with
	assert.Equal(t, entity.LevelCSuite, ExecutiveLevelFromRole("Founder & Senior Advisor"))
	// "president" is checked before the vp tier, so spelled-out vice
	// presidents land in c-suite; only the VP abbreviations reach the vp tier
	assert.Equal(t, entity.LevelCSuite, ExecutiveLevelFromRole("Senior Vice President"))
	assert.Equal(t, entity.LevelVP, ExecutiveLevelFromRole("SVP of Marketing"))
	// director wins over lead
	assert.Equal(t, entity.LevelDirector, ExecutiveLevelFromRole("Director, Lead Generation"))
	// acronym keywords only match whole words, "Director" is not a CTO
	assert.Equal(t, entity.LevelDirector, ExecutiveLevelFromRole("Director of Technology"))
}

func TestTitleRankFromRole(t *testing.T) {
	tests := []struct {
		role string
		want entity.TitleRank
	}{
		{"CEO", entity.RankCEO},
		{"Chief Financial Officer", entity.RankCFO},
		{"COO", entity.RankCOO},
		{"Chief Technology Officer", entity.RankCTO},
		{"President", entity.RankPresident},
		{"Co-Founder", entity.RankFounder},
		{"EVP Sales", entity.RankEVP},
		{"SVP Operations", entity.RankSVP},
		{"VP Engineering", entity.RankVP},
		{"Director of IT", entity.RankDirector},
		{"Staff Engineer", entity.RankOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TitleRankFromRole(tt.role), tt.role)
	}
}

func TestCompanyTierFromSize(t *testing.T) {
	assert.Equal(t, entity.TierEnterprise, CompanyTierFromSize(entity.SizeFortune500))
	assert.Equal(t, entity.TierEnterprise, CompanyTierFromSize(entity.SizeEnterprise))
	assert.Equal(t, entity.TierEnterprise, CompanyTierFromSize(entity.SizeLarge))
	assert.Equal(t, entity.TierGrowth, CompanyTierFromSize(entity.SizeMedium))
	assert.Equal(t, entity.TierStartup, CompanyTierFromSize(entity.SizeSmall))
	assert.Equal(t, entity.TierStartup, CompanyTierFromSize(entity.SizeStartup))
	// unknown sizes default to growth
	assert.Equal(t, entity.TierGrowth, CompanyTierFromSize(entity.CompanySize("unknown")))
}
