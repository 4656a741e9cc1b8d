package usecase

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/napoleonai/waitlist-api/internal/entity"
	"github.com/napoleonai/waitlist-api/internal/infra/queue"
)

// Position shown when the stats query is unavailable.
const fallbackPosition = 847

// Execute runs the whole signup pipeline for one submission:
// sanitize -> validate -> classify/score -> persist -> compose response.
// Validation failures come back as *ValidationFailedError, store failures as
// *TechnicalError; everything after the insert is best-effort.
func (uc *SignupWaitlistUseCase) Execute(ctx context.Context, input WaitlistSubmission, meta RequestMeta) (*SignupOutput, error) {
	sanitized := SanitizeSubmission(input)

	validation := ValidateWaitlistForm(sanitized)
	if !validation.IsValid {
		return nil, &ValidationFailedError{Validation: validation}
	}

	entry := entity.NewWaitlistEntry()
	entry.Email = sanitized.Email
	entry.FirstName = sanitized.FirstName
	entry.LastName = sanitized.LastName
	entry.Company = sanitized.Company
	entry.Role = sanitized.Role
	entry.CompanySize = entity.CompanySize(sanitized.CompanySize)
	entry.PhoneNumber = sanitized.PhoneNumber
	entry.LinkedinProfile = SanitizeURL(sanitized.LinkedinProfile)
	entry.Industry = sanitized.Industry

	entry.ExecutiveLevel = validation.ExecutiveLevel
	entry.CompanyTier = validation.CompanyTier
	entry.PriorityScore = validation.PriorityScore
	entry.Priority = PriorityBucket(validation.PriorityScore)
	entry.EstimatedValue = EstimatedValue(sanitized.Role, entry.CompanySize, sanitized.Industry)

	entry.Source = meta.Source
	entry.IPAddress = meta.IPAddress
	entry.UserAgent = meta.UserAgent
	entry.Referrer = meta.Referrer
	entry.UTMSource = meta.UTMSource
	entry.UTMMedium = meta.UTMMedium
	entry.UTMCampaign = meta.UTMCampaign
	entry.DeviceType = meta.DeviceType
	entry.ConversionTime = sanitized.ConversionTime
	entry.ScrollDepth = sanitized.ScrollDepth
	entry.CTAClicked = sanitized.CTAClicked
	if entry.CTAClicked == "" {
		entry.CTAClicked = "primary_cta"
	}

	if err := uc.Repo.Insert(ctx, entry); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to add executive to waitlist: " + err.Error(),
		}
	}

	// The queue position is cosmetic; a failed stats query falls back to a
	// constant instead of failing the signup.
	estimatedPosition := fallbackPosition
	if stats, err := uc.Repo.Stats(ctx); err == nil && stats != nil {
		estimatedPosition = stats.TotalSignups
	}

	waitTime := CalculateWaitTime(validation.PriorityScore, validation.ExecutiveLevel)

	uc.track(ctx, "waitlist_signup", map[string]interface{}{
		"executive_id":    entry.ID,
		"executive_level": string(entry.ExecutiveLevel),
		"company_tier":    string(entry.CompanyTier),
		"priority_score":  entry.PriorityScore,
		"estimated_value": entry.EstimatedValue,
	})

	// Welcome email and sales alert go through the queue so a slow SMTP
	// server never holds up the HTTP response.
	if uc.Alerts != nil {
		go func() {
			err := uc.Alerts.PublishSignupAlert(context.Background(), queue.SignupAlertPayload{
				EntryID:           entry.ID,
				Email:             entry.Email,
				FirstName:         entry.FirstName,
				LastName:          entry.LastName,
				Company:           entry.Company,
				Role:              entry.Role,
				ExecutiveLevel:    string(entry.ExecutiveLevel),
				Priority:          string(entry.Priority),
				PriorityScore:     entry.PriorityScore,
				EstimatedValue:    entry.EstimatedValue,
				EstimatedWaitTime: waitTime,
			})
			if err != nil {
				log.Printf("signup alert publish failed for %s: %v", entry.ID, err)
			}
		}()
	}

	return &SignupOutput{
		Data: &SignupData{
			ID:                entry.ID,
			EstimatedPosition: estimatedPosition,
			EstimatedWaitTime: waitTime,
			Priority:          entry.Priority,
			ExecutiveLevel:    entry.ExecutiveLevel,
			NextSteps:         NextSteps(entry.ExecutiveLevel, entry.CompanyTier),
		},
		Message: fmt.Sprintf("Welcome to Napoleon AI, %s! You're all set for executive early access.", entry.FirstName),
	}, nil
}

// TrackError reports a failed request to analytics. Used by the handler's
// top-level recovery path.
func (uc *SignupWaitlistUseCase) TrackError(ctx context.Context, message string) {
	uc.track(ctx, "waitlist_signup_error", map[string]interface{}{
		"error": message,
	})
}

func (uc *SignupWaitlistUseCase) track(ctx context.Context, eventType string, payload map[string]interface{}) {
	if uc.Tracker == nil {
		return
	}
	if err := uc.Tracker.TrackEvent(ctx, eventType, payload); err != nil {
		log.Printf("analytics tracking failed for %s: %v", eventType, err)
	}
}

// Days until access by seniority, before the score modifier.
var baseWaitDays = map[entity.ExecutiveLevel]int{
	entity.LevelCSuite:   3,
	entity.LevelVP:       7,
	entity.LevelDirector: 14,
	entity.LevelSenior:   21,
	entity.LevelOther:    30,
}

// CalculateWaitTime turns the base wait for the seniority tier into a human
// string, shortened for high scores. The modifier floors at 0.3 so nobody is
// promised same-day access.
func CalculateWaitTime(priorityScore int, level entity.ExecutiveLevel) string {
	baseDays, ok := baseWaitDays[level]
	if !ok {
		baseDays = 30
	}

	modifier := math.Max(0.3, float64(20-priorityScore)/20)
	adjustedDays := int(math.Ceil(float64(baseDays) * modifier))

	switch {
	case adjustedDays <= 7:
		return fmt.Sprintf("%d %s", adjustedDays, plural("day", adjustedDays))
	case adjustedDays <= 30:
		weeks := int(math.Ceil(float64(adjustedDays) / 7))
		return fmt.Sprintf("%d %s", weeks, plural("week", weeks))
	default:
		months := int(math.Ceil(float64(adjustedDays) / 30))
		return fmt.Sprintf("%d %s", months, plural("month", months))
	}
}

func plural(unit string, n int) string {
	if n > 1 {
		return unit + "s"
	}
	return unit
}

// NextSteps builds the onboarding checklist; c-suite and enterprise signups
// get the white-glove extras.
func NextSteps(level entity.ExecutiveLevel, tier entity.CompanyTier) []string {
	steps := []string{
		"Check your email for confirmation and next steps",
		"Join our exclusive Executive Slack community",
		"Schedule a personalized onboarding session",
	}

	if level == entity.LevelCSuite || tier == entity.TierEnterprise {
		steps = append(steps,
			"Priority access to our Executive Success Manager",
			"Complimentary white-glove migration assistance",
		)
	}

	return steps
}
