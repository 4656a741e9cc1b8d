package usecase

import (
	"context"

	"github.com/napoleonai/waitlist-api/internal/entity"
	"github.com/napoleonai/waitlist-api/internal/infra/queue"
)

// Tracker records analytics events. Calls are best-effort: the signup flow
// logs a returned error and moves on, it never fails the request over it.
type Tracker interface {
	TrackEvent(ctx context.Context, eventType string, payload map[string]interface{}) error
}

// AlertProducer publishes the post-signup notification (welcome email plus
// high-value alert) for the background worker to pick up.
type AlertProducer interface {
	PublishSignupAlert(ctx context.Context, payload queue.SignupAlertPayload) error
}

type SignupWaitlistUseCase struct {
	Repo    entity.WaitlistRepositoryInterface
	Tracker Tracker
	Alerts  AlertProducer
}

func NewSignupWaitlistUseCase(
	repo entity.WaitlistRepositoryInterface,
	tracker Tracker,
	alerts AlertProducer,
) *SignupWaitlistUseCase {
	return &SignupWaitlistUseCase{
		Repo:    repo,
		Tracker: tracker,
		Alerts:  alerts,
	}
}

type GetWaitlistStatsUseCase struct {
	Repo entity.WaitlistRepositoryInterface
}

func NewGetWaitlistStatsUseCase(repo entity.WaitlistRepositoryInterface) *GetWaitlistStatsUseCase {
	return &GetWaitlistStatsUseCase{Repo: repo}
}
