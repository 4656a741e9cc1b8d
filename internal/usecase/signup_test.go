package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/napoleonai/waitlist-api/internal/entity"
	"github.com/napoleonai/waitlist-api/internal/infra/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockWaitlistRepository struct {
	mock.Mock
}

func (m *MockWaitlistRepository) Insert(ctx context.Context, entry *entity.WaitlistEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockWaitlistRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

func (m *MockWaitlistRepository) Stats(ctx context.Context) (*entity.WaitlistStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WaitlistStats), args.Error(1)
}

type recordingTracker struct {
	events []string
}

func (t *recordingTracker) TrackEvent(ctx context.Context, eventType string, payload map[string]interface{}) error {
	t.events = append(t.events, eventType)
	return nil
}

type channelAlertProducer struct {
	published chan queue.SignupAlertPayload
}

func (p *channelAlertProducer) PublishSignupAlert(ctx context.Context, payload queue.SignupAlertPayload) error {
	p.published <- payload
	return nil
}

func TestSignupExecuteSuccess(t *testing.T) {
	repo := new(MockWaitlistRepository)
	tracker := &recordingTracker{}

	repo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	repo.On("Stats", mock.Anything).Return(&entity.WaitlistStats{TotalSignups: 1203}, nil)

	uc := NewSignupWaitlistUseCase(repo, tracker, nil)

	output, err := uc.Execute(context.Background(), validSubmission(), RequestMeta{
		IPAddress:  "203.0.113.9",
		DeviceType: "desktop",
		Source:     "landing_page",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, output.Data.ID)
	assert.Equal(t, 1203, output.Data.EstimatedPosition)
	assert.Equal(t, entity.LevelCSuite, output.Data.ExecutiveLevel)
	assert.Equal(t, entity.PriorityCritical, output.Data.Priority)
	assert.Len(t, output.Data.NextSteps, 5) // c-suite gets the white-glove extras
	assert.Contains(t, output.Message, "Jane")
	assert.Contains(t, tracker.events, "waitlist_signup")

	repo.AssertCalled(t, "Insert", mock.Anything, mock.MatchedBy(func(e *entity.WaitlistEntry) bool {
		return e.Email == "jane@acme.com" &&
			e.Status == entity.StatusPending &&
			e.Priority == entity.PriorityCritical &&
			e.EstimatedValue == 25000 &&
			e.CTAClicked == "primary_cta"
	}))
}

func TestSignupExecuteValidationFailureSkipsStore(t *testing.T) {
	repo := new(MockWaitlistRepository)
	uc := NewSignupWaitlistUseCase(repo, nil, nil)

	data := validSubmission()
	data.Email = "jane@gmail.com"

	output, err := uc.Execute(context.Background(), data, RequestMeta{})

	assert.Nil(t, output)
	vErr, ok := AsValidationFailed(err)
	assert.True(t, ok)
	assert.Contains(t, vErr.Validation.Errors, "email")
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestSignupExecutePersistenceFailure(t *testing.T) {
	repo := new(MockWaitlistRepository)
	repo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	uc := NewSignupWaitlistUseCase(repo, nil, nil)

	output, err := uc.Execute(context.Background(), validSubmission(), RequestMeta{})

	assert.Nil(t, output)
	assert.True(t, IsTechnicalError(err))
	repo.AssertNotCalled(t, "Stats", mock.Anything)
}

func TestSignupExecuteStatsFallback(t *testing.T) {
	repo := new(MockWaitlistRepository)
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	repo.On("Stats", mock.Anything).Return(nil, errors.New("rpc unavailable"))

	uc := NewSignupWaitlistUseCase(repo, nil, nil)

	output, err := uc.Execute(context.Background(), validSubmission(), RequestMeta{})

	assert.NoError(t, err)
	assert.Equal(t, 847, output.Data.EstimatedPosition)
}

func TestSignupExecutePublishesAlert(t *testing.T) {
	repo := new(MockWaitlistRepository)
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	repo.On("Stats", mock.Anything).Return(&entity.WaitlistStats{TotalSignups: 10}, nil)

	alerts := &channelAlertProducer{published: make(chan queue.SignupAlertPayload, 1)}
	uc := NewSignupWaitlistUseCase(repo, nil, alerts)

	_, err := uc.Execute(context.Background(), validSubmission(), RequestMeta{})
	assert.NoError(t, err)

	select {
	case payload := <-alerts.published:
		assert.Equal(t, "jane@acme.com", payload.Email)
		assert.Equal(t, "c-suite", payload.ExecutiveLevel)
		assert.Equal(t, 25000, payload.EstimatedValue)
		assert.NotEmpty(t, payload.EstimatedWaitTime)
	case <-time.After(time.Second):
		t.Fatal("expected a signup alert to be published")
	}
}

func TestSignupSanitizesBeforeStoring(t *testing.T) {
	repo := new(MockWaitlistRepository)
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	repo.On("Stats", mock.Anything).Return(&entity.WaitlistStats{TotalSignups: 10}, nil)

	uc := NewSignupWaitlistUseCase(repo, nil, nil)

	data := validSubmission()
	data.FirstName = "  <Jane>  "
	data.Email = "  Jane@Acme.COM "

	_, err := uc.Execute(context.Background(), data, RequestMeta{})
	assert.NoError(t, err)

	repo.AssertCalled(t, "Insert", mock.Anything, mock.MatchedBy(func(e *entity.WaitlistEntry) bool {
		return e.FirstName == "Jane" && e.Email == "jane@acme.com"
	}))
}
