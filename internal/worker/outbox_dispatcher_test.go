package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func setupDispatcher(t *testing.T, maxAttempts int) (*OutboxDispatcher, *mocks.MockOutboxRepository, *mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOutboxRepository(ctrl)
	pub := mocks.NewMockEventPublisher(ctrl)
	d := NewOutboxDispatcher(repo, pub, DispatcherConfig{
		PollInterval: time.Second,
		BatchSize:    10,
		StaleAfter:   time.Minute,
		MaxAttempts:  maxAttempts,
	}, zerolog.Nop())
	d.now = func() time.Time { return fixedNow }
	return d, repo, pub
}

func outboxMessage(typ domain.NotificationType, attempts int) domain.OutboxMessage {
	return domain.OutboxMessage{
		ID:           uuid.New(),
		Notification: domain.Notification{ID: uuid.New(), Type: typ, Title: "t"},
		Status:       domain.OutboxProcessing,
		Attempts:     attempts,
	}
}

func TestOutboxDispatcher_FlushOnce_PublishesAndMarks(t *testing.T) {
	d, repo, pub := setupDispatcher(t, 5)
	ctx := context.Background()
	first := outboxMessage(domain.NotificationDonationApproved, 1)
	second := outboxMessage(domain.NotificationHandoffCompleted, 1)

	repo.EXPECT().Claim(ctx, 10, time.Minute).Return([]domain.OutboxMessage{first, second}, nil)
	gomock.InOrder(
		pub.EXPECT().Publish(ctx, "money_donation.approved", first.Notification).Return(nil),
		repo.EXPECT().MarkPublished(ctx, first.ID).Return(nil),
		pub.EXPECT().Publish(ctx, "handoff.completed", second.Notification).Return(nil),
		repo.EXPECT().MarkPublished(ctx, second.ID).Return(nil),
	)

	n, err := d.FlushOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestOutboxDispatcher_FlushOnce_PublishFailureSchedulesRetry(t *testing.T) {
	d, repo, pub := setupDispatcher(t, 5)
	ctx := context.Background()
	msg := outboxMessage(domain.NotificationRequestApproved, 2)

	repo.EXPECT().Claim(ctx, 10, time.Minute).Return([]domain.OutboxMessage{msg}, nil)
	pub.EXPECT().Publish(ctx, "money_request.approved", msg.Notification).Return(errors.New("channel closed"))
	repo.EXPECT().MarkFailed(ctx, msg.ID, "channel closed", fixedNow.Add(time.Minute), false).Return(nil)

	n, err := d.FlushOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOutboxDispatcher_FlushOnce_TerminalAfterMaxAttempts(t *testing.T) {
	d, repo, pub := setupDispatcher(t, 3)
	ctx := context.Background()
	msg := outboxMessage(domain.NotificationRequestRejected, 3)

	repo.EXPECT().Claim(ctx, 10, time.Minute).Return([]domain.OutboxMessage{msg}, nil)
	pub.EXPECT().Publish(ctx, gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	repo.EXPECT().MarkFailed(ctx, msg.ID, "broker down", gomock.Any(), true).Return(nil)

	_, err := d.FlushOnce(ctx)
	require.NoError(t, err)
}

func TestOutboxDispatcher_FlushOnce_MarkPublishedErrorNotCounted(t *testing.T) {
	d, repo, pub := setupDispatcher(t, 5)
	ctx := context.Background()
	msg := outboxMessage(domain.NotificationDonationSubmitted, 1)

	repo.EXPECT().Claim(ctx, 10, time.Minute).Return([]domain.OutboxMessage{msg}, nil)
	pub.EXPECT().Publish(ctx, gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().MarkPublished(ctx, msg.ID).Return(errors.New("conn reset"))

	n, err := d.FlushOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOutboxDispatcher_FlushOnce_ClaimError(t *testing.T) {
	d, repo, _ := setupDispatcher(t, 5)
	ctx := context.Background()
	repo.EXPECT().Claim(ctx, 10, time.Minute).Return(nil, errors.New("db down"))

	_, err := d.FlushOnce(ctx)
	assert.EqualError(t, err, "db down")
}

func TestOutboxDispatcher_Run_StopsOnCancel(t *testing.T) {
	d, repo, _ := setupDispatcher(t, 5)
	d.cfg.PollInterval = 5 * time.Millisecond
	repo.EXPECT().Claim(gomock.Any(), 10, time.Minute).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop")
	}
}

func TestRetryDelay(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 15 * time.Second},
		{1, 15 * time.Second},
		{2, time.Minute},
		{5, 10 * time.Minute},
		{12, 10 * time.Minute},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, retryDelay(tt.attempt), "attempt %d", tt.attempt)
	}
}
