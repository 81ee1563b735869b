package worker

import (
	"context"
	"time"

	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

// retryIntervals is the backoff between delivery attempts; the last entry
// repeats until MaxAttempts is reached.
var retryIntervals = []time.Duration{
	15 * time.Second,
	60 * time.Second,
	2 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
}

// DispatcherConfig tunes the outbox polling loop.
type DispatcherConfig struct {
	PollInterval time.Duration
	BatchSize    int
	StaleAfter   time.Duration
	MaxAttempts  int
}

// OutboxDispatcher drains committed notifications to the broker. Delivery
// is at-least-once: a crash between publish and MarkPublished republishes
// the message after StaleAfter.
type OutboxDispatcher struct {
	repo      ports.OutboxRepository
	publisher ports.EventPublisher
	cfg       DispatcherConfig
	log       zerolog.Logger
	now       func() time.Time
}

func NewOutboxDispatcher(repo ports.OutboxRepository, publisher ports.EventPublisher, cfg DispatcherConfig, log zerolog.Logger) *OutboxDispatcher {
	return &OutboxDispatcher{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

// Run polls until ctx is cancelled.
func (d *OutboxDispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	d.log.Info().Dur("poll_interval", d.cfg.PollInterval).Msg("outbox dispatcher started")
	for {
		select {
		case <-ctx.Done():
			d.log.Info().Msg("outbox dispatcher stopped")
			return
		case <-ticker.C:
			if _, err := d.FlushOnce(ctx); err != nil && ctx.Err() == nil {
				d.log.Error().Err(err).Msg("outbox flush failed")
			}
		}
	}
}

// FlushOnce claims one batch and publishes it, returning how many messages
// were delivered.
func (d *OutboxDispatcher) FlushOnce(ctx context.Context) (int, error) {
	messages, err := d.repo.Claim(ctx, d.cfg.BatchSize, d.cfg.StaleAfter)
	if err != nil {
		return 0, err
	}

	delivered := 0
	for _, msg := range messages {
		if err := d.publisher.Publish(ctx, string(msg.Notification.Type), msg.Notification); err != nil {
			d.fail(ctx, msg, err)
			continue
		}
		if err := d.repo.MarkPublished(ctx, msg.ID); err != nil {
			d.log.Warn().Err(err).Str("outbox_id", msg.ID.String()).Msg("failed to mark outbox message published")
			continue
		}
		delivered++
	}
	return delivered, nil
}

func (d *OutboxDispatcher) fail(ctx context.Context, msg domain.OutboxMessage, cause error) {
	terminal := d.cfg.MaxAttempts > 0 && msg.Attempts >= d.cfg.MaxAttempts
	next := d.now().Add(retryDelay(msg.Attempts))

	evt := d.log.Warn()
	if terminal {
		evt = d.log.Error()
	}
	evt.Err(cause).
		Str("outbox_id", msg.ID.String()).
		Str("type", string(msg.Notification.Type)).
		Int("attempt", msg.Attempts).
		Bool("terminal", terminal).
		Msg("notification publish failed")

	if err := d.repo.MarkFailed(ctx, msg.ID, cause.Error(), next, terminal); err != nil {
		d.log.Error().Err(err).Str("outbox_id", msg.ID.String()).Msg("failed to record outbox failure")
	}
}

func retryDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if attempt > len(retryIntervals) {
		attempt = len(retryIntervals)
	}
	return retryIntervals[attempt-1]
}
