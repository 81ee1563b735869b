package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"donation-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const maxOutboxErrorLen = 2000

// OutboxRepo implements ports.OutboxRepository over notification_outbox.
type OutboxRepo struct {
	pool Pool
}

// NewOutboxRepo creates a new OutboxRepo.
func NewOutboxRepo(pool Pool) *OutboxRepo {
	return &OutboxRepo{pool: pool}
}

// Enqueue stores a notification in the caller's transaction so it is
// published only if the transition commits.
func (r *OutboxRepo) Enqueue(ctx context.Context, tx pgx.Tx, n *domain.Notification) error {
	blob, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	_, err = tx.Exec(ctx, `INSERT INTO notification_outbox (id, recipient_id, audience, type, payload, created_at)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6)`,
		n.ID, n.RecipientID, n.Audience, n.Type, string(blob), n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("enqueue notification: %w", err)
	}
	return nil
}

// Claim marks up to limit due messages as processing and returns them.
// Messages stuck in processing longer than staleAfter are reclaimed.
func (r *OutboxRepo) Claim(ctx context.Context, limit int, staleAfter time.Duration) ([]domain.OutboxMessage, error) {
	query := `
		WITH candidates AS (
			SELECT id
			FROM notification_outbox
			WHERE (status = 'pending' AND next_attempt_at <= NOW())
				OR (status = 'processing' AND processing_started_at < NOW() - ($2 * INTERVAL '1 second'))
			ORDER BY created_at
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		)
		UPDATE notification_outbox AS o
		SET status = 'processing',
			processing_started_at = NOW(),
			attempts = o.attempts + 1
		FROM candidates
		WHERE o.id = candidates.id
		RETURNING o.id, o.payload::text, o.status, o.attempts, o.next_attempt_at, o.created_at`

	rows, err := r.pool.Query(ctx, query, limit, int(staleAfter.Seconds()))
	if err != nil {
		return nil, fmt.Errorf("claim outbox messages: %w", err)
	}
	defer rows.Close()

	messages := make([]domain.OutboxMessage, 0, limit)
	for rows.Next() {
		var (
			msg     domain.OutboxMessage
			payload string
		)
		if err := rows.Scan(&msg.ID, &payload, &msg.Status, &msg.Attempts, &msg.NextAttempt, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan outbox message: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &msg.Notification); err != nil {
			return nil, fmt.Errorf("decode outbox payload %s: %w", msg.ID, err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outbox rows: %w", err)
	}
	return messages, nil
}

// MarkPublished records a successful publish.
func (r *OutboxRepo) MarkPublished(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE notification_outbox
		SET status = 'published', published_at = NOW(), processing_started_at = NULL, last_error = NULL
		WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark outbox published: %w", err)
	}
	return nil
}

// MarkFailed schedules a retry at nextAttempt, or parks the message as
// failed when terminal is set.
func (r *OutboxRepo) MarkFailed(ctx context.Context, id uuid.UUID, lastError string, nextAttempt time.Time, terminal bool) error {
	lastError = truncateRunes(lastError, maxOutboxErrorLen)
	status := domain.OutboxPending
	if terminal {
		status = domain.OutboxFailed
	}

	_, err := r.pool.Exec(ctx, `UPDATE notification_outbox
		SET status = $2, next_attempt_at = $3, processing_started_at = NULL, last_error = $4
		WHERE id = $1`, id, status, nextAttempt, lastError)
	if err != nil {
		return fmt.Errorf("mark outbox failed: %w", err)
	}
	return nil
}

// truncateRunes cuts s to at most limit bytes without splitting a UTF-8 sequence.
func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	n := limit
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
