package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"
	"donation-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// adminAuditor writes admin decisions in the caller's transaction so the
// audit row commits or rolls back with the decision it describes.
type adminAuditor struct {
	repo ports.AdminActionRepository
	log  zerolog.Logger
}

func (a adminAuditor) Record(
	ctx context.Context,
	tx pgx.Tx,
	adminID uuid.UUID,
	action domain.AdminActionType,
	targetType string,
	targetID uuid.UUID,
	details map[string]any,
) error {
	raw, err := json.Marshal(details)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("marshal admin action details: %w", err))
	}
	entry := &domain.AdminAction{
		ID:         uuid.New(),
		AdminID:    adminID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    raw,
		CreatedAt:  time.Now().UTC(),
	}
	if err := a.repo.Create(ctx, tx, entry); err != nil {
		return apperror.FromStorage("record admin action", err)
	}
	a.log.Debug().
		Str("admin_id", adminID.String()).
		Str("action", string(action)).
		Str("target_id", targetID.String()).
		Msg("admin action recorded")
	return nil
}

// fromTransition maps a refused domain transition to the conflict users see
// when a record was already decided.
func fromTransition(entity string, err error) error {
	if errors.Is(err, domain.ErrInvalidTransition) {
		return apperror.ErrAlreadyProcessed(entity)
	}
	return err
}

// fromConditionalUpdate maps a lost compare-and-set to the same conflict.
func fromConditionalUpdate(entity, op string, err error) error {
	if errors.Is(err, ports.ErrStaleStatus) {
		return apperror.ErrAlreadyProcessed(entity)
	}
	return apperror.FromStorage(op, err)
}

func notifyUser(userID uuid.UUID, typ domain.NotificationType, title, message string, payload map[string]any) *domain.Notification {
	recipient := userID
	return &domain.Notification{
		ID:          uuid.New(),
		RecipientID: &recipient,
		Type:        typ,
		Title:       title,
		Message:     message,
		Payload:     payload,
		CreatedAt:   time.Now().UTC(),
	}
}

func notifyAdmins(typ domain.NotificationType, title, message string, payload map[string]any) *domain.Notification {
	return &domain.Notification{
		ID:        uuid.New(),
		Audience:  domain.AudienceAdmins,
		Type:      typ,
		Title:     title,
		Message:   message,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
}

func enqueue(ctx context.Context, outbox ports.OutboxRepository, tx pgx.Tx, n *domain.Notification) error {
	if err := outbox.Enqueue(ctx, tx, n); err != nil {
		return apperror.FromStorage("enqueue notification", err)
	}
	return nil
}

func commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperror.FromStorage("commit tx", err)
	}
	return nil
}

func begin(ctx context.Context, transactor ports.DBTransactor) (pgx.Tx, error) {
	tx, err := transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.FromStorage("begin tx", err)
	}
	return tx, nil
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
