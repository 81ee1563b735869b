package postgres

import (
	"context"
	"fmt"

	"donation-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AdminActionRepo implements ports.AdminActionRepository.
type AdminActionRepo struct {
	pool Pool
}

// NewAdminActionRepo creates a new AdminActionRepo.
func NewAdminActionRepo(pool Pool) *AdminActionRepo {
	return &AdminActionRepo{pool: pool}
}

// Create appends an admin action within the decision's transaction.
func (r *AdminActionRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.AdminAction) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO admin_actions (id, admin_id, action, target_type, target_id, details, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.AdminID, a.Action, a.TargetType, a.TargetID, a.Details, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert admin action: %w", err)
	}
	return nil
}
