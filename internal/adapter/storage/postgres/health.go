package postgres

import (
	"context"
	"fmt"
)

// LedgerHealth reports PostgreSQL as healthy only when the fund balance row
// is readable.
type LedgerHealth struct {
	pool Pool
}

// NewHealthCheck creates the PostgreSQL health checker.
func NewHealthCheck(pool Pool) *LedgerHealth {
	return &LedgerHealth{pool: pool}
}

func (h *LedgerHealth) Ping(ctx context.Context) error {
	var ok bool
	if err := h.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM fund_balance WHERE id = 1)`).Scan(&ok); err != nil {
		return fmt.Errorf("query fund row: %w", err)
	}
	if !ok {
		return errFundRowMissing
	}
	return nil
}

func (h *LedgerHealth) Name() string {
	return "postgresql"
}
