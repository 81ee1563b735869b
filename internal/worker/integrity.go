package worker

import (
	"context"
	"fmt"
	"time"

	"donation-ledger/internal/core/ports"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const integrityTimeout = 30 * time.Second

// IntegrityChecker periodically recomputes the fund totals from the
// transaction records and reports any drift.
type IntegrityChecker struct {
	ledger   ports.FundLedger
	schedule string
	cron     *cron.Cron
	log      zerolog.Logger
}

func NewIntegrityChecker(ledger ports.FundLedger, schedule string, log zerolog.Logger) *IntegrityChecker {
	return &IntegrityChecker{
		ledger:   ledger,
		schedule: schedule,
		cron:     cron.New(cron.WithChain(cron.Recover(cron.PrintfLogger(&log)))),
		log:      log,
	}
}

// Start registers the check and starts the scheduler.
func (c *IntegrityChecker) Start() error {
	if _, err := c.cron.AddFunc(c.schedule, c.Check); err != nil {
		return fmt.Errorf("schedule integrity check %q: %w", c.schedule, err)
	}
	c.cron.Start()
	c.log.Info().Str("schedule", c.schedule).Msg("ledger integrity check scheduled")
	return nil
}

// Stop halts the scheduler; the returned context is done once a running
// check finishes.
func (c *IntegrityChecker) Stop() context.Context {
	return c.cron.Stop()
}

// Check runs one verification and logs the result.
func (c *IntegrityChecker) Check() {
	ctx, cancel := context.WithTimeout(context.Background(), integrityTimeout)
	defer cancel()

	report, err := c.ledger.Verify(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("ledger integrity check failed")
		return
	}
	if !report.Consistent {
		c.log.Error().
			Int64("total_balance", report.Balance.TotalBalance).
			Int64("total_donations", report.Balance.TotalDonations).
			Int64("total_withdrawals", report.Balance.TotalWithdrawals).
			Int64("recomputed_donations", report.Recomputed.Donations).
			Int64("recomputed_withdrawals", report.Recomputed.Withdrawals).
			Int64("records", report.Recomputed.Records).
			Msg("ledger drift detected")
		return
	}
	c.log.Debug().
		Int64("total_balance", report.Balance.TotalBalance).
		Int64("records", report.Recomputed.Records).
		Msg("ledger consistent")
}
