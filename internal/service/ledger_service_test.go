package service

import (
	"context"
	"errors"
	"testing"

	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"
	"donation-ledger/internal/core/ports/mocks"
	"donation-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func assertAppError(t *testing.T, err error, expectedCode string) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
	return appErr
}

type ledgerTestDeps struct {
	svc        *FundLedgerService
	fundRepo   *mocks.MockFundRepository
	recordRepo *mocks.MockFinancialTransactionRepository
	actionRepo *mocks.MockAdminActionRepository
	transactor *mocks.MockDBTransactor
}

func setupLedger(t *testing.T) *ledgerTestDeps {
	ctrl := gomock.NewController(t)
	d := &ledgerTestDeps{
		fundRepo:   mocks.NewMockFundRepository(ctrl),
		recordRepo: mocks.NewMockFinancialTransactionRepository(ctrl),
		actionRepo: mocks.NewMockAdminActionRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
	}
	d.svc = NewFundLedgerService(d.fundRepo, d.recordRepo, d.actionRepo, d.transactor, zerolog.Nop())
	return d
}

func fund(balance, donations, withdrawals int64) *domain.FundBalance {
	return &domain.FundBalance{TotalBalance: balance, TotalDonations: donations, TotalWithdrawals: withdrawals}
}

func TestFundLedger_Credit_Success(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	tx := &mockTx{}
	actor := uuid.New()
	related := uuid.New()

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.fundRepo.EXPECT().GetForUpdate(ctx, tx).Return(fund(500, 700, 200), nil)
	d.fundRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, next *domain.FundBalance) error {
			assert.Equal(t, int64(1500), next.TotalBalance)
			assert.Equal(t, int64(1700), next.TotalDonations)
			assert.Equal(t, int64(200), next.TotalWithdrawals)
			return nil
		})
	d.recordRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	record, err := d.svc.Credit(ctx, domain.LedgerEntry{
		Amount:            1000,
		ActorUserID:       actor,
		RelatedDonationID: &related,
		Category:          domain.CategoryMoneyDonation,
		Description:       "donation",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionKindDonation, record.Kind)
	assert.Equal(t, int64(1000), record.Amount)
	assert.Equal(t, actor, record.ActorUserID)
	assert.Equal(t, &related, record.RelatedDonationID)
	assert.Equal(t, domain.CategoryMoneyDonation, record.Category)
}

func TestFundLedger_Debit_Success(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.fundRepo.EXPECT().GetForUpdate(ctx, tx).Return(fund(1000, 1000, 0), nil)
	d.fundRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, next *domain.FundBalance) error {
			assert.Equal(t, int64(0), next.TotalBalance)
			assert.Equal(t, int64(1000), next.TotalWithdrawals)
			assert.True(t, next.Consistent())
			return nil
		})
	d.recordRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	record, err := d.svc.Debit(ctx, domain.LedgerEntry{
		Amount:   1000,
		Category: domain.CategoryMoneyRequest,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionKindWithdrawal, record.Kind)
}

func TestFundLedger_Debit_InsufficientFunds(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.fundRepo.EXPECT().GetForUpdate(ctx, tx).Return(fund(200, 200, 0), nil)

	record, err := d.svc.Debit(ctx, domain.LedgerEntry{Amount: 1000, Category: domain.CategoryMoneyRequest})
	assert.Nil(t, record)
	appErr := assertAppError(t, err, "FUND_001")
	assert.Equal(t, int64(200), appErr.Details["available"])
	assert.Equal(t, int64(1000), appErr.Details["requested"])
}

func TestFundLedger_InvalidEntry(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	tx := &mockTx{}

	_, err := d.svc.CreditTx(ctx, tx, domain.LedgerEntry{Amount: 0, Category: domain.CategoryMoneyDonation})
	assertAppError(t, err, "VAL_002")

	_, err = d.svc.DebitTx(ctx, tx, domain.LedgerEntry{Amount: -5, Category: domain.CategoryMoneyRequest})
	assertAppError(t, err, "VAL_002")

	_, err = d.svc.DebitTx(ctx, tx, domain.LedgerEntry{Amount: 5, Category: "bonus"})
	assertAppError(t, err, "VAL_003")
}

func TestFundLedger_MissingFundRow(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.fundRepo.EXPECT().GetForUpdate(ctx, tx).Return(nil, nil)

	_, err := d.svc.CreditTx(ctx, tx, domain.LedgerEntry{Amount: 10, Category: domain.CategoryMoneyDonation})
	assertAppError(t, err, "SYS_001")
}

func TestFundLedger_LockTimeoutIsRetryable(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.fundRepo.EXPECT().GetForUpdate(ctx, tx).Return(nil, context.DeadlineExceeded)

	_, err := d.svc.CreditTx(ctx, tx, domain.LedgerEntry{Amount: 10, Category: domain.CategoryMoneyDonation})
	assertAppError(t, err, "SYS_002")
}

func TestFundLedger_BeginFailure(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()

	d.transactor.EXPECT().Begin(ctx).Return(nil, errors.New("pool closed"))

	_, err := d.svc.Credit(ctx, domain.LedgerEntry{Amount: 10, Category: domain.CategoryMoneyDonation})
	assertAppError(t, err, "SYS_001")
}

func TestFundLedger_Balance(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()

	d.fundRepo.EXPECT().Get(ctx).Return(fund(300, 500, 200), nil)
	got, err := d.svc.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(300), got.TotalBalance)

	d.fundRepo.EXPECT().Get(ctx).Return(nil, nil)
	got, err = d.svc.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.FundBalance{}, *got)
}

func TestFundLedger_ListTransactions_Paging(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()

	d.recordRepo.EXPECT().
		List(ctx, domain.TransactionFilter{Page: 1, PageSize: defaultPageSize}).
		Return([]domain.FinancialTransaction{{ID: uuid.New()}}, int64(1), nil)
	records, total, err := d.svc.ListTransactions(ctx, domain.TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, int64(1), total)

	kind := domain.TransactionKindWithdrawal
	d.recordRepo.EXPECT().
		List(ctx, domain.TransactionFilter{Kind: &kind, Page: 3, PageSize: maxPageSize}).
		Return(nil, int64(0), nil)
	_, _, err = d.svc.ListTransactions(ctx, domain.TransactionFilter{Kind: &kind, Page: 3, PageSize: 1000})
	require.NoError(t, err)
}

func TestFundLedger_ListTransactions_InvalidFilter(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()

	kind := domain.TransactionKind("refund")
	_, _, err := d.svc.ListTransactions(ctx, domain.TransactionFilter{Kind: &kind})
	assertAppError(t, err, "VAL_001")

	category := domain.TransactionCategory("payroll")
	_, _, err = d.svc.ListTransactions(ctx, domain.TransactionFilter{Category: &category})
	assertAppError(t, err, "VAL_003")
}

func TestFundLedger_Adjust_RecordsAdminAction(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	tx := &mockTx{}
	adminID := uuid.New()

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.fundRepo.EXPECT().GetForUpdate(ctx, tx).Return(fund(100, 100, 0), nil)
	d.fundRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.recordRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, rec *domain.FinancialTransaction) error {
			assert.Equal(t, domain.CategoryManualAdjustment, rec.Category)
			assert.Equal(t, adminID, rec.ActorUserID)
			return nil
		})
	d.actionRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, action *domain.AdminAction) error {
			assert.Equal(t, domain.AdminActionFundAdjustment, action.Action)
			assert.Equal(t, adminID, action.AdminID)
			assert.Contains(t, string(action.Details), "bank fee")
			return nil
		})

	record, err := d.svc.Adjust(ctx, ports.AdjustmentRequest{
		AdminID:     adminID,
		Kind:        domain.TransactionKindWithdrawal,
		Amount:      40,
		Description: "bank fee",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(40), record.Amount)
}

func TestFundLedger_Adjust_Validation(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()

	_, err := d.svc.Adjust(ctx, ports.AdjustmentRequest{Kind: "bonus", Amount: 1, Description: "x"})
	assertAppError(t, err, "VAL_001")

	_, err = d.svc.Adjust(ctx, ports.AdjustmentRequest{Kind: domain.TransactionKindDonation, Amount: 1})
	assertAppError(t, err, "VAL_001")
}

func TestFundLedger_Verify(t *testing.T) {
	tests := []struct {
		name       string
		fund       *domain.FundBalance
		totals     *domain.LedgerTotals
		consistent bool
	}{
		{"matching", fund(300, 500, 200), &domain.LedgerTotals{Donations: 500, Withdrawals: 200, Records: 4}, true},
		{"records drifted", fund(300, 500, 200), &domain.LedgerTotals{Donations: 400, Withdrawals: 200, Records: 3}, false},
		{"row identity broken", fund(350, 500, 200), &domain.LedgerTotals{Donations: 500, Withdrawals: 200, Records: 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupLedger(t)
			ctx := context.Background()
			tx := &mockTx{}

			d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
			d.fundRepo.EXPECT().GetForUpdate(ctx, tx).Return(tt.fund, nil)
			d.recordRepo.EXPECT().Totals(ctx).Return(tt.totals, nil)

			report, err := d.svc.Verify(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.consistent, report.Consistent)
			assert.Equal(t, *tt.totals, report.Recomputed)
		})
	}
}
