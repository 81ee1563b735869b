package service

import (
	"context"
	"testing"

	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handoffTestDeps struct {
	svc        *HandoffServiceImpl
	donations  *mocks.MockPhysicalDonationRepository
	outbox     *mocks.MockOutboxRepository
	transactor *mocks.MockDBTransactor
}

func setupHandoffService(t *testing.T) *handoffTestDeps {
	ctrl := gomock.NewController(t)
	d := &handoffTestDeps{
		donations:  mocks.NewMockPhysicalDonationRepository(ctrl),
		outbox:     mocks.NewMockOutboxRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
	}
	d.svc = NewHandoffService(d.donations, d.outbox, d.transactor, zerolog.Nop())
	return d
}

func claimedDonation() *domain.PhysicalDonation {
	claimant := uuid.New()
	return &domain.PhysicalDonation{
		ID:         uuid.New(),
		DonorID:    uuid.New(),
		ClaimantID: &claimant,
		Status:     domain.HandoffClaimed,
	}
}

func TestHandoffService_ConfirmSent_FirstFlag(t *testing.T) {
	d := setupHandoffService(t)
	ctx := context.Background()
	tx := &mockTx{}
	donation := claimedDonation()

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.donations.EXPECT().GetByIDForUpdate(ctx, tx, donation.ID).Return(donation, nil)
	d.donations.EXPECT().UpdateHandoff(ctx, tx, donation).Return(nil)

	got, err := d.svc.ConfirmSent(ctx, donation.ID, donation.DonorID)
	require.NoError(t, err)
	assert.True(t, got.SenderConfirmed)
	assert.False(t, got.ReceiverConfirmed)
	assert.Equal(t, domain.HandoffClaimed, got.Status)
}

func TestHandoffService_ConfirmReceived_CompletesAndNotifiesBoth(t *testing.T) {
	d := setupHandoffService(t)
	ctx := context.Background()
	tx := &mockTx{}
	donation := claimedDonation()
	donation.SenderConfirmed = true

	var recipients []uuid.UUID
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.donations.EXPECT().GetByIDForUpdate(ctx, tx, donation.ID).Return(donation, nil)
	d.donations.EXPECT().UpdateHandoff(ctx, tx, donation).Return(nil)
	d.outbox.EXPECT().Enqueue(ctx, tx, gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, n *domain.Notification) error {
			assert.Equal(t, domain.NotificationHandoffCompleted, n.Type)
			recipients = append(recipients, *n.RecipientID)
			return nil
		})

	got, err := d.svc.ConfirmReceived(ctx, donation.ID, *donation.ClaimantID)
	require.NoError(t, err)
	assert.Equal(t, domain.HandoffCompleted, got.Status)
	assert.ElementsMatch(t, []uuid.UUID{donation.DonorID, *donation.ClaimantID}, recipients)
}

func TestHandoffService_RepeatedConfirmIsNoop(t *testing.T) {
	d := setupHandoffService(t)
	ctx := context.Background()
	tx := &mockTx{}
	donation := claimedDonation()
	donation.SenderConfirmed = true
	donation.ReceiverConfirmed = true
	donation.Status = domain.HandoffCompleted

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.donations.EXPECT().GetByIDForUpdate(ctx, tx, donation.ID).Return(donation, nil)

	got, err := d.svc.ConfirmSent(ctx, donation.ID, donation.DonorID)
	require.NoError(t, err)
	assert.Equal(t, domain.HandoffCompleted, got.Status)
}

func TestHandoffService_Guards(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		d := setupHandoffService(t)
		tx := &mockTx{}
		id := uuid.New()
		d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
		d.donations.EXPECT().GetByIDForUpdate(ctx, tx, id).Return(nil, nil)
		_, err := d.svc.ConfirmSent(ctx, id, uuid.New())
		assertAppError(t, err, "RES_001")
	})

	t.Run("sender must be donor", func(t *testing.T) {
		d := setupHandoffService(t)
		tx := &mockTx{}
		donation := claimedDonation()
		d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
		d.donations.EXPECT().GetByIDForUpdate(ctx, tx, donation.ID).Return(donation, nil)
		_, err := d.svc.ConfirmSent(ctx, donation.ID, *donation.ClaimantID)
		assertAppError(t, err, "AUTH_002")
	})

	t.Run("receiver must be claimant", func(t *testing.T) {
		d := setupHandoffService(t)
		tx := &mockTx{}
		donation := claimedDonation()
		d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
		d.donations.EXPECT().GetByIDForUpdate(ctx, tx, donation.ID).Return(donation, nil)
		_, err := d.svc.ConfirmReceived(ctx, donation.ID, donation.DonorID)
		assertAppError(t, err, "AUTH_002")
	})

	t.Run("unclaimed donation", func(t *testing.T) {
		d := setupHandoffService(t)
		tx := &mockTx{}
		donation := claimedDonation()
		donation.Status = domain.HandoffAvailable
		d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
		d.donations.EXPECT().GetByIDForUpdate(ctx, tx, donation.ID).Return(donation, nil)
		_, err := d.svc.ConfirmSent(ctx, donation.ID, donation.DonorID)
		assertAppError(t, err, "WF_004")
	})
}
