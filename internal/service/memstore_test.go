package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// memStore is an in-memory stand-in for the postgres repositories. A
// transaction holds txMu for its whole life, which serializes writers the
// way the fund row lock does, and Rollback restores the snapshot taken at
// Begin.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex
	st   memState
}

type memState struct {
	fund      domain.FundBalance
	records   []domain.FinancialTransaction
	users     map[uuid.UUID]domain.User
	donations map[uuid.UUID]domain.MoneyDonation
	requests  map[uuid.UUID]domain.MoneyRequest
	accounts  map[uuid.UUID]domain.BankAccount
	physical  map[uuid.UUID]domain.PhysicalDonation
	actions   []domain.AdminAction
	outbox    []domain.Notification
}

func newMemStore() *memStore {
	return &memStore{st: memState{
		users:     map[uuid.UUID]domain.User{},
		donations: map[uuid.UUID]domain.MoneyDonation{},
		requests:  map[uuid.UUID]domain.MoneyRequest{},
		accounts:  map[uuid.UUID]domain.BankAccount{},
		physical:  map[uuid.UUID]domain.PhysicalDonation{},
	}}
}

func (s memState) clone() memState {
	c := s
	c.records = append([]domain.FinancialTransaction(nil), s.records...)
	c.actions = append([]domain.AdminAction(nil), s.actions...)
	c.outbox = append([]domain.Notification(nil), s.outbox...)
	c.users = cloneMap(s.users)
	c.donations = cloneMap(s.donations)
	c.requests = cloneMap(s.requests)
	c.accounts = cloneMap(s.accounts)
	c.physical = cloneMap(s.physical)
	return c
}

func cloneMap[V any](m map[uuid.UUID]V) map[uuid.UUID]V {
	out := make(map[uuid.UUID]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *memStore) read(fn func(st *memState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.st)
}

func (s *memStore) snapshot() memState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.clone()
}

// --- transactor ---

type memTx struct {
	pgx.Tx
	store *memStore
	saved memState
	done  bool
}

func (s *memStore) Begin(_ context.Context) (pgx.Tx, error) {
	s.txMu.Lock()
	return &memTx{store: s, saved: s.snapshot()}, nil
}

func (t *memTx) Commit(_ context.Context) error {
	if !t.done {
		t.done = true
		t.store.txMu.Unlock()
	}
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.mu.Lock()
	t.store.st = t.saved
	t.store.mu.Unlock()
	t.store.txMu.Unlock()
	return nil
}

// --- users ---

type memUsers struct{ s *memStore }

func (r memUsers) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	var out *domain.User
	r.s.read(func(st *memState) {
		if u, ok := st.users[id]; ok {
			out = &u
		}
	})
	return out, nil
}

func (r memUsers) AddEcoPoints(_ context.Context, _ pgx.Tx, userID uuid.UUID, points int64) error {
	r.s.read(func(st *memState) {
		u := st.users[userID]
		u.EcoPoints += points
		st.users[userID] = u
	})
	return nil
}

// --- fund and ledger records ---

type memFund struct{ s *memStore }

func (r memFund) Get(_ context.Context) (*domain.FundBalance, error) {
	var out domain.FundBalance
	r.s.read(func(st *memState) { out = st.fund })
	return &out, nil
}

func (r memFund) GetForUpdate(ctx context.Context, _ pgx.Tx) (*domain.FundBalance, error) {
	return r.Get(ctx)
}

func (r memFund) Update(_ context.Context, _ pgx.Tx, b *domain.FundBalance) error {
	r.s.read(func(st *memState) { st.fund = *b })
	return nil
}

type memRecords struct{ s *memStore }

func (r memRecords) Create(_ context.Context, _ pgx.Tx, rec *domain.FinancialTransaction) error {
	r.s.read(func(st *memState) { st.records = append(st.records, *rec) })
	return nil
}

func (r memRecords) List(_ context.Context, f domain.TransactionFilter) ([]domain.FinancialTransaction, int64, error) {
	var out []domain.FinancialTransaction
	r.s.read(func(st *memState) {
		for _, rec := range st.records {
			if f.Kind != nil && rec.Kind != *f.Kind {
				continue
			}
			if f.Category != nil && rec.Category != *f.Category {
				continue
			}
			out = append(out, rec)
		}
	})
	return out, int64(len(out)), nil
}

func (r memRecords) Totals(_ context.Context) (*domain.LedgerTotals, error) {
	totals := &domain.LedgerTotals{}
	r.s.read(func(st *memState) {
		for _, rec := range st.records {
			totals.Records++
			if rec.Kind == domain.TransactionKindDonation {
				totals.Donations += rec.Amount
			} else {
				totals.Withdrawals += rec.Amount
			}
		}
	})
	return totals, nil
}

// --- money donations ---

type memDonations struct{ s *memStore }

func (r memDonations) Create(_ context.Context, _ pgx.Tx, d *domain.MoneyDonation) error {
	r.s.read(func(st *memState) { st.donations[d.ID] = *d })
	return nil
}

func (r memDonations) GetByID(_ context.Context, id uuid.UUID) (*domain.MoneyDonation, error) {
	var out *domain.MoneyDonation
	r.s.read(func(st *memState) {
		if d, ok := st.donations[id]; ok {
			out = &d
		}
	})
	return out, nil
}

func (r memDonations) GetByIDForUpdate(ctx context.Context, _ pgx.Tx, id uuid.UUID) (*domain.MoneyDonation, error) {
	return r.GetByID(ctx, id)
}

func (r memDonations) Transition(_ context.Context, _ pgx.Tx, d *domain.MoneyDonation, from domain.MoneyDonationStatus) error {
	var err error
	r.s.read(func(st *memState) {
		if st.donations[d.ID].Status != from {
			err = ports.ErrStaleStatus
			return
		}
		st.donations[d.ID] = *d
	})
	return err
}

func (r memDonations) ListAwaitingReview(_ context.Context) ([]domain.MoneyDonation, error) {
	return r.list(func(d domain.MoneyDonation) bool { return d.AwaitingReview() }), nil
}

func (r memDonations) ListByDonor(_ context.Context, donorID uuid.UUID) ([]domain.MoneyDonation, error) {
	return r.list(func(d domain.MoneyDonation) bool { return d.DonorID == donorID }), nil
}

func (r memDonations) list(keep func(domain.MoneyDonation) bool) []domain.MoneyDonation {
	var out []domain.MoneyDonation
	r.s.read(func(st *memState) {
		for _, d := range st.donations {
			if keep(d) {
				out = append(out, d)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// --- money requests ---

type memRequests struct{ s *memStore }

func (r memRequests) Create(_ context.Context, _ pgx.Tx, req *domain.MoneyRequest) error {
	r.s.read(func(st *memState) { st.requests[req.ID] = *req })
	return nil
}

func (r memRequests) GetByID(_ context.Context, id uuid.UUID) (*domain.MoneyRequest, error) {
	var out *domain.MoneyRequest
	r.s.read(func(st *memState) {
		if req, ok := st.requests[id]; ok {
			out = &req
		}
	})
	return out, nil
}

func (r memRequests) GetByIDForUpdate(ctx context.Context, _ pgx.Tx, id uuid.UUID) (*domain.MoneyRequest, error) {
	return r.GetByID(ctx, id)
}

func (r memRequests) Transition(_ context.Context, _ pgx.Tx, req *domain.MoneyRequest, from domain.MoneyRequestStatus) error {
	var err error
	r.s.read(func(st *memState) {
		if st.requests[req.ID].Status != from {
			err = ports.ErrStaleStatus
			return
		}
		st.requests[req.ID] = *req
	})
	return err
}

func (r memRequests) List(_ context.Context, f domain.MoneyRequestFilter) ([]domain.MoneyRequest, error) {
	var out []domain.MoneyRequest
	r.s.read(func(st *memState) {
		for _, req := range st.requests {
			if f.Status != nil && req.Status != *f.Status {
				continue
			}
			if f.RequesterID != nil && req.RequesterID != *f.RequesterID {
				continue
			}
			out = append(out, req)
		}
	})
	return out, nil
}

func (r memRequests) Stats(_ context.Context) (*domain.MoneyRequestStats, error) {
	stats := &domain.MoneyRequestStats{}
	r.s.read(func(st *memState) {
		for _, req := range st.requests {
			var bucket *domain.StatusTotals
			switch req.Status {
			case domain.MoneyRequestPending:
				bucket = &stats.Pending
			case domain.MoneyRequestApproved:
				bucket = &stats.Approved
			default:
				bucket = &stats.Rejected
			}
			bucket.Count++
			bucket.Amount += req.Amount
		}
	})
	return stats, nil
}

// --- bank accounts ---

type memAccounts struct{ s *memStore }

func (r memAccounts) Create(_ context.Context, _ pgx.Tx, a *domain.BankAccount) error {
	r.s.read(func(st *memState) { st.accounts[a.ID] = *a })
	return nil
}

func (r memAccounts) ClearDefault(_ context.Context, _ pgx.Tx, ownerID uuid.UUID) error {
	r.s.read(func(st *memState) {
		for id, a := range st.accounts {
			if a.OwnerUserID == ownerID && a.IsDefault {
				a.IsDefault = false
				st.accounts[id] = a
			}
		}
	})
	return nil
}

func (r memAccounts) GetByID(_ context.Context, id uuid.UUID) (*domain.BankAccount, error) {
	var out *domain.BankAccount
	r.s.read(func(st *memState) {
		if a, ok := st.accounts[id]; ok {
			out = &a
		}
	})
	return out, nil
}

func (r memAccounts) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]domain.BankAccount, error) {
	var out []domain.BankAccount
	r.s.read(func(st *memState) {
		for _, a := range st.accounts {
			if a.OwnerUserID == ownerID {
				out = append(out, a)
			}
		}
	})
	return out, nil
}

// --- physical donations ---

type memPhysical struct{ s *memStore }

func (r memPhysical) GetByIDForUpdate(_ context.Context, _ pgx.Tx, id uuid.UUID) (*domain.PhysicalDonation, error) {
	var out *domain.PhysicalDonation
	r.s.read(func(st *memState) {
		if d, ok := st.physical[id]; ok {
			out = &d
		}
	})
	return out, nil
}

func (r memPhysical) UpdateHandoff(_ context.Context, _ pgx.Tx, d *domain.PhysicalDonation) error {
	r.s.read(func(st *memState) { st.physical[d.ID] = *d })
	return nil
}

// --- audit and outbox ---

type memActions struct{ s *memStore }

func (r memActions) Create(_ context.Context, _ pgx.Tx, a *domain.AdminAction) error {
	r.s.read(func(st *memState) { st.actions = append(st.actions, *a) })
	return nil
}

type memOutbox struct{ s *memStore }

func (r memOutbox) Enqueue(_ context.Context, _ pgx.Tx, n *domain.Notification) error {
	r.s.read(func(st *memState) { st.outbox = append(st.outbox, *n) })
	return nil
}

func (r memOutbox) Claim(context.Context, int, time.Duration) ([]domain.OutboxMessage, error) {
	return nil, nil
}

func (r memOutbox) MarkPublished(context.Context, uuid.UUID) error { return nil }

func (r memOutbox) MarkFailed(context.Context, uuid.UUID, string, time.Time, bool) error {
	return nil
}

// plainCipher keeps account numbers readable so assertions stay simple.
type plainCipher struct{}

func (plainCipher) Encrypt(s string) (string, error) { return "enc:" + s, nil }
func (plainCipher) Decrypt(s string) (string, error) { return s[len("enc:"):], nil }

// memApp wires the real services over one memStore.
type memApp struct {
	store     *memStore
	ledger    *FundLedgerService
	donations *MoneyDonationServiceImpl
	requests  *MoneyRequestServiceImpl
	accounts  *BankAccountServiceImpl
	handoff   *HandoffServiceImpl
}

func newMemApp() *memApp {
	s := newMemStore()
	log := zerolog.Nop()
	ledger := NewFundLedgerService(memFund{s}, memRecords{s}, memActions{s}, s, log)
	return &memApp{
		store:     s,
		ledger:    ledger,
		donations: NewMoneyDonationService(memDonations{s}, memUsers{s}, ledger, memOutbox{s}, memActions{s}, s, DefaultRewardPolicy, log),
		requests:  NewMoneyRequestService(memRequests{s}, memUsers{s}, memAccounts{s}, ledger, memOutbox{s}, memActions{s}, s, plainCipher{}, log),
		accounts:  NewBankAccountService(memAccounts{s}, memUsers{s}, plainCipher{}, s, log),
		handoff:   NewHandoffService(memPhysical{s}, memOutbox{s}, s, log),
	}
}

func (a *memApp) addUser(role domain.Role) uuid.UUID {
	id := uuid.New()
	a.store.read(func(st *memState) {
		st.users[id] = domain.User{ID: id, Name: string(role) + "-user", Role: role}
	})
	return id
}
