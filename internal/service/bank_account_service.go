package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"
	"donation-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BankAccountServiceImpl implements ports.BankAccountService. Account numbers
// are encrypted before storage; only the last four digits stay readable.
type BankAccountServiceImpl struct {
	accounts   ports.BankAccountRepository
	users      ports.UserRepository
	encSvc     ports.EncryptionService
	transactor ports.DBTransactor
	log        zerolog.Logger
}

func NewBankAccountService(
	accounts ports.BankAccountRepository,
	users ports.UserRepository,
	encSvc ports.EncryptionService,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *BankAccountServiceImpl {
	return &BankAccountServiceImpl{
		accounts:   accounts,
		users:      users,
		encSvc:     encSvc,
		transactor: transactor,
		log:        log,
	}
}

func (s *BankAccountServiceImpl) Add(ctx context.Context, req ports.AddBankAccountRequest) (*domain.BankAccount, error) {
	number := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' {
			return -1
		}
		return r
	}, req.AccountNumber)
	if len(number) < 4 {
		return nil, apperror.Validation("account number must have at least 4 characters")
	}
	holder := strings.TrimSpace(req.AccountHolderName)
	bank := strings.TrimSpace(req.BankName)
	if holder == "" || bank == "" {
		return nil, apperror.Validation("account holder and bank name are required")
	}
	accountType := strings.TrimSpace(req.AccountType)
	if accountType == "" {
		return nil, apperror.Validation("account type is required")
	}

	owner, err := s.users.GetByID(ctx, req.OwnerID)
	if err != nil {
		return nil, apperror.FromStorage("get account owner", err)
	}
	if owner == nil {
		return nil, apperror.ErrNotFound("user")
	}

	enc, err := s.encSvc.Encrypt(number)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt account number: %w", err))
	}

	account := &domain.BankAccount{
		ID:                uuid.New(),
		OwnerUserID:       owner.ID,
		AccountHolderName: holder,
		BankName:          bank,
		AccountNumber:     number,
		AccountNumberEnc:  enc,
		AccountLast4:      domain.Last4(number),
		IBAN:              trimmedPtr(req.IBAN),
		BranchCode:        trimmedPtr(req.BranchCode),
		AccountType:       accountType,
		IsDefault:         req.IsDefault,
		Status:            domain.BankAccountActive,
		CreatedAt:         time.Now().UTC(),
	}

	dbTx, err := begin(ctx, s.transactor)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if account.IsDefault {
		if err := s.accounts.ClearDefault(ctx, dbTx, owner.ID); err != nil {
			return nil, apperror.FromStorage("clear default bank account", err)
		}
	}
	if err := s.accounts.Create(ctx, dbTx, account); err != nil {
		return nil, apperror.FromStorage("create bank account", err)
	}
	if err := commit(ctx, dbTx); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("bank_account_id", account.ID.String()).
		Str("owner_id", owner.ID.String()).
		Bool("is_default", account.IsDefault).
		Msg("bank account added")
	return account, nil
}

func (s *BankAccountServiceImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.BankAccount, error) {
	accounts, err := s.accounts.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.FromStorage("list bank accounts", err)
	}
	return accounts, nil
}

// Get returns one of the owner's accounts. Accounts of other users read as
// not found.
func (s *BankAccountServiceImpl) Get(ctx context.Context, id, ownerID uuid.UUID) (*domain.BankAccount, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromStorage("get bank account", err)
	}
	if account == nil || account.OwnerUserID != ownerID {
		return nil, apperror.ErrNotFound("bank account")
	}
	return account, nil
}
