package jsonfile

import (
	"context"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/itxsomi270/back-end/internal/rental/domain"
)

const accountsFile = "accounts.json"

// AccountRepository stores accounts in a single JSON snapshot file.
type AccountRepository struct {
	path   string
	logger *zap.Logger
}

func NewAccountRepository(dataDir string, logger *zap.Logger) *AccountRepository {
	return &AccountRepository{
		path:   filepath.Join(dataDir, accountsFile),
		logger: logger.Named("AccountRepository"),
	}
}

func (r *AccountRepository) Create(_ context.Context, account *domain.Account) (string, error) {
	accounts := []*domain.Account{}
	if err := readSnapshot(r.path, &accounts); err != nil {
		r.logger.Error("Failed to load accounts", zap.Error(err))
		return "", err
	}
	stored := *account
	stored.ID = uuid.New().String()
	accounts = append(accounts, &stored)
	if err := writeSnapshot(r.path, accounts); err != nil {
		r.logger.Error("Failed to persist accounts", zap.Error(err))
		return "", err
	}
	r.logger.Info("Account created", zap.String("accountID", stored.ID), zap.String("email", stored.Email))
	return stored.ID, nil
}

// FindByEmail returns the first account with a matching email. No
// uniqueness is enforced at insert time, so later duplicates are
// shadowed by the earliest one.
func (r *AccountRepository) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	accounts := []*domain.Account{}
	if err := readSnapshot(r.path, &accounts); err != nil {
		r.logger.Error("Failed to load accounts", zap.Error(err))
		return nil, err
	}
	for _, account := range accounts {
		if account.Email == email {
			return account, nil
		}
	}
	r.logger.Debug("Account not found by email", zap.String("email", email))
	return nil, domain.ErrAccountNotFound
}
