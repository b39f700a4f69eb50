package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/itxsomi270/back-end/internal/rental/domain"
)

// AccountUsecase handles signup and login on top of an account store.
type AccountUsecase struct {
	repo   domain.AccountRepository
	logger *zap.Logger
}

func NewAccountUsecase(repo domain.AccountRepository, logger *zap.Logger) *AccountUsecase {
	return &AccountUsecase{repo: repo, logger: logger.Named("AccountUsecase")}
}

// Register inserts the account unconditionally. An existing account
// with the same email does not block the insert; that is the documented
// behavior of the backend this service replaces.
func (uc *AccountUsecase) Register(ctx context.Context, email, password string, rest map[string]any) (string, error) {
	account := &domain.Account{Email: email, Password: password, Rest: rest}
	id, err := uc.repo.Create(ctx, account)
	if err != nil {
		uc.logger.Error("Failed to register account", zap.String("email", email), zap.Error(err))
		return "", err
	}
	uc.logger.Info("Account registered", zap.String("accountID", id), zap.String("email", email))
	return id, nil
}

// Login looks the account up by email and compares the stored password
// byte for byte. A missing account and a wrong password both come back
// as ErrInvalidCredential so the response never reveals which it was.
//
// Passwords are stored and compared in plain text for drop-in
// compatibility with the legacy backend. This is a known security
// hazard; see DESIGN.md before fronting real users with this service.
func (uc *AccountUsecase) Login(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			uc.logger.Warn("Login failed", zap.String("email", email))
			return nil, domain.ErrInvalidCredential
		}
		uc.logger.Error("Failed to look up account for login", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	if account.Password != password {
		uc.logger.Warn("Login failed", zap.String("email", email))
		return nil, domain.ErrInvalidCredential
	}
	uc.logger.Info("Login successful", zap.String("accountID", account.ID))
	return account.Sanitized(), nil
}
