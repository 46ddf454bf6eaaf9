package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/4insec/pasaka-api/internal/domain"
	"github.com/4insec/pasaka-api/internal/platform/logger"
	"github.com/4insec/pasaka-api/internal/store"
)

// CredentialService implements registration and login. Each operation wraps
// one repository call plus hashing; API keys are minted here at
// registration time and never rotated.
type CredentialService struct {
	accounts store.AccountStore
	hasher   PasswordHasher
	logger   *slog.Logger
}

// NewCredentialService creates a CredentialService with the given
// dependencies. If logger is nil, a default logger will be used.
func NewCredentialService(
	accounts store.AccountStore,
	hasher PasswordHasher,
	logger *slog.Logger,
) *CredentialService {
	if accounts == nil {
		panic("accounts cannot be nil")
	}
	if hasher == nil {
		panic("hasher cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CredentialService{
		accounts: accounts,
		hasher:   hasher,
		logger:   logger.With(slog.String("component", "credential_service")),
	}
}

// Register hashes the password, mints a fresh API key and inserts the
// account. Concurrent registrations for the same email race to the unique
// constraint; the loser gets ErrRegistrationFailed, which deliberately does
// not say which constraint tripped.
// Returns ErrHashFailure if the password could not be hashed.
func (s *CredentialService) Register(ctx context.Context, email, password string) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		log.Error("password hashing failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrHashFailure, err)
	}

	account, err := domain.NewAccount(email, passwordHash)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		if store.IsDuplicateError(err) {
			log.Warn("registration conflict")
			return nil, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
		}
		log.Error("failed to insert account", slog.String("error", err.Error()))
		return nil, err
	}

	log.Info("account registered", slog.Int64("account_id", account.ID))
	return account, nil
}

// Login looks the account up by email and verifies the password against the
// stored hash. Unknown email and wrong password both return
// ErrInvalidCredentials; any other failure is a storage or internal error.
func (s *CredentialService) Login(ctx context.Context, email, password string) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to get account by email", slog.String("error", err.Error()))
		return nil, err
	}

	ok, err := s.hasher.Verify(account.PasswordHash, password)
	if err != nil {
		log.Error("stored password hash could not be verified",
			slog.Int64("account_id", account.ID),
			slog.String("error", err.Error()))
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	log.Info("login successful", slog.Int64("account_id", account.ID))
	return account, nil
}
