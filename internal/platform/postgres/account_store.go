package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/4insec/pasaka-api/internal/domain"
	"github.com/4insec/pasaka-api/internal/platform/logger"
	"github.com/4insec/pasaka-api/internal/store"
)

// AccountStore implements the store.AccountStore interface using a
// PostgreSQL database as the storage backend.
type AccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAccountStore creates a new PostgreSQL implementation of the
// AccountStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewAccountStore(db store.DBTX, logger *slog.Logger) *AccountStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &AccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

// Ensure AccountStore implements store.AccountStore interface
var _ store.AccountStore = (*AccountStore)(nil)

// Create implements store.AccountStore.Create.
// It inserts a new account row and fills the store-assigned ID and
// CreatedAt. Uniqueness of email and api_key is enforced by the table's
// unique constraints; violations map to store.ErrEmailExists and
// store.ErrAPIKeyExists.
func (s *AccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO accounts (email, password_hash, api_key)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		account.Email,
		account.PasswordHash,
		account.APIKey,
	).Scan(&account.ID, &account.CreatedAt)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("unique violation during account creation")
			return MapUniqueViolation(err, store.ErrEmailExists, store.ErrAPIKeyExists)
		}

		log.Error("failed to create account", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("account created successfully",
		slog.Int64("account_id", account.ID))
	return nil
}

// GetByEmail implements store.AccountStore.GetByEmail.
// Returns store.ErrAccountNotFound if no account has the given email.
// Email matching is case-sensitive, exactly as stored.
func (s *AccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, password_hash, api_key, created_at
		FROM accounts
		WHERE email = $1
	`

	var account domain.Account
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.APIKey,
		&account.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account not found by email")
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account by email", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &account, nil
}

// GetIDByAPIKey implements store.AccountStore.GetIDByAPIKey.
// Returns store.ErrAccountNotFound if the key is unknown. This is the hot
// path: it runs once for every protected request.
func (s *AccountStore) GetIDByAPIKey(ctx context.Context, apiKey string) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT id FROM accounts WHERE api_key = $1`

	var id int64
	err := s.db.QueryRowContext(ctx, query, apiKey).Scan(&id)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("api key not recognized")
			return 0, store.ErrAccountNotFound
		}
		log.Error("failed to look up api key", slog.String("error", err.Error()))
		return 0, MapError(err)
	}

	return id, nil
}
