package store

import (
	"context"

	"github.com/4insec/pasaka-api/internal/domain"
)

// AccountStore defines the interface for account persistence. It is the only
// component that touches persistent state; uniqueness of email and api_key is
// enforced by the storage layer, not here.
type AccountStore interface {
	// Create inserts a new account and fills in the store-assigned ID and
	// CreatedAt on success.
	// Returns ErrEmailExists if the email is already taken and
	// ErrAPIKeyExists on an api-key collision.
	// Returns validation errors from the domain Account if data is invalid.
	Create(ctx context.Context, account *domain.Account) error

	// GetByEmail retrieves an account by its email address.
	// Returns ErrAccountNotFound if no account has that email.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)

	// GetIDByAPIKey resolves an API key to the owning account's ID.
	// Returns ErrAccountNotFound if the key is unknown.
	GetIDByAPIKey(ctx context.Context, apiKey string) (int64, error)
}
