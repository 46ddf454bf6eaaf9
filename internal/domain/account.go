package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// APIKeyPrefix is the build-time constant prepended to every generated API
// key. Keys have the form "pasaka_<uuid-v4>".
const APIKeyPrefix = "pasaka"

// Common validation errors
var (
	ErrEmptyEmail    = errors.New("email cannot be empty")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrEmptyAPIKey   = errors.New("api key cannot be empty")
)

// Account represents a registered user of the Pasaka API. Its only purpose
// is to carry the credentials that gate access to the Bible endpoints.
type Account struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose the password hash in JSON
	APIKey       string    `json:"api_key"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewAccount creates an Account ready for insertion: the email as given, the
// already-computed password hash, and a freshly generated API key. ID and
// CreatedAt are assigned by the store on insert.
func NewAccount(email, passwordHash string) (*Account, error) {
	account := &Account{
		Email:        email,
		PasswordHash: passwordHash,
		APIKey:       GenerateAPIKey(),
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
// Returns an error if any field fails validation.
func (a *Account) Validate() error {
	if a.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(a.Email) {
		return ErrInvalidEmail
	}
	if a.PasswordHash == "" {
		return ErrEmptyPassword
	}
	if a.APIKey == "" {
		return ErrEmptyAPIKey
	}
	return nil
}

// GenerateAPIKey returns a fresh opaque API key of the form
// "<prefix>_<uuid-v4>". Two successive calls are distinct with overwhelming
// probability.
func GenerateAPIKey() string {
	return APIKeyPrefix + "_" + uuid.New().String()
}

// validEmailFormat performs basic validation of email format: an @ with a
// non-empty local part and a domain containing an interior dot.
func validEmailFormat(email string) bool {
	atIndex := strings.Index(email, "@")
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domain := email[atIndex+1:]
	dotIndex := strings.Index(domain, ".")
	return dotIndex > 0 && dotIndex < len(domain)-1
}
