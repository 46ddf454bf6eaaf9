package auth

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/4insec/pasaka-api/internal/domain"
	"github.com/4insec/pasaka-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAccountStore is an in-memory AccountStore for tests.
type mockAccountStore struct {
	accounts map[string]*domain.Account
	nextID   int64

	createErr     error
	getByEmailErr error
}

func newMockAccountStore() *mockAccountStore {
	return &mockAccountStore{accounts: make(map[string]*domain.Account)}
}

func (m *mockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, exists := m.accounts[account.Email]; exists {
		return store.ErrEmailExists
	}
	m.nextID++
	account.ID = m.nextID
	m.accounts[account.Email] = account
	return nil
}

func (m *mockAccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.getByEmailErr != nil {
		return nil, m.getByEmailErr
	}
	account, exists := m.accounts[email]
	if !exists {
		return nil, store.ErrAccountNotFound
	}
	return account, nil
}

func (m *mockAccountStore) GetIDByAPIKey(ctx context.Context, apiKey string) (int64, error) {
	for _, account := range m.accounts {
		if account.APIKey == apiKey {
			return account.ID, nil
		}
	}
	return 0, store.ErrAccountNotFound
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		svc := NewCredentialService(newMockAccountStore(), NewArgon2Hasher(), nil)

		account, err := svc.Register(context.Background(), "a@x.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, int64(1), account.ID)
		assert.Equal(t, "a@x.com", account.Email)
		assert.Regexp(t, regexp.MustCompile(`^pasaka_[0-9a-f-]{36}$`), account.APIKey)
		assert.NotEqual(t, "pw", account.PasswordHash)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		svc := NewCredentialService(newMockAccountStore(), NewArgon2Hasher(), nil)

		_, err := svc.Register(context.Background(), "a@x.com", "pw")
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), "a@x.com", "other")
		assert.ErrorIs(t, err, ErrRegistrationFailed)
	})

	t.Run("api key collision also reports registration failure", func(t *testing.T) {
		t.Parallel()
		mock := newMockAccountStore()
		mock.createErr = store.ErrAPIKeyExists
		svc := NewCredentialService(mock, NewArgon2Hasher(), nil)

		_, err := svc.Register(context.Background(), "a@x.com", "pw")
		assert.ErrorIs(t, err, ErrRegistrationFailed,
			"the caller must not learn which constraint tripped")
	})

	t.Run("storage error passes through", func(t *testing.T) {
		t.Parallel()
		mock := newMockAccountStore()
		mock.createErr = errors.New("connection refused")
		svc := NewCredentialService(mock, NewArgon2Hasher(), nil)

		_, err := svc.Register(context.Background(), "a@x.com", "pw")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrRegistrationFailed)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	register := func(t *testing.T) (*CredentialService, *domain.Account) {
		t.Helper()
		svc := NewCredentialService(newMockAccountStore(), NewArgon2Hasher(), nil)
		account, err := svc.Register(context.Background(), "a@x.com", "pw")
		require.NoError(t, err)
		return svc, account
	}

	t.Run("register then login round-trips", func(t *testing.T) {
		t.Parallel()
		svc, registered := register(t)

		account, err := svc.Login(context.Background(), "a@x.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, account.ID)
		assert.Equal(t, registered.APIKey, account.APIKey)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		svc, _ := register(t)

		_, err := svc.Login(context.Background(), "a@x.com", "bad")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email returns the same error", func(t *testing.T) {
		t.Parallel()
		svc, _ := register(t)

		_, err := svc.Login(context.Background(), "none@x.com", "pw")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("storage error passes through", func(t *testing.T) {
		t.Parallel()
		mock := newMockAccountStore()
		mock.getByEmailErr = errors.New("connection refused")
		svc := NewCredentialService(mock, NewArgon2Hasher(), nil)

		_, err := svc.Login(context.Background(), "a@x.com", "pw")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("malformed stored hash is an internal error", func(t *testing.T) {
		t.Parallel()
		mock := newMockAccountStore()
		mock.accounts["a@x.com"] = &domain.Account{
			ID:           1,
			Email:        "a@x.com",
			PasswordHash: "not-a-phc-string",
			APIKey:       domain.GenerateAPIKey(),
		}
		svc := NewCredentialService(mock, NewArgon2Hasher(), nil)

		_, err := svc.Login(context.Background(), "a@x.com", "pw")
		assert.ErrorIs(t, err, ErrMalformedHash)
	})
}
