package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/4insec/pasaka-api/internal/api/shared"
	"github.com/4insec/pasaka-api/internal/domain"
	"github.com/4insec/pasaka-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAccountStore resolves a single known API key.
type mockAccountStore struct {
	knownKey  string
	accountID int64
	err       error
	calls     int
}

func (m *mockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	return errors.New("not implemented")
}

func (m *mockAccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return nil, errors.New("not implemented")
}

func (m *mockAccountStore) GetIDByAPIKey(ctx context.Context, apiKey string) (int64, error) {
	m.calls++
	if m.err != nil {
		return 0, m.err
	}
	if apiKey == m.knownKey {
		return m.accountID, nil
	}
	return 0, store.ErrAccountNotFound
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		header      string
		storeErr    error
		wantStatus  int
		wantError   string
		wantReached bool
	}{
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
			wantError:  "API key is required",
		},
		{
			name:       "unknown key",
			header:     "pasaka_00000000-0000-0000-0000-000000000000",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid API key",
		},
		{
			name:       "storage error",
			header:     "pasaka_valid",
			storeErr:   errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
		{
			name:        "valid key",
			header:      "pasaka_valid",
			wantStatus:  http.StatusOK,
			wantReached: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := &mockAccountStore{knownKey: "pasaka_valid", accountID: 42, err: tt.storeErr}
			auth := NewAPIKeyAuth(mock)

			reached := false
			var gotAccountID int64
			var gotAccountOK bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				gotAccountID, gotAccountOK = shared.AccountID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/bible/books", nil)
			if tt.header != "" {
				req.Header.Set("x-api-key", tt.header)
			}
			rec := httptest.NewRecorder()

			auth.Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantReached, reached, "handler reachability")

			if tt.wantError != "" {
				var body shared.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.False(t, body.Success)
				assert.Equal(t, tt.wantError, body.Error)
			}

			if tt.wantReached {
				require.True(t, gotAccountOK, "account ID should be in context")
				assert.Equal(t, int64(42), gotAccountID)
			}
		})
	}
}

// TestAuthenticateSingleLookup verifies the middleware performs exactly one
// repository call per request.
func TestAuthenticateSingleLookup(t *testing.T) {
	t.Parallel()

	mock := &mockAccountStore{knownKey: "pasaka_valid", accountID: 7}
	auth := NewAPIKeyAuth(mock)
	handler := auth.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/bible/books", nil)
	req.Header.Set("x-api-key", "pasaka_valid")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, 1, mock.calls)
}

// TestAuthenticateHeaderCaseInsensitive verifies the header name is matched
// case-insensitively per HTTP rules.
func TestAuthenticateHeaderCaseInsensitive(t *testing.T) {
	t.Parallel()

	mock := &mockAccountStore{knownKey: "pasaka_valid", accountID: 7}
	auth := NewAPIKeyAuth(mock)

	reached := false
	handler := auth.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/bible/books", nil)
	req.Header.Set("X-API-KEY", "pasaka_valid")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, reached)
}
