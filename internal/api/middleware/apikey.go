package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/4insec/pasaka-api/internal/api/shared"
	"github.com/4insec/pasaka-api/internal/store"
)

// APIKeyAuth gates every Bible route behind a per-account API key presented
// in the x-api-key header. It performs exactly one repository call per
// protected request and never caches lookups, so a deleted key stops
// working immediately.
type APIKeyAuth struct {
	accounts store.AccountStore
}

// NewAPIKeyAuth creates an APIKeyAuth middleware backed by the given store.
func NewAPIKeyAuth(accounts store.AccountStore) *APIKeyAuth {
	return &APIKeyAuth{
		accounts: accounts,
	}
}

// Authenticate resolves the x-api-key header to an account before the next
// handler runs. The request is forwarded unchanged except for the resolved
// account ID added to the context.
func (m *APIKeyAuth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get("x-api-key")
		if apiKey == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "API key is required")
			return
		}

		accountID, err := m.accounts.GetIDByAPIKey(r.Context(), apiKey)
		if err != nil {
			if errors.Is(err, store.ErrAccountNotFound) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid API key")
				return
			}
			slog.Error("api key lookup failed", "error", err,
				"trace_id", shared.GetTraceID(r.Context()))
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal server error")
			return
		}

		ctx := context.WithValue(r.Context(), shared.AccountIDContextKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
