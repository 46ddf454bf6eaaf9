package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/4insec/pasaka-api/internal/api/shared"
	"github.com/4insec/pasaka-api/internal/service/auth"
)

// AuthHandler handles the registration and login endpoints. Both respond
// with the {success, message, user?} envelope; failure messages are
// deliberately generic so they cannot be used to enumerate accounts.
type AuthHandler struct {
	credentials *auth.CredentialService
	validator   *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(credentials *auth.CredentialService) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		validator:   validator.New(),
	}
}

// respondAuth writes an AuthResponse envelope.
func respondAuth(w http.ResponseWriter, r *http.Request, status int, resp AuthResponse) {
	shared.RespondWithJSON(w, r, status, resp)
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		respondAuth(w, r, http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: "Invalid request format",
		})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondAuth(w, r, http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: "Invalid email or password format",
		})
		return
	}

	account, err := h.credentials.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrRegistrationFailed):
			respondAuth(w, r, http.StatusBadRequest, AuthResponse{
				Success: false,
				Message: "Registration failed. Email might already be in use.",
			})
		case errors.Is(err, auth.ErrHashFailure):
			respondAuth(w, r, http.StatusInternalServerError, AuthResponse{
				Success: false,
				Message: "Failed to hash password",
			})
		default:
			slog.Error("registration failed", "error", err,
				"trace_id", shared.GetTraceID(r.Context()))
			respondAuth(w, r, http.StatusInternalServerError, AuthResponse{
				Success: false,
				Message: "Registration failed. Email might already be in use.",
			})
		}
		return
	}

	respondAuth(w, r, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Registration successful",
		User:    accountToUserResponse(account),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		respondAuth(w, r, http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: "Invalid request format",
		})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondAuth(w, r, http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: "Invalid email or password format",
		})
		return
	}

	account, err := h.credentials.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondAuth(w, r, http.StatusUnauthorized, AuthResponse{
				Success: false,
				Message: "Invalid email or password",
			})
			return
		}
		slog.Error("login failed", "error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		respondAuth(w, r, http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Login failed",
		})
		return
	}

	respondAuth(w, r, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    accountToUserResponse(account),
	})
}
