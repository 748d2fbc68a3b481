package httpapp

import (
	"errors"
	"net/http"

	"github.com/tunevault/tunevault/internal/auth"
	"github.com/tunevault/tunevault/internal/domain"
	"github.com/tunevault/tunevault/internal/httpapp/dto"
	"github.com/tunevault/tunevault/internal/store"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		h.writeValidationErrors(w, errs)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.Logger.Error("Failed to hash password", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user := &domain.User{
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		Role:         domain.Role(req.Role),
		IsActive:     true,
		PasswordHash: hash,
	}

	if err := h.DB.CreateUser(user); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			h.writeValidationErrors(w, []dto.ValidationError{
				{Field: "email", Message: "a user with this email already exists"},
			})
			return
		}
		h.Logger.Error("Failed to create user", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	pair, err := h.Tokens.IssuePair(user)
	if err != nil {
		h.Logger.Error("Failed to issue tokens", "error", err, "user_id", user.ID)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Logger.Info("User registered", "user_id", user.ID, "role", user.Role)
	h.writeJSON(w, http.StatusCreated, dto.AuthResponse{
		Access:  pair.Access,
		Refresh: pair.Refresh,
		User:    dto.NewUserResponse(user),
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		h.writeValidationErrors(w, errs)
		return
	}

	// Unknown email and wrong password produce the same response, so
	// login cannot be used to enumerate accounts.
	user, err := h.DB.GetUserByEmail(req.Email)
	if errors.Is(err, store.ErrNotFound) {
		h.writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		h.Logger.Error("Failed to look up user", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		h.writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if !user.IsActive {
		h.writeError(w, http.StatusUnauthorized, "Account is disabled")
		return
	}

	pair, err := h.Tokens.IssuePair(user)
	if err != nil {
		h.Logger.Error("Failed to issue tokens", "error", err, "user_id", user.ID)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Logger.Info("User logged in", "user_id", user.ID, "role", user.Role)
	h.writeJSON(w, http.StatusOK, dto.AuthResponse{
		Access:  pair.Access,
		Refresh: pair.Refresh,
		User:    dto.NewUserResponse(user),
	})
}

// ForgotPassword acknowledges the request without revealing whether the
// email belongs to an account. Actual reset delivery is out of band.
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ForgotPasswordRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if req.Email == "" {
		h.writeError(w, http.StatusBadRequest, "Email is required")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": "If an account with this email exists, a password reset link has been sent.",
	})
}
