package httpapp

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tunevault/tunevault/internal/domain"
	"github.com/tunevault/tunevault/internal/store"
)

type contextKey string

const userContextKey contextKey = "user"

// currentUser returns the authenticated user loaded by requireAuth, or
// nil on unauthenticated routes.
func currentUser(ctx context.Context) *domain.User {
	u, _ := ctx.Value(userContextKey).(*domain.User)
	return u
}

// requireAuth validates the bearer token and loads the current user
// state from the database, so role changes and deactivation take effect
// immediately rather than at token expiry.
func (h *Handler) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			h.writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			h.writeError(w, http.StatusUnauthorized, "Invalid authorization header")
			return
		}

		claims, err := h.Tokens.ValidateAccess(parts[1])
		if err != nil {
			h.writeError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		user, err := h.DB.GetUserByID(claims.UserID)
		if errors.Is(err, store.ErrNotFound) {
			h.writeError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		if err != nil {
			h.Logger.Error("Failed to load user for token", "error", err, "user_id", claims.UserID)
			h.writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if !user.IsActive {
			h.writeError(w, http.StatusUnauthorized, "Account is disabled")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next(w, r.WithContext(ctx))
	}
}

// requireRole gates a handler to one role. Runs after requireAuth, so a
// missing token is a 401 and a wrong role is a 403.
func (h *Handler) requireRole(role domain.Role, next http.HandlerFunc) http.HandlerFunc {
	return h.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(r.Context())
		if user.Role != role {
			h.writeError(w, http.StatusForbidden, "Access denied")
			return
		}
		next(w, r)
	})
}

func (h *Handler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return h.requireRole(domain.RoleAdmin, next)
}
