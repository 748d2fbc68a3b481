package httpapp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tunevault/tunevault/internal/httpapp/dto"
	"github.com/tunevault/tunevault/internal/store"
)

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	h.writeJSON(w, http.StatusOK, dto.NewUserResponse(user))
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())

	var req dto.ProfileUpdateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := h.DB.UpdateUserPartial(user.ID, req.ToUpdates()); err != nil {
		h.Logger.Error("Failed to update profile", "error", err, "user_id", user.ID)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	updated, err := h.DB.GetUserByID(user.ID)
	if err != nil {
		h.Logger.Error("Failed to reload user", "error", err, "user_id", user.ID)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, dto.NewUserResponse(updated))
}

// Notifications returns the caller's notifications, newest first.
// Clients poll this; there is no push channel.
func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())

	notifications, err := h.DB.ListNotificationsByUser(user.ID)
	if err != nil {
		h.Logger.Error("Failed to list notifications", "error", err, "user_id", user.ID)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, dto.NewNotificationResponseList(notifications))
}

// MarkNotificationRead is owner-scoped: another user's notification ID
// is indistinguishable from a missing one.
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusNotFound, "Notification not found")
		return
	}

	if err := h.DB.MarkNotificationRead(id, user.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "Notification not found")
			return
		}
		h.Logger.Error("Failed to mark notification read", "error", err, "notification_id", id)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Notification marked as read"})
}
