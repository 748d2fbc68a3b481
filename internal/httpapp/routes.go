package httpapp

import (
	"github.com/go-chi/chi/v5"

	"github.com/tunevault/tunevault/internal/domain"
)

// RegisterRoutes mounts every endpoint on the router. Auth and role
// checks are applied here so a reader can see each route's guard next
// to its path.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health/", h.HealthCheck)

	r.Post("/auth/register/", h.Register)
	r.Post("/auth/login/", h.Login)
	r.Post("/auth/forgot-password/", h.ForgotPassword)

	r.Post("/music/upload/", h.requireRole(domain.RoleArtist, h.UploadTrack))
	r.Get("/music/artist-tracks/", h.requireRole(domain.RoleArtist, h.ArtistTracks))
	r.Get("/music/tracks/{id}/", h.requireAuth(h.GetTrack))
	r.Put("/music/tracks/{id}/update/", h.requireAuth(h.UpdateTrack))
	r.Delete("/music/tracks/{id}/delete/", h.requireAuth(h.DeleteTrack))

	r.Get("/admin/pending-tracks/", h.requireAdmin(h.PendingTracks))
	r.Get("/admin/all-tracks/", h.requireAdmin(h.AllTracks))
	r.Put("/admin/tracks/{id}/status/", h.requireAdmin(h.UpdateTrackStatus))
	r.Get("/admin/stats/", h.requireAdmin(h.AdminStats))
	r.Get("/admin/artists/", h.requireAdmin(h.ArtistList))

	r.Get("/users/profile/", h.requireAuth(h.Profile))
	r.Put("/users/profile/update/", h.requireAuth(h.UpdateProfile))
	r.Get("/users/notifications/", h.requireAuth(h.Notifications))
	r.Post("/users/notifications/{id}/read/", h.requireAuth(h.MarkNotificationRead))

	r.Get("/genres/", h.Genres)
	r.Post("/tracks/{id}/play/", h.requireAuth(h.RecordPlay))
}
