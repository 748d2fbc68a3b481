package domain

import (
	"time"
)

type Role string

const (
	RoleArtist   Role = "artist"
	RoleListener Role = "listener"
	RoleAdmin    Role = "admin"
)

// ValidRole reports whether r is one of the known account roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleArtist, RoleListener, RoleAdmin:
		return true
	}
	return false
}

// User is a platform account. Email doubles as the login name and is
// unique platform-wide.
type User struct {
	ID             int64     `json:"id" db:"id"`
	Email          string    `json:"email" db:"email"`
	DisplayName    string    `json:"display_name" db:"display_name"`
	Bio            string    `json:"bio" db:"bio"`
	ProfilePicture *string   `json:"profile_picture,omitempty" db:"profile_picture"`
	Role           Role      `json:"role" db:"role"`
	IsVerified     bool      `json:"is_verified" db:"is_verified"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	PasswordHash   string    `json:"-" db:"password_hash"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Genre is a named tag, created lazily when an upload references an
// unknown genre name.
type Genre struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type TrackStatus string

const (
	TrackStatusPending    TrackStatus = "pending"
	TrackStatusApproved   TrackStatus = "approved"
	TrackStatusRejected   TrackStatus = "rejected"
	TrackStatusProcessing TrackStatus = "processing"
)

func ValidTrackStatus(s TrackStatus) bool {
	switch s {
	case TrackStatusPending, TrackStatusApproved, TrackStatusRejected, TrackStatusProcessing:
		return true
	}
	return false
}

type LyricsStatus string

const (
	LyricsStatusPending  LyricsStatus = "pending"
	LyricsStatusApproved LyricsStatus = "approved"
	LyricsStatusRejected LyricsStatus = "rejected"
)

func ValidLyricsStatus(s LyricsStatus) bool {
	switch s {
	case LyricsStatusPending, LyricsStatusApproved, LyricsStatusRejected:
		return true
	}
	return false
}

// ISRCLength is the exact length of an International Standard Recording
// Code. Format-only check; no registry validation.
const ISRCLength = 12

// Track is the central artifact. IDs are opaque UUIDs assigned at
// creation. Status and LyricsStatus are independent review states.
type Track struct {
	ID           string       `json:"id" db:"id"`
	Title        string       `json:"title" db:"title"`
	ArtistID     int64        `json:"artist_id" db:"artist_id"`
	GenreID      *int64       `json:"genre_id,omitempty" db:"genre_id"`
	ReleaseDate  string       `json:"release_date" db:"release_date"`
	Duration     *int         `json:"duration,omitempty" db:"duration"`
	AudioFile    string       `json:"audio_file" db:"audio_file"`
	CoverArt     *string      `json:"cover_art,omitempty" db:"cover_art"`
	Lyrics       string       `json:"lyrics" db:"lyrics"`
	LyricsStatus LyricsStatus `json:"lyrics_status" db:"lyrics_status"`
	ISRC         *string      `json:"isrc,omitempty" db:"isrc"`
	Status       TrackStatus  `json:"status" db:"status"`
	PlayCount    int          `json:"play_count" db:"play_count"`
	AdminNotes   string       `json:"admin_notes" db:"admin_notes"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}

// PlayHistory is an append-only play event. The listener reference is
// cleared, not cascaded, when the user is removed.
type PlayHistory struct {
	ID         int64     `json:"id" db:"id"`
	TrackID    string    `json:"track_id" db:"track_id"`
	ListenerID *int64    `json:"listener_id,omitempty" db:"listener_id"`
	PlayedAt   time.Time `json:"played_at" db:"played_at"`
	IPAddress  *string   `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent  string    `json:"user_agent" db:"user_agent"`
}

type NotificationType string

const (
	NotificationTrackApproved   NotificationType = "track_approved"
	NotificationTrackRejected   NotificationType = "track_rejected"
	NotificationTrackProcessing NotificationType = "track_processing"
	NotificationTrackPending    NotificationType = "track_pending"
	NotificationLyricsApproved  NotificationType = "lyrics_approved"
	NotificationLyricsRejected  NotificationType = "lyrics_rejected"
	NotificationISRCAssigned    NotificationType = "isrc_assigned"
)

// Notification is a message to a user about a track-related event.
// Rows are deleted only by cascade when their track is deleted.
type Notification struct {
	ID        int64            `json:"id" db:"id"`
	UserID    int64            `json:"user_id" db:"user_id"`
	Type      NotificationType `json:"notification_type" db:"notification_type"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	TrackID   *string          `json:"track_id,omitempty" db:"track_id"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}
