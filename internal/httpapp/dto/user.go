package dto

import (
	"time"

	"github.com/tunevault/tunevault/internal/domain"
)

type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	DisplayName     string `json:"display_name"`
	Role            string `json:"role"`
}

func (r *RegisterRequest) Validate() []ValidationError {
	var errs []ValidationError

	errs = append(errs, validateEmail(r.Email)...)

	if len(r.Password) < 8 {
		errs = append(errs, ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if r.Password != r.ConfirmPassword {
		errs = append(errs, ValidationError{Field: "confirm_password", Message: "passwords don't match"})
	}

	// Admin accounts come from administrative bootstrap, never from
	// self-registration.
	switch domain.Role(r.Role) {
	case domain.RoleArtist, domain.RoleListener:
	default:
		errs = append(errs, ValidationError{Field: "role", Message: "must be 'artist' or 'listener'"})
	}

	return errs
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() []ValidationError {
	var errs []ValidationError
	if r.Email == "" {
		errs = append(errs, ValidationError{Field: "email", Message: "is required"})
	}
	if r.Password == "" {
		errs = append(errs, ValidationError{Field: "password", Message: "is required"})
	}
	return errs
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ProfileUpdateRequest struct {
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"`
}

func (r *ProfileUpdateRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.DisplayName != nil {
		updates["display_name"] = *r.DisplayName
	}
	if r.Bio != nil {
		updates["bio"] = *r.Bio
	}
	return updates
}

type UserResponse struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	Role        string    `json:"role"`
	IsVerified  bool      `json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		Role:        string(u.Role),
		IsVerified:  u.IsVerified,
		CreatedAt:   u.CreatedAt,
	}
}

// AuthResponse is returned by register and login: the token pair plus
// the user's public representation.
type AuthResponse struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    UserResponse `json:"user"`
}
