package dto

import (
	"fmt"
	"regexp"

	"github.com/tunevault/tunevault/internal/domain"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ToMap collapses validation errors into the field-keyed map returned
// to clients.
func ToMap(errs []ValidationError) map[string]string {
	result := make(map[string]string)
	for _, e := range errs {
		result[e.Field] = e.Message
	}
	return result
}

var (
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func validateEmail(email string) []ValidationError {
	var errs []ValidationError
	if email == "" {
		errs = append(errs, ValidationError{Field: "email", Message: "is required"})
	} else if !emailRegex.MatchString(email) {
		errs = append(errs, ValidationError{Field: "email", Message: "invalid email address"})
	}
	return errs
}

func validateReleaseDate(releaseDate *string) []ValidationError {
	var errs []ValidationError
	if releaseDate != nil && !dateRegex.MatchString(*releaseDate) {
		errs = append(errs, ValidationError{Field: "release_date", Message: "invalid date format (expected: YYYY-MM-DD)"})
	}
	return errs
}

// validateISRC checks length only: exactly 12 characters. No checksum
// or registry validation.
func validateISRC(isrc *string) []ValidationError {
	var errs []ValidationError
	if isrc != nil && len(*isrc) != domain.ISRCLength {
		errs = append(errs, ValidationError{Field: "isrc", Message: "ISRC must be exactly 12 characters"})
	}
	return errs
}

func validateTrackStatus(status *string) []ValidationError {
	var errs []ValidationError
	if status != nil && !domain.ValidTrackStatus(domain.TrackStatus(*status)) {
		errs = append(errs, ValidationError{Field: "status", Message: "must be one of: pending, approved, rejected, processing"})
	}
	return errs
}

func validateLyricsStatus(status *string) []ValidationError {
	var errs []ValidationError
	if status != nil && !domain.ValidLyricsStatus(domain.LyricsStatus(*status)) {
		errs = append(errs, ValidationError{Field: "lyrics_status", Message: "must be one of: pending, approved, rejected"})
	}
	return errs
}
