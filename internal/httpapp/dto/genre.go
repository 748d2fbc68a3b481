package dto

import (
	"github.com/tunevault/tunevault/internal/domain"
)

type GenreResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func NewGenreResponse(g *domain.Genre) GenreResponse {
	return GenreResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
	}
}

func NewGenreResponseList(genres []*domain.Genre) []GenreResponse {
	out := make([]GenreResponse, 0, len(genres))
	for _, g := range genres {
		out = append(out, NewGenreResponse(g))
	}
	return out
}
