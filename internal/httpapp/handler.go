// Package httpapp wires the HTTP surface: routing, auth middleware and
// one handler per endpoint.
package httpapp

import (
	"github.com/go-playground/form/v4"

	"github.com/tunevault/tunevault/internal/auth"
	"github.com/tunevault/tunevault/internal/logger"
	"github.com/tunevault/tunevault/internal/storage"
	"github.com/tunevault/tunevault/internal/store"
)

type Handler struct {
	DB          *store.DB
	Tokens      *auth.TokenManager
	Storage     *storage.Store
	Logger      *logger.Logger
	formDecoder *form.Decoder
}

func NewHandler(db *store.DB, tokens *auth.TokenManager, blobs *storage.Store, log *logger.Logger) *Handler {
	return &Handler{
		DB:          db,
		Tokens:      tokens,
		Storage:     blobs,
		Logger:      log.WithComponent("http"),
		formDecoder: form.NewDecoder(),
	}
}
