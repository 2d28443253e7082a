package wire

import (
	"fablab-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// POST /api/register - Create account (public)
	r.Post("/api/register", authHandler.Register)

	// POST /api/login - Obtain access token (public)
	r.Post("/api/login", authHandler.Login)
}
