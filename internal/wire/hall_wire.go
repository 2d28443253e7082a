package wire

import (
	"fablab-booking/internal/adaptor"
	"fablab-booking/pkg/middleware"
	"fablab-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHall(r chi.Router, hallHandler *adaptor.HallHandler, config *utils.Config, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/halls - List halls (?available=true for bookable only)
	r.Get("/api/halls", hallHandler.ListHalls)

	// GET /api/halls/{id} - Hall detail
	r.Get("/api/halls/{id}", hallHandler.GetHall)

	// GET /api/halls/{id}/availability - Month grid (?month=YYYY-MM)
	r.Get("/api/halls/{id}/availability", hallHandler.GetAvailability)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/halls", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		// POST /api/admin/halls - Create hall
		r.Post("/", hallHandler.CreateHall)

		// PUT /api/admin/halls/{id} - Update hall
		r.Put("/{id}", hallHandler.UpdateHall)

		// PUT /api/admin/halls/{id}/availability - Open/close for booking
		r.Put("/{id}/availability", hallHandler.SetAvailability)
	})
}
