package wire

import (
	"fablab-booking/internal/adaptor"
	"fablab-booking/pkg/middleware"
	"fablab-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, config *utils.Config, log *zap.Logger) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		// POST /api/bookings - Submit a booking request
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/user/bookings - Own bookings grouped by lifecycle bucket
		r.Get("/api/user/bookings", bookingHandler.GetMyBookings)

		// PUT /api/bookings/{id}/cancel - Cancel own upcoming booking
		r.Put("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		// PUT /api/admin/bookings/{id}/decision - Accept or reject a pending booking
		r.Put("/{id}/decision", bookingHandler.DecideBooking)
	})
}
