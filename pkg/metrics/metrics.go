package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fablab_booking",
			Name:      "booking_created_total",
			Help:      "Count of bookings created.",
		},
	)

	bookingRejectedConflict = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fablab_booking",
			Name:      "booking_date_conflict_total",
			Help:      "Count of submissions rejected because the date was already booked.",
		},
	)

	bookingCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fablab_booking",
			Name:      "booking_cancelled_total",
			Help:      "Count of bookings cancelled by users.",
		},
	)

	adminDecision = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fablab_booking",
			Name:      "admin_decision_total",
			Help:      "Count of admin decisions over pending bookings.",
		},
		[]string{"decision"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingRejectedConflict, bookingCancelled, adminDecision)
	})
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncBookingDateConflict() {
	bookingRejectedConflict.Inc()
}

func IncBookingCancelled() {
	bookingCancelled.Inc()
}

func IncAdminDecision(decision string) {
	adminDecision.WithLabelValues(decision).Inc()
}
