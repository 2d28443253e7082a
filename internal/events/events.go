// Package events defines the message payloads published to the broker when a
// booking changes state. Downstream consumers (the site's notification
// worker) act on these without querying the primary database.
package events

const (
	QueueBookingCreated   = "booking.created"
	QueueBookingCancelled = "booking.cancelled"
	QueueBookingDecided   = "booking.decided"
)

// BookingCreatedEvent is published after a booking commits in pending state.
type BookingCreatedEvent struct {
	BookingID   string  `json:"booking_id"`
	Reference   string  `json:"reference"`
	HallID      string  `json:"hall_id"`
	HallName    string  `json:"hall_name"`
	UserID      string  `json:"user_id"`
	UserEmail   string  `json:"user_email"`
	BookingDate string  `json:"booking_date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	TotalCost   float64 `json:"total_cost"`
	CreatedAt   string  `json:"created_at"`
}

// BookingCancelledEvent is published when the owning user cancels.
type BookingCancelledEvent struct {
	BookingID   string `json:"booking_id"`
	Reference   string `json:"reference"`
	HallID      string `json:"hall_id"`
	HallName    string `json:"hall_name"`
	UserID      string `json:"user_id"`
	UserEmail   string `json:"user_email"`
	BookingDate string `json:"booking_date"`
	Reason      string `json:"reason"`
	CancelledAt string `json:"cancelled_at"`
}

// BookingDecidedEvent is published when an admin accepts or rejects.
type BookingDecidedEvent struct {
	BookingID   string `json:"booking_id"`
	Reference   string `json:"reference"`
	UserID      string `json:"user_id"`
	UserEmail   string `json:"user_email"`
	BookingDate string `json:"booking_date"`
	Decision    string `json:"decision"`
	Reason      string `json:"reason,omitempty"`
	DecidedAt   string `json:"decided_at"`
}
