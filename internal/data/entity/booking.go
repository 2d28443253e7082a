package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusAccepted  BookingStatus = "accepted"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsTerminal reports whether the status admits no further transitions.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusRejected || s == BookingStatusCancelled
}

// CanTransitionTo encodes the booking state machine:
// pending -> accepted | rejected | cancelled, accepted -> cancelled.
// Rejected and cancelled are terminal.
func (s BookingStatus) CanTransitionTo(to BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return to == BookingStatusAccepted || to == BookingStatusRejected || to == BookingStatusCancelled
	case BookingStatusAccepted:
		return to == BookingStatusCancelled
	default:
		return false
	}
}

// DateLayout is the calendar-date format used across halls and bookings.
// Dates are plain strings, no time zone conversion is ever applied.
const DateLayout = "2006-01-02"

// TimeLayout is the wall-clock format for start/end times.
const TimeLayout = "15:04"

// Booking is a user's request to reserve a hall for one calendar date.
// HallName and HourlyRate are deliberate snapshots taken at creation time so
// that later hall edits never rewrite the history of past bookings.
type Booking struct {
	Base
	Reference   string        `db:"reference"`
	HallID      uuid.UUID     `db:"hall_id"`
	HallName    string        `db:"hall_name"`
	HourlyRate  float64       `db:"hourly_rate"`
	UserID      uuid.UUID     `db:"user_id"`
	UserEmail   string        `db:"user_email"`
	UserName    string        `db:"user_name"`
	BookingDate string        `db:"booking_date"`
	StartTime   string        `db:"start_time"`
	EndTime     string        `db:"end_time"`
	Duration    float64       `db:"duration"`
	Attendees   int           `db:"attendees"`
	Purpose     string        `db:"purpose"`
	Status      BookingStatus `db:"status"`
	TotalCost   float64       `db:"total_cost"`

	CancelledAt        *time.Time `db:"cancelled_at"`
	CancellationReason *string    `db:"cancellation_reason"`
	RejectedAt         *time.Time `db:"rejected_at"`
	RejectionReason    *string    `db:"rejection_reason"`
}

// IsUpcoming reports whether the booking date is today or later.
// today must be formatted with DateLayout; lexicographic comparison is
// correct for that layout.
func (b *Booking) IsUpcoming(today string) bool {
	return b.BookingDate >= today
}

// CanCancel reports whether the owning user may still cancel: the booking
// must be upcoming and the status must not be terminal.
func (b *Booking) CanCancel(today string) bool {
	return b.IsUpcoming(today) && b.Status.CanTransitionTo(BookingStatusCancelled)
}
