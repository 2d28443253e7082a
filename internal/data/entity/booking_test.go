package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to accepted", BookingStatusPending, BookingStatusAccepted, true},
		{"pending to rejected", BookingStatusPending, BookingStatusRejected, true},
		{"pending to cancelled", BookingStatusPending, BookingStatusCancelled, true},
		{"accepted to cancelled", BookingStatusAccepted, BookingStatusCancelled, true},
		{"accepted to rejected", BookingStatusAccepted, BookingStatusRejected, false},
		{"accepted to pending", BookingStatusAccepted, BookingStatusPending, false},
		{"rejected is terminal", BookingStatusRejected, BookingStatusCancelled, false},
		{"cancelled is terminal", BookingStatusCancelled, BookingStatusPending, false},
		{"cancelled stays cancelled", BookingStatusCancelled, BookingStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatusIsTerminal(t *testing.T) {
	assert.False(t, BookingStatusPending.IsTerminal())
	assert.False(t, BookingStatusAccepted.IsTerminal())
	assert.True(t, BookingStatusRejected.IsTerminal())
	assert.True(t, BookingStatusCancelled.IsTerminal())
}

func TestBookingCanCancel(t *testing.T) {
	today := "2025-06-01"

	tests := []struct {
		name      string
		date      string
		status    BookingStatus
		canCancel bool
	}{
		{"upcoming pending", "2025-06-10", BookingStatusPending, true},
		{"upcoming accepted", "2025-06-10", BookingStatusAccepted, true},
		{"same day", "2025-06-01", BookingStatusPending, true},
		{"past pending", "2025-01-01", BookingStatusPending, false},
		{"upcoming rejected", "2025-06-10", BookingStatusRejected, false},
		{"upcoming cancelled", "2025-06-10", BookingStatusCancelled, false},
		{"past cancelled", "2025-01-01", BookingStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{BookingDate: tt.date, Status: tt.status}
			assert.Equal(t, tt.canCancel, b.CanCancel(today))
		})
	}
}

func TestHallIsDateBooked(t *testing.T) {
	hall := &Hall{BookedDates: []string{"2025-03-10", "2025-03-15"}}

	assert.True(t, hall.IsDateBooked("2025-03-10"))
	assert.False(t, hall.IsDateBooked("2025-03-11"))
	assert.False(t, (&Hall{}).IsDateBooked("2025-03-10"))
}
