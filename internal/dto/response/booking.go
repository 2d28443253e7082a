package response

import (
	"time"

	"fablab-booking/internal/data/entity"
)

type BookingResponse struct {
	ID          string  `json:"id"`
	Reference   string  `json:"reference"`
	HallID      string  `json:"hall_id"`
	HallName    string  `json:"hall_name"`
	HourlyRate  float64 `json:"hourly_rate"`
	UserID      string  `json:"user_id"`
	UserEmail   string  `json:"user_email"`
	UserName    string  `json:"user_name"`
	BookingDate string  `json:"booking_date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Duration    float64 `json:"duration"`
	Attendees   int     `json:"attendees"`
	Purpose     string  `json:"purpose"`
	Status      string  `json:"status"`
	TotalCost   float64 `json:"total_cost"`

	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	RejectedAt         *time.Time `json:"rejected_at,omitempty"`
	RejectionReason    *string    `json:"rejection_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:                 b.ID.String(),
		Reference:          b.Reference,
		HallID:             b.HallID.String(),
		HallName:           b.HallName,
		HourlyRate:         b.HourlyRate,
		UserID:             b.UserID.String(),
		UserEmail:          b.UserEmail,
		UserName:           b.UserName,
		BookingDate:        b.BookingDate,
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		Duration:           b.Duration,
		Attendees:          b.Attendees,
		Purpose:            b.Purpose,
		Status:             string(b.Status),
		TotalCost:          b.TotalCost,
		CancelledAt:        b.CancelledAt,
		CancellationReason: b.CancellationReason,
		RejectedAt:         b.RejectedAt,
		RejectionReason:    b.RejectionReason,
		CreatedAt:          b.CreatedAt,
	}
}

// BookingStats aggregates the current user's bookings.
type BookingStats struct {
	Total     int     `json:"total"`
	Upcoming  int     `json:"upcoming"`
	Past      int     `json:"past"`
	Cancelled int     `json:"cancelled"`
	TotalCost float64 `json:"total_cost"`
}

// MyBookingsResponse groups a user's bookings by lifecycle bucket.
type MyBookingsResponse struct {
	Upcoming  []BookingResponse `json:"upcoming"`
	Past      []BookingResponse `json:"past"`
	Cancelled []BookingResponse `json:"cancelled"`
	Stats     BookingStats      `json:"stats"`
}
