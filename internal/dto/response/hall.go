package response

import (
	"time"

	"fablab-booking/internal/calendar"
	"fablab-booking/internal/data/entity"
)

type HallResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Capacity    int       `json:"capacity"`
	Equipment   []string  `json:"equipment_included"`
	Images      []string  `json:"images"`
	HourlyRate  float64   `json:"hourly_rate"`
	IsAvailable bool      `json:"is_available"`
	Location    string    `json:"location"`
	Rules       string    `json:"rules"`
	BookedDates []string  `json:"booked_dates"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func HallToResponse(hall *entity.Hall) HallResponse {
	return HallResponse{
		ID:          hall.ID.String(),
		Name:        hall.Name,
		Description: hall.Description,
		Capacity:    hall.Capacity,
		Equipment:   hall.Equipment,
		Images:      hall.Images,
		HourlyRate:  hall.HourlyRate,
		IsAvailable: hall.IsAvailable,
		Location:    hall.Location,
		Rules:       hall.Rules,
		BookedDates: hall.BookedDates,
		CreatedAt:   hall.CreatedAt,
		UpdatedAt:   hall.UpdatedAt,
	}
}

// AvailabilityResponse is the month grid for a hall: 42 cells, Sunday-first.
type AvailabilityResponse struct {
	HallID string             `json:"hall_id"`
	Year   int                `json:"year"`
	Month  int                `json:"month"`
	Today  string             `json:"today"`
	Cells  []calendar.DayCell `json:"cells"`
}
