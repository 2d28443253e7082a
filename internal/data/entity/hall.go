package entity

// Hall is a rentable space in the fab lab. BookedDates holds the calendar
// dates (YYYY-MM-DD) that already carry a confirmed booking; the column is a
// Postgres text[] and must stay duplicate-free.
type Hall struct {
	Base
	Name        string   `db:"name"`
	Description string   `db:"description"`
	Capacity    int      `db:"capacity"`
	Equipment   []string `db:"equipment_included"`
	Images      []string `db:"images"`
	HourlyRate  float64  `db:"hourly_rate"`
	IsAvailable bool     `db:"is_available"`
	Location    string   `db:"location"`
	Rules       string   `db:"rules"`
	BookedDates []string `db:"booked_dates"`
}

// IsDateBooked reports whether date (YYYY-MM-DD) is already reserved.
func (h *Hall) IsDateBooked(date string) bool {
	for _, d := range h.BookedDates {
		if d == date {
			return true
		}
	}
	return false
}
