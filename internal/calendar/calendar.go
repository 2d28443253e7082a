// Package calendar computes hall availability grids. Everything here is a
// pure function of its inputs so callers can re-render freely.
package calendar

import "time"

// DayState classifies one cell of the rendered month grid.
type DayState string

const (
	StateDisabled DayState = "disabled"
	StateSelected DayState = "selected"
	StateToday    DayState = "today"
	StateNormal   DayState = "normal"
)

const dateLayout = "2006-01-02"

// GridRows and GridCols fix the rendered grid to 6 weeks of 7 days, padded
// with leading/trailing days from the adjacent months.
const (
	GridRows = 6
	GridCols = 7
	GridSize = GridRows * GridCols
)

// Cursor points at the month being displayed. Navigation is unbounded in
// both directions.
type Cursor struct {
	Year  int
	Month time.Month
}

// CursorFor returns the cursor for the month containing t.
func CursorFor(t time.Time) Cursor {
	return Cursor{Year: t.Year(), Month: t.Month()}
}

func (c Cursor) Next() Cursor {
	t := time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return Cursor{Year: t.Year(), Month: t.Month()}
}

func (c Cursor) Prev() Cursor {
	t := time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return Cursor{Year: t.Year(), Month: t.Month()}
}

// DayCell is one cell of the availability grid.
type DayCell struct {
	Date    string   `json:"date"` // YYYY-MM-DD
	Day     int      `json:"day"`
	InMonth bool     `json:"in_month"`
	State   DayState `json:"state"`
}

// HallAvailability is the slice of hall state the grid depends on.
type HallAvailability struct {
	IsAvailable bool
	BookedDates []string
}

// IsDateDisabled reports whether date is not selectable for a new booking:
// the hall is closed for booking, the date is strictly before today, or the
// date is already reserved. Today itself stays selectable. All dates are
// YYYY-MM-DD strings, which compare correctly as plain strings.
func IsDateDisabled(hall HallAvailability, date, today string) bool {
	if !hall.IsAvailable {
		return true
	}
	if date < today {
		return true
	}
	for _, d := range hall.BookedDates {
		if d == date {
			return true
		}
	}
	return false
}

// MonthGrid renders the 42-cell grid for the cursor month. selected is the
// currently chosen date ("" for none). Disabled wins over selected and today;
// selected wins over today.
func MonthGrid(cursor Cursor, hall HallAvailability, today, selected string) []DayCell {
	first := time.Date(cursor.Year, cursor.Month, 1, 0, 0, 0, 0, time.UTC)
	lead := int(first.Weekday()) // Sunday-first grid
	start := first.AddDate(0, 0, -lead)

	cells := make([]DayCell, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		d := start.AddDate(0, 0, i)
		date := d.Format(dateLayout)

		state := StateNormal
		switch {
		case IsDateDisabled(hall, date, today):
			state = StateDisabled
		case selected != "" && date == selected:
			state = StateSelected
		case date == today:
			state = StateToday
		}

		cells = append(cells, DayCell{
			Date:    date,
			Day:     d.Day(),
			InMonth: d.Month() == cursor.Month,
			State:   state,
		})
	}
	return cells
}
