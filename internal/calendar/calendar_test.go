package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDateDisabled(t *testing.T) {
	hall := HallAvailability{
		IsAvailable: true,
		BookedDates: []string{"2025-03-10", "2025-03-15"},
	}
	today := "2025-03-08"

	tests := []struct {
		name     string
		hall     HallAvailability
		date     string
		disabled bool
	}{
		{"past date", hall, "2025-03-07", true},
		{"today is selectable", hall, "2025-03-08", false},
		{"booked date", hall, "2025-03-10", true},
		{"free future date", hall, "2025-03-12", false},
		{"booked date later in month", hall, "2025-03-15", true},
		{"far future", hall, "2026-01-01", false},
		{
			"hall closed for booking",
			HallAvailability{IsAvailable: false},
			"2025-03-12",
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.disabled, IsDateDisabled(tt.hall, tt.date, today))
		})
	}
}

func TestMonthGrid(t *testing.T) {
	hall := HallAvailability{
		IsAvailable: true,
		BookedDates: []string{"2025-03-10"},
	}
	cursor := Cursor{Year: 2025, Month: time.March}
	today := "2025-03-08"

	cells := MonthGrid(cursor, hall, today, "2025-03-12")
	require.Len(t, cells, GridSize)

	byDate := make(map[string]DayCell, len(cells))
	for _, c := range cells {
		byDate[c.Date] = c
	}

	// March 1st 2025 is a Saturday, so the grid leads with 6 February days.
	assert.Equal(t, "2025-02-23", cells[0].Date)
	assert.False(t, cells[0].InMonth)
	assert.True(t, byDate["2025-03-01"].InMonth)

	assert.Equal(t, StateDisabled, byDate["2025-03-07"].State, "past date")
	assert.Equal(t, StateToday, byDate["2025-03-08"].State)
	assert.Equal(t, StateDisabled, byDate["2025-03-10"].State, "booked date")
	assert.Equal(t, StateSelected, byDate["2025-03-12"].State)
	assert.Equal(t, StateNormal, byDate["2025-03-20"].State)
}

func TestMonthGridNoSelection(t *testing.T) {
	cells := MonthGrid(Cursor{Year: 2025, Month: time.March}, HallAvailability{IsAvailable: true}, "2025-03-01", "")
	for _, c := range cells {
		assert.NotEqual(t, StateSelected, c.State)
	}
}

func TestMonthGridIdempotent(t *testing.T) {
	hall := HallAvailability{
		IsAvailable: true,
		BookedDates: []string{"2025-04-01", "2025-04-15", "2025-04-30"},
	}
	cursor := Cursor{Year: 2025, Month: time.April}

	first := MonthGrid(cursor, hall, "2025-04-02", "")
	second := MonthGrid(cursor, hall, "2025-04-02", "")

	assert.Equal(t, first, second, "same inputs must yield the same grid")
}

func TestCursorNavigation(t *testing.T) {
	tests := []struct {
		name string
		from Cursor
		next Cursor
		prev Cursor
	}{
		{
			"mid year",
			Cursor{Year: 2025, Month: time.June},
			Cursor{Year: 2025, Month: time.July},
			Cursor{Year: 2025, Month: time.May},
		},
		{
			"year boundary forward",
			Cursor{Year: 2025, Month: time.December},
			Cursor{Year: 2026, Month: time.January},
			Cursor{Year: 2025, Month: time.November},
		},
		{
			"year boundary backward",
			Cursor{Year: 2025, Month: time.January},
			Cursor{Year: 2025, Month: time.February},
			Cursor{Year: 2024, Month: time.December},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.next, tt.from.Next())
			assert.Equal(t, tt.prev, tt.from.Prev())
		})
	}
}

func TestCursorNavigationUnbounded(t *testing.T) {
	// Nothing stops the cursor from walking far in either direction.
	c := Cursor{Year: 2025, Month: time.January}
	for i := 0; i < 24; i++ {
		c = c.Next()
	}
	assert.Equal(t, Cursor{Year: 2027, Month: time.January}, c)

	for i := 0; i < 48; i++ {
		c = c.Prev()
	}
	assert.Equal(t, Cursor{Year: 2023, Month: time.January}, c)
}

func TestMonthGridLeadingTrailingPadding(t *testing.T) {
	// June 2025 starts on a Sunday: no leading padding, grid still 42 cells
	// thanks to trailing July days.
	cells := MonthGrid(Cursor{Year: 2025, Month: time.June}, HallAvailability{IsAvailable: true}, "2025-06-01", "")
	require.Len(t, cells, GridSize)

	assert.Equal(t, "2025-06-01", cells[0].Date)
	assert.True(t, cells[0].InMonth)

	last := cells[len(cells)-1]
	assert.Equal(t, "2025-07-12", last.Date)
	assert.False(t, last.InMonth)
}
