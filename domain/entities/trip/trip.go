package trip

import (
	"time"
)

// RouteSeparator joins the start and end station of a route
const RouteSeparator = " to "

// Trip struct that contains one row of a city trip log
// + Row: index of the row in the raw table it was read from
// + StartTime: date in which the trip begins
// + EndTime: date in which the trip ends
// + Duration: duration of the trip in seconds
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + UserType: kind of user (Subscriber, Customer, ...)
// + Gender: nil when the city does not record it or the cell is empty
// + BirthYear: nil when the city does not record it or the cell is empty
// + Month, DayOfWeek, Hour: derived from StartTime
type Trip struct {
	Row          int       `json:"-"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Duration     float64   `json:"duration"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	UserType     string    `json:"user_type"`
	Gender       *string   `json:"gender,omitempty"`
	BirthYear    *int      `json:"birth_year,omitempty"`
	Month        int       `json:"month"`
	DayOfWeek    string    `json:"day_of_week"`
	Hour         int       `json:"hour"`
}

// Derive fills the calendar fields from StartTime
func (t *Trip) Derive() {
	t.Month = int(t.StartTime.Month())
	t.DayOfWeek = t.StartTime.Weekday().String()
	t.Hour = t.StartTime.Hour()
}

// Route returns the "start to end" label of the trip
func (t Trip) Route() string {
	return t.StartStation + RouteSeparator + t.EndStation
}

// Matches returns true if the trip belongs to month (0 means any) and day ("" means any)
func (t Trip) Matches(month int, day string) bool {
	if month != 0 && t.Month != month {
		return false
	}
	if day != "" && t.DayOfWeek != day {
		return false
	}
	return true
}
