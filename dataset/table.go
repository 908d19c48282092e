package dataset

import (
	"github.com/go-gota/gota/dataframe"

	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
)

// Table is a set of trips of one city together with the raw rows they were read from.
// Trips reference rows of frame through Trip.Row, so filtered tables share the frame.
// + Trips: parsed trips with their derived calendar fields
// + HasGender: the source has a gender column
// + HasBirthYear: the source has a birth year column
// + Stations: known station locations, may be nil
type Table struct {
	frame        dataframe.DataFrame
	Trips        []trip.Trip
	HasGender    bool
	HasBirthYear bool
	Stations     station.Directory
}

// NewTable returns a Table without raw rows
func NewTable(trips []trip.Trip, hasGender bool, hasBirthYear bool) *Table {
	return &Table{
		Trips:        trips,
		HasGender:    hasGender,
		HasBirthYear: hasBirthYear,
	}
}

func (t *Table) Len() int {
	return len(t.Trips)
}

func (t *Table) IsEmpty() bool {
	return len(t.Trips) == 0
}

// Columns returns the column names of the source
func (t *Table) Columns() []string {
	return t.frame.Names()
}

// Filter returns a new Table with the trips of the given month and day. "all" disables a filter.
func (t *Table) Filter(month string, day string) (*Table, error) {
	monthNumber := 0
	if month != filter.All {
		number, err := filter.MonthNumber(month)
		if err != nil {
			return nil, err
		}
		monthNumber = number
	}

	dayName := ""
	if day != filter.All {
		name, err := filter.DayName(day)
		if err != nil {
			return nil, err
		}
		dayName = name
	}

	filtered := make([]trip.Trip, 0, len(t.Trips))
	for _, tripData := range t.Trips {
		if tripData.Matches(monthNumber, dayName) {
			filtered = append(filtered, tripData)
		}
	}

	return &Table{
		frame:        t.frame,
		Trips:        filtered,
		HasGender:    t.HasGender,
		HasBirthYear: t.HasBirthYear,
		Stations:     t.Stations,
	}, nil
}

// Window returns the raw rows of trips [offset, offset+size) with the source columns only.
// The second value is false when there is nothing to show from offset.
func (t *Table) Window(offset int, size int) (dataframe.DataFrame, bool) {
	if offset < 0 || offset >= len(t.Trips) || size <= 0 || t.frame.Nrow() == 0 {
		return dataframe.DataFrame{}, false
	}

	end := offset + size
	if end > len(t.Trips) {
		end = len(t.Trips)
	}

	rows := make([]int, 0, end-offset)
	for _, tripData := range t.Trips[offset:end] {
		rows = append(rows, tripData.Row)
	}

	window := t.frame.Subset(rows)
	if window.Err != nil {
		return dataframe.DataFrame{}, false
	}
	return window, true
}
