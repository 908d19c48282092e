// Package statistics computes the descriptive reports of a filtered trip table.
// Every report reads the table without modifying it and returns ErrNoData for an empty table.
package statistics

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/valuecounter"
	dataErrors "bikeshare/domain/errors"
)

// TimeOfTravel contains the most frequent times of travel
type TimeOfTravel struct {
	Month      int    `json:"month"`
	MonthTrips int    `json:"month_trips"`
	DayOfWeek  string `json:"day_of_week"`
	DayTrips   int    `json:"day_trips"`
	Hour       int    `json:"hour"`
	HourTrips  int    `json:"hour_trips"`
}

// ComputeTimeOfTravel returns the most common month, day of week and start hour
func ComputeTimeOfTravel(table *dataset.Table) (TimeOfTravel, error) {
	if table.IsEmpty() {
		return TimeOfTravel{}, dataErrors.ErrNoData
	}

	months := valuecounter.NewCounter[int]()
	days := valuecounter.NewCounter[string]()
	hours := valuecounter.NewCounter[int]()
	for _, tripData := range table.Trips {
		months.UpdateCounter(tripData.Month)
		days.UpdateCounter(tripData.DayOfWeek)
		hours.UpdateCounter(tripData.Hour)
	}

	var report TimeOfTravel
	report.Month, report.MonthTrips, _ = months.Mode()
	report.DayOfWeek, report.DayTrips, _ = days.Mode()
	report.Hour, report.HourTrips, _ = hours.Mode()
	return report, nil
}
