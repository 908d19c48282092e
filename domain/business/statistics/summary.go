package statistics

import (
	"errors"
	"time"

	"bikeshare/dataset"
	"bikeshare/domain/entities/filter"
	dataErrors "bikeshare/domain/errors"
)

// Summary gathers the reports of one run. A nil report means there was no data for it.
type Summary struct {
	RunID        string           `json:"run_id"`
	GeneratedAt  time.Time        `json:"generated_at"`
	Selection    filter.Selection `json:"selection"`
	Trips        int              `json:"trips"`
	TimeOfTravel *TimeOfTravel    `json:"time_of_travel,omitempty"`
	Stations     *Stations        `json:"stations,omitempty"`
	TripDuration *TripDuration    `json:"trip_duration,omitempty"`
	Users        *Users           `json:"users,omitempty"`
}

// Results holds each report with the error returned while computing it and the time it took
type Results struct {
	TimeOfTravel TimeOfTravel
	TimeErr      error
	TimeElapsed  time.Duration

	Stations        Stations
	StationsErr     error
	StationsElapsed time.Duration

	TripDuration    TripDuration
	DurationErr     error
	DurationElapsed time.Duration

	Users        Users
	UsersErr     error
	UsersElapsed time.Duration
}

// ComputeAll runs every report over table, timing each one
func ComputeAll(table *dataset.Table) Results {
	var results Results

	start := time.Now()
	results.TimeOfTravel, results.TimeErr = ComputeTimeOfTravel(table)
	results.TimeElapsed = time.Since(start)

	start = time.Now()
	results.Stations, results.StationsErr = ComputeStations(table)
	results.StationsElapsed = time.Since(start)

	start = time.Now()
	results.TripDuration, results.DurationErr = ComputeTripDuration(table)
	results.DurationElapsed = time.Since(start)

	start = time.Now()
	results.Users, results.UsersErr = ComputeUsers(table)
	results.UsersElapsed = time.Since(start)

	return results
}

// Err returns the first error that is not ErrNoData
func (r Results) Err() error {
	for _, err := range []error{r.TimeErr, r.StationsErr, r.DurationErr, r.UsersErr} {
		if err != nil && !errors.Is(err, dataErrors.ErrNoData) {
			return err
		}
	}
	return nil
}

// NewSummary builds the Summary of a run from its results
func NewSummary(runID string, selection filter.Selection, trips int, results Results) Summary {
	summary := Summary{
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
		Selection:   selection,
		Trips:       trips,
	}
	if results.TimeErr == nil {
		timeOfTravel := results.TimeOfTravel
		summary.TimeOfTravel = &timeOfTravel
	}
	if results.StationsErr == nil {
		stations := results.Stations
		summary.Stations = &stations
	}
	if results.DurationErr == nil {
		tripDuration := results.TripDuration
		summary.TripDuration = &tripDuration
	}
	if results.UsersErr == nil {
		users := results.Users
		summary.Users = &users
	}
	return summary
}
