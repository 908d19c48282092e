package statistics

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/durationaccumulator"
	dataErrors "bikeshare/domain/errors"
)

// TripDuration contains the total and average trip duration
type TripDuration struct {
	Trips           int     `json:"trips"`
	TotalHours      int     `json:"total_hours"`
	MeanMinutes     float64 `json:"mean_minutes"`
	ShortestMinutes float64 `json:"shortest_minutes"`
	LongestMinutes  float64 `json:"longest_minutes"`
}

// ComputeTripDuration returns the total travel time in hours and the mean travel time in minutes
func ComputeTripDuration(table *dataset.Table) (TripDuration, error) {
	if table.IsEmpty() {
		return TripDuration{}, dataErrors.ErrNoData
	}

	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, tripData := range table.Trips {
		accumulator.UpdateAccumulator(tripData.Duration)
	}

	meanMinutes, err := accumulator.GetAverageMinutes()
	if err != nil {
		return TripDuration{}, err
	}

	return TripDuration{
		Trips:           accumulator.Counter,
		TotalHours:      accumulator.GetTotalHours(),
		MeanMinutes:     meanMinutes,
		ShortestMinutes: durationaccumulator.RoundTo(accumulator.Shortest/60, 2),
		LongestMinutes:  durationaccumulator.RoundTo(accumulator.Longest/60, 2),
	}, nil
}
