package durationaccumulator

import (
	"math"

	dataErrors "bikeshare/domain/errors"
)

const (
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// DurationAccumulator struct that collects trip durations, in seconds
// + Counter: counts the amount of durations collected
// + TotalDuration: sum of the durations
// + Shortest: minimum duration seen, only meaningful when Counter > 0
// + Longest: maximum duration seen, only meaningful when Counter > 0
type DurationAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDuration float64 `json:"total_duration"`
	Shortest      float64 `json:"shortest"`
	Longest       float64 `json:"longest"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(duration float64) {
	if da.Counter == 0 || duration < da.Shortest {
		da.Shortest = duration
	}
	if da.Counter == 0 || duration > da.Longest {
		da.Longest = duration
	}
	da.Counter += 1
	da.TotalDuration += duration
}

func (da *DurationAccumulator) Merge(other *DurationAccumulator) *DurationAccumulator {
	if da.Counter == 0 {
		merged := *other
		return &merged
	}
	if other.Counter == 0 {
		merged := *da
		return &merged
	}

	return &DurationAccumulator{
		Counter:       da.Counter + other.Counter,
		TotalDuration: da.TotalDuration + other.TotalDuration,
		Shortest:      math.Min(da.Shortest, other.Shortest),
		Longest:       math.Max(da.Longest, other.Longest),
	}
}

// GetTotalHours returns the sum of durations in hours, rounded half to even
func (da *DurationAccumulator) GetTotalHours() int {
	return int(math.RoundToEven(da.TotalDuration / secondsPerHour))
}

// GetAverageMinutes returns the mean duration in minutes rounded to 2 decimals
func (da *DurationAccumulator) GetAverageMinutes() (float64, error) {
	if da.Counter == 0 {
		return 0, dataErrors.ErrNoData
	}
	mean := da.TotalDuration / float64(da.Counter)
	return RoundTo(mean/secondsPerMinute, 2), nil
}

// RoundTo rounds value to the given amount of decimals, half to even
func RoundTo(value float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.RoundToEven(value*scale) / scale
}
