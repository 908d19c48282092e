package statistics

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/dataset"
	"bikeshare/domain/business/valuecounter"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/testutil"
)

func load(t *testing.T, city string, month string, day string) *dataset.Table {
	t.Helper()
	table, err := testutil.NewLoader(t).Load(filter.NewSelection(city, month, day))
	require.NoError(t, err)
	return table
}

func newTrip(start time.Time, duration float64, from string, to string, userType string) trip.Trip {
	tripData := trip.Trip{
		StartTime:    start,
		Duration:     duration,
		StartStation: from,
		EndStation:   to,
		UserType:     userType,
	}
	tripData.Derive()
	return tripData
}

func TestEmptyTable(t *testing.T) {
	table := dataset.NewTable(nil, true, true)

	_, err := ComputeTimeOfTravel(table)
	assert.ErrorIs(t, err, dataErrors.ErrNoData)
	_, err = ComputeStations(table)
	assert.ErrorIs(t, err, dataErrors.ErrNoData)
	_, err = ComputeTripDuration(table)
	assert.ErrorIs(t, err, dataErrors.ErrNoData)
	_, err = ComputeUsers(table)
	assert.ErrorIs(t, err, dataErrors.ErrNoData)

	results := ComputeAll(table)
	assert.NoError(t, results.Err())

	summary := NewSummary("run", filter.NewSelection("chicago", "february", "all"), 0, results)
	assert.Nil(t, summary.TimeOfTravel)
	assert.Nil(t, summary.Stations)
	assert.Nil(t, summary.TripDuration)
	assert.Nil(t, summary.Users)
}

func TestSingleRowTable(t *testing.T) {
	gender := "Female"
	birthYear := 1989
	tripData := newTrip(time.Date(2017, time.April, 14, 7, 30, 0, 0, time.UTC), 900, "A", "B", "Customer")
	tripData.Gender = &gender
	tripData.BirthYear = &birthYear
	table := dataset.NewTable([]trip.Trip{tripData}, true, true)

	timeOfTravel, err := ComputeTimeOfTravel(table)
	require.NoError(t, err)
	assert.Equal(t, TimeOfTravel{Month: 4, MonthTrips: 1, DayOfWeek: "Friday", DayTrips: 1, Hour: 7, HourTrips: 1}, timeOfTravel)

	stations, err := ComputeStations(table)
	require.NoError(t, err)
	assert.Equal(t, "A", stations.StartStation)
	assert.Equal(t, "B", stations.EndStation)
	assert.Equal(t, "A to B", stations.Route)
	assert.Nil(t, stations.RouteDistanceKm)

	users, err := ComputeUsers(table)
	require.NoError(t, err)
	assert.Equal(t, []valuecounter.Count[string]{{Value: "Customer", Count: 1}}, users.UserTypes)
	assert.Equal(t, []valuecounter.Count[string]{{Value: "Female", Count: 1}}, users.Genders)
	assert.Equal(t, &BirthYears{Earliest: 1989, MostRecent: 1989, MostCommon: 1989}, users.BirthYears)
}

func TestComputeTimeOfTravel(t *testing.T) {
	t.Run("june scenario", func(t *testing.T) {
		report, err := ComputeTimeOfTravel(load(t, "chicago", "june", filter.All))
		require.NoError(t, err)
		assert.Equal(t, 6, report.Month)
		assert.Equal(t, 2, report.MonthTrips)
	})

	t.Run("ties keep the first value seen", func(t *testing.T) {
		report, err := ComputeTimeOfTravel(load(t, "chicago", filter.All, filter.All))
		require.NoError(t, err)
		assert.Equal(t, 1, report.Month)
		assert.Equal(t, 3, report.MonthTrips)
		assert.Equal(t, "Friday", report.DayOfWeek)
		assert.Equal(t, 14, report.Hour)
	})
}

func TestComputeStations(t *testing.T) {
	report, err := ComputeStations(load(t, "chicago", filter.All, filter.All))
	require.NoError(t, err)

	assert.Equal(t, "Wood St & Hubbard St", report.StartStation)
	assert.Equal(t, 2, report.StartTrips)
	assert.Equal(t, "Damen Ave & Chicago Ave", report.EndStation)
	assert.Equal(t, "Wood St & Hubbard St to Damen Ave & Chicago Ave", report.Route)
	assert.Equal(t, 2, report.RouteTrips)
	require.NotNil(t, report.RouteDistanceKm)
	assert.InDelta(t, 0.81, *report.RouteDistanceKm, 0.02)

	washington, err := ComputeStations(load(t, "washington", filter.All, filter.All))
	require.NoError(t, err)
	assert.Nil(t, washington.RouteDistanceKm)
}

func TestComputeTripDuration(t *testing.T) {
	t.Run("chicago", func(t *testing.T) {
		report, err := ComputeTripDuration(load(t, "chicago", filter.All, filter.All))
		require.NoError(t, err)
		want := TripDuration{Trips: 8, TotalHours: 1, MeanMinutes: 9.38, ShortestMinutes: 4.68, LongestMinutes: 26.83}
		if diff := cmp.Diff(want, report); diff != "" {
			t.Errorf("ComputeTripDuration() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("aggregates follow the rounding rules", func(t *testing.T) {
		start := time.Date(2017, time.February, 1, 10, 0, 0, 0, time.UTC)
		durations := []float64{100, 250, 7300, 1234.5}
		trips := make([]trip.Trip, 0, len(durations))
		sum := 0.0
		for _, duration := range durations {
			trips = append(trips, newTrip(start, duration, "A", "B", "Subscriber"))
			sum += duration
		}

		report, err := ComputeTripDuration(dataset.NewTable(trips, false, false))
		require.NoError(t, err)
		assert.Equal(t, int(math.RoundToEven(sum/3600)), report.TotalHours)
		assert.Equal(t, math.RoundToEven(sum/float64(len(durations))/60*100)/100, report.MeanMinutes)
	})
}

func TestComputeUsers(t *testing.T) {
	t.Run("dataset with demographics", func(t *testing.T) {
		report, err := ComputeUsers(load(t, "chicago", filter.All, filter.All))
		require.NoError(t, err)

		want := Users{
			UserTypes:    []valuecounter.Count[string]{{Value: "Subscriber", Count: 7}, {Value: "Customer", Count: 1}},
			HasGender:    true,
			Genders:      []valuecounter.Count[string]{{Value: "Male", Count: 4}, {Value: "Female", Count: 2}},
			HasBirthYear: true,
			BirthYears:   &BirthYears{Earliest: 1975, MostRecent: 1992, MostCommon: 1992},
		}
		if diff := cmp.Diff(want, report); diff != "" {
			t.Errorf("ComputeUsers() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("dataset without demographics", func(t *testing.T) {
		report, err := ComputeUsers(load(t, "washington", filter.All, filter.All))
		require.NoError(t, err)
		assert.False(t, report.HasGender)
		assert.Nil(t, report.Genders)
		assert.False(t, report.HasBirthYear)
		assert.Nil(t, report.BirthYears)
		assert.Equal(t, []valuecounter.Count[string]{{Value: "Subscriber", Count: 2}, {Value: "Customer", Count: 1}}, report.UserTypes)
	})

	t.Run("columns present without values", func(t *testing.T) {
		report, err := ComputeUsers(load(t, "chicago", "january", "saturday"))
		require.NoError(t, err)
		assert.True(t, report.HasGender)
		assert.Empty(t, report.Genders)
		assert.True(t, report.HasBirthYear)
		assert.Nil(t, report.BirthYears)
	})
}

func TestNewSummary(t *testing.T) {
	table := load(t, "new york city", filter.All, "monday")
	selection := filter.NewSelection("new york city", filter.All, "monday")

	summary := NewSummary("run-1", selection, table.Len(), ComputeAll(table))
	assert.Equal(t, "run-1", summary.RunID)
	assert.Equal(t, 3, summary.Trips)
	require.NotNil(t, summary.Stations)
	assert.Equal(t, "Broadway & W 60 St to 9 Ave & W 45 St", summary.Stations.Route)
	require.NotNil(t, summary.Users)
	assert.Equal(t, &BirthYears{Earliest: 1981, MostRecent: 1998, MostCommon: 1998}, summary.Users.BirthYears)
}

func TestBlankCategoriesAreNotCounted(t *testing.T) {
	csv := ",Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n" +
		"1,2017-06-05 08:00:00,2017-06-05 08:10:00,600,A,B,Subscriber\n" +
		"2,2017-06-05 09:00:00,2017-06-05 09:10:00,600,,B,\n" +
		"3,2017-06-05 10:00:00,2017-06-05 10:10:00,600,,,\n" +
		"4,2017-06-05 11:00:00,2017-06-05 11:10:00,600,C,,NaN\n"
	table, err := dataset.ReadTable(strings.NewReader(csv), dataset.DefaultColumns(), dataset.DefaultTimeLayout)
	require.NoError(t, err)
	require.Equal(t, 4, table.Len())

	users, err := ComputeUsers(table)
	require.NoError(t, err)
	assert.Equal(t, []valuecounter.Count[string]{{Value: "Subscriber", Count: 1}}, users.UserTypes)

	stations, err := ComputeStations(table)
	require.NoError(t, err)
	assert.Equal(t, "A", stations.StartStation)
	assert.Equal(t, 1, stations.StartTrips)
	assert.Equal(t, "B", stations.EndStation)
	assert.Equal(t, 2, stations.EndTrips)
	assert.Equal(t, "A to B", stations.Route)
	assert.Equal(t, 1, stations.RouteTrips)
}
