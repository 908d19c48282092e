package dataset

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

// DefaultTimeLayout is the layout of the start and end time columns.
// Fractional seconds are accepted after the seconds field.
const DefaultTimeLayout = "2006-01-02 15:04:05"

const (
	stationNameColumn      = "name"
	stationLatitudeColumn  = "latitude"
	stationLongitudeColumn = "longitude"
)

// readFrame reads a CSV keeping every column as a string.
// A source with a header and no rows gives an empty frame with the header columns.
func readFrame(reader io.Reader) (dataframe.DataFrame, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	frame := dataframe.ReadCSV(
		bytes.NewReader(content),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if frame.Err == nil {
		return frame, nil
	}

	// gota refuses a header without rows, read it as a single data row instead
	headerFrame := dataframe.ReadCSV(
		bytes.NewReader(content),
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if headerFrame.Err != nil || headerFrame.Nrow() != 1 {
		return dataframe.DataFrame{}, frame.Err
	}

	header := headerFrame.Records()[1]
	columns := make([]series.Series, 0, len(header))
	for _, name := range header {
		columns = append(columns, series.New([]string{}, series.String, name))
	}

	empty := dataframe.New(columns...)
	if empty.Err != nil {
		return dataframe.DataFrame{}, empty.Err
	}
	return empty, nil
}

// ReadTable reads a trips CSV. Every row must have a valid start time and duration,
// otherwise the whole read fails with ErrDataLoad. Gender and birth year are
// read only when the source has those columns.
func ReadTable(reader io.Reader, columns Columns, timeLayout string) (*Table, error) {
	if timeLayout == "" {
		timeLayout = DefaultTimeLayout
	}

	frame, err := readFrame(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", dataErrors.ErrDataLoad, err)
	}

	names := frame.Names()
	for _, column := range columns.required() {
		if !utils.ContainsString(column, names) {
			return nil, fmt.Errorf("%w: %w: %q", dataErrors.ErrDataLoad, dataErrors.ErrMissingColumn, column)
		}
	}

	hasGender := columns.Gender != "" && utils.ContainsString(columns.Gender, names)
	hasBirthYear := columns.BirthYear != "" && utils.ContainsString(columns.BirthYear, names)

	startTimes := frame.Col(columns.StartTime).Records()
	endTimes := frame.Col(columns.EndTime).Records()
	durations := frame.Col(columns.Duration).Records()
	startStations := frame.Col(columns.StartStation).Records()
	endStations := frame.Col(columns.EndStation).Records()
	userTypes := frame.Col(columns.UserType).Records()

	var genders, birthYears []string
	if hasGender {
		genders = frame.Col(columns.Gender).Records()
	}
	if hasBirthYear {
		birthYears = frame.Col(columns.BirthYear).Records()
	}

	trips := make([]trip.Trip, 0, frame.Nrow())
	for row := 0; row < frame.Nrow(); row++ {
		startTime, err := time.Parse(timeLayout, strings.TrimSpace(startTimes[row]))
		if err != nil {
			return nil, fmt.Errorf("%w: %w: row %d: %q", dataErrors.ErrDataLoad, dataErrors.ErrInvalidDate, row, startTimes[row])
		}

		duration, err := strconv.ParseFloat(strings.TrimSpace(durations[row]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w: row %d: %q", dataErrors.ErrDataLoad, dataErrors.ErrInvalidDurationType, row, durations[row])
		}

		tripData := trip.Trip{
			Row:          row,
			StartTime:    startTime,
			Duration:     duration,
			StartStation: startStations[row],
			EndStation:   endStations[row],
			UserType:     userTypes[row],
		}

		// end time is informative only, a bad value does not invalidate the trip
		if endTime, err := time.Parse(timeLayout, strings.TrimSpace(endTimes[row])); err == nil {
			tripData.EndTime = endTime
		}

		if hasGender && !utils.IsMissing(genders[row]) {
			gender := genders[row]
			tripData.Gender = &gender
		}

		if hasBirthYear && !utils.IsMissing(birthYears[row]) {
			year, err := strconv.ParseFloat(strings.TrimSpace(birthYears[row]), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %w: row %d: %q", dataErrors.ErrDataLoad, dataErrors.ErrInvalidBirthYear, row, birthYears[row])
			}
			birthYear := int(year)
			tripData.BirthYear = &birthYear
		}

		tripData.Derive()
		trips = append(trips, tripData)
	}

	log.Debugf("[component: dataset][method: ReadTable][status: OK] %v trips read, gender: %v, birth year: %v", len(trips), hasGender, hasBirthYear)

	return &Table{
		frame:        frame,
		Trips:        trips,
		HasGender:    hasGender,
		HasBirthYear: hasBirthYear,
	}, nil
}

// ReadStations reads a CSV with name, latitude and longitude columns
func ReadStations(reader io.Reader) (station.Directory, error) {
	frame, err := readFrame(reader)
	if err != nil {
		return nil, err
	}

	names := frame.Names()
	for _, column := range []string{stationNameColumn, stationLatitudeColumn, stationLongitudeColumn} {
		if !utils.ContainsString(column, names) {
			return nil, fmt.Errorf("%w: %q", dataErrors.ErrMissingColumn, column)
		}
	}

	stationNames := frame.Col(stationNameColumn).Records()
	latitudes := frame.Col(stationLatitudeColumn).Records()
	longitudes := frame.Col(stationLongitudeColumn).Records()

	directory := station.Directory{}
	for row := range stationNames {
		latitude, err := strconv.ParseFloat(strings.TrimSpace(latitudes[row]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: latitude %q", dataErrors.ErrInvalidCoordinates, row, latitudes[row])
		}
		longitude, err := strconv.ParseFloat(strings.TrimSpace(longitudes[row]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: longitude %q", dataErrors.ErrInvalidCoordinates, row, longitudes[row])
		}

		directory.Add(station.Station{
			Name:      stationNames[row],
			Latitude:  latitude,
			Longitude: longitude,
		})
	}

	return directory, nil
}
