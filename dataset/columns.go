package dataset

import (
	"fmt"
	"path/filepath"
	"sort"

	dataErrors "bikeshare/domain/errors"
)

// Columns contains the name of each field to analyze. Gender and BirthYear are optional:
// a dataset without them is still valid.
type Columns struct {
	StartTime    string `yaml:"start_time" validate:"required"`
	EndTime      string `yaml:"end_time" validate:"required"`
	Duration     string `yaml:"duration" validate:"required"`
	StartStation string `yaml:"start_station" validate:"required"`
	EndStation   string `yaml:"end_station" validate:"required"`
	UserType     string `yaml:"user_type" validate:"required"`
	Gender       string `yaml:"gender"`
	BirthYear    string `yaml:"birth_year"`
}

// DefaultColumns returns the header names used by the bikeshare exports
func DefaultColumns() Columns {
	return Columns{
		StartTime:    "Start Time",
		EndTime:      "End Time",
		Duration:     "Trip Duration",
		StartStation: "Start Station",
		EndStation:   "End Station",
		UserType:     "User Type",
		Gender:       "Gender",
		BirthYear:    "Birth Year",
	}
}

func (c Columns) required() []string {
	return []string{c.StartTime, c.EndTime, c.Duration, c.StartStation, c.EndStation, c.UserType}
}

// Source contains the files backing one city
// + File: trips CSV
// + StationsFile: optional CSV with name,latitude,longitude of each station
type Source struct {
	File         string `yaml:"file" validate:"required"`
	StationsFile string `yaml:"stations_file"`
}

// Registry maps a lowercase city name to its Source
type Registry map[string]Source

// Cities returns the registered cities in alphabetical order
func (r Registry) Cities() []string {
	cities := make([]string, 0, len(r))
	for city := range r {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}

func (r Registry) Resolve(city string) (Source, error) {
	source, ok := r[city]
	if !ok {
		return Source{}, fmt.Errorf("%w: %q", dataErrors.ErrUnknownCity, city)
	}
	return source, nil
}

func resolvePath(dataDir string, file string) string {
	if filepath.IsAbs(file) || dataDir == "" {
		return file
	}
	return filepath.Join(dataDir, file)
}
