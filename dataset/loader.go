package dataset

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/station"
	dataErrors "bikeshare/domain/errors"
)

const component = "loader"

// Loader resolves a city to its CSV, reads it and applies the month and day filters
type Loader struct {
	dataDir    string
	registry   Registry
	columns    Columns
	timeLayout string
}

func NewLoader(dataDir string, registry Registry, columns Columns, timeLayout string) *Loader {
	return &Loader{
		dataDir:    dataDir,
		registry:   registry,
		columns:    columns,
		timeLayout: timeLayout,
	}
}

func (l *Loader) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", component, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", component, method, message)
}

// Cities returns the cities that can be loaded
func (l *Loader) Cities() []string {
	return l.registry.Cities()
}

// Load returns the trips of the selected city filtered by month and day.
// Any problem reading the trips file is returned wrapped in ErrDataLoad.
func (l *Loader) Load(selection filter.Selection) (*Table, error) {
	source, err := l.registry.Resolve(selection.City)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dataErrors.ErrDataLoad, err)
	}

	tripsPath := resolvePath(l.dataDir, source.File)
	tripsFile, err := os.Open(tripsPath)
	if err != nil {
		log.Error(l.getLogMessage("Load", fmt.Sprintf("error opening %s", tripsPath), err))
		return nil, fmt.Errorf("%w: %s", dataErrors.ErrDataLoad, err)
	}
	defer func(tripsFile *os.File) {
		if err := tripsFile.Close(); err != nil {
			log.Error(l.getLogMessage("Load", fmt.Sprintf("error closing %s", tripsPath), err))
		}
	}(tripsFile)

	table, err := ReadTable(tripsFile, l.columns, l.timeLayout)
	if err != nil {
		log.Error(l.getLogMessage("Load", fmt.Sprintf("error reading %s", tripsPath), err))
		return nil, err
	}

	if source.StationsFile != "" {
		table.Stations = l.loadStations(resolvePath(l.dataDir, source.StationsFile))
	}

	filtered, err := table.Filter(selection.Month, selection.Day)
	if err != nil {
		return nil, err
	}

	log.Info(l.getLogMessage("Load", fmt.Sprintf("%s: %v of %v trips kept", selection, filtered.Len(), table.Len()), nil))
	return filtered, nil
}

// loadStations returns nil if the stations file cannot be used; station locations are optional
func (l *Loader) loadStations(stationsPath string) station.Directory {
	stationsFile, err := os.Open(stationsPath)
	if err != nil {
		log.Warn(l.getLogMessage("loadStations", fmt.Sprintf("error opening %s", stationsPath), err))
		return nil
	}
	defer stationsFile.Close()

	directory, err := ReadStations(stationsFile)
	if err != nil {
		log.Warn(l.getLogMessage("loadStations", fmt.Sprintf("error reading %s", stationsPath), err))
		return nil
	}
	return directory
}
