package statistics

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/valuecounter"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

// Stations contains the most popular stations and trip.
// RouteDistanceKm is nil unless both ends of the route have a known location.
type Stations struct {
	StartStation    string   `json:"start_station"`
	StartTrips      int      `json:"start_trips"`
	EndStation      string   `json:"end_station"`
	EndTrips        int      `json:"end_trips"`
	Route           string   `json:"route"`
	RouteTrips      int      `json:"route_trips"`
	RouteDistanceKm *float64 `json:"route_distance_km,omitempty"`
}

// ComputeStations returns the most common start station, end station and start-end combination.
// Blank stations are not counted, and a route needs both of them.
func ComputeStations(table *dataset.Table) (Stations, error) {
	if table.IsEmpty() {
		return Stations{}, dataErrors.ErrNoData
	}

	startStations := valuecounter.NewCounter[string]()
	endStations := valuecounter.NewCounter[string]()
	routes := valuecounter.NewCounter[string]()
	// keeps the stations of each route so the route does not need to be split again
	routeEnds := make(map[string][2]string)
	for _, tripData := range table.Trips {
		startMissing := utils.IsMissing(tripData.StartStation)
		endMissing := utils.IsMissing(tripData.EndStation)
		if !startMissing {
			startStations.UpdateCounter(tripData.StartStation)
		}
		if !endMissing {
			endStations.UpdateCounter(tripData.EndStation)
		}
		if startMissing || endMissing {
			continue
		}

		route := tripData.Route()
		routes.UpdateCounter(route)
		if _, ok := routeEnds[route]; !ok {
			routeEnds[route] = [2]string{tripData.StartStation, tripData.EndStation}
		}
	}

	var report Stations
	report.StartStation, report.StartTrips, _ = startStations.Mode()
	report.EndStation, report.EndTrips, _ = endStations.Mode()
	report.Route, report.RouteTrips, _ = routes.Mode()

	if ends, ok := routeEnds[report.Route]; ok {
		if km, ok := table.Stations.DistanceKm(ends[0], ends[1]); ok {
			report.RouteDistanceKm = &km
		}
	}
	return report, nil
}
