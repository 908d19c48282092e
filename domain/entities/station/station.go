package station

import (
	"github.com/umahmood/haversine"
)

// Station struct that contains the location of a station
type Station struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (s Station) Coord() haversine.Coord {
	return haversine.Coord{Lat: s.Latitude, Lon: s.Longitude}
}

// Directory maps station names to their location. A nil Directory knows no station.
type Directory map[string]Station

func (d Directory) Add(station Station) {
	d[station.Name] = station
}

func (d Directory) Get(name string) (Station, bool) {
	station, ok := d[name]
	return station, ok
}

// DistanceKm returns the great-circle distance between two known stations.
// The second value is false if any of the stations is unknown.
func (d Directory) DistanceKm(startStation string, endStation string) (float64, bool) {
	start, ok := d.Get(startStation)
	if !ok {
		return 0, false
	}
	end, ok := d.Get(endStation)
	if !ok {
		return 0, false
	}

	_, km := haversine.Distance(start.Coord(), end.Coord())
	return km, true
}
