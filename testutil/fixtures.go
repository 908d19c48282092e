// Package testutil contains CSV fixtures shaped like the bikeshare exports.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"bikeshare/dataset"
)

// ChicagoCSV has 8 trips with gender and birth year; the last two rows lack demographics
const ChicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0
955915,2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,Female,1992.0
9031,2017-01-04 08:27:49,2017-01-04 08:34:45,416,May St & Taylor St,Wood St & Taylor St,Subscriber,Male,1981.0
304487,2017-03-06 13:49:38,2017-03-06 13:55:28,350,Christiana Ave & Lawrence Ave,St. Louis Ave & Balmoral Ave,Subscriber,Male,1986.0
45207,2017-01-17 14:53:07,2017-01-17 15:02:01,534,Clark St & Randolph St,Desplaines St & Jackson Blvd,Subscriber,Female,1975.0
1473887,2017-06-26 09:01:20,2017-06-26 09:11:06,586,Clinton St & Washington Blvd,Canal St & Taylor St,Subscriber,Male,1990.0
961916,2017-05-26 09:41:44,2017-05-26 09:46:25,281,Damen Ave & Chicago Ave,Damen Ave & Cortland St,Subscriber,,
65924,2017-01-21 14:28:38,2017-01-21 14:35:20,402,Wood St & Hubbard St,Damen Ave & Chicago Ave,Customer,,
`

// ChicagoStationsCSV locates the stations of the most popular chicago route
const ChicagoStationsCSV = `name,latitude,longitude
Wood St & Hubbard St,41.889899,-87.671473
Damen Ave & Chicago Ave,41.895769,-87.67722
`

// NewYorkCityCSV has 3 trips, all of them on mondays of june
const NewYorkCityCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
5688089,2017-06-19 08:10:26,2017-06-19 08:21:57,691,Broadway & W 60 St,9 Ave & W 45 St,Subscriber,Female,1998.0
4096714,2017-06-26 18:26:11,2017-06-26 18:35:29,558,E 12 St & 3 Ave,E 13 St & Avenue A,Subscriber,Male,1981.0
2173887,2017-06-05 21:50:41,2017-06-05 22:12:06,1285,Broadway & W 60 St,9 Ave & W 45 St,Customer,,
`

// WashingtonCSV has no gender nor birth year columns
const WashingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
482740,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Yuma St & Tenley Circle NW,Connecticut Ave & Yuma St NW,Subscriber
1330037,2017-05-30 01:02:59,2017-05-30 01:13:37,637.251,17th St & Massachusetts Ave NW,5th & K St NW,Customer
`

// Registry returns the registry matching the files written by WriteFixtures
func Registry() dataset.Registry {
	return dataset.Registry{
		"chicago":       {File: "chicago.csv", StationsFile: "chicago_stations.csv"},
		"new york city": {File: "new_york_city.csv"},
		"washington":    {File: "washington.csv"},
	}
}

// WriteFixtures writes every fixture into a temporary directory and returns its path
func WriteFixtures(t testing.TB) string {
	t.Helper()
	dataDir := t.TempDir()
	files := map[string]string{
		"chicago.csv":          ChicagoCSV,
		"chicago_stations.csv": ChicagoStationsCSV,
		"new_york_city.csv":    NewYorkCityCSV,
		"washington.csv":       WashingtonCSV,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("error writing fixture %s: %v", name, err)
		}
	}
	return dataDir
}

// NewLoader returns a Loader reading the fixtures of WriteFixtures
func NewLoader(t testing.TB) *dataset.Loader {
	t.Helper()
	return dataset.NewLoader(WriteFixtures(t), Registry(), dataset.DefaultColumns(), dataset.DefaultTimeLayout)
}
