package statistics

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/valuecounter"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

// BirthYears contains the earliest, most recent and most common year of birth
type BirthYears struct {
	Earliest   int `json:"earliest"`
	MostRecent int `json:"most_recent"`
	MostCommon int `json:"most_common"`
}

// Users contains the user demographics. Gender and birth year sections exist only when
// the dataset has those columns; BirthYears is also nil when no trip of the table has a year.
type Users struct {
	UserTypes    []valuecounter.Count[string] `json:"user_types"`
	HasGender    bool                         `json:"has_gender"`
	Genders      []valuecounter.Count[string] `json:"genders,omitempty"`
	HasBirthYear bool                         `json:"has_birth_year"`
	BirthYears   *BirthYears                  `json:"birth_years,omitempty"`
}

// ComputeUsers returns the counts of user types and, when available, genders and birth years.
// Blank user types are not counted.
func ComputeUsers(table *dataset.Table) (Users, error) {
	if table.IsEmpty() {
		return Users{}, dataErrors.ErrNoData
	}

	userTypes := valuecounter.NewCounter[string]()
	genders := valuecounter.NewCounter[string]()
	birthYears := valuecounter.NewCounter[int]()
	var earliest, mostRecent int
	for _, tripData := range table.Trips {
		if !utils.IsMissing(tripData.UserType) {
			userTypes.UpdateCounter(tripData.UserType)
		}

		if tripData.Gender != nil {
			genders.UpdateCounter(*tripData.Gender)
		}

		if tripData.BirthYear != nil {
			year := *tripData.BirthYear
			if birthYears.Len() == 0 || year < earliest {
				earliest = year
			}
			if birthYears.Len() == 0 || year > mostRecent {
				mostRecent = year
			}
			birthYears.UpdateCounter(year)
		}
	}

	report := Users{
		UserTypes:    userTypes.Sorted(),
		HasGender:    table.HasGender,
		HasBirthYear: table.HasBirthYear,
	}

	if table.HasGender {
		report.Genders = genders.Sorted()
	}

	if mostCommon, _, ok := birthYears.Mode(); table.HasBirthYear && ok {
		report.BirthYears = &BirthYears{
			Earliest:   earliest,
			MostRecent: mostRecent,
			MostCommon: mostCommon,
		}
	}

	return report, nil
}
