package filter

import (
	"fmt"
	"strings"

	dataErrors "bikeshare/domain/errors"
)

// All is the value that disables a month or day filter
const All = "all"

var (
	months = [...]string{"january", "february", "march", "april", "may", "june"}
	days   = [...]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
)

// Selection is the triple chosen by the user. Values are lowercase and members of their option sets.
// + City: key of the dataset registry
// + Month: "all" or a month between january and june
// + Day: "all" or a day of the week
type Selection struct {
	City  string `json:"city"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

func NewSelection(city string, month string, day string) Selection {
	return Selection{
		City:  strings.ToLower(city),
		Month: strings.ToLower(month),
		Day:   strings.ToLower(day),
	}
}

func (s Selection) String() string {
	return fmt.Sprintf("city=%s month=%s day=%s", s.City, s.Month, s.Day)
}

// MonthOptions returns the accepted month values, "all" included
func MonthOptions() []string {
	return append([]string{All}, months[:]...)
}

// DayOptions returns the accepted day values, "all" included
func DayOptions() []string {
	return append([]string{All}, days[:]...)
}

// MonthNumber returns the 1-based position of month within january..june
func MonthNumber(month string) (int, error) {
	month = strings.ToLower(month)
	for idx, name := range months {
		if name == month {
			return idx + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: month %q", dataErrors.ErrInvalidFilter, month)
}

// DayName returns the title-cased weekday name, e.g. monday -> Monday
func DayName(day string) (string, error) {
	day = strings.ToLower(day)
	for _, name := range days {
		if name == day {
			return strings.ToUpper(name[:1]) + name[1:], nil
		}
	}
	return "", fmt.Errorf("%w: day %q", dataErrors.ErrInvalidFilter, day)
}
