package prompt

import (
	"fmt"
	"strings"

	"bikeshare/domain/entities/filter"
)

const (
	greeting      = "Hello! Let's explore some US bikeshare data!\n"
	cityQuestion  = "Please enter a city to explore: "
	cityRetry     = "That city is unavailable. Please choose from %s: "
	monthQuestion = "Please enter a month or type 'all' for all months: "
	monthRetry    = "This month isn't available. Please choose 'all' or select a month from January - June: "
	dayQuestion   = "Please enter a day of the week: "
	dayRetry      = "This wasn't a valid input. Please choose 'all' or select a weekday from Monday - Sunday: "
)

// Resolver asks the user for the city, month and day to analyze
type Resolver struct {
	prompter       *Prompter
	cities         []string
	separatorWidth int
}

func NewResolver(prompter *Prompter, cities []string, separatorWidth int) *Resolver {
	return &Resolver{
		prompter:       prompter,
		cities:         cities,
		separatorWidth: separatorWidth,
	}
}

// GetFilters returns a Selection whose values always belong to their option sets
func (r *Resolver) GetFilters() (filter.Selection, error) {
	if _, err := fmt.Fprint(r.prompter.writer, greeting); err != nil {
		return filter.Selection{}, err
	}

	city, err := r.prompter.Choose(cityQuestion, fmt.Sprintf(cityRetry, cityList(r.cities)), r.cities)
	if err != nil {
		return filter.Selection{}, err
	}

	month, err := r.prompter.Choose(monthQuestion, monthRetry, filter.MonthOptions())
	if err != nil {
		return filter.Selection{}, err
	}

	day, err := r.prompter.Choose(dayQuestion, dayRetry, filter.DayOptions())
	if err != nil {
		return filter.Selection{}, err
	}

	if _, err := fmt.Fprintln(r.prompter.writer, strings.Repeat("-", r.separatorWidth)); err != nil {
		return filter.Selection{}, err
	}

	return filter.NewSelection(city, month, day), nil
}

// cityList returns "Chicago, New York City, or Washington"
func cityList(cities []string) string {
	titled := make([]string, 0, len(cities))
	for _, city := range cities {
		words := strings.Fields(city)
		for idx, word := range words {
			words[idx] = strings.ToUpper(word[:1]) + word[1:]
		}
		titled = append(titled, strings.Join(words, " "))
	}

	switch len(titled) {
	case 0:
		return ""
	case 1:
		return titled[0]
	case 2:
		return titled[0] + " or " + titled[1]
	}
	return strings.Join(titled[:len(titled)-1], ", ") + ", or " + titled[len(titled)-1]
}
