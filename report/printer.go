package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"bikeshare/domain/business/statistics"
	"bikeshare/domain/business/valuecounter"
	dataErrors "bikeshare/domain/errors"
)

const (
	DefaultSeparatorWidth = 40

	noDataMessage = "No data available for the selected filters."
)

// Printer writes the statistics reports to the console
type Printer struct {
	out       io.Writer
	separator string
	err       error
}

func NewPrinter(out io.Writer, separatorWidth int) *Printer {
	if separatorWidth <= 0 {
		separatorWidth = DefaultSeparatorWidth
	}
	return &Printer{
		out:       out,
		separator: strings.Repeat("-", separatorWidth),
	}
}

// printf keeps the first write error, later writes are skipped
func (p *Printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.out, format, args...)
}

// Results prints the four reports and returns the first write error.
// A write error of a previous run does not stop this one.
func (p *Printer) Results(results statistics.Results) error {
	p.err = nil
	p.TimeOfTravel(results.TimeOfTravel, results.TimeErr, results.TimeElapsed)
	p.Stations(results.Stations, results.StationsErr, results.StationsElapsed)
	p.TripDuration(results.TripDuration, results.DurationErr, results.DurationElapsed)
	p.Users(results.Users, results.UsersErr, results.UsersElapsed)
	return p.err
}

func (p *Printer) TimeOfTravel(report statistics.TimeOfTravel, err error, elapsed time.Duration) {
	p.printf("\nCalculating The Most Frequent Times of Travel...\n\n")
	if p.noData(err) {
		p.footer(elapsed)
		return
	}

	p.printf("The most common month is: %d (%s)\n", report.Month, time.Month(report.Month))
	p.printf("The most common day of the week: %s\n", report.DayOfWeek)
	p.printf("The most common start hour is: %d\n", report.Hour)
	p.footer(elapsed)
}

func (p *Printer) Stations(report statistics.Stations, err error, elapsed time.Duration) {
	p.printf("\nCalculating The Most Popular Stations and Trip...\n\n")
	if p.noData(err) {
		p.footer(elapsed)
		return
	}

	p.printf("The most commonly used start station is: %s\n", report.StartStation)
	p.printf("The most commonly used end station is: %s\n", report.EndStation)
	p.printf("The most frequent trip from start to end stations is: %s (%d trips)\n", report.Route, report.RouteTrips)
	if report.RouteDistanceKm != nil {
		p.printf("The distance between those stations is: %.2f km\n", *report.RouteDistanceKm)
	}
	p.footer(elapsed)
}

func (p *Printer) TripDuration(report statistics.TripDuration, err error, elapsed time.Duration) {
	p.printf("\nCalculating Trip Duration...\n\n")
	if p.noData(err) {
		p.footer(elapsed)
		return
	}

	p.printf("The total travel time is: %d hours\n", report.TotalHours)
	p.printf("The mean travel time is: %v minutes\n", report.MeanMinutes)
	p.printf("The shortest trip took %v minutes and the longest %v minutes, out of %d trips\n", report.ShortestMinutes, report.LongestMinutes, report.Trips)
	p.footer(elapsed)
}

func (p *Printer) Users(report statistics.Users, err error, elapsed time.Duration) {
	p.printf("\nCalculating User Stats...\n\n")
	if p.noData(err) {
		p.footer(elapsed)
		return
	}

	p.printf("The counts of user types are:\n")
	p.counts(report.UserTypes)

	if report.HasGender {
		p.printf("The counts of gender are:\n")
		p.counts(report.Genders)
	}

	if report.HasBirthYear {
		if report.BirthYears == nil {
			p.printf("There is no year of birth data for the selected trips\n")
		} else {
			p.printf("The earliest year of birth is: %d, the most recent is: %d, and the most common is %d\n",
				report.BirthYears.Earliest, report.BirthYears.MostRecent, report.BirthYears.MostCommon)
		}
	}
	p.footer(elapsed)
}

func (p *Printer) counts(counts []valuecounter.Count[string]) {
	if len(counts) == 0 {
		p.printf("    (none)\n")
		return
	}
	for _, count := range counts {
		p.printf("    %s: %d\n", count.Value, count.Count)
	}
}

// noData prints the no data message for ErrNoData and any other error as is
func (p *Printer) noData(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, dataErrors.ErrNoData) {
		p.printf("%s\n", noDataMessage)
		return true
	}
	p.printf("Unable to compute this report: %s\n", err)
	return true
}

func (p *Printer) footer(elapsed time.Duration) {
	p.printf("\nThis took %v seconds.\n", elapsed.Seconds())
	p.printf("%s\n", p.separator)
}

// Message prints a line of text
func (p *Printer) Message(format string, args ...interface{}) error {
	p.printf(format+"\n", args...)
	return p.err
}
