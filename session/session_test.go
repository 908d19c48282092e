package session

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/dataset"
	"bikeshare/domain/business/statistics"
	"bikeshare/domain/entities/filter"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/testutil"
)

var testConfig = Config{PageSize: 5, SeparatorWidth: 40}

type fakePublisher struct {
	summaries []statistics.Summary
	err       error
}

func (fp *fakePublisher) Publish(ctx context.Context, summary interface{}) error {
	fp.summaries = append(fp.summaries, summary.(statistics.Summary))
	return fp.err
}

func TestRunSingleIteration(t *testing.T) {
	var out bytes.Buffer
	input := "chicago\njune\nall\nno\nno\n"
	publisher := &fakePublisher{}

	err := NewSession(testutil.NewLoader(t), publisher, strings.NewReader(input), &out, testConfig).Run(context.Background())
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "The most common month is: 6 (June)")
	assert.Contains(t, output, "The most commonly used start station is:")
	assert.Contains(t, output, "The total travel time is:")
	assert.Contains(t, output, "The counts of gender are:")
	assert.Contains(t, output, "Would you like to restart? Enter yes or no.")

	require.Len(t, publisher.summaries, 1)
	summary := publisher.summaries[0]
	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, filter.NewSelection("chicago", "june", filter.All), summary.Selection)
	assert.Equal(t, 2, summary.Trips)
	require.NotNil(t, summary.TimeOfTravel)
	assert.Equal(t, 6, summary.TimeOfTravel.Month)
}

func TestRunRestarts(t *testing.T) {
	var out bytes.Buffer
	input := "washington\nall\nall\nno\nYES\nchicago\nfebruary\nall\nno\nnope\n"
	publisher := &fakePublisher{}

	err := NewSession(testutil.NewLoader(t), publisher, strings.NewReader(input), &out, testConfig).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, publisher.summaries, 2)
	assert.NotEqual(t, publisher.summaries[0].RunID, publisher.summaries[1].RunID)

	// washington has no demographics
	assert.Nil(t, publisher.summaries[0].Users.BirthYears)
	assert.False(t, publisher.summaries[0].Users.HasGender)

	// february has no trips
	assert.Equal(t, 0, publisher.summaries[1].Trips)
	assert.Nil(t, publisher.summaries[1].TimeOfTravel)
	assert.Equal(t, 4, strings.Count(out.String(), "No data available for the selected filters."))
}

func TestRunShowsRawData(t *testing.T) {
	var out bytes.Buffer
	input := "new york city\nall\nmonday\nyes\nno\nno\n"

	err := NewSession(testutil.NewLoader(t), nil, strings.NewReader(input), &out, testConfig).Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "E 12 St & 3 Ave")
	assert.Contains(t, out.String(), "Would you like to see more data?")
}

func TestRunPublishFailureDoesNotStopSession(t *testing.T) {
	publisher := &fakePublisher{err: errors.New("broker down")}
	input := "chicago\nall\nall\nno\nno\n"

	err := NewSession(testutil.NewLoader(t), publisher, strings.NewReader(input), &bytes.Buffer{}, testConfig).Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, publisher.summaries, 1)
}

func TestRunLoadError(t *testing.T) {
	var out bytes.Buffer
	loader := dataset.NewLoader(t.TempDir(), testutil.Registry(), dataset.DefaultColumns(), dataset.DefaultTimeLayout)

	err := NewSession(loader, nil, strings.NewReader("chicago\nall\nall\n"), &out, testConfig).Run(context.Background())
	assert.ErrorIs(t, err, dataErrors.ErrDataLoad)
	assert.Contains(t, out.String(), "Unable to load the chicago data")
}

func TestRunInputClosed(t *testing.T) {
	err := NewSession(testutil.NewLoader(t), nil, strings.NewReader("chicago\n"), &bytes.Buffer{}, testConfig).Run(context.Background())
	assert.NoError(t, err)
}

func TestRunCancelledContext(t *testing.T) {
	var out bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewSession(testutil.NewLoader(t), nil, strings.NewReader("chicago\nall\nall\nno\nno\n"), &out, testConfig).Run(ctx)
	assert.NoError(t, err)
	assert.Empty(t, out.String())
}
