package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/dataset"
	"bikeshare/domain/entities/filter"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/testutil"
)

func loadAll(t *testing.T, city string) *dataset.Table {
	t.Helper()
	table, err := testutil.NewLoader(t).Load(filter.NewSelection(city, filter.All, filter.All))
	require.NoError(t, err)
	return table
}

func TestFilter(t *testing.T) {
	table := loadAll(t, "chicago")

	t.Run("all and all keeps the table", func(t *testing.T) {
		filtered, err := table.Filter(filter.All, filter.All)
		require.NoError(t, err)
		assert.Equal(t, table.Trips, filtered.Trips)
	})

	t.Run("filtering is idempotent", func(t *testing.T) {
		for _, selection := range [][2]string{{"january", filter.All}, {filter.All, "friday"}, {"may", "thursday"}, {"april", filter.All}} {
			once, err := table.Filter(selection[0], selection[1])
			require.NoError(t, err)
			twice, err := once.Filter(selection[0], selection[1])
			require.NoError(t, err)
			assert.Equal(t, once.Trips, twice.Trips, selection)
		}
	})

	t.Run("filter order does not matter", func(t *testing.T) {
		monthFirst, err := table.Filter("january", filter.All)
		require.NoError(t, err)
		monthFirst, err = monthFirst.Filter(filter.All, "tuesday")
		require.NoError(t, err)

		dayFirst, err := table.Filter(filter.All, "tuesday")
		require.NoError(t, err)
		dayFirst, err = dayFirst.Filter("january", filter.All)
		require.NoError(t, err)

		assert.Equal(t, monthFirst.Trips, dayFirst.Trips)
		assert.Equal(t, 1, monthFirst.Len())
	})

	t.Run("values outside the option sets are rejected", func(t *testing.T) {
		_, err := table.Filter("july", filter.All)
		assert.ErrorIs(t, err, dataErrors.ErrInvalidFilter)
		_, err = table.Filter(filter.All, "weekend")
		assert.ErrorIs(t, err, dataErrors.ErrInvalidFilter)
	})
}

func TestWindow(t *testing.T) {
	table := loadAll(t, "chicago")

	first, ok := table.Window(0, 5)
	require.True(t, ok)
	assert.Equal(t, 5, first.Nrow())
	assert.Equal(t, table.Columns(), first.Names())

	second, ok := table.Window(5, 5)
	require.True(t, ok)
	assert.Equal(t, 3, second.Nrow())

	_, ok = table.Window(10, 5)
	assert.False(t, ok)

	t.Run("windows of a filtered table show its own rows", func(t *testing.T) {
		june, err := table.Filter("june", filter.All)
		require.NoError(t, err)

		window, ok := june.Window(0, 5)
		require.True(t, ok)
		assert.Equal(t, 2, window.Nrow())
		assert.Equal(t, []string{"Wood St & Hubbard St", "Clinton St & Washington Blvd"}, window.Col("Start Station").Records())
	})

	t.Run("table without raw rows has no windows", func(t *testing.T) {
		_, ok := dataset.NewTable(table.Trips, true, true).Window(0, 5)
		assert.False(t, ok)
	})
}
