//go:build integration

package executor

import (
	"context"
	"testing"

	"github.com/leapstack-labs/edudash/internal/catalog"
	"github.com/leapstack-labs/edudash/internal/dataset"
	"github.com/leapstack-labs/edudash/internal/profile"
	"github.com/leapstack-labs/edudash/internal/testutil"
	"github.com/leapstack-labs/edudash/internal/testutil/teststore"
	"github.com/leapstack-labs/edudash/pkg/adapter"
	"github.com/leapstack-labs/edudash/pkg/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedContainerStore migrates and seeds a freshly started store.
func seedContainerStore(ctx context.Context, t *testing.T, provider *adapter.Provider) {
	t.Helper()

	conn, err := provider.Acquire(ctx)
	require.NoError(t, err)
	defer provider.Release(conn)

	require.NoError(t, dataset.Migrate(conn.DB(), conn.Dialect()))
	_, err = dataset.Seed(ctx, conn.DB(), conn.Dialect(), teststore.SeedsDir(), testutil.NewTestLogger(t))
	require.NoError(t, err)
}

func assertWholeCatalogRuns(ctx context.Context, t *testing.T, provider *adapter.Provider) {
	t.Helper()

	cat := catalog.Default()
	exec := New(cat, provider, WithLogger(testutil.NewTestLogger(t)))

	for _, label := range cat.Labels() {
		table, err := exec.Run(ctx, label)
		require.NoError(t, err, label)
		assert.False(t, table.Empty(), "%s returned no rows", label)
		for _, row := range table.Rows {
			assert.Len(t, row, len(table.Columns), label)
		}
	}
	assert.Equal(t, int64(0), provider.Open())
}

func assertTopFiveOrder(ctx context.Context, t *testing.T, provider *adapter.Provider) {
	t.Helper()

	exec := New(catalog.Default(), provider)
	table, err := exec.Run(ctx, "1. Top 5 Adult Literacy Countries (2020)")
	require.NoError(t, err)

	var countries []string
	for _, row := range table.Rows {
		countries = append(countries, format.Value(row[0]))
	}
	assert.Equal(t, []string{"Norland", "India", "Chad"}, countries)
}

func assertCountrySeriesIsBound(ctx context.Context, t *testing.T, provider *adapter.Provider) {
	t.Helper()

	reporter := profile.New(provider)
	series, err := reporter.SeriesFor(ctx, "Zambia")
	require.NoError(t, err)
	require.Len(t, series.Points, 3)
	assert.Equal(t, 2008, series.Points[0].Year)

	series, err = reporter.SeriesFor(ctx, "Zambia' OR '1'='1")
	require.NoError(t, err)
	assert.True(t, series.Empty())
}

func assertRoundedAverages(ctx context.Context, t *testing.T, provider *adapter.Provider) {
	t.Helper()

	exec := New(catalog.Default(), provider)
	for _, label := range []string{
		"3. Average Adult Literacy per Continent",
		"9. Global Average Schooling Years per Year",
	} {
		table, err := exec.Run(ctx, label)
		require.NoError(t, err, label)
		for _, row := range table.Rows {
			v, ok := row[1].(float64)
			require.True(t, ok, "%s: %T", label, row[1])
			assert.InDelta(t, v, float64(int64(v*100+0.5))/100, 1e-9, label)
		}
	}
}
