package period_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/trialstats/internal/util/period"
)

var now = time.Date(2024, time.March, 31, 15, 4, 5, 0, time.UTC)

func TestNormalize(t *testing.T) {
	assert.Equal(t, period.Weekly, period.Normalize("weekly"))
	assert.Equal(t, period.Weekly, period.Normalize("semanal"))
	assert.Equal(t, period.Monthly, period.Normalize(" Monthly "))
	assert.Equal(t, period.Monthly, period.Normalize("mensual"))
	assert.Equal(t, period.General, period.Normalize("general"))
	assert.Equal(t, period.General, period.Normalize(""))
	assert.Equal(t, period.General, period.Normalize("yearly"))
}

func TestResolveWeekly(t *testing.T) {
	rng := period.Resolve(period.Weekly, now)
	assert.Equal(t, time.Date(2024, time.March, 24, 0, 0, 0, 0, time.UTC), rng.From)
	assert.Equal(t, time.Date(2024, time.March, 31, 23, 59, 59, 999000000, time.UTC), rng.To)
}

func TestResolveMonthlyUsesCalendarMonths(t *testing.T) {
	rng := period.Resolve(period.Monthly, now)
	// March 31 minus one month normalizes past the end of February.
	assert.Equal(t, now.AddDate(0, -1, 0).Day(), rng.From.Day())
	assert.Equal(t, 0, rng.From.Hour())
	assert.True(t, rng.From.Before(now))
}

func TestResolveGeneral(t *testing.T) {
	rng := period.Resolve(period.General, now)
	assert.Equal(t, int64(0), rng.From.Unix())
	assert.True(t, rng.Includes(now))
	assert.True(t, rng.Includes(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestResolveRespectsLocation(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	local := time.Date(2024, time.March, 31, 1, 0, 0, 0, loc)
	rng := period.Resolve(period.Weekly, local)
	assert.Equal(t, time.Date(2024, time.March, 24, 0, 0, 0, 0, loc), rng.From)
}

func TestQueryExplicitBoundsTakePrecedence(t *testing.T) {
	rng, err := period.Query{Period: "weekly", From: "2024-01-01", To: "2024-01-31"}.Resolve(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), rng.From)
	assert.Equal(t, time.Date(2024, time.January, 31, 23, 59, 59, 999000000, time.UTC), rng.To)
}

func TestQueryOpenEndedBounds(t *testing.T) {
	rng, err := period.Query{From: "2024-03-01"}.Resolve(now)
	require.NoError(t, err)
	assert.Equal(t, period.EndOfDay(now), rng.To)

	rng, err = period.Query{To: "2024-03-01T10:00:00Z"}.Resolve(now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rng.From.Unix())
	assert.Equal(t, time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC), rng.To)
}

func TestQueryMalformedDate(t *testing.T) {
	_, err := period.Query{From: "31/03/2024"}.Resolve(now)
	assert.ErrorIs(t, err, period.ErrInvalidDateFormat)
}

func TestQueryInvertedRange(t *testing.T) {
	_, err := period.Query{From: "2024-03-10", To: "2024-03-01"}.Resolve(now)
	assert.ErrorIs(t, err, period.ErrInvertedRange)
}

func TestQueryWithoutBoundsUsesPeriod(t *testing.T) {
	rng, err := period.Query{Period: "monthly"}.Resolve(now)
	require.NoError(t, err)
	assert.Equal(t, period.Resolve(period.Monthly, now), rng)
}
