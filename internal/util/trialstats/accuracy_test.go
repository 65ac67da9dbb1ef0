package trialstats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"exusiai.dev/trialstats/internal/model"
	"exusiai.dev/trialstats/internal/model/types"
	"exusiai.dev/trialstats/internal/util/trialstats"
)

var day = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func accuracySample(id int, subtype string, hits, misses int, at time.Time) trialstats.AccuracySample {
	return trialstats.AccuracySample{
		ID:       id,
		Subtype:  subtype,
		Date:     at,
		Hits:     hits,
		Misses:   misses,
		Attempts: hits + misses,
	}
}

func TestNewAccuracySampleNormalizes(t *testing.T) {
	s := trialstats.NewAccuracySample(&model.AccuracyTrial{
		TrialID: 7,
		Subtype: model.AccuracySubtypeManual,
		Hits:    null.IntFrom(6),
		Misses:  null.IntFrom(4),
	})
	assert.Equal(t, 10, s.Attempts)
	assert.Equal(t, 0, s.ExercisesDone)

	s = trialstats.NewAccuracySample(&model.AccuracyTrial{
		Attempts: null.IntFrom(12),
		Hits:     null.IntFrom(6),
		Misses:   null.IntFrom(-1),
	})
	assert.Equal(t, 12, s.Attempts)
	assert.Equal(t, 0, s.Misses)

	s = trialstats.NewAccuracySample(&model.AccuracyTrial{})
	assert.Equal(t, 0, s.Attempts)
	assert.Equal(t, 0.0, s.Accuracy())
}

func TestAggregateAccuracyPooled(t *testing.T) {
	samples := []trialstats.AccuracySample{
		accuracySample(1, "sequential", 8, 2, day),
		accuracySample(2, "sequential", 5, 5, day.Add(time.Hour)),
		accuracySample(3, "random", 10, 0, day.Add(2*time.Hour)),
	}

	agg := trialstats.AggregateAccuracy(samples, model.AccuracySubtypes, trialstats.BySubtype)

	assert.Equal(t, 3, agg.Trials)
	assert.Equal(t, 23, agg.Hits)
	assert.Equal(t, 7, agg.Misses)
	assert.Equal(t, 30, agg.Attempts)
	assert.Equal(t, "76.67", types.Percent(agg.Accuracy()).String())

	require.NotNil(t, agg.Best)
	assert.Equal(t, 3, agg.Best.ID)
	require.NotNil(t, agg.Worst)
	assert.Equal(t, 2, agg.Worst.ID)
	require.NotNil(t, agg.Latest)
	assert.Equal(t, 3, agg.Latest.ID)

	seq := agg.Bucket("sequential")
	assert.Equal(t, 2, seq.Trials)
	assert.Equal(t, "65.00", types.Percent(seq.Accuracy()).String())
	assert.Equal(t, 1, seq.Best.ID)
	assert.Equal(t, 2, seq.Worst.ID)

	manual := agg.Bucket("manual")
	assert.Equal(t, 0, manual.Trials)
	assert.Nil(t, manual.Best)
}

func TestAggregateAccuracyPoolsInsteadOfAveragingRatios(t *testing.T) {
	// 2 hits over 11 scored attempts; the mean of per-trial ratios would be 55.00
	samples := []trialstats.AccuracySample{
		accuracySample(1, "manual", 1, 0, day),
		accuracySample(2, "manual", 1, 9, day),
	}

	agg := trialstats.AggregateAccuracy(samples, nil, nil)
	assert.Equal(t, "18.18", types.Percent(agg.Accuracy()).String())
	assert.Empty(t, agg.Buckets)
}

func TestAggregateAccuracyDividesByStoredAttempts(t *testing.T) {
	samples := trialstats.AccuracySamples([]*model.AccuracyTrial{
		{TrialID: 1, Subtype: model.AccuracySubtypeManual, Attempts: null.IntFrom(16), Hits: null.IntFrom(8), Misses: null.IntFrom(2), CreatedAt: day},
		{TrialID: 2, Subtype: model.AccuracySubtypeManual, Hits: null.IntFrom(4), Misses: null.IntFrom(0), CreatedAt: day},
	})

	agg := trialstats.AggregateAccuracy(samples, nil, nil)
	assert.Equal(t, 20, agg.Attempts)
	assert.Equal(t, "60.00", types.Percent(agg.Accuracy()).String())
	require.NotNil(t, agg.Worst)
	assert.Equal(t, 1, agg.Worst.ID)
	assert.Equal(t, "50.00", types.Percent(agg.Worst.Accuracy()).String())

	unscored := trialstats.AccuracySamples([]*model.AccuracyTrial{{TrialID: 3, CreatedAt: day}})
	agg = trialstats.AggregateAccuracy(unscored, nil, nil)
	assert.Equal(t, 0.0, agg.Accuracy())
	assert.Nil(t, agg.Best)
}

func TestAggregateAccuracyBucketsPartitionInput(t *testing.T) {
	samples := []trialstats.AccuracySample{
		accuracySample(1, "sequential", 1, 1, day),
		accuracySample(2, "unknown", 3, 0, day),
		accuracySample(3, "random", 2, 2, day),
	}

	agg := trialstats.AggregateAccuracy(samples, model.AccuracySubtypes, trialstats.BySubtype)

	keys := make([]string, 0, len(agg.Buckets))
	var trials, hits, misses int
	for _, b := range agg.Buckets {
		keys = append(keys, b.Key)
		trials += b.Trials
		hits += b.Hits
		misses += b.Misses
	}
	assert.Equal(t, []string{"sequential", "random", "manual", "unknown"}, keys)
	assert.Equal(t, agg.Trials, trials)
	assert.Equal(t, agg.Hits, hits)
	assert.Equal(t, agg.Misses, misses)
}

func TestAggregateAccuracyBestSkipsUnscoredAndKeepsFirstTie(t *testing.T) {
	samples := []trialstats.AccuracySample{
		accuracySample(1, "manual", 0, 0, day),
		accuracySample(2, "manual", 4, 1, day),
		accuracySample(3, "manual", 8, 2, day),
	}

	agg := trialstats.AggregateAccuracy(samples, nil, nil)
	require.NotNil(t, agg.Best)
	assert.Equal(t, 2, agg.Best.ID)
	assert.Equal(t, 2, agg.Worst.ID)
}

func TestAggregateAccuracyLatestBreaksTiesByID(t *testing.T) {
	samples := []trialstats.AccuracySample{
		accuracySample(5, "manual", 1, 0, day),
		accuracySample(9, "manual", 1, 0, day),
		accuracySample(7, "manual", 1, 0, day),
	}

	agg := trialstats.AggregateAccuracy(samples, nil, nil)
	assert.Equal(t, 9, agg.Latest.ID)
}

func TestAggregateAccuracyEmpty(t *testing.T) {
	agg := trialstats.AggregateAccuracy(nil, model.AccuracySubtypes, trialstats.BySubtype)

	assert.Equal(t, 0, agg.Trials)
	assert.Equal(t, 0.0, agg.Accuracy())
	assert.Nil(t, agg.Best)
	assert.Nil(t, agg.Worst)
	assert.Nil(t, agg.Latest)
	assert.Len(t, agg.Buckets, len(model.AccuracySubtypes))
}

func TestAggregateAccuracyIsIdempotent(t *testing.T) {
	samples := []trialstats.AccuracySample{
		accuracySample(1, "sequential", 8, 2, day),
		accuracySample(2, "random", 5, 5, day),
	}

	first := trialstats.AggregateAccuracy(samples, model.AccuracySubtypes, trialstats.BySubtype)
	second := trialstats.AggregateAccuracy(samples, model.AccuracySubtypes, trialstats.BySubtype)
	assert.Equal(t, first, second)
}
