package trialstats

import (
	"exusiai.dev/trialstats/internal/util"
)

type AccuracyTotals struct {
	Trials   int
	Hits     int
	Misses   int
	Attempts int
}

// Accuracy is pooled over all trials: total hits over total attempts.
func (t AccuracyTotals) Accuracy() float64 {
	return util.Percentage(float64(t.Hits), float64(t.Attempts))
}

func (t *AccuracyTotals) add(s AccuracySample) {
	t.Trials++
	t.Hits += s.Hits
	t.Misses += s.Misses
	t.Attempts += s.Attempts
}

type AccuracyBucket struct {
	Key string
	AccuracyTotals

	Best  *AccuracySample
	Worst *AccuracySample
}

type AccuracyAggregate struct {
	AccuracyTotals

	Buckets []*AccuracyBucket

	Best   *AccuracySample
	Worst  *AccuracySample
	Latest *AccuracySample
}

// Bucket returns the bucket for key, or an empty one when key was never seen.
func (a AccuracyAggregate) Bucket(key string) *AccuracyBucket {
	for _, b := range a.Buckets {
		if b.Key == key {
			return b
		}
	}
	return &AccuracyBucket{Key: key}
}

// AggregateAccuracy folds samples into grand totals and per-bucket totals.
// Buckets listed in keys are always present, in that order; keys produced by
// keyFn that are not listed are appended in first-seen order. A nil keyFn
// disables bucketing.
func AggregateAccuracy(samples []AccuracySample, keys []string, keyFn func(AccuracySample) string) AccuracyAggregate {
	var agg AccuracyAggregate
	index := make(map[string]*AccuracyBucket, len(keys))
	bucket := func(key string) *AccuracyBucket {
		if b, ok := index[key]; ok {
			return b
		}
		b := &AccuracyBucket{Key: key}
		index[key] = b
		agg.Buckets = append(agg.Buckets, b)
		return b
	}
	for _, k := range keys {
		bucket(k)
	}

	for i := range samples {
		s := samples[i]

		agg.add(s)
		pickBestWorstAccuracy(&agg.Best, &agg.Worst, s)
		if agg.Latest == nil || later(s.Date, s.ID, agg.Latest.Date, agg.Latest.ID) {
			agg.Latest = &s
		}

		if keyFn != nil {
			b := bucket(keyFn(s))
			b.add(s)
			pickBestWorstAccuracy(&b.Best, &b.Worst, s)
		}
	}

	return agg
}

// BySubtype buckets accuracy samples by their subtype.
func BySubtype(s AccuracySample) string {
	return s.Subtype
}

// pickBestWorstAccuracy ignores samples without scored attempts. Ties keep the
// sample seen first.
func pickBestWorstAccuracy(best, worst **AccuracySample, s AccuracySample) {
	if s.Scored() == 0 {
		return
	}
	if *best == nil || s.Accuracy() > (*best).Accuracy() {
		c := s
		*best = &c
	}
	if *worst == nil || s.Accuracy() < (*worst).Accuracy() {
		c := s
		*worst = &c
	}
}
