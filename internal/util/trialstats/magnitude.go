package trialstats

import (
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type MagnitudeStats struct {
	Trials       int
	BestValue    float64
	AverageValue float64
	BestPower    float64
	AveragePower float64

	Best   *MagnitudeSample
	Worst  *MagnitudeSample
	Latest *MagnitudeSample
}

type MagnitudeBucket struct {
	Key string
	MagnitudeStats
}

type MagnitudeAggregate struct {
	MagnitudeStats

	Buckets []*MagnitudeBucket
}

func (a MagnitudeAggregate) Bucket(key string) *MagnitudeBucket {
	for _, b := range a.Buckets {
		if b.Key == key {
			return b
		}
	}
	return &MagnitudeBucket{Key: key}
}

// SummarizeMagnitudes computes best, worst, averages and latest of samples.
// An empty input yields zero values.
func SummarizeMagnitudes(samples []MagnitudeSample) MagnitudeStats {
	if len(samples) == 0 {
		return MagnitudeStats{}
	}

	values := lo.Map(samples, func(s MagnitudeSample, _ int) float64 { return s.Value })
	powers := lo.Map(samples, func(s MagnitudeSample, _ int) float64 { return s.Power })

	// MaxIdx and MinIdx return the first index on ties
	best := samples[floats.MaxIdx(values)]
	worst := samples[floats.MinIdx(values)]

	latest := samples[0]
	for _, s := range samples[1:] {
		if later(s.Date, s.ID, latest.Date, latest.ID) {
			latest = s
		}
	}

	return MagnitudeStats{
		Trials:       len(samples),
		BestValue:    best.Value,
		AverageValue: stat.Mean(values, nil),
		BestPower:    floats.Max(powers),
		AveragePower: stat.Mean(powers, nil),
		Best:         &best,
		Worst:        &worst,
		Latest:       &latest,
	}
}

// AggregateMagnitudes summarizes samples as a whole and per bucket, with the
// same bucket ordering rules as AggregateAccuracy.
func AggregateMagnitudes(samples []MagnitudeSample, keys []string, keyFn func(MagnitudeSample) string) MagnitudeAggregate {
	agg := MagnitudeAggregate{
		MagnitudeStats: SummarizeMagnitudes(samples),
	}

	order := append([]string{}, keys...)
	groups := make(map[string][]MagnitudeSample, len(keys))
	for _, k := range keys {
		groups[k] = nil
	}
	if keyFn != nil {
		for _, s := range samples {
			k := keyFn(s)
			if _, ok := groups[k]; !ok {
				order = append(order, k)
			}
			groups[k] = append(groups[k], s)
		}
	}

	agg.Buckets = lo.Map(order, func(k string, _ int) *MagnitudeBucket {
		return &MagnitudeBucket{Key: k, MagnitudeStats: SummarizeMagnitudes(groups[k])}
	})

	return agg
}

func ByMagnitudeSubtype(s MagnitudeSample) string {
	return s.Subtype
}
