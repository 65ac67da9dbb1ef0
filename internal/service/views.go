package service

import (
	"exusiai.dev/trialstats/internal/model/types"
	modelv1 "exusiai.dev/trialstats/internal/model/v1"
	"exusiai.dev/trialstats/internal/util/trialstats"
)

func accuracyTrialView(s *trialstats.AccuracySample) *modelv1.AccuracyTrialView {
	if s == nil {
		return nil
	}
	return &modelv1.AccuracyTrialView{
		TrialID:       s.ID,
		Subtype:       s.Subtype,
		Date:          s.Date,
		Hits:          s.Hits,
		Misses:        s.Misses,
		Attempts:      s.Attempts,
		ExercisesDone: s.ExercisesDone,
		Accuracy:      types.Percent(s.Accuracy()),
	}
}

func accuracySummary(t trialstats.AccuracyTotals) modelv1.AccuracySummary {
	return modelv1.AccuracySummary{
		Trials:   t.Trials,
		Hits:     t.Hits,
		Misses:   t.Misses,
		Attempts: t.Attempts,
		Accuracy: types.Percent(t.Accuracy()),
	}
}

func accuracySubtypeSummaries(buckets []*trialstats.AccuracyBucket) []modelv1.AccuracySubtypeSummary {
	summaries := make([]modelv1.AccuracySubtypeSummary, 0, len(buckets))
	for _, b := range buckets {
		summaries = append(summaries, modelv1.AccuracySubtypeSummary{
			Subtype:         b.Key,
			AccuracySummary: accuracySummary(b.AccuracyTotals),
			Best:            accuracyTrialView(b.Best),
			Worst:           accuracyTrialView(b.Worst),
		})
	}
	return summaries
}

func magnitudeTrialView(s *trialstats.MagnitudeSample) *modelv1.MagnitudeTrialView {
	if s == nil {
		return nil
	}
	return &modelv1.MagnitudeTrialView{
		TrialID: s.ID,
		Subtype: s.Subtype,
		Date:    s.Date,
		Value:   types.Magnitude(s.Value),
		Power:   types.Magnitude(s.Power),
	}
}

func magnitudeSummary(st trialstats.MagnitudeStats) modelv1.MagnitudeSummary {
	return modelv1.MagnitudeSummary{
		Trials:       st.Trials,
		BestValue:    types.Magnitude(st.BestValue),
		AverageValue: types.Magnitude(st.AverageValue),
		BestPower:    types.Magnitude(st.BestPower),
		AveragePower: types.Magnitude(st.AveragePower),
		Best:         magnitudeTrialView(st.Best),
		Worst:        magnitudeTrialView(st.Worst),
		Latest:       magnitudeTrialView(st.Latest),
	}
}
