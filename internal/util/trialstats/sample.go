// Package trialstats folds completed trials into totals, averages and
// best/worst/latest picks. Inputs are normalized samples, so nothing in here
// deals with missing values.
package trialstats

import (
	"time"

	"github.com/samber/lo"

	"exusiai.dev/trialstats/internal/model"
	"exusiai.dev/trialstats/internal/util"
)

type AccuracySample struct {
	ID            int
	AccountID     int
	Subtype       string
	Date          time.Time
	Hits          int
	Misses        int
	Attempts      int
	ExercisesDone int
}

// Scored is the accuracy denominator of the sample: the normalized attempt
// count.
func (s AccuracySample) Scored() int {
	return s.Attempts
}

func (s AccuracySample) Accuracy() float64 {
	return util.Percentage(float64(s.Hits), float64(s.Scored()))
}

// NewAccuracySample normalizes a stored trial. Missing counters become zero and
// a missing or zero attempt count falls back to hits plus misses.
func NewAccuracySample(t *model.AccuracyTrial) AccuracySample {
	hits := util.ClampNonNegative(int(t.Hits.ValueOrZero()))
	misses := util.ClampNonNegative(int(t.Misses.ValueOrZero()))
	attempts := util.ClampNonNegative(int(t.Attempts.ValueOrZero()))
	if attempts == 0 {
		attempts = hits + misses
	}

	return AccuracySample{
		ID:            t.TrialID,
		AccountID:     t.AccountID,
		Subtype:       string(t.Subtype),
		Date:          t.CreatedAt,
		Hits:          hits,
		Misses:        misses,
		Attempts:      attempts,
		ExercisesDone: util.ClampNonNegative(int(t.ExercisesDone.ValueOrZero())),
	}
}

func AccuracySamples(trials []*model.AccuracyTrial) []AccuracySample {
	return lo.Map(trials, func(t *model.AccuracyTrial, _ int) AccuracySample {
		return NewAccuracySample(t)
	})
}

// MagnitudeSample is a trial reduced to its ranking magnitude and power.
type MagnitudeSample struct {
	ID        int
	AccountID int
	Subtype   string
	Date      time.Time
	Value     float64
	Power     float64
}

func NewReachSample(t *model.ReachTrial) MagnitudeSample {
	return MagnitudeSample{
		ID:        t.TrialID,
		AccountID: t.AccountID,
		Date:      t.CreatedAt,
		Value:     util.ClampNonNegative(t.Reach.ValueOrZero()),
		Power:     util.ClampNonNegative(t.Power.ValueOrZero()),
	}
}

// NewPlyometricSample uses the mean of both legs' force as the magnitude.
func NewPlyometricSample(t *model.PlyometricTrial) MagnitudeSample {
	left := util.ClampNonNegative(t.LeftForce.ValueOrZero())
	right := util.ClampNonNegative(t.RightForce.ValueOrZero())

	return MagnitudeSample{
		ID:        t.TrialID,
		AccountID: t.AccountID,
		Subtype:   string(t.Subtype),
		Date:      t.CreatedAt,
		Value:     (left + right) / 2,
		Power:     util.ClampNonNegative(t.Power.ValueOrZero()),
	}
}

func ReachSamples(trials []*model.ReachTrial) []MagnitudeSample {
	return lo.Map(trials, func(t *model.ReachTrial, _ int) MagnitudeSample {
		return NewReachSample(t)
	})
}

func PlyometricSamples(trials []*model.PlyometricTrial) []MagnitudeSample {
	return lo.Map(trials, func(t *model.PlyometricTrial, _ int) MagnitudeSample {
		return NewPlyometricSample(t)
	})
}

// later reports whether (date, id) comes after (otherDate, otherID).
func later(date time.Time, id int, otherDate time.Time, otherID int) bool {
	if date.Equal(otherDate) {
		return id > otherID
	}
	return date.After(otherDate)
}
