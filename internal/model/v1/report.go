package v1

import (
	"time"

	"exusiai.dev/trialstats/internal/model/types"
)

// Window describes the period a report or leaderboard was computed over.
type Window struct {
	Period string    `json:"period"`
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
}

type AccuracySummary struct {
	Trials   int           `json:"trials"`
	Hits     int           `json:"hits"`
	Misses   int           `json:"misses"`
	Attempts int           `json:"attempts"`
	Accuracy types.Percent `json:"accuracy" swaggertype:"string" example:"92.00"`
}

type AccuracyTrialView struct {
	TrialID       int           `json:"trialId"`
	Subtype       string        `json:"subtype"`
	Date          time.Time     `json:"date"`
	Hits          int           `json:"hits"`
	Misses        int           `json:"misses"`
	Attempts      int           `json:"attempts"`
	ExercisesDone int           `json:"exercisesDone"`
	Accuracy      types.Percent `json:"accuracy" swaggertype:"string"`
}

type AccuracySubtypeSummary struct {
	Subtype string `json:"subtype"`
	AccuracySummary
	Best  *AccuracyTrialView `json:"best"`
	Worst *AccuracyTrialView `json:"worst"`
}

type AccuracyReport struct {
	Window
	Player   *PlayerBrief             `json:"player"`
	Summary  AccuracySummary          `json:"summary"`
	Subtypes []AccuracySubtypeSummary `json:"subtypes"`
	Best     *AccuracyTrialView       `json:"best"`
	Worst    *AccuracyTrialView       `json:"worst"`
	Latest   *AccuracyTrialView       `json:"latest"`
}

type MagnitudeTrialView struct {
	TrialID int             `json:"trialId"`
	Subtype string          `json:"subtype,omitempty"`
	Date    time.Time       `json:"date"`
	Value   types.Magnitude `json:"value" swaggertype:"number"`
	Power   types.Magnitude `json:"power" swaggertype:"number"`
}

type MagnitudeSummary struct {
	Trials       int                 `json:"trials"`
	BestValue    types.Magnitude     `json:"bestValue" swaggertype:"number"`
	AverageValue types.Magnitude     `json:"averageValue" swaggertype:"number"`
	BestPower    types.Magnitude     `json:"bestPower" swaggertype:"number"`
	AveragePower types.Magnitude     `json:"averagePower" swaggertype:"number"`
	Best         *MagnitudeTrialView `json:"best"`
	Worst        *MagnitudeTrialView `json:"worst"`
	Latest       *MagnitudeTrialView `json:"latest"`
}

type ReachReport struct {
	Window
	Player  *PlayerBrief     `json:"player"`
	Summary MagnitudeSummary `json:"summary"`
}

type PlyometricSubtypeSummary struct {
	Subtype string `json:"subtype"`
	MagnitudeSummary
}

type PlyometricReport struct {
	Window
	Player   *PlayerBrief               `json:"player"`
	Subtype  string                     `json:"subtype"`
	Summary  MagnitudeSummary           `json:"summary"`
	Subtypes []PlyometricSubtypeSummary `json:"subtypes"`
}
