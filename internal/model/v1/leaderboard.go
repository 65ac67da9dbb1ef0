package v1

import (
	"exusiai.dev/trialstats/internal/model/types"
)

// FilterAll marks a leaderboard filter that was not applied.
const FilterAll = "all"

type LeaderboardFilters struct {
	Career   string `json:"career"`
	Position string `json:"position"`
	Subtype  string `json:"subtype,omitempty"`
}

type Leaderboard[T any] struct {
	Window
	Filters LeaderboardFilters `json:"filters"`
	Top     []T                `json:"top"`
}

// Standing is one account's position on a leaderboard.
type Standing[T any] struct {
	Window
	Filters         LeaderboardFilters `json:"filters"`
	Rank            int                `json:"rank"`
	TotalCandidates int                `json:"totalCandidates"`
	Entry           T                  `json:"entry"`
}

type AccuracyStanding struct {
	Rank   int          `json:"rank"`
	Player *PlayerBrief `json:"player"`
	AccuracySummary
	Subtypes []AccuracySubtypeSummary `json:"subtypes"`
}

type MagnitudeStanding struct {
	Rank         int             `json:"rank"`
	Player       *PlayerBrief    `json:"player"`
	Trials       int             `json:"trials"`
	BestValue    types.Magnitude `json:"bestValue" swaggertype:"number"`
	BestPower    types.Magnitude `json:"bestPower" swaggertype:"number"`
	AverageValue types.Magnitude `json:"averageValue" swaggertype:"number"`
	AveragePower types.Magnitude `json:"averagePower" swaggertype:"number"`
}

// TrialStanding is a single accuracy trial placed on the per-trial leaderboard.
type TrialStanding struct {
	Rank   int          `json:"rank"`
	Player *PlayerBrief `json:"player"`
	AccuracyTrialView
}

type TrialLeaderboard struct {
	Window
	Subtype string          `json:"subtype"`
	Top     []TrialStanding `json:"top"`
}
