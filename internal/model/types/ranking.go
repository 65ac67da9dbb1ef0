package types

import (
	"gopkg.in/guregu/null.v3"

	"exusiai.dev/trialstats/internal/util/period"
)

type LeaderboardQuery struct {
	Period   string `query:"period"`
	Career   string `query:"career" validate:"max=128"`
	Position string `query:"position" validate:"max=128"`
	Subtype  string `query:"subtype" validate:"omitempty,plyometricsubtype"`
	Limit    int    `query:"limit" validate:"gte=0,lte=100"`
}

// FilteredAccuracyReportRequest selects a personal accuracy report over explicit
// dates, narrowed to a set of subtypes.
type FilteredAccuracyReportRequest struct {
	AccountID int      `json:"accountId" validate:"required,gt=0"`
	From      string   `json:"from"`
	To        string   `json:"to"`
	Subtypes  []string `json:"subtypes" validate:"dive,accuracysubtype"`
}

func (r FilteredAccuracyReportRequest) Query() period.Query {
	return period.Query{From: r.From, To: r.To}
}

type TrialLeaderboardRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subtype string `json:"subtype" validate:"omitempty,accuracysubtype"`
	Top     int    `json:"top" validate:"gte=0,lte=100"`
}

type StartAccuracyTrialRequest struct {
	AccountID int    `json:"accountId" validate:"required,gt=0"`
	Subtype   string `json:"subtype" validate:"required,accuracysubtype"`
}

type FinishAccuracyTrialRequest struct {
	Hits          int      `json:"hits" validate:"gte=0"`
	Misses        int      `json:"misses" validate:"gte=0"`
	Attempts      null.Int `json:"attempts" validate:"gte=0" swaggertype:"integer"`
	ExercisesDone null.Int `json:"exercisesDone" validate:"gte=0" swaggertype:"integer"`
}

type StartReachTrialRequest struct {
	AccountID int `json:"accountId" validate:"required,gt=0"`
}

type FinishReachTrialRequest struct {
	FlightTime float64 `json:"flightTime" validate:"gte=0"`
	Power      float64 `json:"power" validate:"gte=0"`
	Velocity   float64 `json:"velocity" validate:"gte=0"`
	Reach      float64 `json:"reach" validate:"gte=0"`
}

type StartPlyometricTrialRequest struct {
	AccountID int    `json:"accountId" validate:"required,gt=0"`
	Subtype   string `json:"subtype" validate:"required,plyometricsubtype"`
}

type FinishPlyometricTrialRequest struct {
	LeftForce     float64    `json:"leftForce" validate:"gte=0"`
	RightForce    float64    `json:"rightForce" validate:"gte=0"`
	Acceleration  float64    `json:"acceleration" validate:"gte=0"`
	Power         float64    `json:"power" validate:"gte=0"`
	JumpCount     null.Int   `json:"jumpCount" validate:"gte=0" swaggertype:"integer"`
	FatigueIndex  null.Float `json:"fatigueIndex" validate:"gte=0" swaggertype:"number"`
	AverageHeight null.Float `json:"averageHeight" validate:"gte=0" swaggertype:"number"`
}
