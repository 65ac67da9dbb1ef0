package constant

const (
	DefaultAccuracyLeaderboardLimit  = 10
	DefaultMagnitudeLeaderboardLimit = 5
	DefaultTrialLeaderboardLimit     = 10

	// PeriodLabelCustom labels windows given by explicit dates.
	PeriodLabelCustom = "custom"
)
