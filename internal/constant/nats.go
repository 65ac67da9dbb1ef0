package constant

const (
	TrialEventsStream = "trial-events"

	// TrialEventsSubjectPrefix is followed by ".<kind>.completed".
	TrialEventsSubjectPrefix = "TRIAL"
)
