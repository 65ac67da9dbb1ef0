package model

type TrialStatus string

const (
	TrialStatusPending    TrialStatus = "pending"
	TrialStatusInProgress TrialStatus = "in_progress"
	TrialStatusCompleted  TrialStatus = "completed"
)

// TrialKind names the three families of trials recorded for an account.
type TrialKind string

const (
	TrialKindAccuracy   TrialKind = "accuracy"
	TrialKindReach      TrialKind = "reach"
	TrialKindPlyometric TrialKind = "plyometric"
)

type AccuracySubtype string

const (
	AccuracySubtypeSequential AccuracySubtype = "sequential"
	AccuracySubtypeRandom     AccuracySubtype = "random"
	AccuracySubtypeManual     AccuracySubtype = "manual"
)

var AccuracySubtypes = []string{
	string(AccuracySubtypeSequential),
	string(AccuracySubtypeRandom),
	string(AccuracySubtypeManual),
}

type PlyometricSubtype string

const (
	PlyometricSubtypeBoxJump    PlyometricSubtype = "box_jump"
	PlyometricSubtypeSimpleJump PlyometricSubtype = "simple_jump"
	PlyometricSubtypeHurdleJump PlyometricSubtype = "hurdle_jump"
)

var PlyometricSubtypes = []string{
	string(PlyometricSubtypeBoxJump),
	string(PlyometricSubtypeSimpleJump),
	string(PlyometricSubtypeHurdleJump),
}
