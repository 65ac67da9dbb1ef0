package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type AccuracyTrial struct {
	bun.BaseModel `bun:"accuracy_trials,alias:at"`

	TrialID       int             `bun:",pk,autoincrement" json:"id"`
	AccountID     int             `json:"accountId"`
	Subtype       AccuracySubtype `json:"subtype"`
	Attempts      null.Int        `json:"attempts" swaggertype:"integer"`
	Hits          null.Int        `json:"hits" swaggertype:"integer"`
	Misses        null.Int        `json:"misses" swaggertype:"integer"`
	ExercisesDone null.Int        `json:"exercisesDone" swaggertype:"integer"`
	Status        TrialStatus     `json:"status"`
	StartedAt     *time.Time      `json:"startedAt"`
	FinishedAt    *time.Time      `json:"finishedAt"`
	CreatedAt     time.Time       `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`

	Account *Account `bun:"rel:belongs-to,join:account_id=account_id" json:"-"`
}
