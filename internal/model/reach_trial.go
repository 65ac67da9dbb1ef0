package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type ReachTrial struct {
	bun.BaseModel `bun:"reach_trials,alias:rt"`

	TrialID    int         `bun:",pk,autoincrement" json:"id"`
	AccountID  int         `json:"accountId"`
	FlightTime null.Float  `json:"flightTime" swaggertype:"number"`
	Power      null.Float  `json:"power" swaggertype:"number"`
	Velocity   null.Float  `json:"velocity" swaggertype:"number"`
	Reach      null.Float  `json:"reach" swaggertype:"number"`
	Status     TrialStatus `json:"status"`
	CreatedAt  time.Time   `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`

	Account *Account `bun:"rel:belongs-to,join:account_id=account_id" json:"-"`
}
