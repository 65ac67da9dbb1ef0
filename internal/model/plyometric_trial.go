package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type PlyometricTrial struct {
	bun.BaseModel `bun:"plyometric_trials,alias:pt"`

	TrialID       int               `bun:",pk,autoincrement" json:"id"`
	AccountID     int               `json:"accountId"`
	Subtype       PlyometricSubtype `json:"subtype"`
	LeftForce     null.Float        `json:"leftForce" swaggertype:"number"`
	RightForce    null.Float        `json:"rightForce" swaggertype:"number"`
	Acceleration  null.Float        `json:"acceleration" swaggertype:"number"`
	Power         null.Float        `json:"power" swaggertype:"number"`
	JumpCount     null.Int          `json:"jumpCount" swaggertype:"integer"`
	FatigueIndex  null.Float        `json:"fatigueIndex" swaggertype:"number"`
	AverageHeight null.Float        `json:"averageHeight" swaggertype:"number"`
	Status        TrialStatus       `json:"status"`
	CreatedAt     time.Time         `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`

	Account *Account `bun:"rel:belongs-to,join:account_id=account_id" json:"-"`
}
