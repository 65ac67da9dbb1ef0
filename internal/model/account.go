package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Role string

const (
	RolePlayer     Role = "player"
	RoleCoach      Role = "coach"
	RoleTechnician Role = "technician"
)

type Account struct {
	bun.BaseModel `bun:"accounts,alias:a"`

	AccountID int       `bun:",pk,autoincrement" json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`

	Player *Player `bun:"rel:has-one,join:account_id=account_id" json:"player,omitempty"`

	AccuracyTrials   []*AccuracyTrial   `bun:"rel:has-many,join:account_id=account_id" json:"-"`
	ReachTrials      []*ReachTrial      `bun:"rel:has-many,join:account_id=account_id" json:"-"`
	PlyometricTrials []*PlyometricTrial `bun:"rel:has-many,join:account_id=account_id" json:"-"`
}

// Player is the sporting profile attached to accounts with the player role.
type Player struct {
	bun.BaseModel `bun:"players,alias:p"`

	PlayerID        int         `bun:",pk,autoincrement" json:"id"`
	AccountID       int         `json:"accountId"`
	FirstNames      string      `json:"firstNames"`
	LastNames       string      `json:"lastNames"`
	Career          null.String `json:"career" swaggertype:"string"`
	PrimaryPosition null.String `json:"primaryPosition" swaggertype:"string"`
}
