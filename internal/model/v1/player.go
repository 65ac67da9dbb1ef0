package v1

import "exusiai.dev/trialstats/internal/model"

type PlayerBrief struct {
	AccountID       int    `json:"accountId"`
	Username        string `json:"username"`
	FirstNames      string `json:"firstNames"`
	LastNames       string `json:"lastNames"`
	Career          string `json:"career"`
	PrimaryPosition string `json:"primaryPosition"`
}

func NewPlayerBrief(a *model.Account) *PlayerBrief {
	if a == nil {
		return nil
	}
	brief := &PlayerBrief{
		AccountID: a.AccountID,
		Username:  a.Username,
	}
	if p := a.Player; p != nil {
		brief.FirstNames = p.FirstNames
		brief.LastNames = p.LastNames
		brief.Career = p.Career.ValueOrZero()
		brief.PrimaryPosition = p.PrimaryPosition.ValueOrZero()
	}
	return brief
}
