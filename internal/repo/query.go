package repo

import (
	"github.com/uptrace/bun"

	"exusiai.dev/trialstats/internal/model"
	"exusiai.dev/trialstats/internal/util/period"
)

// TrialQuery selects completed trials. Zero values leave a dimension unfiltered.
type TrialQuery struct {
	AccountID int
	Range     period.Range
	Subtypes  []string
}

// CandidateQuery selects leaderboard candidates and the trials they own.
// Career and Position are profile filters; empty means no filter.
type CandidateQuery struct {
	Range    period.Range
	Career   string
	Position string
	Subtype  string
}

func (q TrialQuery) apply(sq *bun.SelectQuery, hasSubtype bool) *bun.SelectQuery {
	sq = completedInRange(sq, q.Range)
	if q.AccountID != 0 {
		sq = sq.Where("?TableAlias.account_id = ?", q.AccountID)
	}
	if hasSubtype && len(q.Subtypes) > 0 {
		sq = sq.Where("?TableAlias.subtype IN (?)", bun.In(q.Subtypes))
	}
	return sq.OrderExpr("?TableAlias.created_at ASC, ?TableAlias.trial_id ASC")
}

func completedInRange(sq *bun.SelectQuery, rng period.Range) *bun.SelectQuery {
	sq = sq.Where("?TableAlias.status = ?", model.TrialStatusCompleted)
	if !rng.From.IsZero() || !rng.To.IsZero() {
		sq = sq.Where("?TableAlias.created_at BETWEEN ? AND ?", rng.From, rng.To)
	}
	return sq
}
