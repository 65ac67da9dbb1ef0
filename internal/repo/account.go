package repo

import (
	"context"

	"github.com/uptrace/bun"

	"exusiai.dev/trialstats/internal/model"
	"exusiai.dev/trialstats/internal/repo/selector"
)

type Account struct {
	db  *bun.DB
	sel selector.S[model.Account]
}

func NewAccount(db *bun.DB) *Account {
	return &Account{
		db:  db,
		sel: selector.New[model.Account](db),
	}
}

func (r *Account) GetAccountByID(ctx context.Context, accountID int) (*model.Account, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Relation("Player").Where("a.account_id = ?", accountID)
	})
}

// GetPlayersWithAccuracyTrials returns every active player matching the profile
// filters, each carrying its completed accuracy trials in range. Players without
// such trials are included with an empty slice.
func (r *Account) GetPlayersWithAccuracyTrials(ctx context.Context, q CandidateQuery) ([]*model.Account, error) {
	return r.playersWith(ctx, q, "AccuracyTrials", nil)
}

func (r *Account) GetPlayersWithReachTrials(ctx context.Context, q CandidateQuery) ([]*model.Account, error) {
	return r.playersWith(ctx, q, "ReachTrials", nil)
}

func (r *Account) GetPlayersWithPlyometricTrials(ctx context.Context, q CandidateQuery) ([]*model.Account, error) {
	return r.playersWith(ctx, q, "PlyometricTrials", func(sq *bun.SelectQuery) *bun.SelectQuery {
		if q.Subtype != "" {
			sq = sq.Where("?TableAlias.subtype = ?", q.Subtype)
		}
		return sq
	})
}

func (r *Account) playersWith(ctx context.Context, q CandidateQuery, relation string, narrow func(*bun.SelectQuery) *bun.SelectQuery) ([]*model.Account, error) {
	return r.sel.SelectMany(ctx, func(sq *bun.SelectQuery) *bun.SelectQuery {
		sq = sq.
			Relation("Player").
			Relation(relation, func(tq *bun.SelectQuery) *bun.SelectQuery {
				tq = completedInRange(tq, q.Range)
				if narrow != nil {
					tq = narrow(tq)
				}
				return tq.OrderExpr("?TableAlias.created_at ASC, ?TableAlias.trial_id ASC")
			}).
			Where("a.role = ?", model.RolePlayer).
			Where("a.active = TRUE").
			Where("player.player_id IS NOT NULL")

		if q.Career != "" {
			sq = sq.Where("player.career = ?", q.Career)
		}
		if q.Position != "" {
			sq = sq.Where("player.primary_position = ?", q.Position)
		}

		return sq.Order("a.account_id ASC")
	})
}
