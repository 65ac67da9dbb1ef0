package repo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"exusiai.dev/trialstats/internal/model"
	"exusiai.dev/trialstats/internal/pkg/pgerr"
	"exusiai.dev/trialstats/internal/repo/selector"
)

type AccuracyTrial struct {
	db  *bun.DB
	sel selector.S[model.AccuracyTrial]
}

func NewAccuracyTrial(db *bun.DB) *AccuracyTrial {
	return &AccuracyTrial{
		db:  db,
		sel: selector.New[model.AccuracyTrial](db),
	}
}

func (r *AccuracyTrial) GetCompleted(ctx context.Context, q TrialQuery) ([]*model.AccuracyTrial, error) {
	return r.sel.SelectMany(ctx, func(sq *bun.SelectQuery) *bun.SelectQuery {
		return q.apply(sq, true)
	})
}

// GetCompletedWithAccounts is GetCompleted with each trial's owning account and
// player profile loaded, restricted to active players.
func (r *AccuracyTrial) GetCompletedWithAccounts(ctx context.Context, q TrialQuery) ([]*model.AccuracyTrial, error) {
	return r.sel.SelectMany(ctx, func(sq *bun.SelectQuery) *bun.SelectQuery {
		return q.apply(sq.Relation("Account").Relation("Account.Player"), true).
			Where("account.role = ?", model.RolePlayer).
			Where("account.active = TRUE")
	})
}

func (r *AccuracyTrial) GetByID(ctx context.Context, trialID int) (*model.AccuracyTrial, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("at.trial_id = ?", trialID)
	})
}

// GetByAccount returns all trials of an account regardless of status, newest first.
func (r *AccuracyTrial) GetByAccount(ctx context.Context, accountID int) ([]*model.AccuracyTrial, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("at.account_id = ?", accountID).Order("at.created_at DESC", "at.trial_id DESC")
	})
}

func (r *AccuracyTrial) GetLatestCompletedByAccount(ctx context.Context, accountID int) (*model.AccuracyTrial, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("at.account_id = ?", accountID).
			Where("at.status = ?", model.TrialStatusCompleted).
			Order("at.created_at DESC", "at.trial_id DESC")
	})
}

func (r *AccuracyTrial) Create(ctx context.Context, trial *model.AccuracyTrial) error {
	_, err := r.db.NewInsert().
		Model(trial).
		Returning("*").
		Exec(ctx)
	return errors.Wrap(err, "insert accuracy trial")
}

// Complete writes the results of a trial and marks it completed. Trials that
// are already completed are left untouched.
func (r *AccuracyTrial) Complete(ctx context.Context, trial *model.AccuracyTrial) error {
	trial.Status = model.TrialStatusCompleted

	res, err := r.db.NewUpdate().
		Model(trial).
		Column("attempts", "hits", "misses", "exercises_done", "status", "finished_at").
		WherePK().
		Where("status <> ?", model.TrialStatusCompleted).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "complete accuracy trial")
	}
	return expectAffected(res, pgerr.ErrInvalidReq.Msg("trial %d is already completed", trial.TrialID))
}

func (r *AccuracyTrial) Delete(ctx context.Context, trialID int) error {
	res, err := r.db.NewDelete().
		Model((*model.AccuracyTrial)(nil)).
		Where("trial_id = ?", trialID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "delete accuracy trial")
	}
	return expectAffected(res, pgerr.ErrNotFound.Msg("accuracy trial %d not found", trialID))
}
