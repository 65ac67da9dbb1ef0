package repo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"exusiai.dev/trialstats/internal/model"
	"exusiai.dev/trialstats/internal/pkg/pgerr"
	"exusiai.dev/trialstats/internal/repo/selector"
)

type ReachTrial struct {
	db  *bun.DB
	sel selector.S[model.ReachTrial]
}

func NewReachTrial(db *bun.DB) *ReachTrial {
	return &ReachTrial{
		db:  db,
		sel: selector.New[model.ReachTrial](db),
	}
}

func (r *ReachTrial) GetCompleted(ctx context.Context, q TrialQuery) ([]*model.ReachTrial, error) {
	return r.sel.SelectMany(ctx, func(sq *bun.SelectQuery) *bun.SelectQuery {
		return q.apply(sq, false)
	})
}

func (r *ReachTrial) GetByID(ctx context.Context, trialID int) (*model.ReachTrial, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("rt.trial_id = ?", trialID)
	})
}

func (r *ReachTrial) GetByAccount(ctx context.Context, accountID int) ([]*model.ReachTrial, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("rt.account_id = ?", accountID).Order("rt.created_at DESC", "rt.trial_id DESC")
	})
}

func (r *ReachTrial) GetLatestCompletedByAccount(ctx context.Context, accountID int) (*model.ReachTrial, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("rt.account_id = ?", accountID).
			Where("rt.status = ?", model.TrialStatusCompleted).
			Order("rt.created_at DESC", "rt.trial_id DESC")
	})
}

func (r *ReachTrial) Create(ctx context.Context, trial *model.ReachTrial) error {
	_, err := r.db.NewInsert().
		Model(trial).
		Returning("*").
		Exec(ctx)
	return errors.Wrap(err, "insert reach trial")
}

func (r *ReachTrial) Complete(ctx context.Context, trial *model.ReachTrial) error {
	trial.Status = model.TrialStatusCompleted

	res, err := r.db.NewUpdate().
		Model(trial).
		Column("flight_time", "power", "velocity", "reach", "status").
		WherePK().
		Where("status <> ?", model.TrialStatusCompleted).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "complete reach trial")
	}
	return expectAffected(res, pgerr.ErrInvalidReq.Msg("trial %d is already completed", trial.TrialID))
}

func (r *ReachTrial) Delete(ctx context.Context, trialID int) error {
	res, err := r.db.NewDelete().
		Model((*model.ReachTrial)(nil)).
		Where("trial_id = ?", trialID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "delete reach trial")
	}
	return expectAffected(res, pgerr.ErrNotFound.Msg("reach trial %d not found", trialID))
}
