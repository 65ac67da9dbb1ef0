package repo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"exusiai.dev/trialstats/internal/model"
	"exusiai.dev/trialstats/internal/pkg/pgerr"
	"exusiai.dev/trialstats/internal/repo/selector"
)

type PlyometricTrial struct {
	db  *bun.DB
	sel selector.S[model.PlyometricTrial]
}

func NewPlyometricTrial(db *bun.DB) *PlyometricTrial {
	return &PlyometricTrial{
		db:  db,
		sel: selector.New[model.PlyometricTrial](db),
	}
}

func (r *PlyometricTrial) GetCompleted(ctx context.Context, q TrialQuery) ([]*model.PlyometricTrial, error) {
	return r.sel.SelectMany(ctx, func(sq *bun.SelectQuery) *bun.SelectQuery {
		return q.apply(sq, true)
	})
}

func (r *PlyometricTrial) GetByID(ctx context.Context, trialID int) (*model.PlyometricTrial, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("pt.trial_id = ?", trialID)
	})
}

func (r *PlyometricTrial) GetByAccount(ctx context.Context, accountID int) ([]*model.PlyometricTrial, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("pt.account_id = ?", accountID).Order("pt.created_at DESC", "pt.trial_id DESC")
	})
}

func (r *PlyometricTrial) GetLatestCompletedByAccount(ctx context.Context, accountID int) (*model.PlyometricTrial, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("pt.account_id = ?", accountID).
			Where("pt.status = ?", model.TrialStatusCompleted).
			Order("pt.created_at DESC", "pt.trial_id DESC")
	})
}

func (r *PlyometricTrial) Create(ctx context.Context, trial *model.PlyometricTrial) error {
	_, err := r.db.NewInsert().
		Model(trial).
		Returning("*").
		Exec(ctx)
	return errors.Wrap(err, "insert plyometric trial")
}

func (r *PlyometricTrial) Complete(ctx context.Context, trial *model.PlyometricTrial) error {
	trial.Status = model.TrialStatusCompleted

	res, err := r.db.NewUpdate().
		Model(trial).
		Column("left_force", "right_force", "acceleration", "power", "jump_count", "fatigue_index", "average_height", "status").
		WherePK().
		Where("status <> ?", model.TrialStatusCompleted).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "complete plyometric trial")
	}
	return expectAffected(res, pgerr.ErrInvalidReq.Msg("trial %d is already completed", trial.TrialID))
}

func (r *PlyometricTrial) Delete(ctx context.Context, trialID int) error {
	res, err := r.db.NewDelete().
		Model((*model.PlyometricTrial)(nil)).
		Where("trial_id = ?", trialID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "delete plyometric trial")
	}
	return expectAffected(res, pgerr.ErrNotFound.Msg("plyometric trial %d not found", trialID))
}
