package service

import (
	"context"

	"go.uber.org/fx"

	"exusiai.dev/trialstats/internal/model"
	"exusiai.dev/trialstats/internal/repo"
)

type AccountStore interface {
	GetAccountByID(ctx context.Context, accountID int) (*model.Account, error)
	GetPlayersWithAccuracyTrials(ctx context.Context, q repo.CandidateQuery) ([]*model.Account, error)
	GetPlayersWithReachTrials(ctx context.Context, q repo.CandidateQuery) ([]*model.Account, error)
	GetPlayersWithPlyometricTrials(ctx context.Context, q repo.CandidateQuery) ([]*model.Account, error)
}

type AccuracyTrialStore interface {
	GetCompleted(ctx context.Context, q repo.TrialQuery) ([]*model.AccuracyTrial, error)
	GetCompletedWithAccounts(ctx context.Context, q repo.TrialQuery) ([]*model.AccuracyTrial, error)
	GetByID(ctx context.Context, trialID int) (*model.AccuracyTrial, error)
	GetByAccount(ctx context.Context, accountID int) ([]*model.AccuracyTrial, error)
	GetLatestCompletedByAccount(ctx context.Context, accountID int) (*model.AccuracyTrial, error)
	Create(ctx context.Context, trial *model.AccuracyTrial) error
	Complete(ctx context.Context, trial *model.AccuracyTrial) error
	Delete(ctx context.Context, trialID int) error
}

type ReachTrialStore interface {
	GetCompleted(ctx context.Context, q repo.TrialQuery) ([]*model.ReachTrial, error)
	GetByID(ctx context.Context, trialID int) (*model.ReachTrial, error)
	GetByAccount(ctx context.Context, accountID int) ([]*model.ReachTrial, error)
	GetLatestCompletedByAccount(ctx context.Context, accountID int) (*model.ReachTrial, error)
	Create(ctx context.Context, trial *model.ReachTrial) error
	Complete(ctx context.Context, trial *model.ReachTrial) error
	Delete(ctx context.Context, trialID int) error
}

type PlyometricTrialStore interface {
	GetCompleted(ctx context.Context, q repo.TrialQuery) ([]*model.PlyometricTrial, error)
	GetByID(ctx context.Context, trialID int) (*model.PlyometricTrial, error)
	GetByAccount(ctx context.Context, accountID int) ([]*model.PlyometricTrial, error)
	GetLatestCompletedByAccount(ctx context.Context, accountID int) (*model.PlyometricTrial, error)
	Create(ctx context.Context, trial *model.PlyometricTrial) error
	Complete(ctx context.Context, trial *model.PlyometricTrial) error
	Delete(ctx context.Context, trialID int) error
}

var (
	_ AccountStore         = (*repo.Account)(nil)
	_ AccuracyTrialStore   = (*repo.AccuracyTrial)(nil)
	_ ReachTrialStore      = (*repo.ReachTrial)(nil)
	_ PlyometricTrialStore = (*repo.PlyometricTrial)(nil)
)

// bindStores exposes the bun repositories under the interfaces services depend on.
func bindStores() fx.Option {
	return fx.Provide(
		func(r *repo.Account) AccountStore { return r },
		func(r *repo.AccuracyTrial) AccuracyTrialStore { return r },
		func(r *repo.ReachTrial) ReachTrialStore { return r },
		func(r *repo.PlyometricTrial) PlyometricTrialStore { return r },
	)
}
