package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"gopkg.in/guregu/null.v3"

	"exusiai.dev/trialstats/internal/model"
	"exusiai.dev/trialstats/internal/model/types"
	"exusiai.dev/trialstats/internal/pkg/pgerr"
)

// Trial runs the lifecycle of trials: started in progress with zeroed
// results, then completed exactly once.
type Trial struct {
	AccountStore         AccountStore
	AccuracyTrialStore   AccuracyTrialStore
	ReachTrialStore      ReachTrialStore
	PlyometricTrialStore PlyometricTrialStore
	TrialEvents          *TrialEvents
	Clock                Clock
}

func NewTrial(
	accountStore AccountStore,
	accuracyTrialStore AccuracyTrialStore,
	reachTrialStore ReachTrialStore,
	plyometricTrialStore PlyometricTrialStore,
	trialEvents *TrialEvents,
	clock Clock,
) *Trial {
	return &Trial{
		AccountStore:         accountStore,
		AccuracyTrialStore:   accuracyTrialStore,
		ReachTrialStore:      reachTrialStore,
		PlyometricTrialStore: plyometricTrialStore,
		TrialEvents:          trialEvents,
		Clock:                clock,
	}
}

// requirePlayer only lets active accounts with the player role take trials.
func (s *Trial) requirePlayer(ctx context.Context, accountID int) error {
	account, err := s.AccountStore.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.Role != model.RolePlayer || !account.Active {
		return pgerr.ErrInvalidReq.Msg("account %d is not an active player", accountID)
	}
	return nil
}

func (s *Trial) requireAccount(ctx context.Context, accountID int) error {
	_, err := s.AccountStore.GetAccountByID(ctx, accountID)
	return err
}

func alreadyCompleted(trialID int) error {
	return pgerr.ErrInvalidReq.Msg("trial %d is already completed", trialID)
}

func (s *Trial) published(ctx context.Context, kind model.TrialKind, trialID, accountID int, subtype string, trial any) {
	log.Info().
		Str("evt.name", "trial.completed").
		Str("kind", string(kind)).
		Int("trialId", trialID).
		Int("accountId", accountID).
		Msg("trial completed")

	s.TrialEvents.PublishCompleted(ctx, &TrialCompletedEvent{
		Kind:       kind,
		TrialID:    trialID,
		AccountID:  accountID,
		Subtype:    subtype,
		Trial:      trial,
		OccurredAt: s.Clock(),
	})
}

func (s *Trial) StartAccuracy(ctx context.Context, req *types.StartAccuracyTrialRequest) (*model.AccuracyTrial, error) {
	if err := s.requirePlayer(ctx, req.AccountID); err != nil {
		return nil, err
	}

	now := s.Clock()
	trial := &model.AccuracyTrial{
		AccountID:     req.AccountID,
		Subtype:       model.AccuracySubtype(req.Subtype),
		Attempts:      null.IntFrom(0),
		Hits:          null.IntFrom(0),
		Misses:        null.IntFrom(0),
		ExercisesDone: null.IntFrom(0),
		Status:        model.TrialStatusInProgress,
		StartedAt:     &now,
		CreatedAt:     now,
	}
	if err := s.AccuracyTrialStore.Create(ctx, trial); err != nil {
		return nil, err
	}
	return trial, nil
}

// FinishAccuracy records results. A missing attempt count is taken as hits plus misses.
func (s *Trial) FinishAccuracy(ctx context.Context, trialID int, req *types.FinishAccuracyTrialRequest) (*model.AccuracyTrial, error) {
	trial, err := s.AccuracyTrialStore.GetByID(ctx, trialID)
	if err != nil {
		return nil, err
	}
	if trial.Status == model.TrialStatusCompleted {
		return nil, alreadyCompleted(trialID)
	}

	attempts := req.Attempts.ValueOrZero()
	if attempts <= 0 {
		attempts = int64(req.Hits + req.Misses)
	}
	now := s.Clock()
	trial.Hits = null.IntFrom(int64(req.Hits))
	trial.Misses = null.IntFrom(int64(req.Misses))
	trial.Attempts = null.IntFrom(attempts)
	trial.ExercisesDone = null.IntFrom(req.ExercisesDone.ValueOrZero())
	trial.FinishedAt = &now

	if err := s.AccuracyTrialStore.Complete(ctx, trial); err != nil {
		return nil, err
	}

	s.published(ctx, model.TrialKindAccuracy, trial.TrialID, trial.AccountID, string(trial.Subtype), trial)
	return trial, nil
}

func (s *Trial) GetAccuracyByAccount(ctx context.Context, accountID int) ([]*model.AccuracyTrial, error) {
	if err := s.requireAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return s.AccuracyTrialStore.GetByAccount(ctx, accountID)
}

func (s *Trial) GetLatestAccuracy(ctx context.Context, accountID int) (*model.AccuracyTrial, error) {
	return s.AccuracyTrialStore.GetLatestCompletedByAccount(ctx, accountID)
}

func (s *Trial) DeleteAccuracy(ctx context.Context, trialID int) error {
	return s.AccuracyTrialStore.Delete(ctx, trialID)
}

func (s *Trial) StartReach(ctx context.Context, req *types.StartReachTrialRequest) (*model.ReachTrial, error) {
	if err := s.requirePlayer(ctx, req.AccountID); err != nil {
		return nil, err
	}

	trial := &model.ReachTrial{
		AccountID:  req.AccountID,
		FlightTime: null.FloatFrom(0),
		Power:      null.FloatFrom(0),
		Velocity:   null.FloatFrom(0),
		Reach:      null.FloatFrom(0),
		Status:     model.TrialStatusInProgress,
		CreatedAt:  s.Clock(),
	}
	if err := s.ReachTrialStore.Create(ctx, trial); err != nil {
		return nil, err
	}
	return trial, nil
}

func (s *Trial) FinishReach(ctx context.Context, trialID int, req *types.FinishReachTrialRequest) (*model.ReachTrial, error) {
	trial, err := s.ReachTrialStore.GetByID(ctx, trialID)
	if err != nil {
		return nil, err
	}
	if trial.Status == model.TrialStatusCompleted {
		return nil, alreadyCompleted(trialID)
	}

	trial.FlightTime = null.FloatFrom(req.FlightTime)
	trial.Power = null.FloatFrom(req.Power)
	trial.Velocity = null.FloatFrom(req.Velocity)
	trial.Reach = null.FloatFrom(req.Reach)

	if err := s.ReachTrialStore.Complete(ctx, trial); err != nil {
		return nil, err
	}

	s.published(ctx, model.TrialKindReach, trial.TrialID, trial.AccountID, "", trial)
	return trial, nil
}

func (s *Trial) GetReachByAccount(ctx context.Context, accountID int) ([]*model.ReachTrial, error) {
	if err := s.requireAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return s.ReachTrialStore.GetByAccount(ctx, accountID)
}

func (s *Trial) GetLatestReach(ctx context.Context, accountID int) (*model.ReachTrial, error) {
	return s.ReachTrialStore.GetLatestCompletedByAccount(ctx, accountID)
}

func (s *Trial) DeleteReach(ctx context.Context, trialID int) error {
	return s.ReachTrialStore.Delete(ctx, trialID)
}

func (s *Trial) StartPlyometric(ctx context.Context, req *types.StartPlyometricTrialRequest) (*model.PlyometricTrial, error) {
	if err := s.requirePlayer(ctx, req.AccountID); err != nil {
		return nil, err
	}

	trial := &model.PlyometricTrial{
		AccountID:     req.AccountID,
		Subtype:       model.PlyometricSubtype(req.Subtype),
		LeftForce:     null.FloatFrom(0),
		RightForce:    null.FloatFrom(0),
		Acceleration:  null.FloatFrom(0),
		Power:         null.FloatFrom(0),
		JumpCount:     null.IntFrom(0),
		FatigueIndex:  null.FloatFrom(0),
		AverageHeight: null.FloatFrom(0),
		Status:        model.TrialStatusInProgress,
		CreatedAt:     s.Clock(),
	}
	if err := s.PlyometricTrialStore.Create(ctx, trial); err != nil {
		return nil, err
	}
	return trial, nil
}

func (s *Trial) FinishPlyometric(ctx context.Context, trialID int, req *types.FinishPlyometricTrialRequest) (*model.PlyometricTrial, error) {
	trial, err := s.PlyometricTrialStore.GetByID(ctx, trialID)
	if err != nil {
		return nil, err
	}
	if trial.Status == model.TrialStatusCompleted {
		return nil, alreadyCompleted(trialID)
	}

	trial.LeftForce = null.FloatFrom(req.LeftForce)
	trial.RightForce = null.FloatFrom(req.RightForce)
	trial.Acceleration = null.FloatFrom(req.Acceleration)
	trial.Power = null.FloatFrom(req.Power)
	trial.JumpCount = null.IntFrom(req.JumpCount.ValueOrZero())
	trial.FatigueIndex = null.FloatFrom(req.FatigueIndex.ValueOrZero())
	trial.AverageHeight = null.FloatFrom(req.AverageHeight.ValueOrZero())

	if err := s.PlyometricTrialStore.Complete(ctx, trial); err != nil {
		return nil, err
	}

	s.published(ctx, model.TrialKindPlyometric, trial.TrialID, trial.AccountID, string(trial.Subtype), trial)
	return trial, nil
}

func (s *Trial) GetPlyometricByAccount(ctx context.Context, accountID int) ([]*model.PlyometricTrial, error) {
	if err := s.requireAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return s.PlyometricTrialStore.GetByAccount(ctx, accountID)
}

func (s *Trial) GetLatestPlyometric(ctx context.Context, accountID int) (*model.PlyometricTrial, error) {
	return s.PlyometricTrialStore.GetLatestCompletedByAccount(ctx, accountID)
}

func (s *Trial) DeletePlyometric(ctx context.Context, trialID int) error {
	return s.PlyometricTrialStore.Delete(ctx, trialID)
}
