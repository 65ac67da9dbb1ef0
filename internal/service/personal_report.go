package service

import (
	"context"
	"time"

	"github.com/samber/lo"

	"exusiai.dev/trialstats/internal/model"
	modelv1 "exusiai.dev/trialstats/internal/model/v1"
	"exusiai.dev/trialstats/internal/pkg/observability"
	"exusiai.dev/trialstats/internal/repo"
	"exusiai.dev/trialstats/internal/util/period"
	"exusiai.dev/trialstats/internal/util/trialstats"
)

type PersonalReport struct {
	AccountStore         AccountStore
	AccuracyTrialStore   AccuracyTrialStore
	ReachTrialStore      ReachTrialStore
	PlyometricTrialStore PlyometricTrialStore
	Clock                Clock
}

func NewPersonalReport(
	accountStore AccountStore,
	accuracyTrialStore AccuracyTrialStore,
	reachTrialStore ReachTrialStore,
	plyometricTrialStore PlyometricTrialStore,
	clock Clock,
) *PersonalReport {
	return &PersonalReport{
		AccountStore:         accountStore,
		AccuracyTrialStore:   accuracyTrialStore,
		ReachTrialStore:      reachTrialStore,
		PlyometricTrialStore: plyometricTrialStore,
		Clock:                clock,
	}
}

// Accuracy builds the accuracy report of an account. A non-empty subtypes list
// narrows both the trials considered and the per-subtype breakdown.
func (s *PersonalReport) Accuracy(ctx context.Context, accountID int, q period.Query, subtypes []string) (*modelv1.AccuracyReport, error) {
	defer observability.ObserveSince(observability.ReportBuildDuration.WithLabelValues(string(model.TrialKindAccuracy)), time.Now())

	rng, window, err := resolveWindow(q, s.Clock())
	if err != nil {
		return nil, err
	}

	account, err := s.AccountStore.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	subtypes = lo.Uniq(subtypes)
	trials, err := s.AccuracyTrialStore.GetCompleted(ctx, repo.TrialQuery{
		AccountID: accountID,
		Range:     rng,
		Subtypes:  subtypes,
	})
	if err != nil {
		return nil, err
	}

	keys := model.AccuracySubtypes
	if len(subtypes) > 0 {
		keys = subtypes
	}
	agg := trialstats.AggregateAccuracy(trialstats.AccuracySamples(trials), keys, trialstats.BySubtype)

	return &modelv1.AccuracyReport{
		Window:   window,
		Player:   modelv1.NewPlayerBrief(account),
		Summary:  accuracySummary(agg.AccuracyTotals),
		Subtypes: accuracySubtypeSummaries(agg.Buckets),
		Best:     accuracyTrialView(agg.Best),
		Worst:    accuracyTrialView(agg.Worst),
		Latest:   accuracyTrialView(agg.Latest),
	}, nil
}

func (s *PersonalReport) Reach(ctx context.Context, accountID int, q period.Query) (*modelv1.ReachReport, error) {
	defer observability.ObserveSince(observability.ReportBuildDuration.WithLabelValues(string(model.TrialKindReach)), time.Now())

	rng, window, err := resolveWindow(q, s.Clock())
	if err != nil {
		return nil, err
	}

	account, err := s.AccountStore.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	trials, err := s.ReachTrialStore.GetCompleted(ctx, repo.TrialQuery{
		AccountID: accountID,
		Range:     rng,
	})
	if err != nil {
		return nil, err
	}

	return &modelv1.ReachReport{
		Window:  window,
		Player:  modelv1.NewPlayerBrief(account),
		Summary: magnitudeSummary(trialstats.SummarizeMagnitudes(trialstats.ReachSamples(trials))),
	}, nil
}

// Plyometric builds the plyometric report of an account, optionally restricted
// to a single jump subtype.
func (s *PersonalReport) Plyometric(ctx context.Context, accountID int, q period.Query, subtype string) (*modelv1.PlyometricReport, error) {
	defer observability.ObserveSince(observability.ReportBuildDuration.WithLabelValues(string(model.TrialKindPlyometric)), time.Now())

	rng, window, err := resolveWindow(q, s.Clock())
	if err != nil {
		return nil, err
	}

	account, err := s.AccountStore.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	tq := repo.TrialQuery{AccountID: accountID, Range: rng}
	keys := model.PlyometricSubtypes
	label := modelv1.FilterAll
	if subtype != "" {
		tq.Subtypes = []string{subtype}
		keys = tq.Subtypes
		label = subtype
	}

	trials, err := s.PlyometricTrialStore.GetCompleted(ctx, tq)
	if err != nil {
		return nil, err
	}

	agg := trialstats.AggregateMagnitudes(trialstats.PlyometricSamples(trials), keys, trialstats.ByMagnitudeSubtype)

	return &modelv1.PlyometricReport{
		Window:  window,
		Player:  modelv1.NewPlayerBrief(account),
		Subtype: label,
		Summary: magnitudeSummary(agg.MagnitudeStats),
		Subtypes: lo.Map(agg.Buckets, func(b *trialstats.MagnitudeBucket, _ int) modelv1.PlyometricSubtypeSummary {
			return modelv1.PlyometricSubtypeSummary{
				Subtype:          b.Key,
				MagnitudeSummary: magnitudeSummary(b.MagnitudeStats),
			}
		}),
	}, nil
}
