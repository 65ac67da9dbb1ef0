package service

import (
	"context"
	"time"

	"github.com/ahmetb/go-linq/v3"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"exusiai.dev/trialstats/internal/constant"
	"exusiai.dev/trialstats/internal/model"
	"exusiai.dev/trialstats/internal/model/types"
	modelv1 "exusiai.dev/trialstats/internal/model/v1"
	"exusiai.dev/trialstats/internal/pkg/observability"
	"exusiai.dev/trialstats/internal/pkg/pgerr"
	"exusiai.dev/trialstats/internal/pkg/ranking"
	"exusiai.dev/trialstats/internal/repo"
	"exusiai.dev/trialstats/internal/util/period"
	"exusiai.dev/trialstats/internal/util/trialstats"
)

type Leaderboard struct {
	AccountStore       AccountStore
	AccuracyTrialStore AccuracyTrialStore
	Clock              Clock
}

func NewLeaderboard(accountStore AccountStore, accuracyTrialStore AccuracyTrialStore, clock Clock) *Leaderboard {
	return &Leaderboard{
		AccountStore:       accountStore,
		AccuracyTrialStore: accuracyTrialStore,
		Clock:              clock,
	}
}

// leaderboardScope is a LeaderboardQuery resolved against the clock.
type leaderboardScope struct {
	window     modelv1.Window
	filters    modelv1.LeaderboardFilters
	candidates repo.CandidateQuery
	limit      int
}

// scope resolves q. Career and position filters only take effect for the
// general period; they are reported as "all" otherwise.
func (s *Leaderboard) scope(q types.LeaderboardQuery, defaultLimit int) (leaderboardScope, error) {
	pq := period.Query{Period: q.Period}
	rng, window, err := resolveWindow(pq, s.Clock())
	if err != nil {
		return leaderboardScope{}, err
	}

	sc := leaderboardScope{
		window:     window,
		filters:    modelv1.LeaderboardFilters{Career: modelv1.FilterAll, Position: modelv1.FilterAll},
		candidates: repo.CandidateQuery{Range: rng, Subtype: q.Subtype},
		limit:      q.Limit,
	}
	if sc.limit <= 0 {
		sc.limit = defaultLimit
	}
	if q.Subtype != "" {
		sc.filters.Subtype = q.Subtype
	}
	if pq.Normalized() == period.General {
		if q.Career != "" {
			sc.candidates.Career = q.Career
			sc.filters.Career = q.Career
		}
		if q.Position != "" {
			sc.candidates.Position = q.Position
			sc.filters.Position = q.Position
		}
	}
	return sc, nil
}

func top[V any](b *ranking.Board[int, V], sc leaderboardScope, place func(V, int) V) *modelv1.Leaderboard[V] {
	return &modelv1.Leaderboard[V]{
		Window:  sc.window,
		Filters: sc.filters,
		Top: lo.Map(b.TopN(sc.limit), func(st ranking.Standing[int, V], _ int) V {
			return place(st.Value, st.Position)
		}),
	}
}

func standingOf[V any](b *ranking.Board[int, V], sc leaderboardScope, accountID int, place func(V, int) V) (*modelv1.Standing[V], error) {
	st, err := b.RankOf(accountID)
	if errors.Is(err, ranking.ErrNotFound) {
		return nil, pgerr.ErrNotFound.Msg("account %d is not ranked on this leaderboard", accountID)
	} else if err != nil {
		return nil, err
	}

	return &modelv1.Standing[V]{
		Window:          sc.window,
		Filters:         sc.filters,
		Rank:            st.Position,
		TotalCandidates: b.Len(),
		Entry:           place(st.Value, st.Position),
	}, nil
}

func placeAccuracy(v modelv1.AccuracyStanding, rank int) modelv1.AccuracyStanding {
	v.Rank = rank
	return v
}

func placeMagnitude(v modelv1.MagnitudeStanding, rank int) modelv1.MagnitudeStanding {
	v.Rank = rank
	return v
}

// accuracyBoard ranks every candidate with at least one completed trial in the
// window by pooled accuracy.
func (s *Leaderboard) accuracyBoard(ctx context.Context, sc leaderboardScope) (*ranking.Board[int, modelv1.AccuracyStanding], error) {
	defer observability.ObserveSince(observability.LeaderboardBuildDuration.WithLabelValues(string(model.TrialKindAccuracy)), time.Now())

	accounts, err := s.AccountStore.GetPlayersWithAccuracyTrials(ctx, sc.candidates)
	if err != nil {
		return nil, err
	}

	entries := make([]ranking.Entry[int, modelv1.AccuracyStanding], 0, len(accounts))
	for _, account := range accounts {
		if len(account.AccuracyTrials) == 0 {
			continue
		}
		agg := trialstats.AggregateAccuracy(trialstats.AccuracySamples(account.AccuracyTrials), model.AccuracySubtypes, trialstats.BySubtype)
		entries = append(entries, ranking.Entry[int, modelv1.AccuracyStanding]{
			Key:    account.AccountID,
			Metric: agg.Accuracy(),
			Value: modelv1.AccuracyStanding{
				Player:          modelv1.NewPlayerBrief(account),
				AccuracySummary: accuracySummary(agg.AccuracyTotals),
				Subtypes:        accuracySubtypeSummaries(agg.Buckets),
			},
		})
	}
	observability.LeaderboardCandidates.WithLabelValues(string(model.TrialKindAccuracy)).Observe(float64(len(entries)))

	return ranking.New(entries), nil
}

// magnitudeBoard ranks every candidate by best value, breaking ties on best
// power. Candidates without trials in the window rank with zeroes.
func magnitudeBoard(kind model.TrialKind, accounts []*model.Account, samples func(*model.Account) []trialstats.MagnitudeSample) *ranking.Board[int, modelv1.MagnitudeStanding] {
	entries := lo.Map(accounts, func(account *model.Account, _ int) ranking.Entry[int, modelv1.MagnitudeStanding] {
		stats := trialstats.SummarizeMagnitudes(samples(account))
		return ranking.Entry[int, modelv1.MagnitudeStanding]{
			Key:      account.AccountID,
			Metric:   stats.BestValue,
			Tiebreak: null.FloatFrom(stats.BestPower),
			Value: modelv1.MagnitudeStanding{
				Player:       modelv1.NewPlayerBrief(account),
				Trials:       stats.Trials,
				BestValue:    types.Magnitude(stats.BestValue),
				BestPower:    types.Magnitude(stats.BestPower),
				AverageValue: types.Magnitude(stats.AverageValue),
				AveragePower: types.Magnitude(stats.AveragePower),
			},
		}
	})
	observability.LeaderboardCandidates.WithLabelValues(string(kind)).Observe(float64(len(entries)))

	return ranking.New(entries)
}

func (s *Leaderboard) reachBoard(ctx context.Context, sc leaderboardScope) (*ranking.Board[int, modelv1.MagnitudeStanding], error) {
	defer observability.ObserveSince(observability.LeaderboardBuildDuration.WithLabelValues(string(model.TrialKindReach)), time.Now())

	accounts, err := s.AccountStore.GetPlayersWithReachTrials(ctx, sc.candidates)
	if err != nil {
		return nil, err
	}
	return magnitudeBoard(model.TrialKindReach, accounts, func(a *model.Account) []trialstats.MagnitudeSample {
		return trialstats.ReachSamples(a.ReachTrials)
	}), nil
}

func (s *Leaderboard) plyometricBoard(ctx context.Context, sc leaderboardScope) (*ranking.Board[int, modelv1.MagnitudeStanding], error) {
	defer observability.ObserveSince(observability.LeaderboardBuildDuration.WithLabelValues(string(model.TrialKindPlyometric)), time.Now())

	accounts, err := s.AccountStore.GetPlayersWithPlyometricTrials(ctx, sc.candidates)
	if err != nil {
		return nil, err
	}
	return magnitudeBoard(model.TrialKindPlyometric, accounts, func(a *model.Account) []trialstats.MagnitudeSample {
		return trialstats.PlyometricSamples(a.PlyometricTrials)
	}), nil
}

func (s *Leaderboard) Accuracy(ctx context.Context, q types.LeaderboardQuery) (*modelv1.Leaderboard[modelv1.AccuracyStanding], error) {
	q.Subtype = ""
	sc, err := s.scope(q, constant.DefaultAccuracyLeaderboardLimit)
	if err != nil {
		return nil, err
	}
	board, err := s.accuracyBoard(ctx, sc)
	if err != nil {
		return nil, err
	}
	return top(board, sc, placeAccuracy), nil
}

func (s *Leaderboard) AccuracyStanding(ctx context.Context, accountID int, q types.LeaderboardQuery) (*modelv1.Standing[modelv1.AccuracyStanding], error) {
	q.Subtype = ""
	sc, err := s.scope(q, constant.DefaultAccuracyLeaderboardLimit)
	if err != nil {
		return nil, err
	}
	board, err := s.accuracyBoard(ctx, sc)
	if err != nil {
		return nil, err
	}
	return standingOf(board, sc, accountID, placeAccuracy)
}

func (s *Leaderboard) Reach(ctx context.Context, q types.LeaderboardQuery) (*modelv1.Leaderboard[modelv1.MagnitudeStanding], error) {
	q.Subtype = ""
	sc, err := s.scope(q, constant.DefaultMagnitudeLeaderboardLimit)
	if err != nil {
		return nil, err
	}
	board, err := s.reachBoard(ctx, sc)
	if err != nil {
		return nil, err
	}
	return top(board, sc, placeMagnitude), nil
}

func (s *Leaderboard) ReachStanding(ctx context.Context, accountID int, q types.LeaderboardQuery) (*modelv1.Standing[modelv1.MagnitudeStanding], error) {
	q.Subtype = ""
	sc, err := s.scope(q, constant.DefaultMagnitudeLeaderboardLimit)
	if err != nil {
		return nil, err
	}
	board, err := s.reachBoard(ctx, sc)
	if err != nil {
		return nil, err
	}
	return standingOf(board, sc, accountID, placeMagnitude)
}

func (s *Leaderboard) Plyometric(ctx context.Context, q types.LeaderboardQuery) (*modelv1.Leaderboard[modelv1.MagnitudeStanding], error) {
	sc, err := s.scope(q, constant.DefaultMagnitudeLeaderboardLimit)
	if err != nil {
		return nil, err
	}
	board, err := s.plyometricBoard(ctx, sc)
	if err != nil {
		return nil, err
	}
	return top(board, sc, placeMagnitude), nil
}

func (s *Leaderboard) PlyometricStanding(ctx context.Context, accountID int, q types.LeaderboardQuery) (*modelv1.Standing[modelv1.MagnitudeStanding], error) {
	sc, err := s.scope(q, constant.DefaultMagnitudeLeaderboardLimit)
	if err != nil {
		return nil, err
	}
	board, err := s.plyometricBoard(ctx, sc)
	if err != nil {
		return nil, err
	}
	return standingOf(board, sc, accountID, placeMagnitude)
}

// AccuracyTrials ranks individual completed accuracy trials by their own
// accuracy, breaking ties on hits. Without explicit dates the window is the
// monthly period.
func (s *Leaderboard) AccuracyTrials(ctx context.Context, req types.TrialLeaderboardRequest) (*modelv1.TrialLeaderboard, error) {
	defer observability.ObserveSince(observability.LeaderboardBuildDuration.WithLabelValues("accuracy_trial"), time.Now())

	pq := period.Query{Period: string(period.Monthly), From: req.From, To: req.To}
	rng, window, err := resolveWindow(pq, s.Clock())
	if err != nil {
		return nil, err
	}

	tq := repo.TrialQuery{Range: rng}
	subtype := modelv1.FilterAll
	if req.Subtype != "" {
		tq.Subtypes = []string{req.Subtype}
		subtype = req.Subtype
	}

	trials, err := s.AccuracyTrialStore.GetCompletedWithAccounts(ctx, tq)
	if err != nil {
		return nil, err
	}

	var entries []ranking.Entry[int, modelv1.TrialStanding]
	linq.From(trials).
		WhereT(func(t *model.AccuracyTrial) bool { return t.Account != nil }).
		SelectT(func(t *model.AccuracyTrial) ranking.Entry[int, modelv1.TrialStanding] {
			sample := trialstats.NewAccuracySample(t)
			return ranking.Entry[int, modelv1.TrialStanding]{
				Key:      sample.ID,
				Metric:   sample.Accuracy(),
				Tiebreak: null.FloatFrom(float64(sample.Hits)),
				Value: modelv1.TrialStanding{
					Player:            modelv1.NewPlayerBrief(t.Account),
					AccuracyTrialView: *accuracyTrialView(&sample),
				},
			}
		}).
		ToSlice(&entries)
	observability.LeaderboardCandidates.WithLabelValues("accuracy_trial").Observe(float64(len(entries)))

	limit := req.Top
	if limit <= 0 {
		limit = constant.DefaultTrialLeaderboardLimit
	}

	return &modelv1.TrialLeaderboard{
		Window:  window,
		Subtype: subtype,
		Top: lo.Map(ranking.New(entries).TopN(limit), func(st ranking.Standing[int, modelv1.TrialStanding], _ int) modelv1.TrialStanding {
			v := st.Value
			v.Rank = st.Position
			return v
		}),
	}, nil
}
