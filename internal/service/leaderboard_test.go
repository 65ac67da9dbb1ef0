package service

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/trialstats/internal/model"
	"exusiai.dev/trialstats/internal/model/types"
	modelv1 "exusiai.dev/trialstats/internal/model/v1"
	"exusiai.dev/trialstats/internal/pkg/pgerr"
)

func accountIDs[T any](top []T, id func(T) int) []int {
	return lo.Map(top, func(v T, _ int) int { return id(v) })
}

func magnitudeAccount(s modelv1.MagnitudeStanding) int { return s.Player.AccountID }

func accuracyAccount(s modelv1.AccuracyStanding) int { return s.Player.AccountID }

func TestReachLeaderboardBreaksTiesOnPower(t *testing.T) {
	m := newMemStore()
	for id := 1; id <= 4; id++ {
		m.addPlayer(id, "", "")
	}
	at := testNow.Add(-time.Hour)
	m.addReach(1, 3.0, 3000, at) // A
	m.addReach(2, 3.0, 2900, at) // B
	m.addReach(3, 2.8, 3200, at) // C

	board, err := m.leaderboards().Reach(context.Background(), types.LeaderboardQuery{Period: "weekly"})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4}, accountIDs(board.Top, magnitudeAccount))
	assert.Equal(t, []int{1, 2, 3, 4}, lo.Map(board.Top, func(s modelv1.MagnitudeStanding, _ int) int { return s.Rank }))
	assert.Equal(t, 0, board.Top[3].Trials)
	assert.Equal(t, 0.0, board.Top[3].BestValue.Rounded())
}

func TestLeaderboardLimitNeverPads(t *testing.T) {
	m := newMemStore()
	for id := 1; id <= 8; id++ {
		m.addPlayer(id, "", "")
		m.addReach(id, float64(id), 0, testNow.Add(-time.Hour))
	}
	lb := m.leaderboards()
	ctx := context.Background()

	board, err := lb.Reach(ctx, types.LeaderboardQuery{})
	require.NoError(t, err)
	assert.Len(t, board.Top, 5)
	assert.Equal(t, 8, board.Top[0].Player.AccountID)

	board, err = lb.Reach(ctx, types.LeaderboardQuery{Limit: 20})
	require.NoError(t, err)
	assert.Len(t, board.Top, 8)
}

func TestAccuracyLeaderboardSkipsPlayersWithoutTrials(t *testing.T) {
	m := newMemStore()
	m.addPlayer(1, "", "")
	m.addPlayer(2, "", "")
	m.addPlayer(3, "", "")
	at := testNow.Add(-time.Hour)
	m.addAccuracy(1, model.AccuracySubtypeManual, 5, 5, at)
	m.addAccuracy(2, model.AccuracySubtypeManual, 9, 1, at)

	lb := m.leaderboards()
	board, err := lb.Accuracy(context.Background(), types.LeaderboardQuery{Period: "monthly"})
	require.NoError(t, err)

	assert.Equal(t, []int{2, 1}, accountIDs(board.Top, accuracyAccount))
	assert.Equal(t, "90.00", board.Top[0].Accuracy.String())
	assert.Len(t, board.Top[0].Subtypes, 3)

	_, err = lb.AccuracyStanding(context.Background(), 3, types.LeaderboardQuery{Period: "monthly"})
	assert.True(t, errors.Is(err, pgerr.ErrNotFound))
}

func TestStandingMatchesLeaderboardPosition(t *testing.T) {
	m := newMemStore()
	for id := 1; id <= 6; id++ {
		m.addPlayer(id, "", "")
		m.addPlyometric(id, model.PlyometricSubtypeBoxJump, float64(id*10), float64(id*10), 0, testNow.Add(-time.Hour))
	}
	lb := m.leaderboards()
	ctx := context.Background()
	q := types.LeaderboardQuery{Limit: 100}

	board, err := lb.Plyometric(ctx, q)
	require.NoError(t, err)

	for _, entry := range board.Top {
		standing, err := lb.PlyometricStanding(ctx, entry.Player.AccountID, q)
		require.NoError(t, err)
		assert.Equal(t, entry.Rank, standing.Rank)
		assert.Equal(t, entry.Rank, standing.Entry.Rank)
		assert.Equal(t, 6, standing.TotalCandidates)
	}
}

func TestPlyometricLeaderboardSubtypeFilter(t *testing.T) {
	m := newMemStore()
	m.addPlayer(1, "", "")
	m.addPlayer(2, "", "")
	at := testNow.Add(-time.Hour)
	m.addPlyometric(1, model.PlyometricSubtypeBoxJump, 500, 500, 0, at)
	m.addPlyometric(2, model.PlyometricSubtypeSimpleJump, 200, 200, 0, at)

	board, err := m.leaderboards().Plyometric(context.Background(), types.LeaderboardQuery{Subtype: "simple_jump"})
	require.NoError(t, err)

	assert.Equal(t, "simple_jump", board.Filters.Subtype)
	assert.Equal(t, []int{2, 1}, accountIDs(board.Top, magnitudeAccount))
	assert.Equal(t, 0, board.Top[1].Trials)
}

func TestProfileFiltersOnlyApplyToGeneralPeriod(t *testing.T) {
	m := newMemStore()
	m.addPlayer(1, "engineering", "setter")
	m.addPlayer(2, "medicine", "libero")
	at := testNow.Add(-time.Hour)
	m.addReach(1, 2.0, 0, at)
	m.addReach(2, 3.0, 0, at)
	lb := m.leaderboards()
	ctx := context.Background()

	board, err := lb.Reach(ctx, types.LeaderboardQuery{Period: "general", Career: "engineering"})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, accountIDs(board.Top, magnitudeAccount))
	assert.Equal(t, "engineering", board.Filters.Career)
	assert.Equal(t, modelv1.FilterAll, board.Filters.Position)

	board, err = lb.Reach(ctx, types.LeaderboardQuery{Period: "weekly", Career: "engineering", Position: "setter"})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, accountIDs(board.Top, magnitudeAccount))
	assert.Equal(t, modelv1.FilterAll, board.Filters.Career)
	assert.Equal(t, modelv1.FilterAll, board.Filters.Position)
}

func TestStandingExcludedByPositionFilter(t *testing.T) {
	m := newMemStore()
	m.addPlayer(1, "engineering", "setter")
	m.addPlayer(2, "medicine", "libero")
	at := testNow.Add(-time.Hour)
	m.addReach(1, 2.0, 0, at)
	m.addReach(2, 3.0, 0, at)
	lb := m.leaderboards()
	ctx := context.Background()

	_, err := lb.ReachStanding(ctx, 2, types.LeaderboardQuery{Period: "general", Position: "setter"})
	assert.True(t, errors.Is(err, pgerr.ErrNotFound))

	standing, err := lb.ReachStanding(ctx, 2, types.LeaderboardQuery{Period: "weekly", Position: "setter"})
	require.NoError(t, err)
	assert.Equal(t, 1, standing.Rank)
	assert.Equal(t, 2, standing.TotalCandidates)
	assert.Equal(t, modelv1.FilterAll, standing.Filters.Position)
}

func TestAccuracyTrialsLeaderboard(t *testing.T) {
	m := newMemStore()
	m.addPlayer(1, "", "")
	m.addPlayer(2, "", "")
	at := testNow.Add(-time.Hour)
	low := m.addAccuracy(1, model.AccuracySubtypeRandom, 5, 5, at)
	tied := m.addAccuracy(1, model.AccuracySubtypeRandom, 4, 1, at)
	more := m.addAccuracy(2, model.AccuracySubtypeRandom, 8, 2, at)
	m.addAccuracy(2, model.AccuracySubtypeManual, 10, 0, at)
	// older than a month
	m.addAccuracy(2, model.AccuracySubtypeRandom, 10, 0, testNow.AddDate(0, -2, 0))

	board, err := m.leaderboards().AccuracyTrials(context.Background(), types.TrialLeaderboardRequest{Subtype: "random"})
	require.NoError(t, err)

	assert.Equal(t, "monthly", board.Period)
	assert.Equal(t, "random", board.Subtype)
	ids := lo.Map(board.Top, func(s modelv1.TrialStanding, _ int) int { return s.TrialID })
	assert.Equal(t, []int{more.TrialID, tied.TrialID, low.TrialID}, ids)
	assert.Equal(t, 1, board.Top[0].Rank)
	assert.Equal(t, 2, board.Top[0].Player.AccountID)

	board, err = m.leaderboards().AccuracyTrials(context.Background(), types.TrialLeaderboardRequest{From: "2024-01-01", Top: 1})
	require.NoError(t, err)
	assert.Equal(t, "custom", board.Period)
	assert.Len(t, board.Top, 1)
	assert.Equal(t, "100.00", board.Top[0].Accuracy.String())
}
