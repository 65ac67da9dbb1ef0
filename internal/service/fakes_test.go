package service

import (
	"context"
	"sort"
	"time"

	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"exusiai.dev/trialstats/internal/model"
	"exusiai.dev/trialstats/internal/pkg/pgerr"
	"exusiai.dev/trialstats/internal/repo"
	"exusiai.dev/trialstats/internal/util/period"
)

var testNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func inRange(rng period.Range, t time.Time) bool {
	if rng.From.IsZero() && rng.To.IsZero() {
		return true
	}
	return rng.Includes(t)
}

type memStore struct {
	accounts   map[int]*model.Account
	accuracy   []*model.AccuracyTrial
	reach      []*model.ReachTrial
	plyometric []*model.PlyometricTrial
	nextID     int
}

func newMemStore() *memStore {
	return &memStore{accounts: map[int]*model.Account{}, nextID: 1000}
}

func (m *memStore) addPlayer(id int, career, position string) *model.Account {
	a := &model.Account{
		AccountID: id,
		Username:  "player" + string(rune('a'+id%26)),
		Role:      model.RolePlayer,
		Active:    true,
		Player: &model.Player{
			PlayerID:   id,
			AccountID:  id,
			FirstNames: "First",
			LastNames:  "Last",
		},
	}
	if career != "" {
		a.Player.Career.SetValid(career)
	}
	if position != "" {
		a.Player.PrimaryPosition.SetValid(position)
	}
	m.accounts[id] = a
	return a
}

func (m *memStore) ids() []int {
	ids := lo.Keys(m.accounts)
	sort.Ints(ids)
	return ids
}

func (m *memStore) candidates(q repo.CandidateQuery) []*model.Account {
	var out []*model.Account
	for _, id := range m.ids() {
		a := m.accounts[id]
		if a.Role != model.RolePlayer || !a.Active || a.Player == nil {
			continue
		}
		if q.Career != "" && a.Player.Career.ValueOrZero() != q.Career {
			continue
		}
		if q.Position != "" && a.Player.PrimaryPosition.ValueOrZero() != q.Position {
			continue
		}
		c := *a
		out = append(out, &c)
	}
	return out
}

func (m *memStore) GetAccountByID(_ context.Context, accountID int) (*model.Account, error) {
	a, ok := m.accounts[accountID]
	if !ok {
		return nil, pgerr.ErrNotFound
	}
	return a, nil
}

func (m *memStore) GetPlayersWithAccuracyTrials(ctx context.Context, q repo.CandidateQuery) ([]*model.Account, error) {
	out := m.candidates(q)
	for _, a := range out {
		a.AccuracyTrials, _ = m.accuracyStore().GetCompleted(ctx, repo.TrialQuery{AccountID: a.AccountID, Range: q.Range})
	}
	return out, nil
}

func (m *memStore) GetPlayersWithReachTrials(ctx context.Context, q repo.CandidateQuery) ([]*model.Account, error) {
	out := m.candidates(q)
	for _, a := range out {
		a.ReachTrials, _ = m.reachStore().GetCompleted(ctx, repo.TrialQuery{AccountID: a.AccountID, Range: q.Range})
	}
	return out, nil
}

func (m *memStore) GetPlayersWithPlyometricTrials(ctx context.Context, q repo.CandidateQuery) ([]*model.Account, error) {
	out := m.candidates(q)
	tq := repo.TrialQuery{Range: q.Range}
	if q.Subtype != "" {
		tq.Subtypes = []string{q.Subtype}
	}
	for _, a := range out {
		tq.AccountID = a.AccountID
		a.PlyometricTrials, _ = m.plyometricStore().GetCompleted(ctx, tq)
	}
	return out, nil
}

func (m *memStore) id() int {
	m.nextID++
	return m.nextID
}

func (m *memStore) accuracyStore() *memAccuracy     { return &memAccuracy{m} }
func (m *memStore) reachStore() *memReach           { return &memReach{m} }
func (m *memStore) plyometricStore() *memPlyometric { return &memPlyometric{m} }

func matches(q repo.TrialQuery, accountID int, status model.TrialStatus, subtype string, at time.Time) bool {
	if status != model.TrialStatusCompleted || !inRange(q.Range, at) {
		return false
	}
	if q.AccountID != 0 && q.AccountID != accountID {
		return false
	}
	return len(q.Subtypes) == 0 || lo.Contains(q.Subtypes, subtype)
}

type memAccuracy struct{ *memStore }

func (m *memAccuracy) GetCompleted(_ context.Context, q repo.TrialQuery) ([]*model.AccuracyTrial, error) {
	return lo.Filter(m.accuracy, func(t *model.AccuracyTrial, _ int) bool {
		return matches(q, t.AccountID, t.Status, string(t.Subtype), t.CreatedAt)
	}), nil
}

func (m *memAccuracy) GetCompletedWithAccounts(ctx context.Context, q repo.TrialQuery) ([]*model.AccuracyTrial, error) {
	trials, _ := m.GetCompleted(ctx, q)
	for _, t := range trials {
		t.Account = m.accounts[t.AccountID]
	}
	return trials, nil
}

func (m *memAccuracy) GetByID(_ context.Context, trialID int) (*model.AccuracyTrial, error) {
	t, ok := lo.Find(m.accuracy, func(t *model.AccuracyTrial) bool { return t.TrialID == trialID })
	if !ok {
		return nil, pgerr.ErrNotFound
	}
	return t, nil
}

func (m *memAccuracy) GetByAccount(_ context.Context, accountID int) ([]*model.AccuracyTrial, error) {
	return lo.Filter(m.accuracy, func(t *model.AccuracyTrial, _ int) bool { return t.AccountID == accountID }), nil
}

func (m *memAccuracy) GetLatestCompletedByAccount(ctx context.Context, accountID int) (*model.AccuracyTrial, error) {
	trials, _ := m.GetCompleted(ctx, repo.TrialQuery{AccountID: accountID})
	if len(trials) == 0 {
		return nil, pgerr.ErrNotFound
	}
	return trials[len(trials)-1], nil
}

func (m *memAccuracy) Create(_ context.Context, trial *model.AccuracyTrial) error {
	trial.TrialID = m.id()
	m.accuracy = append(m.accuracy, trial)
	return nil
}

func (m *memAccuracy) Complete(_ context.Context, trial *model.AccuracyTrial) error {
	trial.Status = model.TrialStatusCompleted
	return nil
}

func (m *memAccuracy) Delete(_ context.Context, trialID int) error {
	n := len(m.accuracy)
	m.accuracy = lo.Reject(m.accuracy, func(t *model.AccuracyTrial, _ int) bool { return t.TrialID == trialID })
	if len(m.accuracy) == n {
		return pgerr.ErrNotFound
	}
	return nil
}

type memReach struct{ *memStore }

func (m *memReach) GetCompleted(_ context.Context, q repo.TrialQuery) ([]*model.ReachTrial, error) {
	q.Subtypes = nil
	return lo.Filter(m.reach, func(t *model.ReachTrial, _ int) bool {
		return matches(q, t.AccountID, t.Status, "", t.CreatedAt)
	}), nil
}

func (m *memReach) GetByID(_ context.Context, trialID int) (*model.ReachTrial, error) {
	t, ok := lo.Find(m.reach, func(t *model.ReachTrial) bool { return t.TrialID == trialID })
	if !ok {
		return nil, pgerr.ErrNotFound
	}
	return t, nil
}

func (m *memReach) GetByAccount(_ context.Context, accountID int) ([]*model.ReachTrial, error) {
	return lo.Filter(m.reach, func(t *model.ReachTrial, _ int) bool { return t.AccountID == accountID }), nil
}

func (m *memReach) GetLatestCompletedByAccount(ctx context.Context, accountID int) (*model.ReachTrial, error) {
	trials, _ := m.GetCompleted(ctx, repo.TrialQuery{AccountID: accountID})
	if len(trials) == 0 {
		return nil, pgerr.ErrNotFound
	}
	return trials[len(trials)-1], nil
}

func (m *memReach) Create(_ context.Context, trial *model.ReachTrial) error {
	trial.TrialID = m.id()
	m.reach = append(m.reach, trial)
	return nil
}

func (m *memReach) Complete(_ context.Context, trial *model.ReachTrial) error {
	trial.Status = model.TrialStatusCompleted
	return nil
}

func (m *memReach) Delete(_ context.Context, trialID int) error {
	n := len(m.reach)
	m.reach = lo.Reject(m.reach, func(t *model.ReachTrial, _ int) bool { return t.TrialID == trialID })
	if len(m.reach) == n {
		return pgerr.ErrNotFound
	}
	return nil
}

type memPlyometric struct{ *memStore }

func (m *memPlyometric) GetCompleted(_ context.Context, q repo.TrialQuery) ([]*model.PlyometricTrial, error) {
	return lo.Filter(m.plyometric, func(t *model.PlyometricTrial, _ int) bool {
		return matches(q, t.AccountID, t.Status, string(t.Subtype), t.CreatedAt)
	}), nil
}

func (m *memPlyometric) GetByID(_ context.Context, trialID int) (*model.PlyometricTrial, error) {
	t, ok := lo.Find(m.plyometric, func(t *model.PlyometricTrial) bool { return t.TrialID == trialID })
	if !ok {
		return nil, pgerr.ErrNotFound
	}
	return t, nil
}

func (m *memPlyometric) GetByAccount(_ context.Context, accountID int) ([]*model.PlyometricTrial, error) {
	return lo.Filter(m.plyometric, func(t *model.PlyometricTrial, _ int) bool { return t.AccountID == accountID }), nil
}

func (m *memPlyometric) GetLatestCompletedByAccount(ctx context.Context, accountID int) (*model.PlyometricTrial, error) {
	trials, _ := m.GetCompleted(ctx, repo.TrialQuery{AccountID: accountID})
	if len(trials) == 0 {
		return nil, pgerr.ErrNotFound
	}
	return trials[len(trials)-1], nil
}

func (m *memPlyometric) Create(_ context.Context, trial *model.PlyometricTrial) error {
	trial.TrialID = m.id()
	m.plyometric = append(m.plyometric, trial)
	return nil
}

func (m *memPlyometric) Complete(_ context.Context, trial *model.PlyometricTrial) error {
	trial.Status = model.TrialStatusCompleted
	return nil
}

func (m *memPlyometric) Delete(_ context.Context, trialID int) error {
	n := len(m.plyometric)
	m.plyometric = lo.Reject(m.plyometric, func(t *model.PlyometricTrial, _ int) bool { return t.TrialID == trialID })
	if len(m.plyometric) == n {
		return pgerr.ErrNotFound
	}
	return nil
}

func (m *memStore) reports() *PersonalReport {
	return NewPersonalReport(m, m.accuracyStore(), m.reachStore(), m.plyometricStore(), fixedClock)
}

func (m *memStore) leaderboards() *Leaderboard {
	return NewLeaderboard(m, m.accuracyStore(), fixedClock)
}

func (m *memStore) trials() *Trial {
	return NewTrial(m, m.accuracyStore(), m.reachStore(), m.plyometricStore(), NewTrialEvents(nil), fixedClock)
}

func (m *memStore) addAccuracy(accountID int, subtype model.AccuracySubtype, hits, misses int, at time.Time) *model.AccuracyTrial {
	t := &model.AccuracyTrial{
		TrialID:   m.id(),
		AccountID: accountID,
		Subtype:   subtype,
		Hits:      null.IntFrom(int64(hits)),
		Misses:    null.IntFrom(int64(misses)),
		Status:    model.TrialStatusCompleted,
		CreatedAt: at,
	}
	m.accuracy = append(m.accuracy, t)
	return t
}

func (m *memStore) addReach(accountID int, reach, power float64, at time.Time) *model.ReachTrial {
	t := &model.ReachTrial{
		TrialID:   m.id(),
		AccountID: accountID,
		Reach:     null.FloatFrom(reach),
		Power:     null.FloatFrom(power),
		Status:    model.TrialStatusCompleted,
		CreatedAt: at,
	}
	m.reach = append(m.reach, t)
	return t
}

func (m *memStore) addPlyometric(accountID int, subtype model.PlyometricSubtype, left, right, power float64, at time.Time) *model.PlyometricTrial {
	t := &model.PlyometricTrial{
		TrialID:    m.id(),
		AccountID:  accountID,
		Subtype:    subtype,
		LeftForce:  null.FloatFrom(left),
		RightForce: null.FloatFrom(right),
		Power:      null.FloatFrom(power),
		Status:     model.TrialStatusCompleted,
		CreatedAt:  at,
	}
	m.plyometric = append(m.plyometric, t)
	return t
}
