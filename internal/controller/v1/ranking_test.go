package v1

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/trialstats/internal/model"
	"exusiai.dev/trialstats/internal/pkg/pgerr"
	"exusiai.dev/trialstats/internal/repo"
	"exusiai.dev/trialstats/internal/server/httpserver"
	"exusiai.dev/trialstats/internal/server/svr"
	"exusiai.dev/trialstats/internal/service"
)

type stubAccounts struct{}

func (stubAccounts) GetAccountByID(_ context.Context, accountID int) (*model.Account, error) {
	if accountID != 1 {
		return nil, pgerr.ErrNotFound
	}
	return &model.Account{AccountID: 1, Username: "ana", Role: model.RolePlayer, Active: true}, nil
}

func (stubAccounts) GetPlayersWithAccuracyTrials(context.Context, repo.CandidateQuery) ([]*model.Account, error) {
	return nil, nil
}

func (stubAccounts) GetPlayersWithReachTrials(context.Context, repo.CandidateQuery) ([]*model.Account, error) {
	return []*model.Account{{AccountID: 1, Username: "ana"}}, nil
}

func (stubAccounts) GetPlayersWithPlyometricTrials(context.Context, repo.CandidateQuery) ([]*model.Account, error) {
	return nil, nil
}

type stubAccuracy struct{ service.AccuracyTrialStore }

func (stubAccuracy) GetCompleted(context.Context, repo.TrialQuery) ([]*model.AccuracyTrial, error) {
	return nil, nil
}

func newTestApp() *fiber.App {
	app := httpserver.New(fiber.Config{})
	v1, _ := svr.CreateEndpointGroups(app)

	clock := service.Clock(func() time.Time { return time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC) })
	RegisterRanking(v1, Ranking{
		PersonalReportService: service.NewPersonalReport(stubAccounts{}, stubAccuracy{}, nil, nil, clock),
		LeaderboardService:    service.NewLeaderboard(stubAccounts{}, stubAccuracy{}, clock),
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, target string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	return resp.StatusCode, body
}

func TestAccuracyReportEndpoint(t *testing.T) {
	app := newTestApp()

	status, body := do(t, app, fiber.MethodGet, "/api/v1/rankings/accuracy/personal/1?period=weekly")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "weekly", data["period"])
	summary, ok := data["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "0.00", summary["accuracy"])
	assert.Len(t, data["subtypes"], 3)
}

func TestRankingEndpointErrors(t *testing.T) {
	app := newTestApp()

	cases := []struct {
		name   string
		target string
		status int
		code   string
	}{
		{"non numeric account", "/api/v1/rankings/accuracy/personal/abc", fiber.StatusBadRequest, pgerr.CodeInvalidRequest},
		{"zero account", "/api/v1/rankings/accuracy/personal/0", fiber.StatusBadRequest, pgerr.CodeInvalidRequest},
		{"unknown account", "/api/v1/rankings/accuracy/personal/99", fiber.StatusNotFound, pgerr.CodeNotFound},
		{"malformed date", "/api/v1/rankings/accuracy/personal/1?from=yesterday", fiber.StatusBadRequest, pgerr.CodeInvalidDateFormat},
		{"inverted range", "/api/v1/rankings/accuracy/personal/1?from=2024-03-10&to=2024-03-01", fiber.StatusBadRequest, pgerr.CodeInvalidRequest},
		{"limit out of range", "/api/v1/rankings/reach?limit=500", fiber.StatusBadRequest, pgerr.CodeInvalidRequest},
		{"unranked account", "/api/v1/rankings/accuracy/standing/1", fiber.StatusNotFound, pgerr.CodeNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := do(t, app, fiber.MethodGet, tc.target)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.code, body["code"])
			assert.NotEmpty(t, body["message"])
			assert.NotContains(t, body, "error")
		})
	}
}

func TestReachLeaderboardEndpoint(t *testing.T) {
	app := newTestApp()

	status, body := do(t, app, fiber.MethodGet, "/api/v1/rankings/reach?period=monthly")
	assert.Equal(t, fiber.StatusOK, status)

	data := body["data"].(map[string]any)
	top := data["top"].([]any)
	require.Len(t, top, 1)
	entry := top[0].(map[string]any)
	assert.Equal(t, float64(1), entry["rank"])
	assert.Equal(t, float64(0), entry["trials"])
	assert.Equal(t, map[string]any{"career": "all", "position": "all"}, data["filters"])
}

func TestRankingResponsesAreNotCached(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/rankings/reach", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, "no-cache, no-store, must-revalidate", resp.Header.Get(fiber.HeaderCacheControl))
}
