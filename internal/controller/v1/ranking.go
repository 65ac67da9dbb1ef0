package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"exusiai.dev/trialstats/internal/model/types"
	modelv1 "exusiai.dev/trialstats/internal/model/v1"
	"exusiai.dev/trialstats/internal/pkg/cachectrl"
	"exusiai.dev/trialstats/internal/pkg/flog"
	"exusiai.dev/trialstats/internal/server/svr"
	"exusiai.dev/trialstats/internal/service"
	"exusiai.dev/trialstats/internal/util/period"
	"exusiai.dev/trialstats/internal/util/rekuest"
)

type Ranking struct {
	fx.In

	PersonalReportService *service.PersonalReport
	LeaderboardService    *service.Leaderboard
}

func RegisterRanking(v1 *svr.V1, c Ranking) {
	rankings := v1.Group("/rankings", func(ctx *fiber.Ctx) error {
		cachectrl.OptOut(ctx)
		return ctx.Next()
	})

	rankings.Get("/accuracy", c.AccuracyLeaderboard)
	rankings.Get("/reach", c.ReachLeaderboard)
	rankings.Get("/plyometrics", c.PlyometricLeaderboard)

	accuracy := rankings.Group("/accuracy")
	accuracy.Get("/personal/:accountId", c.AccuracyReport)
	accuracy.Post("/personal/filtered", c.FilteredAccuracyReport)
	accuracy.Get("/standing/:accountId", c.AccuracyStanding)
	accuracy.Post("/trials", c.AccuracyTrialLeaderboard)

	reach := rankings.Group("/reach")
	reach.Get("/personal/:accountId", c.ReachReport)
	reach.Get("/standing/:accountId", c.ReachStanding)

	plyometrics := rankings.Group("/plyometrics")
	plyometrics.Get("/personal/:accountId", c.PlyometricReport)
	plyometrics.Get("/standing/:accountId", c.PlyometricStanding)
}

func leaderboardQuery(ctx *fiber.Ctx) (types.LeaderboardQuery, error) {
	var q types.LeaderboardQuery
	if err := rekuest.ValidQuery(ctx, &q); err != nil {
		return q, err
	}

	flog.DebugFrom(ctx).
		Str("evt.name", "leaderboard.query").
		Str("period", q.Period).
		Str("subtype", q.Subtype).
		Str("career", q.Career).
		Str("position", q.Position).
		Int("limit", q.Limit).
		Msg("resolved leaderboard query")
	return q, nil
}

func periodQuery(ctx *fiber.Ctx) (period.Query, error) {
	var q period.Query
	err := rekuest.ValidQuery(ctx, &q)
	return q, err
}

//	@Summary	Get Personal Accuracy Report
//	@Tags		Ranking
//	@Produce	json
//	@Param		accountId	path		int		true	"Account ID"
//	@Param		period		query		string	false	"weekly, monthly or general"
//	@Param		from		query		string	false	"YYYY-MM-DD or RFC 3339"
//	@Param		to			query		string	false	"YYYY-MM-DD or RFC 3339"
//	@Success	200			{object}	modelv1.AccuracyReport
//	@Failure	400			{object}	pgerr.APIError	"Invalid accountId or date bounds"
//	@Failure	404			{object}	pgerr.APIError	"Account not found"
//	@Router		/api/v1/rankings/accuracy/personal/{accountId} [GET]
func (c *Ranking) AccuracyReport(ctx *fiber.Ctx) error {
	accountID, err := rekuest.PositiveIntParam(ctx, "accountId")
	if err != nil {
		return err
	}
	q, err := periodQuery(ctx)
	if err != nil {
		return err
	}

	report, err := c.PersonalReportService.Accuracy(ctx.UserContext(), accountID, q, nil)
	if err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(report))
}

//	@Summary	Get Filtered Personal Accuracy Report
//	@Tags		Ranking
//	@Accept		json
//	@Produce	json
//	@Param		request	body		types.FilteredAccuracyReportRequest	true	"Account, date bounds and subtypes"
//	@Success	200		{object}	modelv1.AccuracyReport
//	@Failure	400		{object}	pgerr.APIError	"Invalid request body"
//	@Failure	404		{object}	pgerr.APIError	"Account not found"
//	@Router		/api/v1/rankings/accuracy/personal/filtered [POST]
func (c *Ranking) FilteredAccuracyReport(ctx *fiber.Ctx) error {
	var req types.FilteredAccuracyReportRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	report, err := c.PersonalReportService.Accuracy(ctx.UserContext(), req.AccountID, req.Query(), req.Subtypes)
	if err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(report))
}

//	@Summary	Get Accuracy Leaderboard
//	@Tags		Ranking
//	@Produce	json
//	@Param		period		query		string	false	"weekly, monthly or general"
//	@Param		career		query		string	false	"Career filter; general period only"
//	@Param		position	query		string	false	"Position filter; general period only"
//	@Param		limit		query		int		false	"Defaults to 10"
//	@Success	200			{object}	modelv1.Leaderboard[modelv1.AccuracyStanding]
//	@Router		/api/v1/rankings/accuracy [GET]
func (c *Ranking) AccuracyLeaderboard(ctx *fiber.Ctx) error {
	q, err := leaderboardQuery(ctx)
	if err != nil {
		return err
	}

	board, err := c.LeaderboardService.Accuracy(ctx.UserContext(), q)
	if err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(board))
}

//	@Summary	Get Accuracy Standing of an Account
//	@Tags		Ranking
//	@Produce	json
//	@Param		accountId	path		int	true	"Account ID"
//	@Success	200			{object}	modelv1.Standing[modelv1.AccuracyStanding]
//	@Failure	404			{object}	pgerr.APIError	"Account is not ranked"
//	@Router		/api/v1/rankings/accuracy/standing/{accountId} [GET]
func (c *Ranking) AccuracyStanding(ctx *fiber.Ctx) error {
	accountID, err := rekuest.PositiveIntParam(ctx, "accountId")
	if err != nil {
		return err
	}
	q, err := leaderboardQuery(ctx)
	if err != nil {
		return err
	}

	standing, err := c.LeaderboardService.AccuracyStanding(ctx.UserContext(), accountID, q)
	if err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(standing))
}

//	@Summary	Get Per-Trial Accuracy Leaderboard
//	@Tags		Ranking
//	@Accept		json
//	@Produce	json
//	@Param		request	body		types.TrialLeaderboardRequest	true	"Date bounds, subtype and size"
//	@Success	200		{object}	modelv1.TrialLeaderboard
//	@Failure	400		{object}	pgerr.APIError	"Invalid request body"
//	@Router		/api/v1/rankings/accuracy/trials [POST]
func (c *Ranking) AccuracyTrialLeaderboard(ctx *fiber.Ctx) error {
	var req types.TrialLeaderboardRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	board, err := c.LeaderboardService.AccuracyTrials(ctx.UserContext(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(board))
}

//	@Summary	Get Personal Reach Report
//	@Tags		Ranking
//	@Produce	json
//	@Param		accountId	path		int	true	"Account ID"
//	@Success	200			{object}	modelv1.ReachReport
//	@Failure	404			{object}	pgerr.APIError	"Account not found"
//	@Router		/api/v1/rankings/reach/personal/{accountId} [GET]
func (c *Ranking) ReachReport(ctx *fiber.Ctx) error {
	accountID, err := rekuest.PositiveIntParam(ctx, "accountId")
	if err != nil {
		return err
	}
	q, err := periodQuery(ctx)
	if err != nil {
		return err
	}

	report, err := c.PersonalReportService.Reach(ctx.UserContext(), accountID, q)
	if err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(report))
}

//	@Summary	Get Reach Leaderboard
//	@Tags		Ranking
//	@Produce	json
//	@Success	200	{object}	modelv1.Leaderboard[modelv1.MagnitudeStanding]
//	@Router		/api/v1/rankings/reach [GET]
func (c *Ranking) ReachLeaderboard(ctx *fiber.Ctx) error {
	q, err := leaderboardQuery(ctx)
	if err != nil {
		return err
	}

	board, err := c.LeaderboardService.Reach(ctx.UserContext(), q)
	if err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(board))
}

func (c *Ranking) ReachStanding(ctx *fiber.Ctx) error {
	accountID, err := rekuest.PositiveIntParam(ctx, "accountId")
	if err != nil {
		return err
	}
	q, err := leaderboardQuery(ctx)
	if err != nil {
		return err
	}

	standing, err := c.LeaderboardService.ReachStanding(ctx.UserContext(), accountID, q)
	if err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(standing))
}

//	@Summary	Get Personal Plyometric Report
//	@Tags		Ranking
//	@Produce	json
//	@Param		accountId	path		int		true	"Account ID"
//	@Param		subtype		query		string	false	"box_jump, simple_jump or hurdle_jump"
//	@Success	200			{object}	modelv1.PlyometricReport
//	@Failure	404			{object}	pgerr.APIError	"Account not found"
//	@Router		/api/v1/rankings/plyometrics/personal/{accountId} [GET]
func (c *Ranking) PlyometricReport(ctx *fiber.Ctx) error {
	accountID, err := rekuest.PositiveIntParam(ctx, "accountId")
	if err != nil {
		return err
	}
	q, err := periodQuery(ctx)
	if err != nil {
		return err
	}
	subtype := ctx.Query("subtype")
	if err := rekuest.ValidVar(ctx, subtype, "omitempty,plyometricsubtype"); err != nil {
		return err
	}

	report, err := c.PersonalReportService.Plyometric(ctx.UserContext(), accountID, q, subtype)
	if err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(report))
}

func (c *Ranking) PlyometricLeaderboard(ctx *fiber.Ctx) error {
	q, err := leaderboardQuery(ctx)
	if err != nil {
		return err
	}

	board, err := c.LeaderboardService.Plyometric(ctx.UserContext(), q)
	if err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(board))
}

func (c *Ranking) PlyometricStanding(ctx *fiber.Ctx) error {
	accountID, err := rekuest.PositiveIntParam(ctx, "accountId")
	if err != nil {
		return err
	}
	q, err := leaderboardQuery(ctx)
	if err != nil {
		return err
	}

	standing, err := c.LeaderboardService.PlyometricStanding(ctx.UserContext(), accountID, q)
	if err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(standing))
}
