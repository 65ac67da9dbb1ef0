package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"exusiai.dev/trialstats/internal/model/types"
	modelv1 "exusiai.dev/trialstats/internal/model/v1"
	"exusiai.dev/trialstats/internal/server/svr"
	"exusiai.dev/trialstats/internal/service"
	"exusiai.dev/trialstats/internal/util/rekuest"
)

type Trial struct {
	fx.In

	TrialService *service.Trial
}

func RegisterTrial(v1 *svr.V1, c Trial) {
	trials := v1.Group("/trials")

	accuracy := trials.Group("/accuracy")
	accuracy.Post("/", c.StartAccuracy)
	accuracy.Put("/:trialId", c.FinishAccuracy)
	accuracy.Delete("/:trialId", c.DeleteAccuracy)
	accuracy.Get("/account/:accountId", c.GetAccuracyByAccount)
	accuracy.Get("/account/:accountId/latest", c.GetLatestAccuracy)

	reach := trials.Group("/reach")
	reach.Post("/", c.StartReach)
	reach.Put("/:trialId", c.FinishReach)
	reach.Delete("/:trialId", c.DeleteReach)
	reach.Get("/account/:accountId", c.GetReachByAccount)
	reach.Get("/account/:accountId/latest", c.GetLatestReach)

	plyometrics := trials.Group("/plyometrics")
	plyometrics.Post("/", c.StartPlyometric)
	plyometrics.Put("/:trialId", c.FinishPlyometric)
	plyometrics.Delete("/:trialId", c.DeletePlyometric)
	plyometrics.Get("/account/:accountId", c.GetPlyometricByAccount)
	plyometrics.Get("/account/:accountId/latest", c.GetLatestPlyometric)
}

func created(ctx *fiber.Ctx, data any) error {
	return ctx.Status(fiber.StatusCreated).JSON(modelv1.OK(data))
}

//	@Summary	Start Accuracy Trial
//	@Tags		Trial
//	@Accept		json
//	@Produce	json
//	@Param		request	body		types.StartAccuracyTrialRequest	true	"Account and subtype"
//	@Success	201		{object}	model.AccuracyTrial
//	@Failure	400		{object}	pgerr.APIError	"Invalid request body or account is not an active player"
//	@Failure	404		{object}	pgerr.APIError	"Account not found"
//	@Router		/api/v1/trials/accuracy [POST]
func (c *Trial) StartAccuracy(ctx *fiber.Ctx) error {
	var req types.StartAccuracyTrialRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	trial, err := c.TrialService.StartAccuracy(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return created(ctx, trial)
}

//	@Summary	Finish Accuracy Trial
//	@Tags		Trial
//	@Accept		json
//	@Produce	json
//	@Param		trialId	path		int									true	"Trial ID"
//	@Param		request	body		types.FinishAccuracyTrialRequest	true	"Results"
//	@Success	200		{object}	model.AccuracyTrial
//	@Failure	400		{object}	pgerr.APIError	"Invalid body or trial already completed"
//	@Failure	404		{object}	pgerr.APIError	"Trial not found"
//	@Router		/api/v1/trials/accuracy/{trialId} [PUT]
func (c *Trial) FinishAccuracy(ctx *fiber.Ctx) error {
	trialID, err := rekuest.PositiveIntParam(ctx, "trialId")
	if err != nil {
		return err
	}
	var req types.FinishAccuracyTrialRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	trial, err := c.TrialService.FinishAccuracy(ctx.UserContext(), trialID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(trial))
}

func (c *Trial) DeleteAccuracy(ctx *fiber.Ctx) error {
	trialID, err := rekuest.PositiveIntParam(ctx, "trialId")
	if err != nil {
		return err
	}
	if err := c.TrialService.DeleteAccuracy(ctx.UserContext(), trialID); err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(fiber.Map{"trialId": trialID}))
}

func (c *Trial) GetAccuracyByAccount(ctx *fiber.Ctx) error {
	accountID, err := rekuest.PositiveIntParam(ctx, "accountId")
	if err != nil {
		return err
	}
	trials, err := c.TrialService.GetAccuracyByAccount(ctx.UserContext(), accountID)
	if err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(trials))
}

func (c *Trial) GetLatestAccuracy(ctx *fiber.Ctx) error {
	accountID, err := rekuest.PositiveIntParam(ctx, "accountId")
	if err != nil {
		return err
	}
	trial, err := c.TrialService.GetLatestAccuracy(ctx.UserContext(), accountID)
	if err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(trial))
}

//	@Summary	Start Reach Trial
//	@Tags		Trial
//	@Accept		json
//	@Produce	json
//	@Param		request	body		types.StartReachTrialRequest	true	"Account"
//	@Success	201		{object}	model.ReachTrial
//	@Router		/api/v1/trials/reach [POST]
func (c *Trial) StartReach(ctx *fiber.Ctx) error {
	var req types.StartReachTrialRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	trial, err := c.TrialService.StartReach(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return created(ctx, trial)
}

func (c *Trial) FinishReach(ctx *fiber.Ctx) error {
	trialID, err := rekuest.PositiveIntParam(ctx, "trialId")
	if err != nil {
		return err
	}
	var req types.FinishReachTrialRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	trial, err := c.TrialService.FinishReach(ctx.UserContext(), trialID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(trial))
}

func (c *Trial) DeleteReach(ctx *fiber.Ctx) error {
	trialID, err := rekuest.PositiveIntParam(ctx, "trialId")
	if err != nil {
		return err
	}
	if err := c.TrialService.DeleteReach(ctx.UserContext(), trialID); err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(fiber.Map{"trialId": trialID}))
}

func (c *Trial) GetReachByAccount(ctx *fiber.Ctx) error {
	accountID, err := rekuest.PositiveIntParam(ctx, "accountId")
	if err != nil {
		return err
	}
	trials, err := c.TrialService.GetReachByAccount(ctx.UserContext(), accountID)
	if err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(trials))
}

func (c *Trial) GetLatestReach(ctx *fiber.Ctx) error {
	accountID, err := rekuest.PositiveIntParam(ctx, "accountId")
	if err != nil {
		return err
	}
	trial, err := c.TrialService.GetLatestReach(ctx.UserContext(), accountID)
	if err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(trial))
}

//	@Summary	Start Plyometric Trial
//	@Tags		Trial
//	@Accept		json
//	@Produce	json
//	@Param		request	body		types.StartPlyometricTrialRequest	true	"Account and subtype"
//	@Success	201		{object}	model.PlyometricTrial
//	@Router		/api/v1/trials/plyometrics [POST]
func (c *Trial) StartPlyometric(ctx *fiber.Ctx) error {
	var req types.StartPlyometricTrialRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	trial, err := c.TrialService.StartPlyometric(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return created(ctx, trial)
}

func (c *Trial) FinishPlyometric(ctx *fiber.Ctx) error {
	trialID, err := rekuest.PositiveIntParam(ctx, "trialId")
	if err != nil {
		return err
	}
	var req types.FinishPlyometricTrialRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	trial, err := c.TrialService.FinishPlyometric(ctx.UserContext(), trialID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(trial))
}

func (c *Trial) DeletePlyometric(ctx *fiber.Ctx) error {
	trialID, err := rekuest.PositiveIntParam(ctx, "trialId")
	if err != nil {
		return err
	}
	if err := c.TrialService.DeletePlyometric(ctx.UserContext(), trialID); err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(fiber.Map{"trialId": trialID}))
}

func (c *Trial) GetPlyometricByAccount(ctx *fiber.Ctx) error {
	accountID, err := rekuest.PositiveIntParam(ctx, "accountId")
	if err != nil {
		return err
	}
	trials, err := c.TrialService.GetPlyometricByAccount(ctx.UserContext(), accountID)
	if err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(trials))
}

func (c *Trial) GetLatestPlyometric(ctx *fiber.Ctx) error {
	accountID, err := rekuest.PositiveIntParam(ctx, "accountId")
	if err != nil {
		return err
	}
	trial, err := c.TrialService.GetLatestPlyometric(ctx.UserContext(), accountID)
	if err != nil {
		return err
	}
	return ctx.JSON(modelv1.OK(trial))
}
