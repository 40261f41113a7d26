package controller

import (
	"github.com/gofiber/fiber/v2"

	"ratesignal-be/internal/apperrors"
	"ratesignal-be/internal/dto"
	"ratesignal-be/internal/pkg/serverutils"
	"ratesignal-be/internal/service"
)

type IRatingController interface {
	RegisterRoutes(r fiber.Router)
	GetBusiness(ctx *fiber.Ctx) error
	StartSession(ctx *fiber.Ctx) error
	Rate(ctx *fiber.Ctx) error
	UpdateStars(ctx *fiber.Ctx) error
	SubmitFeedback(ctx *fiber.Ctx) error
}

type ratingController struct {
	service service.IRatingService
}

func NewRatingController(service service.IRatingService) IRatingController {
	return &ratingController{service: service}
}

func (c *ratingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/rating/v1")
	h.Get("business/:slug", c.GetBusiness)
	h.Post("session", c.StartSession)
	h.Post("session/:id/rate", c.Rate)
	h.Put("session/:id/stars", c.UpdateStars)
	h.Post("session/:id/feedback", c.SubmitFeedback)
}

func (c *ratingController) GetBusiness(ctx *fiber.Ctx) error {
	slug := ctx.Params("slug")

	res, err := c.service.GetBusiness(ctx.Context(), slug)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get business", res))
}

func (c *ratingController) StartSession(ctx *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("body", "malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.StartSession(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success start rating session", res))
}

func (c *ratingController) Rate(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("id")

	var req dto.RateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("body", "malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Rate(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit rating", res))
}

func (c *ratingController) UpdateStars(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("id")

	var req dto.UpdateStarsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("body", "malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateStars(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update stars", res))
}

func (c *ratingController) SubmitFeedback(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("id")

	var req dto.SubmitFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("body", "malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SubmitFeedback(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit feedback", res))
}
