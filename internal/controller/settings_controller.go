package controller

import (
	"github.com/gofiber/fiber/v2"

	"ratesignal-be/internal/apperrors"
	"ratesignal-be/internal/dto"
	"ratesignal-be/internal/pkg/serverutils"
	"ratesignal-be/internal/service"
)

type ISettingsController interface {
	RegisterRoutes(r fiber.Router)
	GetConfig(ctx *fiber.Ctx) error
	UpdateConfig(ctx *fiber.Ctx) error
	GetUndo(ctx *fiber.Ctx) error
	ApplyUndo(ctx *fiber.Ctx) error
	ClearUndo(ctx *fiber.Ctx) error
	UpsertEntryPoint(ctx *fiber.Ctx) error
	DeleteEntryPoint(ctx *fiber.Ctx) error
}

type settingsController struct {
	service service.IConfigService
}

func NewSettingsController(service service.IConfigService) ISettingsController {
	return &settingsController{service: service}
}

func (c *settingsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1/config")
	h.Use(serverutils.AdminMiddleware)
	h.Get("", c.GetConfig)
	h.Put("", c.UpdateConfig)
	h.Get("undo", c.GetUndo)
	h.Post("undo", c.ApplyUndo)
	h.Delete("undo", c.ClearUndo)
	h.Put("entrypoints", c.UpsertEntryPoint)
	h.Delete("entrypoints/:id", c.DeleteEntryPoint)
}

func (c *settingsController) GetConfig(ctx *fiber.Ctx) error {
	res, err := c.service.GetConfig(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get config", res))
}

func (c *settingsController) UpdateConfig(ctx *fiber.Ctx) error {
	var req dto.UpdateConfigRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("body", "malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateConfig(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update config", res))
}

func (c *settingsController) GetUndo(ctx *fiber.Ctx) error {
	res, err := c.service.GetUndoSnapshot(ctx.Context())
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.JSON(serverutils.SuccessResponse[any]("No undo snapshot", nil))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get undo snapshot", res))
}

func (c *settingsController) ApplyUndo(ctx *fiber.Ctx) error {
	res, err := c.service.Undo(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success apply undo", res))
}

func (c *settingsController) ClearUndo(ctx *fiber.Ctx) error {
	if err := c.service.ClearUndoSnapshot(ctx.Context()); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear undo snapshot", nil))
}

func (c *settingsController) UpsertEntryPoint(ctx *fiber.Ctx) error {
	var req dto.UpsertEntryPointRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("body", "malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpsertEntryPoint(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upsert entry point", res))
}

func (c *settingsController) DeleteEntryPoint(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	res, err := c.service.DeleteEntryPoint(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete entry point", res))
}
