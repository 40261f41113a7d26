package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ratesignal-be/internal/apperrors"
	"ratesignal-be/internal/dto"
	"ratesignal-be/internal/pkg/serverutils"
	"ratesignal-be/internal/service"
)

type IInboxController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	MarkRead(ctx *fiber.Ctx) error
	MarkAllRead(ctx *fiber.Ctx) error
	ToggleFlag(ctx *fiber.Ctx) error
	Reply(ctx *fiber.Ctx) error
	DeleteBulk(ctx *fiber.Ctx) error
	DeleteOne(ctx *fiber.Ctx) error
	ListEvents(ctx *fiber.Ctx) error
	Summary(ctx *fiber.Ctx) error
}

type inboxController struct {
	feedbackService  service.IFeedbackService
	dashboardService service.IDashboardService
}

func NewInboxController(
	feedbackService service.IFeedbackService,
	dashboardService service.IDashboardService,
) IInboxController {
	return &inboxController{
		feedbackService:  feedbackService,
		dashboardService: dashboardService,
	}
}

func (c *inboxController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.AdminMiddleware)
	h.Get("feedback", c.List)
	h.Patch("feedback/:id/read", c.MarkRead)
	h.Post("feedback/read-all", c.MarkAllRead)
	h.Patch("feedback/:id/flag", c.ToggleFlag)
	h.Post("feedback/:id/reply", c.Reply)
	h.Delete("feedback/:id", c.DeleteOne)
	h.Delete("feedback", c.DeleteBulk)
	h.Get("events", c.ListEvents)
	h.Get("summary", c.Summary)
}

func (c *inboxController) List(ctx *fiber.Ctx) error {
	var req dto.ListFeedbackRequest
	if err := ctx.QueryParser(&req); err != nil {
		return apperrors.NewValidationError("query", "malformed query parameters")
	}

	res, err := c.feedbackService.List(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get feedback", res))
}

func (c *inboxController) MarkRead(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.feedbackService.MarkRead(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success mark feedback read", nil))
}

func (c *inboxController) MarkAllRead(ctx *fiber.Ctx) error {
	if err := c.feedbackService.MarkAllRead(ctx.Context()); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success mark all feedback read", nil))
}

func (c *inboxController) ToggleFlag(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.feedbackService.ToggleFlag(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success toggle feedback flag", nil))
}

func (c *inboxController) Reply(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.ReplyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("body", "malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.feedbackService.Reply(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	if res == nil {
		// Absent id: idempotent no-op.
		return ctx.JSON(serverutils.SuccessResponse[any]("Feedback not found, nothing to update", nil))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success reply to feedback", res))
}

func (c *inboxController) DeleteBulk(ctx *fiber.Ctx) error {
	var req dto.DeleteFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("body", "malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.feedbackService.Delete(ctx.Context(), req.Ids); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete feedback", nil))
}

func (c *inboxController) DeleteOne(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.feedbackService.Delete(ctx.Context(), []uuid.UUID{id}); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete feedback", nil))
}

func (c *inboxController) ListEvents(ctx *fiber.Ctx) error {
	res, err := c.dashboardService.ListEvents(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get rating events", res))
}

func (c *inboxController) Summary(ctx *fiber.Ctx) error {
	res, err := c.dashboardService.Summary(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get summary", res))
}
