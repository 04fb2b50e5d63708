package controller

import (
	"ai-summarizer-be/internal/dto"
	"ai-summarizer-be/internal/pkg/serverutils"
	"ai-summarizer-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRefineController interface {
	RegisterRoutes(r fiber.Router)
	Refine(ctx *fiber.Ctx) error
	OpenSession(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	SessionRefine(ctx *fiber.Ctx) error
	UndoSession(ctx *fiber.Ctx) error
	SaveSession(ctx *fiber.Ctx) error
}

type refineController struct {
	service service.IRefineService
}

func NewRefineController(service service.IRefineService) IRefineController {
	return &refineController{service: service}
}

func (c *refineController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/summary/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/refine", c.Refine)
	h.Post(":id/session", c.OpenSession)
	h.Get(":id/session", c.GetSession)
	h.Post(":id/session/refine", c.SessionRefine)
	h.Post(":id/session/undo", c.UndoSession)
	h.Post(":id/session/save", c.SaveSession)
}

func (c *refineController) Refine(ctx *fiber.Ctx) error {
	var req dto.RefineRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Refine(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success refine summary", res))
}

func (c *refineController) OpenSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	summaryId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.OpenSession(ctx.Context(), userId, summaryId)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success open refine session", res))
}

func (c *refineController) GetSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	summaryId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.GetSession(ctx.Context(), userId, summaryId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get refine session", res))
}

func (c *refineController) SessionRefine(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	summaryId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.SessionRefineRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SessionRefine(ctx.Context(), userId, summaryId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success refine session", res))
}

func (c *refineController) UndoSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	summaryId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.UndoSession(ctx.Context(), userId, summaryId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success undo refinement", res))
}

func (c *refineController) SaveSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	summaryId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.SaveSession(ctx.Context(), userId, summaryId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save refined summary", res))
}
