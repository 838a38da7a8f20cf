package controller

import (
	"careerflow-be/internal/pkg/serverutils"
	"careerflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITrashController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
	PermanentDelete(ctx *fiber.Ctx) error
	Empty(ctx *fiber.Ctx) error
}

type trashController struct {
	trashService service.ITrashService
}

func NewTrashController(trashService service.ITrashService) ITrashController {
	return &trashController{trashService: trashService}
}

func (c *trashController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/trash")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	// "empty" must be registered before the :kind/:id wildcard.
	h.Delete("/empty", c.Empty)
	h.Post("/restore/:kind/:id", c.Restore)
	h.Delete(":kind/:id", c.PermanentDelete)
}

func (c *trashController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.trashService.ListTrash(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list trash", res))
}

func (c *trashController) Restore(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	kind := ctx.Params("kind")
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.trashService.Restore(ctx.Context(), userId, kind, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success restore from trash", nil))
}

func (c *trashController) PermanentDelete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	kind := ctx.Params("kind")
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.trashService.PermanentDelete(ctx.Context(), userId, kind, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success permanently delete", nil))
}

func (c *trashController) Empty(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.trashService.EmptyTrash(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success empty trash", res))
}
