package controller

import (
	"careerflow-be/internal/pkg/serverutils"
	"careerflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IStatsController interface {
	RegisterRoutes(r fiber.Router)
	Dashboard(ctx *fiber.Ctx) error
}

type statsController struct {
	statsService service.IStatsService
}

func NewStatsController(statsService service.IStatsService) IStatsController {
	return &statsController{statsService: statsService}
}

func (c *statsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/stats")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/dashboard", c.Dashboard)
}

func (c *statsController) Dashboard(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.statsService.Dashboard(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show dashboard stats", res))
}
