package controller

import (
	"innovation-hub-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
	Ready(ctx *fiber.Ctx) error
	Live(ctx *fiber.Ctx) error
}

type healthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) IHealthController {
	return &healthController{db: db}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/health")
	h.Get("", c.Health)
	h.Get("/ready", c.Ready)
	h.Get("/live", c.Live)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("ok", nil))
}

// Ready reports whether the database connection is usable.
func (c *healthController) Ready(ctx *fiber.Ctx) error {
	sqlDB, err := c.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Context())
	}
	if err != nil {
		return ctx.Status(fiber.StatusServiceUnavailable).
			JSON(serverutils.ErrorResponse("database unavailable", err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("ready", nil))
}

func (c *healthController) Live(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("live", nil))
}
