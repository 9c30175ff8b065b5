package controller

import (
	"innovation-hub-be/internal/dto"
	"innovation-hub-be/internal/pkg/serverutils"
	"innovation-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFundingController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type fundingController struct {
	fundingService service.IFundingService
}

func NewFundingController(fundingService service.IFundingService) IFundingController {
	return &fundingController{
		fundingService: fundingService,
	}
}

func (c *fundingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/funding/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get("stats", c.Stats)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *fundingController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateFundingCallRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.fundingService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Funding call created", res))
}

func (c *fundingController) Stats(ctx *fiber.Ctx) error {
	res, err := c.fundingService.Stats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Funding stats", res))
}

func (c *fundingController) List(ctx *fiber.Ctx) error {
	res, err := c.fundingService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Funding calls", res))
}

func (c *fundingController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.fundingService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Funding call", res))
}

func (c *fundingController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateFundingCallRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.fundingService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Funding call updated", res))
}

func (c *fundingController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.fundingService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Funding call deleted", nil))
}
