package controller

import (
	"innovation-hub-be/internal/dto"
	"innovation-hub-be/internal/pkg/serverutils"
	"innovation-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITaxonomyController interface {
	RegisterRoutes(r fiber.Router)
	ListCategories(ctx *fiber.Ctx) error
	CreateCategory(ctx *fiber.Ctx) error
	ListTags(ctx *fiber.Ctx) error
}

type taxonomyController struct {
	taxonomyService service.ITaxonomyService
}

func NewTaxonomyController(taxonomyService service.ITaxonomyService) ITaxonomyController {
	return &taxonomyController{
		taxonomyService: taxonomyService,
	}
}

func (c *taxonomyController) RegisterRoutes(r fiber.Router) {
	categories := r.Group("/category/v1")
	categories.Use(serverutils.JwtMiddleware)
	categories.Get("", c.ListCategories)
	categories.Post("", c.CreateCategory)

	tags := r.Group("/tag/v1")
	tags.Use(serverutils.JwtMiddleware)
	tags.Get("", c.ListTags)
}

func (c *taxonomyController) ListCategories(ctx *fiber.Ctx) error {
	res, err := c.taxonomyService.ListCategories(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Categories", res))
}

func (c *taxonomyController) CreateCategory(ctx *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.taxonomyService.CreateCategory(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Category created", res))
}

func (c *taxonomyController) ListTags(ctx *fiber.Ctx) error {
	res, err := c.taxonomyService.ListTags(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Tags", res))
}
