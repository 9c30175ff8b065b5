package controller

import (
	"innovation-hub-be/internal/dto"
	"innovation-hub-be/internal/pkg/apperror"
	"innovation-hub-be/internal/pkg/serverutils"
	"innovation-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProjectController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	LinkIdea(ctx *fiber.Ctx) error
	UnlinkIdea(ctx *fiber.Ctx) error
}

type projectController struct {
	projectService service.IProjectService
}

func NewProjectController(projectService service.IProjectService) IProjectController {
	return &projectController{
		projectService: projectService,
	}
}

func (c *projectController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/project/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get("stats", c.Stats)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post(":id/ideas", c.LinkIdea)
	h.Delete(":id/ideas/:ideaId", c.UnlinkIdea)
}

func (c *projectController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.projectService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Project created", res))
}

func (c *projectController) List(ctx *fiber.Ctx) error {
	res, err := c.projectService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Projects", res))
}

func (c *projectController) Stats(ctx *fiber.Ctx) error {
	res, err := c.projectService.Stats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Project stats", res))
}

func (c *projectController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.projectService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Project", res))
}

func (c *projectController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateProjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.projectService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Project updated", res))
}

func (c *projectController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.projectService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Project deleted", nil))
}

func (c *projectController) LinkIdea(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.LinkIdeaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.ProjectId = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.projectService.LinkIdea(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Idea linked to project", res))
}

func (c *projectController) UnlinkIdea(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}
	ideaId, err := uuid.Parse(ctx.Params("ideaId"))
	if err != nil {
		return apperror.Validationf("invalid idea id: %q", ctx.Params("ideaId"))
	}

	res, err := c.projectService.UnlinkIdea(ctx.Context(), id, ideaId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Idea unlinked from project", res))
}
