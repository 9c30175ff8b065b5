package controller

import (
	"innovation-hub-be/internal/dto"
	"innovation-hub-be/internal/pkg/apperror"
	"innovation-hub-be/internal/pkg/serverutils"
	"innovation-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IIdeaController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	Analyze(ctx *fiber.Ctx) error
	ToggleVote(ctx *fiber.Ctx) error
	VoteStatus(ctx *fiber.Ctx) error
	ListComments(ctx *fiber.Ctx) error
	AddComment(ctx *fiber.Ctx) error
}

type ideaController struct {
	ideaService service.IIdeaService
}

func NewIdeaController(ideaService service.IIdeaService) IIdeaController {
	return &ideaController{
		ideaService: ideaService,
	}
}

func (c *ideaController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/idea/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get("stats", c.Stats)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Patch(":id/status", c.UpdateStatus)
	h.Post(":id/analyze", c.Analyze)
	h.Post(":id/vote", c.ToggleVote)
	h.Get(":id/vote/status", c.VoteStatus)
	h.Get(":id/comments", c.ListComments)
	h.Post(":id/comments", c.AddComment)
}

func (c *ideaController) Create(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateIdeaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ideaService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Idea submitted", res))
}

func (c *ideaController) List(ctx *fiber.Ctx) error {
	var req dto.ListIdeasRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.ideaService.List(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Ideas", res))
}

func (c *ideaController) Stats(ctx *fiber.Ctx) error {
	res, err := c.ideaService.Stats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Idea statistics", res))
}

func (c *ideaController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.ideaService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Idea", res))
}

func (c *ideaController) Update(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateIdeaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ideaService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Idea updated", res))
}

func (c *ideaController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.ideaService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Idea deleted", nil))
}

func (c *ideaController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateIdeaStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ideaService.UpdateStatus(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Idea status updated", res))
}

func (c *ideaController) Analyze(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.ideaService.Analyze(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Idea analyzed", res))
}

func (c *ideaController) ToggleVote(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.ideaService.ToggleVote(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Vote registered", res))
}

func (c *ideaController) VoteStatus(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.ideaService.VoteStatus(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Vote status", res))
}

func (c *ideaController) ListComments(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.ideaService.ListComments(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Comments", res))
}

func (c *ideaController) AddComment(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.IdeaId = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ideaService.AddComment(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Comment added", res))
}

func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, apperror.Unauthorizedf("invalid user token")
	}
	return userId, nil
}

func parseIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.Validationf("invalid id: %q", ctx.Params("id"))
	}
	return id, nil
}
