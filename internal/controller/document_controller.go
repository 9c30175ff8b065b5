package controller

import (
	"io"

	"innovation-hub-be/internal/dto"
	"innovation-hub-be/internal/pkg/apperror"
	"innovation-hub-be/internal/pkg/serverutils"
	"innovation-hub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	UploadServiceCatalog(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
}

func NewDocumentController(documentService service.IDocumentService) IDocumentController {
	return &documentController{
		documentService: documentService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Upload)
	h.Post("upload-service-catalog", c.UploadServiceCatalog)
	h.Get("", c.List)
	h.Get("stats", c.Stats)
	h.Post("search", c.Search)
	h.Post("clear", c.Clear)
	h.Delete(":name", c.Delete)
}

func (c *documentController) Upload(ctx *fiber.Ctx) error {
	var req dto.UploadDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.documentService.Upload(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Document indexed", res))
}

// UploadServiceCatalog accepts the catalog export as a multipart upload.
// The export is an HTML table even when the file is named .xls.
func (c *documentController) UploadServiceCatalog(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return apperror.Validationf("catalog file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperror.Validationf("cannot open uploaded file: %v", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return apperror.Validationf("cannot read uploaded file: %v", err)
	}

	res, err := c.documentService.UploadServiceCatalog(ctx.Context(), string(content))
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Service catalog indexed", res))
}

func (c *documentController) List(ctx *fiber.Ctx) error {
	res, err := c.documentService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Documents", res))
}

func (c *documentController) Stats(ctx *fiber.Ctx) error {
	res, err := c.documentService.Stats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Document statistics", res))
}

func (c *documentController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchDocumentsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.documentService.Search(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Search results", res))
}

func (c *documentController) Delete(ctx *fiber.Ctx) error {
	name := ctx.Params("name")
	if name == "" {
		return apperror.Validationf("document name is required")
	}

	res, err := c.documentService.Delete(ctx.Context(), name)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Document deleted", res))
}

func (c *documentController) Clear(ctx *fiber.Ctx) error {
	res, err := c.documentService.Clear(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Documents cleared", res))
}
