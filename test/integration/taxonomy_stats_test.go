package integration

import (
	"testing"

	"innovation-hub-be/internal/dto"
	"innovation-hub-be/internal/entity"
	"innovation-hub-be/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryAndTagEndpoints(t *testing.T) {
	app, db := setupApp(t)

	email := "taxonomy-" + uuid.NewString()[:8] + "@example.com"
	token, _ := registerAndLogin(t, app, email)
	defer db.Unscoped().Where("email = ?", email).Delete(&model.User{})

	name := "Testkategori " + uuid.NewString()[:8]
	defer db.Unscoped().Where("name = ?", name).Delete(&model.Category{})

	t.Run("Create category with default color", func(t *testing.T) {
		rec := doJSON(t, app, "POST", "/api/category/v1", token, dto.CreateCategoryRequest{
			Name:        name,
			Description: "Idéer som inte passar någon annan kategori.",
		})
		require.Equal(t, fiber.StatusCreated, rec.Code, rec.Body.String())

		res := decode[dto.CategoryResponse](t, rec)
		assert.Equal(t, name, res.Data.Name)
		assert.Equal(t, entity.DefaultCategoryColor, res.Data.Color)
	})

	t.Run("Duplicate name conflicts", func(t *testing.T) {
		rec := doJSON(t, app, "POST", "/api/category/v1", token, dto.CreateCategoryRequest{
			Name: name,
		})
		assert.Equal(t, fiber.StatusConflict, rec.Code)
	})

	t.Run("Invalid color rejected", func(t *testing.T) {
		rec := doJSON(t, app, "POST", "/api/category/v1", token, dto.CreateCategoryRequest{
			Name:  "Färglös " + uuid.NewString()[:8],
			Color: "not-a-color",
		})
		assert.Equal(t, fiber.StatusBadRequest, rec.Code)
	})

	t.Run("List categories", func(t *testing.T) {
		rec := doJSON(t, app, "GET", "/api/category/v1", token, nil)
		require.Equal(t, fiber.StatusOK, rec.Code)

		res := decode[dto.ListCategoriesResponse](t, rec)
		assert.GreaterOrEqual(t, res.Data.Total, int64(1))

		found := false
		for _, c := range res.Data.Categories {
			if c.Name == name {
				found = true
			}
		}
		assert.True(t, found, "created category should be listed")
	})

	t.Run("List tags", func(t *testing.T) {
		rec := doJSON(t, app, "GET", "/api/tag/v1", token, nil)
		require.Equal(t, fiber.StatusOK, rec.Code)

		res := decode[dto.ListTagsResponse](t, rec)
		assert.Equal(t, int64(len(res.Data.Tags)), res.Data.Total)
	})
}

func TestPlanningStatsEndpoints(t *testing.T) {
	app, db := setupApp(t)

	email := "planning-stats-" + uuid.NewString()[:8] + "@example.com"
	token, _ := registerAndLogin(t, app, email)
	defer db.Unscoped().Where("email = ?", email).Delete(&model.User{})

	t.Run("Project stats include budget and linked ideas", func(t *testing.T) {
		budget := 250000.0
		rec := doJSON(t, app, "POST", "/api/project/v1", token, dto.CreateProjectRequest{
			Name:            "Statistikprojekt " + uuid.NewString()[:8],
			Description:     "Projekt som bara finns för uppföljningen.",
			Type:            "internal",
			EstimatedBudget: &budget,
		})
		require.Equal(t, fiber.StatusCreated, rec.Code, rec.Body.String())
		projectId := decode[dto.ProjectResponse](t, rec).Data.Id
		defer db.Unscoped().Where("id = ?", projectId).Delete(&model.Project{})

		rec = doJSON(t, app, "GET", "/api/project/v1/stats", token, nil)
		require.Equal(t, fiber.StatusOK, rec.Code, rec.Body.String())

		res := decode[dto.ProjectStatsResponse](t, rec)
		assert.GreaterOrEqual(t, res.Data.TotalProjects, int64(1))
		assert.GreaterOrEqual(t, res.Data.ByStatus["proposed"], int64(1))
		assert.GreaterOrEqual(t, res.Data.ByType["internal"], int64(1))
		assert.GreaterOrEqual(t, res.Data.TotalBudget, budget)
	})

	t.Run("Strategy stats count active documents", func(t *testing.T) {
		rec := doJSON(t, app, "POST", "/api/strategy/v1", token, dto.CreateStrategyDocumentRequest{
			Title: "Digitaliseringsstrategi " + uuid.NewString()[:8],
			Type:  "strategic_goal",
			Level: 1,
		})
		require.Equal(t, fiber.StatusCreated, rec.Code, rec.Body.String())
		docId := decode[dto.StrategyDocumentResponse](t, rec).Data.Id
		defer db.Unscoped().Where("id = ?", docId).Delete(&model.StrategyDocument{})

		rec = doJSON(t, app, "GET", "/api/strategy/v1/stats", token, nil)
		require.Equal(t, fiber.StatusOK, rec.Code, rec.Body.String())

		res := decode[dto.StrategyStatsResponse](t, rec)
		assert.GreaterOrEqual(t, res.Data.TotalDocuments, int64(1))
		// A document without an end date counts as active.
		assert.GreaterOrEqual(t, res.Data.ActiveCount, int64(1))
		assert.GreaterOrEqual(t, res.Data.ByType["strategic_goal"], int64(1))
		assert.GreaterOrEqual(t, res.Data.ByLevel["1"], int64(1))
	})

	t.Run("Funding stats aggregate open calls", func(t *testing.T) {
		budgetMax := 500000.0
		rec := doJSON(t, app, "POST", "/api/funding/v1", token, dto.CreateFundingCallRequest{
			Title:     "Öppen utlysning " + uuid.NewString()[:8],
			Funder:    "Formas",
			Status:    "open",
			BudgetMax: &budgetMax,
		})
		require.Equal(t, fiber.StatusCreated, rec.Code, rec.Body.String())
		callId := decode[dto.FundingCallResponse](t, rec).Data.Id
		defer db.Unscoped().Where("id = ?", callId).Delete(&model.FundingCall{})

		rec = doJSON(t, app, "GET", "/api/funding/v1/stats", token, nil)
		require.Equal(t, fiber.StatusOK, rec.Code, rec.Body.String())

		res := decode[dto.FundingStatsResponse](t, rec)
		assert.GreaterOrEqual(t, res.Data.Total, int64(1))
		assert.GreaterOrEqual(t, res.Data.ByStatus["open"], int64(1))
		assert.GreaterOrEqual(t, res.Data.ByFunder["Formas"], int64(1))
		assert.GreaterOrEqual(t, res.Data.OpenBudgetMax, budgetMax)
	})
}
