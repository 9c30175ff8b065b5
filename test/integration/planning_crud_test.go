package integration

import (
	"testing"

	"innovation-hub-be/internal/dto"
	"innovation-hub-be/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCrudAndIdeaLinking(t *testing.T) {
	app, db := setupApp(t)

	email := "project-crud-" + uuid.NewString()[:8] + "@example.com"
	token, userId := registerAndLogin(t, app, email)
	defer db.Unscoped().Where("email = ?", email).Delete(&model.User{})
	_ = userId

	var projectId uuid.UUID
	var ideaId uuid.UUID

	t.Run("Create project", func(t *testing.T) {
		rec := doJSON(t, app, "POST", "/api/project/v1", token, dto.CreateProjectRequest{
			Name:            "E-service platform rollout",
			Description:     "Consolidate citizen e-services on a shared platform.",
			Type:            "internal",
			OwnerDepartment: "Digitalisering",
		})
		require.Equal(t, fiber.StatusCreated, rec.Code, rec.Body.String())

		res := decode[dto.ProjectResponse](t, rec)
		assert.Equal(t, "proposed", res.Data.Status)
		assert.Empty(t, res.Data.IdeaIds)
		projectId = res.Data.Id
	})
	defer db.Unscoped().Where("id = ?", projectId).Delete(&model.Project{})

	t.Run("Link idea to project", func(t *testing.T) {
		rec := doJSON(t, app, "POST", "/api/idea/v1", token, dto.CreateIdeaRequest{
			Title:       "Shared login for e-services",
			Description: "One municipal account should work across every digital service.",
			Type:        "improvement",
			TargetGroup: "citizens",
		})
		require.Equal(t, fiber.StatusCreated, rec.Code, rec.Body.String())
		ideaId = decode[dto.CreateIdeaResponse](t, rec).Data.Id

		rec = doJSON(t, app, "POST", "/api/project/v1/"+projectId.String()+"/ideas", token,
			map[string]string{"idea_id": ideaId.String()})
		require.Equal(t, fiber.StatusOK, rec.Code, rec.Body.String())

		res := decode[dto.ProjectResponse](t, rec)
		require.Len(t, res.Data.IdeaIds, 1)
		assert.Equal(t, ideaId, res.Data.IdeaIds[0])

		// Linking twice conflicts
		rec = doJSON(t, app, "POST", "/api/project/v1/"+projectId.String()+"/ideas", token,
			map[string]string{"idea_id": ideaId.String()})
		assert.Equal(t, fiber.StatusConflict, rec.Code)
	})
	defer db.Unscoped().Where("id = ?", ideaId).Delete(&model.Idea{})

	t.Run("Unlink idea", func(t *testing.T) {
		rec := doJSON(t, app, "DELETE", "/api/project/v1/"+projectId.String()+"/ideas/"+ideaId.String(), token, nil)
		require.Equal(t, fiber.StatusOK, rec.Code, rec.Body.String())

		res := decode[dto.ProjectResponse](t, rec)
		assert.Empty(t, res.Data.IdeaIds)
	})

	t.Run("Update project status", func(t *testing.T) {
		rec := doJSON(t, app, "PUT", "/api/project/v1/"+projectId.String(), token, dto.CreateProjectRequest{
			Name:        "E-service platform rollout",
			Description: "Consolidate citizen e-services on a shared platform.",
			Type:        "internal",
			Status:      "in_progress",
		})
		require.Equal(t, fiber.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "in_progress", decode[dto.ProjectResponse](t, rec).Data.Status)
	})

	t.Run("Delete project", func(t *testing.T) {
		rec := doJSON(t, app, "DELETE", "/api/project/v1/"+projectId.String(), token, nil)
		require.Equal(t, fiber.StatusOK, rec.Code)

		rec = doJSON(t, app, "GET", "/api/project/v1/"+projectId.String(), token, nil)
		assert.Equal(t, fiber.StatusNotFound, rec.Code)
	})
}

func TestStrategyAndFundingCrud(t *testing.T) {
	app, db := setupApp(t)

	email := "planning-crud-" + uuid.NewString()[:8] + "@example.com"
	token, _ := registerAndLogin(t, app, email)
	defer db.Unscoped().Where("email = ?", email).Delete(&model.User{})

	t.Run("Strategy document CRUD", func(t *testing.T) {
		rec := doJSON(t, app, "POST", "/api/strategy/v1", token, dto.CreateStrategyDocumentRequest{
			Title: "Klimatplan 2035",
			Type:  "action_plan",
			Level: 2,
		})
		require.Equal(t, fiber.StatusCreated, rec.Code, rec.Body.String())
		docId := decode[dto.StrategyDocumentResponse](t, rec).Data.Id
		defer db.Unscoped().Where("id = ?", docId).Delete(&model.StrategyDocument{})

		rec = doJSON(t, app, "PUT", "/api/strategy/v1/"+docId.String(), token, dto.CreateStrategyDocumentRequest{
			Title: "Klimatplan 2035 (reviderad)",
			Type:  "action_plan",
			Level: 2,
		})
		require.Equal(t, fiber.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "Klimatplan 2035 (reviderad)", decode[dto.StrategyDocumentResponse](t, rec).Data.Title)

		rec = doJSON(t, app, "DELETE", "/api/strategy/v1/"+docId.String(), token, nil)
		require.Equal(t, fiber.StatusOK, rec.Code)
	})

	t.Run("Funding call CRUD with budget validation", func(t *testing.T) {
		badMin, badMax := 100000.0, 50000.0
		rec := doJSON(t, app, "POST", "/api/funding/v1", token, dto.CreateFundingCallRequest{
			Title:     "Inverted budget call",
			BudgetMin: &badMin,
			BudgetMax: &badMax,
		})
		assert.Equal(t, fiber.StatusBadRequest, rec.Code)

		rec = doJSON(t, app, "POST", "/api/funding/v1", token, dto.CreateFundingCallRequest{
			Title:  "Innovationsmedel vår 2027",
			Funder: "Vinnova",
			Status: "upcoming",
		})
		require.Equal(t, fiber.StatusCreated, rec.Code, rec.Body.String())
		callId := decode[dto.FundingCallResponse](t, rec).Data.Id
		defer db.Unscoped().Where("id = ?", callId).Delete(&model.FundingCall{})

		rec = doJSON(t, app, "GET", "/api/funding/v1", token, nil)
		require.Equal(t, fiber.StatusOK, rec.Code)
		assert.GreaterOrEqual(t, decode[dto.ListFundingCallsResponse](t, rec).Data.Total, int64(1))

		rec = doJSON(t, app, "DELETE", "/api/funding/v1/"+callId.String(), token, nil)
		require.Equal(t, fiber.StatusOK, rec.Code)
	})
}
