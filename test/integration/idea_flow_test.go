package integration

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"innovation-hub-be/internal/bootstrap"
	"innovation-hub-be/internal/config"
	"innovation-hub-be/internal/dto"
	"innovation-hub-be/internal/model"
	"innovation-hub-be/internal/server"
	"innovation-hub-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// envelope mirrors the serverutils response with a typed data field.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	if os.Getenv("DB_CONNECTION_STRING") == "" {
		t.Skip("DB_CONNECTION_STRING not set, skipping integration test")
	}
	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", "integration-test-secret")
	}

	cfg := config.Load()
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	require.NoError(t, err, "Failed to connect to DB")

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	return srv.GetApp(), db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	rec.Code = resp.StatusCode
	_, err = rec.Body.ReadFrom(resp.Body)
	require.NoError(t, err)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var out envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func registerAndLogin(t *testing.T, app *fiber.App, email string) (string, uuid.UUID) {
	t.Helper()

	rec := doJSON(t, app, "POST", "/api/auth/v1/register", "", dto.RegisterRequest{
		Email:      email,
		Name:       "Integration Tester",
		Department: "IT",
		Password:   "testpassword1",
	})
	require.Equal(t, fiber.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, app, "POST", "/api/auth/v1/login", "", dto.LoginRequest{
		Email:    email,
		Password: "testpassword1",
	})
	require.Equal(t, fiber.StatusOK, rec.Code, rec.Body.String())

	login := decode[dto.LoginResponse](t, rec)
	require.NotEmpty(t, login.Data.Token)
	return login.Data.Token, login.Data.User.Id
}

func TestIdeaLifecycle(t *testing.T) {
	app, db := setupApp(t)

	email := "idea-flow-" + uuid.NewString()[:8] + "@example.com"
	token, userId := registerAndLogin(t, app, email)
	defer db.Unscoped().Where("email = ?", email).Delete(&model.User{})

	var ideaId uuid.UUID

	t.Run("Create idea", func(t *testing.T) {
		rec := doJSON(t, app, "POST", "/api/idea/v1", token, dto.CreateIdeaRequest{
			Title:       "Digital parking permits",
			Description: "Citizens should be able to apply for parking permits online instead of visiting the office.",
			Type:        "idea",
			TargetGroup: "citizens",
		})
		require.Equal(t, fiber.StatusCreated, rec.Code, rec.Body.String())

		res := decode[dto.CreateIdeaResponse](t, rec)
		assert.True(t, res.Success)
		assert.Equal(t, "new", res.Data.Status)
		ideaId = res.Data.Id
	})
	defer db.Unscoped().Where("id = ?", ideaId).Delete(&model.Idea{})

	t.Run("Create idea for other organizations", func(t *testing.T) {
		rec := doJSON(t, app, "POST", "/api/idea/v1", token, dto.CreateIdeaRequest{
			Title:       "Shared booking platform for associations",
			Description: "Local associations need a common way to book municipal venues and sports grounds.",
			Type:        "need",
			TargetGroup: "other_orgs",
		})
		require.Equal(t, fiber.StatusCreated, rec.Code, rec.Body.String())

		created := decode[dto.CreateIdeaResponse](t, rec)
		defer db.Unscoped().Where("id = ?", created.Data.Id).Delete(&model.Idea{})

		rec = doJSON(t, app, "GET", "/api/idea/v1/"+created.Data.Id.String(), token, nil)
		require.Equal(t, fiber.StatusOK, rec.Code)
		res := decode[dto.IdeaResponse](t, rec)
		assert.Equal(t, "other_orgs", res.Data.TargetGroup)
	})

	t.Run("Show idea", func(t *testing.T) {
		rec := doJSON(t, app, "GET", "/api/idea/v1/"+ideaId.String(), token, nil)
		require.Equal(t, fiber.StatusOK, rec.Code)

		res := decode[dto.IdeaResponse](t, rec)
		assert.Equal(t, "Digital parking permits", res.Data.Title)
		assert.Equal(t, userId, res.Data.SubmitterId)
	})

	t.Run("List ideas with filter", func(t *testing.T) {
		rec := doJSON(t, app, "GET", "/api/idea/v1?status=new&page=1&page_size=10", token, nil)
		require.Equal(t, fiber.StatusOK, rec.Code)

		res := decode[dto.ListIdeasResponse](t, rec)
		assert.GreaterOrEqual(t, res.Data.Total, int64(1))
	})

	t.Run("Status update", func(t *testing.T) {
		rec := doJSON(t, app, "PATCH", "/api/idea/v1/"+ideaId.String()+"/status", token,
			map[string]string{"status": "under_review"})
		require.Equal(t, fiber.StatusOK, rec.Code, rec.Body.String())

		res := decode[dto.IdeaResponse](t, rec)
		assert.Equal(t, "under_review", res.Data.Status)
	})

	t.Run("Status update accepts any enumerated value", func(t *testing.T) {
		// Reviewers set statuses directly; there is no step-by-step gate.
		rec := doJSON(t, app, "PATCH", "/api/idea/v1/"+ideaId.String()+"/status", token,
			map[string]string{"status": "implemented"})
		require.Equal(t, fiber.StatusOK, rec.Code, rec.Body.String())

		res := decode[dto.IdeaResponse](t, rec)
		assert.Equal(t, "implemented", res.Data.Status)

		rec = doJSON(t, app, "PATCH", "/api/idea/v1/"+ideaId.String()+"/status", token,
			map[string]string{"status": "under_review"})
		require.Equal(t, fiber.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("Status update rejects unknown value", func(t *testing.T) {
		rec := doJSON(t, app, "PATCH", "/api/idea/v1/"+ideaId.String()+"/status", token,
			map[string]string{"status": "archived"})
		assert.Equal(t, fiber.StatusBadRequest, rec.Code)
	})

	t.Run("Vote toggle", func(t *testing.T) {
		rec := doJSON(t, app, "POST", "/api/idea/v1/"+ideaId.String()+"/vote", token, nil)
		require.Equal(t, fiber.StatusOK, rec.Code, rec.Body.String())
		res := decode[dto.VoteResponse](t, rec)
		assert.True(t, res.Data.Voted)
		assert.Equal(t, 1, res.Data.VoteCount)

		rec = doJSON(t, app, "POST", "/api/idea/v1/"+ideaId.String()+"/vote", token, nil)
		require.Equal(t, fiber.StatusOK, rec.Code)
		res = decode[dto.VoteResponse](t, rec)
		assert.False(t, res.Data.Voted)
		assert.Equal(t, 0, res.Data.VoteCount)
	})

	t.Run("Comment", func(t *testing.T) {
		rec := doJSON(t, app, "POST", "/api/idea/v1/"+ideaId.String()+"/comments", token,
			map[string]string{"content": "Great idea, this would save a lot of counter visits."})
		require.Equal(t, fiber.StatusCreated, rec.Code, rec.Body.String())

		rec = doJSON(t, app, "GET", "/api/idea/v1/"+ideaId.String()+"/comments", token, nil)
		require.Equal(t, fiber.StatusOK, rec.Code)
		res := decode[[]*dto.CommentResponse](t, rec)
		require.Len(t, res.Data, 1)
		assert.Equal(t, userId, res.Data[0].AuthorId)
	})

	t.Run("Unauthenticated request rejected", func(t *testing.T) {
		rec := doJSON(t, app, "GET", "/api/idea/v1", "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, rec.Code)
	})

	t.Run("Unknown idea returns 404", func(t *testing.T) {
		rec := doJSON(t, app, "GET", "/api/idea/v1/"+uuid.NewString(), token, nil)
		assert.Equal(t, fiber.StatusNotFound, rec.Code)
	})
}
