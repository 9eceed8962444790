package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/Matija334/RecipeWorld/internal/config"
	"github.com/Matija334/RecipeWorld/internal/database"
	"github.com/Matija334/RecipeWorld/internal/models"
	"github.com/Matija334/RecipeWorld/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testUser = models.User{
	ID:       42,
	Email:    "claims@example.com",
	Username: "claimsuser",
}

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

// newTestServer creates a Server backed by an in-memory SQLite database and a
// Fiber app with all routes registered.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A pooled second connection would get its own empty :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))

	s := &Server{
		config: &config.Config{
			JWTSecret: "test-secret-key-0123456789abcdef",
			Env:       "test",
		},
		db:           db,
		userRepo:     repository.NewUserRepository(db),
		recipeRepo:   repository.NewRecipeRepository(db),
		commentRepo:  repository.NewCommentRepository(db),
		bookmarkRepo: repository.NewBookmarkRepository(db),
		followRepo:   repository.NewFollowRepository(db),
	}

	app := fiber.New()
	s.SetupRoutes(app)

	return s, app
}

// doRequest performs a JSON request against the test app and decodes the body.
func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	result := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &result))
	}

	return resp.StatusCode, result
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	status, body := doRequest(t, app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    username + "@example.com",
		"username": username,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, status)
	token, ok := body["token"].(string)
	require.True(t, ok, "register response should contain a token")
	return token
}

// createRecipe creates a recipe through the API and returns its id.
func createRecipe(t *testing.T, app *fiber.App, token, title string) uint {
	t.Helper()

	status, body := doRequest(t, app, http.MethodPost, "/api/recipes/", token, map[string]string{
		"title":       title,
		"description": "A test recipe",
		"ingredients": "Flour\nWater",
		"steps":       "Mix.\nBake.",
	})
	require.Equal(t, http.StatusCreated, status)

	recipe, ok := body["recipe"].(map[string]any)
	require.True(t, ok, "create response should contain a recipe")
	id, ok := recipe["id"].(float64)
	require.True(t, ok)
	return uint(id)
}
