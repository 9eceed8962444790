package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Matija334/RecipeWorld/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarks(t *testing.T) {
	s, app := newTestServer(t)
	chefToken := registerUser(t, app, "bookchef")
	readerToken := registerUser(t, app, "bookreader")
	id := createRecipe(t, app, chefToken, "Saved Recipe")

	t.Run("Status starts false", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/bookmarks/%d", id), readerToken, nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, false, body["bookmarked"])
	})

	t.Run("Add bookmark", func(t *testing.T) {
		status, _ := doRequest(t, app, http.MethodPost, fmt.Sprintf("/api/bookmarks/%d", id), readerToken, nil)
		assert.Equal(t, http.StatusCreated, status)

		status, body := doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/bookmarks/%d", id), readerToken, nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, body["bookmarked"])
	})

	t.Run("Double add keeps a single entry", func(t *testing.T) {
		status, _ := doRequest(t, app, http.MethodPost, fmt.Sprintf("/api/bookmarks/%d", id), readerToken, nil)
		assert.Equal(t, http.StatusCreated, status)

		var count int64
		require.NoError(t, s.db.Model(&models.Bookmark{}).
			Where("recipe_id = ?", id).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Bookmarks are per-user", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/bookmarks/%d", id), chefToken, nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, false, body["bookmarked"])
	})

	t.Run("List includes author username", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodGet, "/api/bookmarks/", readerToken, nil)
		require.Equal(t, http.StatusOK, status)
		recipes := body["recipes"].([]any)
		require.Len(t, recipes, 1)
		recipe := recipes[0].(map[string]any)
		assert.Equal(t, "Saved Recipe", recipe["title"])
		assert.Equal(t, "bookchef", recipe["author"])
	})

	t.Run("Remove bookmark", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/bookmarks/%d", id), readerToken, nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, body["ok"])

		status, body = doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/bookmarks/%d", id), readerToken, nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, false, body["bookmarked"])
	})

	t.Run("Removing a bookmark that was never set is a no-op", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/bookmarks/%d", id), readerToken, nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, body["ok"])
	})

	t.Run("Bookmarking a missing recipe", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPost, "/api/bookmarks/99999", readerToken, nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "NOT_FOUND", body["code"])
	})
}
