package server

import (
	"net/http"
	"testing"

	"holocron/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedFavoriteFixtures(t *testing.T, app *fiber.App) {
	t.Helper()
	for i, u := range []map[string]any{
		{"email": "u1@sw.com", "username": "u1", "password": "pw1234"},
		{"email": "u2@sw.com", "username": "u2", "password": "pw1234"},
	} {
		resp, _ := doJSON(t, app, http.MethodPost, "/users", u)
		require.Equal(t, http.StatusCreated, resp.StatusCode, "fixture user %d", i+1)
	}
	resp, _ := doJSON(t, app, http.MethodPost, "/planets", map[string]any{
		"name": "Tatooine", "climate": "arid", "terrain": "desert", "population": 200000,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPost, "/characters", map[string]any{
		"name": "Leia Organa", "gender": "female", "height": 150, "mass": 49,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPost, "/vehicles", map[string]any{
		"name": "Snowspeeder", "model": "t-47 airspeeder", "cargo_capacity": 10, "length": 4.5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func countFavorites(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).Count(&count).Error)
	return count
}

func TestAddFavorite(t *testing.T) {
	app, db := setupTestApp(t)
	seedFavoriteFixtures(t, app)

	t.Run("planet favorite succeeds", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/favorite/planet/1", map[string]any{
			"user_id": 1,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "Planeta 1 agregado a los favoritos del usuario 1", body["msg"])
		assert.EqualValues(t, 1, countFavorites(t, db))
	})

	t.Run("identical edge again is a duplicate", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/favorite/planet/1", map[string]any{
			"user_id": 1,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Planeta 1 ya está en los favoritos del usuario 1", body["error"])
		assert.EqualValues(t, 1, countFavorites(t, db), "row count must be unchanged")
	})

	t.Run("same target for another user is fine", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/favorite/planet/1", map[string]any{
			"user_id": 2,
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("same user may favorite all three types", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/favorite/character/1", map[string]any{
			"user_id": 1,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp, _ = doJSON(t, app, http.MethodPost, "/favorite/vehicle/1", map[string]any{
			"user_id": 1,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("nonexistent target is not found and writes nothing", func(t *testing.T) {
		before := countFavorites(t, db)
		resp, body := doJSON(t, app, http.MethodPost, "/favorite/character/99", map[string]any{
			"user_id": 1,
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Personaje con id 99 no encontrado", body["error"])
		assert.Equal(t, before, countFavorites(t, db))
	})

	t.Run("nonexistent user is not found", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/favorite/planet/1", map[string]any{
			"user_id": 33,
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("missing user_id is a bad request", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/favorite/planet/1", map[string]any{
			"user_id": 0,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "El campo 'user_id' es obligatorio", body["error"])
	})

	t.Run("missing body is a bad request", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/favorite/planet/1", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetUserFavoritesExpanded(t *testing.T) {
	app, _ := setupTestApp(t)
	seedFavoriteFixtures(t, app)

	doJSON(t, app, http.MethodPost, "/favorite/planet/1", map[string]any{"user_id": 1})
	doJSON(t, app, http.MethodPost, "/favorite/character/1", map[string]any{"user_id": 1})

	resp, body := doJSON(t, app, http.MethodGet, "/users/1/favorites", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "u1@sw.com", user["email"])

	favorites, ok := body["favorites"].([]any)
	require.True(t, ok)
	require.Len(t, favorites, 2)

	first := favorites[0].(map[string]any)
	assert.Equal(t, "planet", first["type"])
	item, ok := first["item"].(map[string]any)
	require.True(t, ok, "favorite must nest the favorited entity")
	assert.Equal(t, "Tatooine", item["name"])

	second := favorites[1].(map[string]any)
	assert.Equal(t, "character", second["type"])

	t.Run("user without favorites gets an empty list", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/users/2/favorites", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		favorites, ok := body["favorites"].([]any)
		require.True(t, ok)
		assert.Empty(t, favorites)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/users/42/favorites", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteUserCascadesFavorites(t *testing.T) {
	app, db := setupTestApp(t)
	seedFavoriteFixtures(t, app)

	doJSON(t, app, http.MethodPost, "/favorite/planet/1", map[string]any{"user_id": 1})
	doJSON(t, app, http.MethodPost, "/favorite/vehicle/1", map[string]any{"user_id": 1})
	require.EqualValues(t, 2, countFavorites(t, db))

	resp, _ := doJSON(t, app, http.MethodDelete, "/users/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Zero(t, countFavorites(t, db), "favorites must not outlive their user")
}

func TestDeletePlanetCascadesFavorites(t *testing.T) {
	app, db := setupTestApp(t)
	seedFavoriteFixtures(t, app)

	doJSON(t, app, http.MethodPost, "/favorite/planet/1", map[string]any{"user_id": 1})
	doJSON(t, app, http.MethodPost, "/favorite/character/1", map[string]any{"user_id": 1})

	resp, _ := doJSON(t, app, http.MethodDelete, "/planets/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.EqualValues(t, 1, countFavorites(t, db), "only the planet edge goes away")
}
