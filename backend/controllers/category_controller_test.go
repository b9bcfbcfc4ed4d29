package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novelhub/backend/models"
)

func TestListCategories(t *testing.T) {
	env := newTestEnv(t)
	env.createCategory(t, "SciFi")
	env.createCategory(t, "Fantasy")

	resp := env.request(t, http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var categories []models.Category
	decodeData(t, resp, &categories)
	require.Len(t, categories, 2)
	assert.Equal(t, "Fantasy", categories[0].Name)
	assert.Equal(t, "SciFi", categories[1].Name)
}
