package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novelhub/backend/models"
)

func TestApproveNovelSuperuserOnly(t *testing.T) {
	env := newTestEnv(t)
	uploader := env.createUser(t, "uploader", models.RoleUser)
	superuser := env.createUser(t, "admin", models.RoleSuperuser)
	category := env.createCategory(t, "Fantasy")
	pending := env.createNovel(t, uploader, category, "Pending Saga", false)

	path := "/api/admin/novels/" + itoa(pending.ID) + "/approve"

	resp := env.request(t, http.MethodPost, path, "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// The uploader may not approve their own novel.
	resp = env.request(t, http.MethodPost, path, env.tokenFor(t, uploader), nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = env.request(t, http.MethodPost, path, env.tokenFor(t, superuser), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var reloaded models.Novel
	require.NoError(t, env.DB.First(&reloaded, pending.ID).Error)
	assert.True(t, reloaded.IsApproved)

	// Approving twice is a no-op, not an error.
	resp = env.request(t, http.MethodPost, path, env.tokenFor(t, superuser), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestApproveNovelMakesItPublic(t *testing.T) {
	env := newTestEnv(t)
	uploader := env.createUser(t, "uploader", models.RoleUser)
	superuser := env.createUser(t, "admin", models.RoleSuperuser)
	category := env.createCategory(t, "Fantasy")
	pending := env.createNovel(t, uploader, category, "Pending Saga", false)

	resp := env.request(t, http.MethodGet, "/api/novels", "", nil)
	var novels []models.Novel
	decodeData(t, resp, &novels)
	assert.Empty(t, novels)

	resp = env.request(t, http.MethodPost, "/api/admin/novels/"+itoa(pending.ID)+"/approve", env.tokenFor(t, superuser), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/api/novels", "", nil)
	decodeData(t, resp, &novels)
	require.Len(t, novels, 1)
	assert.Equal(t, "Pending Saga", novels[0].Title)
}

func TestApproveChapter(t *testing.T) {
	env := newTestEnv(t)
	uploader := env.createUser(t, "uploader", models.RoleUser)
	superuser := env.createUser(t, "admin", models.RoleSuperuser)
	category := env.createCategory(t, "Fantasy")
	novel := env.createNovel(t, uploader, category, "Saga", true)
	pending := env.createChapter(t, novel, 1, false)

	path := "/api/admin/chapters/" + itoa(pending.ID) + "/approve"

	resp := env.request(t, http.MethodPost, path, env.tokenFor(t, uploader), nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = env.request(t, http.MethodPost, path, env.tokenFor(t, superuser), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Now readable anonymously.
	resp = env.request(t, http.MethodGet, "/api/chapters/"+itoa(pending.ID), "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = env.request(t, http.MethodPost, path, env.tokenFor(t, superuser), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestApproveMissingEntity(t *testing.T) {
	env := newTestEnv(t)
	superuser := env.createUser(t, "admin", models.RoleSuperuser)

	resp := env.request(t, http.MethodPost, "/api/admin/novels/9999/approve", env.tokenFor(t, superuser), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = env.request(t, http.MethodPost, "/api/admin/chapters/9999/approve", env.tokenFor(t, superuser), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
