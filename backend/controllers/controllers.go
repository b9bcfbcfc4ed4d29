package controllers

import (
	"github.com/gofiber/fiber/v2"

	"novelhub/backend/middleware"
	"novelhub/backend/models"
	"novelhub/backend/policy"
)

// currentUser returns the user loaded by the auth middleware, or nil for
// anonymous requests.
func currentUser(c *fiber.Ctx) *models.User {
	if user, ok := c.Locals(middleware.UserKey).(*models.User); ok {
		return user
	}
	return nil
}

func viewerOf(c *fiber.Ctx) policy.Viewer {
	return policy.ViewerFor(currentUser(c))
}
