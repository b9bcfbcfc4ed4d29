package middleware

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"novelhub/backend/config"
	"novelhub/backend/models"
	"novelhub/backend/utils"
)

// UserKey is the locals key holding the authenticated *models.User.
const UserKey = "user"

func loadUser(c *fiber.Ctx, db *gorm.DB, cfg *config.Config, revoker utils.TokenRevoker) (*models.User, error) {
	token := c.Get("Authorization")
	if token == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Missing authorization token")
	}

	userID, _, err := utils.ParseToken(token, cfg)
	if err != nil {
		return nil, err
	}

	revoked, err := revoker.IsRevoked(token)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Token revoked")
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unknown user")
	}
	return &user, nil
}

// AuthMiddleware rejects requests without a valid, unrevoked token and loads
// the authenticated user into locals.
func AuthMiddleware(db *gorm.DB, cfg *config.Config, revoker utils.TokenRevoker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := loadUser(c, db, cfg, revoker)
		if err != nil {
			return utils.Unauthorized(c, "Login required")
		}
		c.Locals(UserKey, user)
		return c.Next()
	}
}

// OptionalAuth loads the user when a valid token is present and continues
// anonymously otherwise. Read endpoints use it so visibility checks can tell
// uploaders and superusers apart from everyone else.
func OptionalAuth(db *gorm.DB, cfg *config.Config, revoker utils.TokenRevoker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if user, err := loadUser(c, db, cfg, revoker); err == nil {
			c.Locals(UserKey, user)
		}
		return c.Next()
	}
}

// SuperuserMiddleware must run after AuthMiddleware.
func SuperuserMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(UserKey).(*models.User)
		if !ok {
			return utils.Unauthorized(c, "Login required")
		}
		if !user.IsSuperuser() {
			return utils.Forbidden(c, "Superuser access required")
		}
		return c.Next()
	}
}
