package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"novelhub/backend/config"
	"novelhub/backend/controllers"
	"novelhub/backend/middleware"
	"novelhub/backend/utils"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, revoker utils.TokenRevoker) {
	// Middleware
	authRequired := middleware.AuthMiddleware(db, cfg, revoker)
	optionalAuth := middleware.OptionalAuth(db, cfg, revoker)
	superuserOnly := middleware.SuperuserMiddleware()

	// Auth routes
	authController := controllers.NewAuthController(db, cfg, revoker)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Post("/api/auth/logout", authRequired, authController.Logout)

	// Category routes
	categoryController := controllers.NewCategoryController(db, cfg)
	app.Get("/api/categories", categoryController.ListCategories)

	// Novel routes
	novelController := controllers.NewNovelController(db, cfg)
	app.Get("/api/novels", novelController.ListNovels)
	app.Post("/api/novels", authRequired, novelController.CreateNovel)
	app.Get("/api/novels/:id", optionalAuth, novelController.GetNovel)
	app.Put("/api/novels/:id", authRequired, novelController.UpdateNovel)
	app.Delete("/api/novels/:id", authRequired, novelController.DeleteNovel)

	// Chapter routes
	chapterController := controllers.NewChapterController(db, cfg)
	app.Get("/api/novels/:id/chapters", optionalAuth, chapterController.ListChapters)
	app.Post("/api/novels/:id/chapters", authRequired, chapterController.CreateChapter)
	app.Get("/api/chapters/:id", optionalAuth, chapterController.GetChapter)
	app.Put("/api/chapters/:id", authRequired, chapterController.UpdateChapter)
	app.Delete("/api/chapters/:id", authRequired, chapterController.DeleteChapter)

	// Comment routes
	commentController := controllers.NewCommentController(db, cfg)
	app.Post("/api/chapters/:id/comments", authRequired, commentController.AddComment)
	app.Delete("/api/comments/:id", authRequired, commentController.DeleteComment)

	// Moderation routes
	moderationController := controllers.NewModerationController(db, cfg)
	admin := app.Group("/api/admin", authRequired, superuserOnly)
	admin.Post("/novels/:id/approve", moderationController.ApproveNovel)
	admin.Post("/chapters/:id/approve", moderationController.ApproveChapter)
}
