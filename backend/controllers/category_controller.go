package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"novelhub/backend/config"
	"novelhub/backend/models"
	"novelhub/backend/utils"
)

type CategoryController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCategoryController(db *gorm.DB, cfg *config.Config) *CategoryController {
	return &CategoryController{DB: db, Cfg: cfg}
}

// ListCategories returns all categories, used to populate the catalog filter.
func (cc *CategoryController) ListCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := cc.DB.Order("name").Find(&categories).Error; err != nil {
		return utils.InternalServerError(c, "Could not fetch categories")
	}
	return utils.Success(c, fiber.StatusOK, categories)
}
