package controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"novelhub/backend/config"
	"novelhub/backend/models"
	"novelhub/backend/policy"
	"novelhub/backend/utils"
)

type NovelController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewNovelController(db *gorm.DB, cfg *config.Config) *NovelController {
	return &NovelController{DB: db, Cfg: cfg}
}

// NovelRequest defines the request body for creating or editing a novel
type NovelRequest struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category uint   `json:"category"`
	Intro    string `json:"intro"`
}

// ListNovels godoc
// @Summary List approved novels
// @Description Returns approved novels, optionally filtered by category and keyword
// @Tags novels
// @Produce json
// @Param category query int false "Category ID"
// @Param keyword query string false "Keyword matched against title and author"
// @Success 200 {object} utils.SuccessResponse
// @Router /novels [get]
func (nc *NovelController) ListNovels(c *fiber.Ctx) error {
	query := nc.DB.Preload("Category").Where("is_approved = ?", true)

	// A malformed category value is treated as unset, not an error.
	if categoryID, err := strconv.Atoi(c.Query("category")); err == nil {
		query = query.Where("category_id = ?", categoryID)
	}

	if keyword := strings.TrimSpace(c.Query("keyword")); keyword != "" {
		pattern := "%" + strings.ToLower(keyword) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ?", pattern, pattern)
	}

	var novels []models.Novel
	if err := query.Find(&novels).Error; err != nil {
		return utils.InternalServerError(c, "Could not fetch novels")
	}

	return utils.Success(c, fiber.StatusOK, novels)
}

// CreateNovel creates a pending novel owned by the caller.
func (nc *NovelController) CreateNovel(c *fiber.Ctx) error {
	user := currentUser(c)

	var input NovelRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Title == "" || input.Author == "" || input.Category == 0 {
		return utils.BadRequest(c, "Title, author and category must not be empty")
	}

	var category models.Category
	if err := nc.DB.First(&category, input.Category).Error; err != nil {
		return utils.NotFound(c, "Category not found")
	}

	novel := models.Novel{
		Title:      input.Title,
		Author:     input.Author,
		CategoryID: category.ID,
		Intro:      input.Intro,
		UploaderID: user.ID,
		IsApproved: false,
	}
	if err := nc.DB.Create(&novel).Error; err != nil {
		return utils.InternalServerError(c, "Could not create novel")
	}

	return utils.Created(c, novel)
}

// GetNovel returns a single novel. Pending novels resolve only for their
// uploader and superusers; everyone else gets not-found.
func (nc *NovelController) GetNovel(c *fiber.Ctx) error {
	novelID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid novel ID")
	}

	var novel models.Novel
	if err := nc.DB.Preload("Category").First(&novel, novelID).Error; err != nil {
		return utils.NotFound(c, "Novel not found")
	}

	if !policy.CanViewNovel(&novel, viewerOf(c)) {
		return utils.NotFound(c, "Novel not found")
	}

	return utils.Success(c, fiber.StatusOK, novel)
}

// UpdateNovel edits a novel's fields. Approval is untouched: novel edits do
// not require re-review.
func (nc *NovelController) UpdateNovel(c *fiber.Ctx) error {
	novelID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid novel ID")
	}

	var novel models.Novel
	if err := nc.DB.First(&novel, novelID).Error; err != nil {
		return utils.NotFound(c, "Novel not found")
	}

	if !policy.CanManageNovel(&novel, viewerOf(c)) {
		return utils.Forbidden(c, "You may not edit this novel")
	}

	var input NovelRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Title == "" || input.Author == "" || input.Category == 0 {
		return utils.BadRequest(c, "Title, author and category must not be empty")
	}

	var category models.Category
	if err := nc.DB.First(&category, input.Category).Error; err != nil {
		return utils.NotFound(c, "Category not found")
	}

	novel.Title = input.Title
	novel.Author = input.Author
	novel.CategoryID = category.ID
	novel.Intro = input.Intro
	if err := nc.DB.Save(&novel).Error; err != nil {
		return utils.InternalServerError(c, "Could not update novel")
	}

	return utils.Success(c, fiber.StatusOK, novel)
}

// DeleteNovel removes a novel together with its chapters and their comments
// in one transaction.
func (nc *NovelController) DeleteNovel(c *fiber.Ctx) error {
	novelID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid novel ID")
	}

	var novel models.Novel
	if err := nc.DB.First(&novel, novelID).Error; err != nil {
		return utils.NotFound(c, "Novel not found")
	}

	if !policy.CanManageNovel(&novel, viewerOf(c)) {
		return utils.Forbidden(c, "You may not delete this novel")
	}

	// Deletes are hard: soft-deleted chapters would keep holding their
	// (novel_id, sort_num) slot in the unique index.
	err = nc.DB.Transaction(func(tx *gorm.DB) error {
		var chapterIDs []uint
		if err := tx.Model(&models.Chapter{}).Where("novel_id = ?", novel.ID).Pluck("id", &chapterIDs).Error; err != nil {
			return err
		}
		if len(chapterIDs) > 0 {
			if err := tx.Unscoped().Where("chapter_id IN ?", chapterIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("novel_id = ?", novel.ID).Delete(&models.Chapter{}).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(&novel).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not delete novel")
	}

	return utils.NoContent(c)
}
