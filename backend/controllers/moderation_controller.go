package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"novelhub/backend/config"
	"novelhub/backend/models"
	"novelhub/backend/policy"
	"novelhub/backend/utils"
)

type ModerationController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewModerationController(db *gorm.DB, cfg *config.Config) *ModerationController {
	return &ModerationController{DB: db, Cfg: cfg}
}

// ApproveNovel marks a novel as approved. Re-approving is a no-op.
func (mc *ModerationController) ApproveNovel(c *fiber.Ctx) error {
	novelID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid novel ID")
	}

	var novel models.Novel
	if err := mc.DB.First(&novel, novelID).Error; err != nil {
		return utils.NotFound(c, "Novel not found")
	}

	if err := policy.Approve(viewerOf(c), &novel.IsApproved); err != nil {
		return utils.Forbidden(c, err.Error())
	}

	if err := mc.DB.Model(&novel).Update("is_approved", true).Error; err != nil {
		return utils.InternalServerError(c, "Could not approve novel")
	}

	return utils.Success(c, fiber.StatusOK, novel)
}

// ApproveChapter marks a chapter as approved. Re-approving is a no-op.
func (mc *ModerationController) ApproveChapter(c *fiber.Ctx) error {
	chapterID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid chapter ID")
	}

	var chapter models.Chapter
	if err := mc.DB.First(&chapter, chapterID).Error; err != nil {
		return utils.NotFound(c, "Chapter not found")
	}

	if err := policy.Approve(viewerOf(c), &chapter.IsApproved); err != nil {
		return utils.Forbidden(c, err.Error())
	}

	if err := mc.DB.Model(&chapter).Update("is_approved", true).Error; err != nil {
		return utils.InternalServerError(c, "Could not approve chapter")
	}

	return utils.Success(c, fiber.StatusOK, chapter)
}
