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

type CommentController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCommentController(db *gorm.DB, cfg *config.Config) *CommentController {
	return &CommentController{DB: db, Cfg: cfg}
}

// CommentRequest defines the request body for adding a comment
type CommentRequest struct {
	Content string `json:"content"`
}

// AddComment godoc
// @Summary Add a comment to a chapter
// @Description Stores a reader comment, at most 500 characters
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Chapter ID"
// @Param input body CommentRequest true "Comment data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /chapters/{id}/comments [post]
func (cc *CommentController) AddComment(c *fiber.Ctx) error {
	user := currentUser(c)

	chapterID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid chapter ID")
	}

	// Pending chapters accept comments too, so their uploader can discuss
	// them before approval.
	var chapter models.Chapter
	if err := cc.DB.First(&chapter, chapterID).Error; err != nil {
		return utils.NotFound(c, "Chapter not found")
	}

	var input CommentRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	content, err := policy.ValidateComment(input.Content)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	comment := models.Comment{
		ChapterID:  chapter.ID,
		UserID:     user.ID,
		UserName:   user.Username,
		Content:    content,
		IsApproved: true,
	}
	if err := cc.DB.Create(&comment).Error; err != nil {
		return utils.InternalServerError(c, "Could not create comment")
	}

	return utils.Created(c, comment)
}

// DeleteComment removes a comment. Only its author or a superuser may.
func (cc *CommentController) DeleteComment(c *fiber.Ctx) error {
	commentID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid comment ID")
	}

	var comment models.Comment
	if err := cc.DB.First(&comment, commentID).Error; err != nil {
		return utils.NotFound(c, "Comment not found")
	}

	if !policy.CanDeleteComment(&comment, viewerOf(c)) {
		return utils.Forbidden(c, "You may not delete this comment")
	}

	if err := cc.DB.Unscoped().Delete(&comment).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete comment")
	}

	return utils.NoContent(c)
}
