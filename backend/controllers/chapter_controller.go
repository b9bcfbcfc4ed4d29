package controllers

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"novelhub/backend/config"
	"novelhub/backend/models"
	"novelhub/backend/policy"
	"novelhub/backend/utils"
)

type ChapterController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewChapterController(db *gorm.DB, cfg *config.Config) *ChapterController {
	return &ChapterController{DB: db, Cfg: cfg}
}

// ChapterRequest defines the request body for creating or editing a chapter.
// SortNum is a json.Number so a non-integer value can be reported against the
// caller's input context instead of failing as opaque JSON.
type ChapterRequest struct {
	Title   string      `json:"title"`
	SortNum json.Number `json:"sort_num"`
	Content string      `json:"content"`
}

// ListChapters returns a novel's chapters in reading order. Pending chapters
// are included only for the novel's uploader and superusers.
func (cc *ChapterController) ListChapters(c *fiber.Ctx) error {
	novelID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid novel ID")
	}

	var novel models.Novel
	if err := cc.DB.First(&novel, novelID).Error; err != nil {
		return utils.NotFound(c, "Novel not found")
	}

	viewer := viewerOf(c)
	if !policy.CanViewNovel(&novel, viewer) {
		return utils.NotFound(c, "Novel not found")
	}

	var chapters []models.Chapter
	if err := cc.DB.Where("novel_id = ?", novel.ID).Order("sort_num").Find(&chapters).Error; err != nil {
		return utils.InternalServerError(c, "Could not fetch chapters")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"novel":    novel,
		"chapters": policy.VisibleChapters(chapters, &novel, viewer),
	})
}

// CreateChapter adds a pending chapter to a novel the caller uploaded.
func (cc *ChapterController) CreateChapter(c *fiber.Ctx) error {
	user := currentUser(c)

	novelID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid novel ID")
	}

	var novel models.Novel
	if err := cc.DB.First(&novel, novelID).Error; err != nil {
		return utils.NotFound(c, "Novel not found")
	}

	if !policy.CanAddChapter(&novel, policy.ViewerFor(user)) {
		return utils.Forbidden(c, "Only the uploader may add chapters to this novel")
	}

	siblings, err := cc.siblingChapters(novel.ID)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch chapters")
	}
	orderingContext := sortNumContext(siblings)

	var input ChapterRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON", orderingContext)
	}

	if input.Title == "" || input.Content == "" || input.SortNum == "" {
		return utils.BadRequest(c, "Title, sort number and content must not be empty", orderingContext)
	}

	sortNum64, err := input.SortNum.Int64()
	if err != nil {
		return utils.BadRequest(c, "Sort number must be an integer", orderingContext)
	}
	sortNum := int(sortNum64)

	if err := policy.ValidateSortNum(siblings, sortNum, 0); err != nil {
		return utils.BadRequest(c, err.Error(), orderingContext)
	}

	chapter := models.Chapter{
		NovelID:    novel.ID,
		Title:      input.Title,
		SortNum:    sortNum,
		Content:    input.Content,
		UploaderID: user.ID,
		IsApproved: false,
	}
	if err := cc.DB.Create(&chapter).Error; err != nil {
		// The pre-check above is advisory; the unique index on
		// (novel_id, sort_num) is what a concurrent writer runs into.
		if isDuplicateKey(err) {
			return utils.BadRequest(c, policy.ErrDuplicateSortNum.Error(), orderingContext)
		}
		return utils.InternalServerError(c, "Could not create chapter")
	}

	return utils.Created(c, chapter)
}

// GetChapter returns a chapter with its approved comments, paragraph-split
// content and previous/next navigation over the viewer's visible set. A
// chapter the viewer may not see reads as not-found.
func (cc *ChapterController) GetChapter(c *fiber.Ctx) error {
	chapterID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid chapter ID")
	}

	var chapter models.Chapter
	if err := cc.DB.First(&chapter, chapterID).Error; err != nil {
		return utils.NotFound(c, "Chapter not found")
	}

	viewer := viewerOf(c)
	if !policy.CanViewChapter(&chapter, viewer) {
		return utils.NotFound(c, "Chapter not found")
	}

	var novel models.Novel
	if err := cc.DB.First(&novel, chapter.NovelID).Error; err != nil {
		return utils.NotFound(c, "Novel not found")
	}

	siblings, err := cc.siblingChapters(novel.ID)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch chapters")
	}
	prev, next := policy.Neighbors(policy.VisibleChapters(siblings, &novel, viewer), &chapter)

	var comments []models.Comment
	if err := cc.DB.Where("chapter_id = ? AND is_approved = ?", chapter.ID, true).Find(&comments).Error; err != nil {
		return utils.InternalServerError(c, "Could not fetch comments")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"chapter":      chapter,
		"novel":        novel,
		"paragraphs":   splitParagraphs(chapter.Content),
		"comments":     comments,
		"prev_chapter": prev,
		"next_chapter": next,
	})
}

// UpdateChapter edits a chapter and sends it back for re-review.
func (cc *ChapterController) UpdateChapter(c *fiber.Ctx) error {
	chapterID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid chapter ID")
	}

	var chapter models.Chapter
	if err := cc.DB.First(&chapter, chapterID).Error; err != nil {
		return utils.NotFound(c, "Chapter not found")
	}

	if !policy.CanManageChapter(&chapter, viewerOf(c)) {
		return utils.Forbidden(c, "You may not edit this chapter")
	}

	siblings, err := cc.siblingChapters(chapter.NovelID)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch chapters")
	}
	orderingContext := sortNumContext(siblings)

	var input ChapterRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON", orderingContext)
	}

	if input.Title == "" || input.Content == "" || input.SortNum == "" {
		return utils.BadRequest(c, "Title, sort number and content must not be empty", orderingContext)
	}

	sortNum64, err := input.SortNum.Int64()
	if err != nil {
		return utils.BadRequest(c, "Sort number must be an integer", orderingContext)
	}
	sortNum := int(sortNum64)

	if err := policy.ValidateSortNum(siblings, sortNum, chapter.ID); err != nil {
		return utils.BadRequest(c, err.Error(), orderingContext)
	}

	chapter.Title = input.Title
	chapter.SortNum = sortNum
	chapter.Content = input.Content
	policy.TouchChapter(&chapter)

	if err := cc.DB.Save(&chapter).Error; err != nil {
		if isDuplicateKey(err) {
			return utils.BadRequest(c, policy.ErrDuplicateSortNum.Error(), orderingContext)
		}
		return utils.InternalServerError(c, "Could not update chapter")
	}

	return utils.Success(c, fiber.StatusOK, chapter)
}

// DeleteChapter removes a chapter and its comments in one transaction.
func (cc *ChapterController) DeleteChapter(c *fiber.Ctx) error {
	chapterID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid chapter ID")
	}

	var chapter models.Chapter
	if err := cc.DB.First(&chapter, chapterID).Error; err != nil {
		return utils.NotFound(c, "Chapter not found")
	}

	if !policy.CanManageChapter(&chapter, viewerOf(c)) {
		return utils.Forbidden(c, "You may not delete this chapter")
	}

	// Hard delete: a soft-deleted chapter would keep its sort number
	// reserved in the unique index.
	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("chapter_id = ?", chapter.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&chapter).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not delete chapter")
	}

	return utils.NoContent(c)
}

func (cc *ChapterController) siblingChapters(novelID uint) ([]models.Chapter, error) {
	var chapters []models.Chapter
	err := cc.DB.Where("novel_id = ?", novelID).Order("sort_num").Find(&chapters).Error
	return chapters, err
}

// sortNumContext builds the input context echoed back on ordering failures
// so the caller can pick a free number without another round trip.
func sortNumContext(siblings []models.Chapter) fiber.Map {
	existing := make([]int, 0, len(siblings))
	for _, ch := range siblings {
		existing = append(existing, ch.SortNum)
	}
	return fiber.Map{
		"existing_sort_nums": existing,
		"next_sort_num":      policy.NextSortNum(existing),
	}
}

func splitParagraphs(content string) []string {
	paragraphs := make([]string, 0)
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") || strings.Contains(msg, "duplicate key")
}
