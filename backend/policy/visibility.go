package policy

import "novelhub/backend/models"

// CanViewNovel reports whether the viewer may see the novel at all. Approved
// novels are public; pending ones are visible only to their uploader and to
// superusers.
func CanViewNovel(n *models.Novel, v Viewer) bool {
	if n.IsApproved {
		return true
	}
	return v.Superuser || (v.Authenticated && v.ID == n.UploaderID)
}

// CanViewChapter follows the same rule as CanViewNovel. Callers must surface
// a failed check as not-found, not forbidden.
func CanViewChapter(ch *models.Chapter, v Viewer) bool {
	if ch.IsApproved {
		return true
	}
	return v.Superuser || (v.Authenticated && v.ID == ch.UploaderID)
}

// CanManageNovel reports whether the viewer may edit or delete the novel.
func CanManageNovel(n *models.Novel, v Viewer) bool {
	return v.Authenticated && (v.Superuser || v.ID == n.UploaderID)
}

// CanManageChapter reports whether the viewer may edit or delete the chapter.
func CanManageChapter(ch *models.Chapter, v Viewer) bool {
	return v.Authenticated && (v.Superuser || v.ID == ch.UploaderID)
}

// CanAddChapter is stricter than CanManageNovel: only the novel's uploader
// may add chapters.
func CanAddChapter(n *models.Novel, v Viewer) bool {
	return v.Authenticated && v.ID == n.UploaderID
}

// CanDeleteComment allows the comment's author and superusers.
func CanDeleteComment(c *models.Comment, v Viewer) bool {
	return v.Authenticated && (v.Superuser || v.ID == c.UserID)
}

// CanSeeAllChapters reports whether a novel's chapter list includes pending
// chapters for this viewer.
func CanSeeAllChapters(n *models.Novel, v Viewer) bool {
	return v.Superuser || (v.Authenticated && v.ID == n.UploaderID)
}

// VisibleChapters filters a novel's chapters down to what the viewer may see.
func VisibleChapters(chapters []models.Chapter, n *models.Novel, v Viewer) []models.Chapter {
	if CanSeeAllChapters(n, v) {
		return chapters
	}
	visible := make([]models.Chapter, 0, len(chapters))
	for _, ch := range chapters {
		if ch.IsApproved {
			visible = append(visible, ch)
		}
	}
	return visible
}
