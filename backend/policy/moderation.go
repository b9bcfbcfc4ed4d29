package policy

import "novelhub/backend/models"

// Approve moves an entity's approval flag from pending to approved. Only a
// superuser may approve; approving an already-approved entity is a no-op.
func Approve(v Viewer, approved *bool) error {
	if !v.Superuser {
		return ErrNotSuperuser
	}
	*approved = true
	return nil
}

// TouchChapter records a content edit on a chapter: any edit sends it back
// for re-review. Novels keep their approval across edits; the asymmetry
// matches the reference behavior (see DESIGN.md).
func TouchChapter(ch *models.Chapter) {
	ch.IsApproved = false
}
