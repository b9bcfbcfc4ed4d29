package policy

import "novelhub/backend/models"

// Viewer is the identity a request acts as. The zero value is an anonymous
// visitor. Handlers build a Viewer at the boundary and pass it explicitly;
// nothing in this package reads ambient request state.
type Viewer struct {
	ID            uint
	Superuser     bool
	Authenticated bool
}

// ViewerFor builds a Viewer from an optional authenticated user.
func ViewerFor(u *models.User) Viewer {
	if u == nil {
		return Viewer{}
	}
	return Viewer{ID: u.ID, Superuser: u.IsSuperuser(), Authenticated: true}
}
