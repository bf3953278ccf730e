package policy

import "errors"

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("permission denied")
)

// Actor is the identity on whose behalf a core operation runs.
// The zero value is the unauthenticated actor.
type Actor struct {
	UserID        int
	Authenticated bool
	Admin         bool
}

func NewActor(userID int, admin bool) Actor {
	return Actor{UserID: userID, Authenticated: true, Admin: admin}
}
