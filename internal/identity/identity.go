// Package identity carries the acting identity through every domain
// operation. It replaces ambient request-scoped user state with an explicit
// value: either Anonymous or a concrete authenticated user.
package identity

// Identity is the acting user for one request. The zero value is Anonymous.
type Identity struct {
	ID            uint
	Username      string
	Authenticated bool
}

// Anonymous is the identity of an unauthenticated request.
var Anonymous = Identity{}

// Authenticated builds the identity of a signed-in user.
func Authenticated(id uint, username string) Identity {
	return Identity{ID: id, Username: username, Authenticated: true}
}

func (i Identity) IsAuthenticated() bool { return i.Authenticated }
