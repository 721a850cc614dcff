// Package owner maps an authentication context to the owner key that
// scopes all records.
package owner

import "strings"

// Public is the owner key of the shared guest workspace.
const Public = "public"

// Identity is the authentication context reported by the identity provider.
type Identity struct {
	SignedIn bool
	UserID   string
}

// Anonymous is the identity of a visitor who is not signed in.
var Anonymous = Identity{}

// Resolve returns the owner key for the identity.
//
// Signed in users are scoped to their user ID. Everyone else, including
// a signed in identity without a user ID, shares the public workspace.
func Resolve(identity Identity) string {
	id := strings.TrimSpace(identity.UserID)
	if !identity.SignedIn || id == "" {
		return Public
	}

	return id
}
