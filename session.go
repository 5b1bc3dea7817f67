package safepass

import (
	"github.com/Saadoxyz/safepass-go/internal/types"
	"github.com/Saadoxyz/safepass-go/visitor"
)

// Session holds the bearer token and user identity returned by Login. It is
// immutable; Logout discards it from the client rather than mutating it.
type Session struct {
	token string
	user  types.User
}

// Token returns the bearer token attached to outgoing requests.
func (s *Session) Token() string { return s.token }

// Authenticated reports whether the session carries a usable token. A nil
// receiver is allowed and reports false.
func (s *Session) Authenticated() bool { return s != nil && s.token != "" }

// User returns the authenticated user's profile as known at login time.
func (s *Session) User() types.User { return s.user }

// Role returns the authenticated user's role.
func (s *Session) Role() visitor.Role { return s.user.Role }
