package types

import "github.com/trackr-dev/trackr/internal/models"

// ContextUserKey is where the auth middleware stores the Identity on
// the gin context.
const ContextUserKey = "user"

// Identity is the caller resolved from a validated token. It is
// threaded explicitly into every service call; services never read
// ambient request state.
type Identity struct {
	UserID   string
	Username string
	FullName string
	Role     models.Role
}
