package access

import (
	"fmt"

	"multisuministros-codes/internal/domain/errs"
	"multisuministros-codes/internal/domain/user"
	"multisuministros-codes/pkg/session"
)

var (
	ErrLoginRequired = fmt.Errorf("login required: %w", errs.ErrUnauthorized)
	ErrRoleRequired  = fmt.Errorf("role not allowed: %w", errs.ErrForbidden)
)

// Require passes when s is authenticated and holds one of roles. An empty
// roles list only checks authentication.
func Require(s session.Session, roles ...user.Role) error {
	if !s.IsAuthenticated {
		return ErrLoginRequired
	}
	if len(roles) == 0 {
		return nil
	}
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	if !s.HasRole(names...) {
		return ErrRoleRequired
	}
	return nil
}
