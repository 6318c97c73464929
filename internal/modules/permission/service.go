package permission

import (
	"context"
	"strings"

	"equipshare/internal/domain"
)

// Service answers capability questions of the form "may this role perform
// this action over this resource scope". Denial is a boolean result, not an
// error; errors mean the grants could not be consulted at all.
type Service struct {
	perms PermissionRepository
}

func NewService(perms PermissionRepository) *Service {
	return &Service{perms: perms}
}

// Check reports whether the role holds a grant covering (action, scope).
// Scope "*" means "any instance of this resource class" and is only
// satisfied by an unrestricted grant.
func (s *Service) Check(ctx context.Context, role domain.Role, action, scope string) (bool, error) {
	grants, err := s.perms.ListByRole(ctx, role)
	if err != nil {
		return false, err
	}

	for _, g := range grants {
		if match(g.Action, action) && match(g.Resource, scope) {
			return true, nil
		}
	}
	return false, nil
}

// Enforce turns a negative Check into ErrForbidden for mutation paths that
// must not proceed.
func (s *Service) Enforce(ctx context.Context, role domain.Role, action, scope string) error {
	ok, err := s.Check(ctx, role, action, scope)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

// match applies the trailing-asterisk wildcard: "equipment.*" covers
// "equipment.update", "*" covers everything, anything else is an exact
// comparison.
func match(pattern, value string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(value, prefix)
	}
	return pattern == value
}
