package permission

import (
	"context"

	"equipshare/internal/domain"
)

// PermissionRepository is the slice of the grants store this module needs.
type PermissionRepository interface {
	ListByRole(ctx context.Context, role domain.Role) ([]domain.Permission, error)
}
