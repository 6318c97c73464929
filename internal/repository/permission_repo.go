package repository

import (
	"context"

	"gorm.io/gorm"

	"equipshare/internal/domain"
)

type PermissionRepository struct {
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) *PermissionRepository {
	return &PermissionRepository{db: db}
}

type permissionModel struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	Role     string `gorm:"column:role;size:32;index;not null"`
	Action   string `gorm:"column:action;size:64;not null"`
	Resource string `gorm:"column:resource;size:64;not null"`
}

func (permissionModel) TableName() string { return "permissions" }

func (r *PermissionRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.Permission, error) {
	var rows []permissionModel
	tx := r.db.WithContext(ctx).Where("role = ?", string(role)).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Permission, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Permission{
			ID:       m.ID,
			Role:     domain.Role(m.Role),
			Action:   m.Action,
			Resource: m.Resource,
		})
	}
	return out, nil
}

func (r *PermissionRepository) Create(ctx context.Context, p *domain.Permission) error {
	m := permissionModel{
		Role:     string(p.Role),
		Action:   p.Action,
		Resource: p.Resource,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	p.ID = m.ID
	return nil
}

// Models lists every table-backed model for schema migration.
func Models() []any {
	return []any{
		&equipmentModel{},
		&userModel{},
		&reservationModel{},
		&accountModel{},
		&permissionModel{},
	}
}
