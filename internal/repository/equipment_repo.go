package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"equipshare/internal/domain"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

type equipmentModel struct {
	ID     int64  `gorm:"column:id;primaryKey"`
	Name   string `gorm:"column:name;size:64;not null"`
	Type   string `gorm:"column:type;size:32;index;not null"`
	Status int    `gorm:"column:status;index"`
	Notes  string `gorm:"column:notes;size:200;not null"`
}

func (equipmentModel) TableName() string { return "equipment" }

func toDomainEquipment(m equipmentModel) domain.Equipment {
	return domain.Equipment{
		ID:     m.ID,
		Name:   m.Name,
		Type:   m.Type,
		Status: m.Status,
		Notes:  m.Notes,
	}
}

func toEquipmentModel(e *domain.Equipment) equipmentModel {
	return equipmentModel{
		ID:     e.ID,
		Name:   e.Name,
		Type:   e.Type,
		Status: e.Status,
		Notes:  e.Notes,
	}
}

func (r *EquipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	var rows []equipmentModel
	tx := r.db.WithContext(ctx).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Equipment, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainEquipment(m))
	}
	return out, nil
}

func (r *EquipmentRepository) ListByStatus(ctx context.Context, status int) ([]domain.Equipment, error) {
	var rows []equipmentModel
	tx := r.db.WithContext(ctx).Where("status = ?", status).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Equipment, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainEquipment(m))
	}
	return out, nil
}

// ListByType matches case-insensitively so "Monitor" and "monitor" are the
// same category on both postgres and sqlite.
func (r *EquipmentRepository) ListByType(ctx context.Context, equipmentType string) ([]domain.Equipment, error) {
	var rows []equipmentModel
	tx := r.db.WithContext(ctx).Where("LOWER(type) = LOWER(?)", equipmentType).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Equipment, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainEquipment(m))
	}
	return out, nil
}

// GetByID returns (nil, nil) when no equipment has the given id.
func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var m equipmentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	e := toDomainEquipment(m)
	return &e, nil
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	m := toEquipmentModel(e)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*e = toDomainEquipment(m)
	return nil
}

// Update replaces the mutable fields of an existing row. It reports whether
// a row with the given id existed.
func (r *EquipmentRepository) Update(ctx context.Context, e *domain.Equipment) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&equipmentModel{}).
		Where("id = ?", e.ID).
		Updates(map[string]any{
			"name":   e.Name,
			"type":   e.Type,
			"status": e.Status,
			"notes":  e.Notes,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *EquipmentRepository) UpdateStatus(ctx context.Context, id int64, status int) error {
	tx := r.db.WithContext(ctx).
		Model(&equipmentModel{}).
		Where("id = ?", id).
		Update("status", status)
	return tx.Error
}

// Delete is a no-op when the row is already gone.
func (r *EquipmentRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&equipmentModel{}, id)
	return tx.Error
}
