package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"equipshare/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID        int64  `gorm:"column:id;primaryKey"`
	PID       int64  `gorm:"column:pid;uniqueIndex;not null"`
	FirstName string `gorm:"column:first_name;size:64;not null"`
	LastName  string `gorm:"column:last_name;size:64;not null"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) domain.User {
	id := m.ID
	return domain.User{
		ID:        &id,
		PID:       m.PID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
	}
}

// GetByPID returns (nil, nil) when no user with the given pid has been
// persisted yet.
func (r *UserRepository) GetByPID(ctx context.Context, pid int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).Where("pid = ?", pid).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	u := toDomainUser(m)
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	u := toDomainUser(m)
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := userModel{
		PID:       u.PID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = toDomainUser(m)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	if u.ID == nil {
		return gorm.ErrPrimaryKeyRequired
	}
	tx := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", *u.ID).
		Updates(map[string]any{
			"first_name": u.FirstName,
			"last_name":  u.LastName,
		})
	return tx.Error
}
