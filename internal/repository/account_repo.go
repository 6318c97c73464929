package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"equipshare/internal/domain"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

type accountModel struct {
	ID           int64  `gorm:"column:id;primaryKey"`
	PID          int64  `gorm:"column:pid;uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;not null"`
	Role         string `gorm:"column:role;size:32;not null"`
}

func (accountModel) TableName() string { return "accounts" }

func toDomainAccount(m accountModel) domain.Account {
	return domain.Account{
		ID:           m.ID,
		PID:          m.PID,
		PasswordHash: m.PasswordHash,
		Role:         domain.Role(m.Role),
	}
}

// GetByPID returns (nil, nil) when no account exists for the pid.
func (r *AccountRepository) GetByPID(ctx context.Context, pid int64) (*domain.Account, error) {
	var m accountModel
	tx := r.db.WithContext(ctx).Where("pid = ?", pid).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	a := toDomainAccount(m)
	return &a, nil
}

func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) error {
	m := accountModel{
		PID:          a.PID,
		PasswordHash: a.PasswordHash,
		Role:         string(a.Role),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = toDomainAccount(m)
	return nil
}
