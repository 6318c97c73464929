package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"equipshare/internal/domain"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// One active reservation per equipment item: the unique index on
// equipment_id is what makes concurrent double-booking a constraint
// violation instead of silent corruption.
type reservationModel struct {
	ID          int64          `gorm:"column:id;primaryKey"`
	Type        string         `gorm:"column:type;size:32;index"`
	UserID      int64          `gorm:"column:user_id;not null"`
	EquipmentID int64          `gorm:"column:equipment_id;uniqueIndex;not null"`
	Notes       string         `gorm:"column:notes;size:200"`
	User        userModel      `gorm:"foreignKey:UserID"`
	Equipment   equipmentModel `gorm:"foreignKey:EquipmentID"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) domain.Reservation {
	return domain.Reservation{
		ID:        m.ID,
		Type:      m.Type,
		User:      toDomainUser(m.User),
		Equipment: toDomainEquipment(m.Equipment),
		Notes:     m.Notes,
	}
}

func (r *ReservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	var rows []reservationModel
	tx := r.db.WithContext(ctx).
		Preload("User").
		Preload("Equipment").
		Order("id").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainReservation(m))
	}
	return out, nil
}

func (r *ReservationRepository) ListByType(ctx context.Context, reservationType string) ([]domain.Reservation, error) {
	var rows []reservationModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(type) = LOWER(?)", reservationType).
		Preload("User").
		Preload("Equipment").
		Order("id").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainReservation(m))
	}
	return out, nil
}

func (r *ReservationRepository) ListByUserPID(ctx context.Context, pid int64) ([]domain.Reservation, error) {
	var rows []reservationModel
	tx := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = reservations.user_id").
		Where("users.pid = ?", pid).
		Preload("User").
		Preload("Equipment").
		Order("reservations.id").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainReservation(m))
	}
	return out, nil
}

// GetByID returns (nil, nil) when no reservation has the given id.
func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var m reservationModel
	tx := r.db.WithContext(ctx).
		Preload("User").
		Preload("Equipment").
		First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	res := toDomainReservation(m)
	return &res, nil
}

// Create persists the binding and backfills the server-assigned id. The
// caller guarantees res.User.ID is non-nil.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	m := reservationModel{
		Type:        res.Type,
		UserID:      *res.User.ID,
		EquipmentID: res.Equipment.ID,
		Notes:       res.Notes,
	}
	tx := r.db.WithContext(ctx).Omit("User", "Equipment").Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	res.ID = m.ID
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&reservationModel{}, id)
	return tx.Error
}
