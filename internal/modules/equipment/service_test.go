package equipment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"equipshare/internal/domain"
	"equipshare/internal/modules/permission"
)

type MockEquipmentRepository struct {
	mock.Mock
}

func (m *MockEquipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) ListByStatus(ctx context.Context, status int) ([]domain.Equipment, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) ListByType(ctx context.Context, equipmentType string) ([]domain.Equipment, error) {
	args := m.Called(ctx, equipmentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	if e != nil {
		e.ID = 99
	}
	return args.Error(0)
}

func (m *MockEquipmentRepository) Update(ctx context.Context, e *domain.Equipment) (bool, error) {
	args := m.Called(ctx, e)
	return args.Bool(0), args.Error(1)
}

func (m *MockEquipmentRepository) UpdateStatus(ctx context.Context, id int64, status int) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockEquipmentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPermissionEnforcer struct {
	mock.Mock
}

func (m *MockPermissionEnforcer) Enforce(ctx context.Context, role domain.Role, action, scope string) error {
	args := m.Called(ctx, role, action, scope)
	return args.Error(0)
}

func TestService_Add_ForcesAvailable(t *testing.T) {
	repo := new(MockEquipmentRepository)
	perms := new(MockPermissionEnforcer)
	perms.On("Enforce", mock.Anything, domain.RoleAdmin, "equipment.add", "equipment/*").Return(nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, perms, nil)

	created, err := service.Add(context.Background(), domain.RoleAdmin, domain.Equipment{
		Name:   "Dell",
		Type:   "monitor",
		Status: domain.StatusUnavailable,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(99), created.ID)
	assert.Equal(t, domain.StatusAvailable, created.Status)
}

func TestService_Add_Forbidden(t *testing.T) {
	repo := new(MockEquipmentRepository)
	perms := new(MockPermissionEnforcer)
	perms.On("Enforce", mock.Anything, domain.RoleUser, "equipment.add", "equipment/*").
		Return(permission.ErrForbidden)

	service := NewService(repo, perms, nil)

	_, err := service.Add(context.Background(), domain.RoleUser, domain.Equipment{Name: "Dell", Type: "monitor"})

	assert.ErrorIs(t, err, permission.ErrForbidden)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Update_ForcesAvailable(t *testing.T) {
	repo := new(MockEquipmentRepository)
	perms := new(MockPermissionEnforcer)
	perms.On("Enforce", mock.Anything, domain.RoleAdmin, "equipment.update", "equipment/3").Return(nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(e *domain.Equipment) bool {
		return e.Status == domain.StatusAvailable
	})).Return(true, nil)

	service := NewService(repo, perms, nil)

	updated, err := service.Update(context.Background(), domain.RoleAdmin, domain.Equipment{
		ID:     3,
		Name:   "Logitech",
		Type:   "keyboard",
		Status: domain.StatusUnavailable,
		Notes:  "f key broken",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusAvailable, updated.Status)
	repo.AssertExpectations(t)
}

func TestService_Update_Missing(t *testing.T) {
	repo := new(MockEquipmentRepository)
	perms := new(MockPermissionEnforcer)
	perms.On("Enforce", mock.Anything, domain.RoleAdmin, "equipment.update", "equipment/9999").Return(nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(false, nil)

	service := NewService(repo, perms, nil)

	updated, err := service.Update(context.Background(), domain.RoleAdmin, domain.Equipment{
		ID:   9999,
		Name: "Ghost",
		Type: "monitor",
	})

	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestService_Remove_AbsentIsSuccess(t *testing.T) {
	repo := new(MockEquipmentRepository)
	perms := new(MockPermissionEnforcer)
	perms.On("Enforce", mock.Anything, domain.RoleAdmin, "equipment.delete", "equipment/42").Return(nil)
	repo.On("GetByID", mock.Anything, int64(42)).Return(nil, nil)

	service := NewService(repo, perms, nil)

	err := service.Remove(context.Background(), domain.RoleAdmin, 42)

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_CheckoutCheckin(t *testing.T) {
	repo := new(MockEquipmentRepository)
	perms := new(MockPermissionEnforcer)
	repo.On("UpdateStatus", mock.Anything, int64(4), domain.StatusUnavailable).Return(nil)
	repo.On("UpdateStatus", mock.Anything, int64(4), domain.StatusAvailable).Return(nil)

	service := NewService(repo, perms, nil)

	assert.NoError(t, service.Checkout(context.Background(), 4))
	assert.NoError(t, service.Checkin(context.Background(), 4))
	repo.AssertExpectations(t)
}
