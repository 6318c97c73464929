package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"equipshare/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByPID(ctx context.Context, pid int64) (*domain.User, error) {
	args := m.Called(ctx, pid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && args.Error(0) == nil {
		id := int64(42)
		u.ID = &id
	}
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func TestService_Get_UnpersistedSkeleton(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByPID", mock.Anything, int64(1001)).Return(nil, nil)

	service := NewService(repo)

	p, err := service.Get(context.Background(), 1001)

	assert.NoError(t, err)
	assert.Nil(t, p.ID)
	assert.Equal(t, int64(1001), p.PID)
}

func TestService_Put_FirstWriteCreates(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByPID", mock.Anything, int64(1001)).Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo)

	persisted, err := service.Put(context.Background(), 1001, domain.Profile{
		FirstName: "A",
		LastName:  "B",
	})

	assert.NoError(t, err)
	assert.NotNil(t, persisted.ID)
	assert.Equal(t, int64(42), *persisted.ID)
	assert.Equal(t, int64(1001), persisted.PID)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Put_IgnoresBodyPID(t *testing.T) {
	repo := new(MockUserRepository)
	existingID := int64(7)
	repo.On("GetByPID", mock.Anything, int64(1001)).
		Return(&domain.User{ID: &existingID, PID: 1001, FirstName: "Old"}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.PID == 1001 && u.ID != nil && *u.ID == existingID
	})).Return(nil)

	service := NewService(repo)

	persisted, err := service.Put(context.Background(), 1001, domain.Profile{
		PID:       999999999, // spoofed, must be overridden
		FirstName: "New",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1001), persisted.PID)
	repo.AssertExpectations(t)
}
