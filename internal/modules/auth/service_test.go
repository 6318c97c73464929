package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"equipshare/internal/domain"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) GetByPID(ctx context.Context, pid int64) (*domain.Account, error) {
	args := m.Called(ctx, pid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(pid int64, role string) (string, error) {
	return "token-for-test", nil
}

func TestService_Login_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("sol123"), bcrypt.DefaultCost)
	repo := new(MockAccountRepository)
	repo.On("GetByPID", mock.Anything, int64(100000000)).Return(&domain.Account{
		ID:           2,
		PID:          100000000,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}, nil)

	service := NewService(repo, stubJWT{})

	result, err := service.Login(context.Background(), 100000000, "sol123")

	assert.NoError(t, err)
	assert.Equal(t, "token-for-test", result.Token)
	assert.Equal(t, "user", result.Role)
}

func TestService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("sol123"), bcrypt.DefaultCost)
	repo := new(MockAccountRepository)
	repo.On("GetByPID", mock.Anything, int64(100000000)).Return(&domain.Account{
		PID:          100000000,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}, nil)

	service := NewService(repo, stubJWT{})

	_, err := service.Login(context.Background(), 100000000, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownPID(t *testing.T) {
	repo := new(MockAccountRepository)
	repo.On("GetByPID", mock.Anything, int64(5)).Return(nil, nil)

	service := NewService(repo, stubJWT{})

	_, err := service.Login(context.Background(), 5, "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
