package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// Service issues bearer tokens against stored account credentials. This is
// the thinnest useful surface: the system's contract only requires that a
// principal arrive with a pid and a role.
type Service struct {
	accounts AccountRepository
	jwt      jwtService
}

func NewService(accounts AccountRepository, jwt jwtService) *Service {
	return &Service{
		accounts: accounts,
		jwt:      jwt,
	}
}

// Login never distinguishes unknown pid from wrong password.
func (s *Service) Login(ctx context.Context, pid int64, password string) (*LoginResponse, error) {
	acct, err := s.accounts.GetByPID(ctx, pid)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(acct.PID, string(acct.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token: token,
		Role:  string(acct.Role),
	}, nil
}
