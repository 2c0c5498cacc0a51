package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"employee-manager-api/internal/application/ports"
	"employee-manager-api/internal/domain/employee"
	"employee-manager-api/internal/infrastructure/jwt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

type AuthService struct {
	jwtService *jwt.Service
}

func NewAuthService(
	jwtService *jwt.Service,
) ports.Auth {
	return &AuthService{
		jwtService: jwtService,
	}
}

func (as *AuthService) IssuePair(id employee.ID) (jwt.Pair, error) {
	pair, err := as.jwtService.GeneratePair(id.String())
	if err != nil {
		return jwt.Pair{}, ErrFailedToGenerateToken
	}

	return pair, nil
}

func (as *AuthService) Authenticate(e *employee.Employee, requestPassword string) (jwt.Pair, error) {
	if e.PasswordHash == nil {
		return jwt.Pair{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*e.PasswordHash), []byte(requestPassword)); err != nil {
		return jwt.Pair{}, ErrInvalidCredentials
	}

	return as.IssuePair(e.ID)
}
