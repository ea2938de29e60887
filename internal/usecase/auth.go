package usecase

import (
	"context"
	"crypto/subtle"
	"errors"

	"beautify-api/internal/pkg/config"
	"beautify-api/internal/pkg/jwt"
	"beautify-api/internal/pkg/password"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

const RoleAdmin = "admin"

type LoginResult struct {
	AccessToken string
	Email       string
	Role        string
}

// TokenValidator is consumed by the auth middleware so it only depends on
// the usecase layer, not the jwt package directly.
type TokenValidator interface {
	Validate(token string) (*jwt.Claims, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
	Validate(token string) (*jwt.Claims, error)
}

type authUseCaseImpl struct {
	jwtService *jwt.Service
	admin      config.AdminConfig
}

func NewAuthUseCase(jwtService *jwt.Service, admin config.AdminConfig) AuthUseCase {
	return &authUseCaseImpl{
		jwtService: jwtService,
		admin:      admin,
	}
}

func (a *authUseCaseImpl) Login(_ context.Context, email, rawPassword string) (*LoginResult, error) {
	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(a.admin.Email)) == 1
	if err := password.ComparePassword(a.admin.PasswordHash, rawPassword); err != nil || !emailMatch {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(a.admin.Email, RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: token,
		Email:       a.admin.Email,
		Role:        RoleAdmin,
	}, nil
}

func (a *authUseCaseImpl) Validate(token string) (*jwt.Claims, error) {
	return a.jwtService.ValidateToken(token)
}
