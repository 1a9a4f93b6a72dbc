package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/techniqueiron/ironworks-backend-go/internal/domain/auth"
	"github.com/techniqueiron/ironworks-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	adminRepo  auth.AdminAuthRepository
	jwtService jwt.Service
}

func NewAuthService(adminRepo auth.AdminAuthRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	hash, err := s.adminRepo.GetPasswordHash(ctx, req.Username)
	if err != nil {
		if errors.Is(err, auth.ErrAdminNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(req.Username)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// EnsureAdmin seeds the admin credential on startup; an existing row wins
// so password changes in the environment do not overwrite a live one.
func (s *AuthServiceImpl) EnsureAdmin(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.adminRepo.EnsureAdmin(ctx, username, string(hash))
}
