package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/Nilp45/asset-tracker-backend/internal/application/dto"
	"github.com/Nilp45/asset-tracker-backend/internal/domain"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/repository"
	"github.com/Nilp45/asset-tracker-backend/pkg/jwt"
)

const minPasswordLen = 6

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login and password management. The core records identity only;
// this is the trust boundary that produces it.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase builds the use case.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifies username/password against the bcrypt hash and issues a JWT
// carrying username, role, plant and the user's token version.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindActiveByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:       user.ID,
		Username:     user.Username,
		Role:         user.Role,
		PlantID:      derefOrEmpty(user.PlantID),
		TokenVersion: user.TokenVersion,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:               token,
		Role:                user.Role,
		PlantID:             user.PlantID,
		ForcePasswordChange: user.ForcePasswordChange,
	}, nil
}

// ChangePassword verifies the current password, stores the new hash, clears
// the forced-change flag and bumps the token version so older tokens die.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest) error {
	if in.CurrentPassword == "" || in.NewPassword == "" {
		return domain.ErrInvalidInput
	}
	if len(in.NewPassword) < minPasswordLen {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrForbidden
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.ForcePasswordChange = false
	user.TokenVersion++
	return uc.userRepo.Save(ctx, user)
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
