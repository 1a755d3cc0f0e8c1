package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Nilp45/asset-tracker-backend/internal/application/dto"
	"github.com/Nilp45/asset-tracker-backend/internal/domain"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/entity"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/repository"
)

// UserUseCase admin-side account management.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase builds the use case.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// Create provisions an account. Operators must be pinned to a plant; admins
// never are. New accounts start with a forced password change.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" || in.Role == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Role != entity.RoleAdmin && in.Role != entity.RoleOperator {
		return nil, domain.ErrInvalidInput
	}
	if in.Role != entity.RoleAdmin && in.PlantID == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < 6 {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	var plantID *string
	if in.Role != entity.RoleAdmin {
		p := in.PlantID
		plantID = &p
	}
	now := time.Now()
	user := &entity.User{
		ID:                  uuid.New().String(),
		Username:            in.Username,
		PasswordHash:        string(hash),
		Role:                in.Role,
		PlantID:             plantID,
		Active:              true,
		ForcePasswordChange: true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List returns all accounts, for the admin screen.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// Toggle flips an account between active and inactive.
func (uc *UserUseCase) Toggle(ctx context.Context, id string) error {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	user.Active = !user.Active
	user.UpdatedAt = time.Now()
	return uc.userRepo.Save(ctx, user)
}

// ResetPassword sets a new hash and re-forces a password change on next
// login.
func (uc *UserUseCase) ResetPassword(ctx context.Context, id string, in dto.ResetPasswordRequest) error {
	if len(in.NewPassword) < 6 {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.ForcePasswordChange = true
	user.TokenVersion++
	user.UpdatedAt = time.Now()
	return uc.userRepo.Save(ctx, user)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:                  u.ID,
		Username:            u.Username,
		Role:                u.Role,
		PlantID:             u.PlantID,
		Active:              u.Active,
		ForcePasswordChange: u.ForcePasswordChange,
		CreatedAt:           u.CreatedAt,
	}
}
