package repository

import (
	"context"

	"github.com/Nilp45/asset-tracker-backend/internal/domain/entity"
)

// UserRepository is the persistence port for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// FindActiveByUsername is the login lookup; inactive users are a miss.
	FindActiveByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Save(ctx context.Context, user *entity.User) error
	List(ctx context.Context) ([]*entity.User, error)
}
