package repository

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrAdminNotFound = errors.New("admin not found")
	ErrAdminConflict = errors.New("admin already exists")
)

// AdminRepository defines the interface for admin account persistence.
type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)
	// FindByLogin matches the identifier against email or username.
	FindByLogin(ctx context.Context, identifier string) (*entity.Admin, error)
	FindByResetToken(ctx context.Context, token string) (*entity.Admin, error)
	Update(ctx context.Context, admin *entity.Admin) error
	Count(ctx context.Context) (int64, error)
}
