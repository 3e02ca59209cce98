// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserConflict is returned when a unique user column is already taken.
	ErrUserConflict = errors.New("user already exists")
)

// UserRepository defines the interface for customer account persistence.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindByLogin matches the identifier against email or phone.
	FindByLogin(ctx context.Context, identifier string) (*entity.User, error)
	FindByResetToken(ctx context.Context, token string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	AppendPurchasedProducts(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID) error
	// FindNotificationSubscribers returns users that opted into promotional emails.
	FindNotificationSubscribers(ctx context.Context) ([]*entity.User, error)
	// Count counts users, optionally only those created at or after since.
	Count(ctx context.Context, since *time.Time) (int64, error)
}
