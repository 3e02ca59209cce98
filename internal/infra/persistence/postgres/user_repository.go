package postgres

import (
	"context"
	"time"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new customer account.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrUserConflict, constraintName(err))
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

// FindByLogin matches an email or a phone number.
func (repo *userRepository) FindByLogin(ctx context.Context, identifier string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ? OR phone = ?", identifier, identifier)
}

func (repo *userRepository) FindByResetToken(ctx context.Context, token string) (*entity.User, error) {
	return repo.findOne(ctx, "reset_password_token = ?", token)
}

func (repo *userRepository) findOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// Update saves every mutable column of the user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select("full_name", "username", "email", "phone", "password_hash", "google_id", "photo",
			"notifications", "reset_password_token", "edit_email_token", "updated_at").
		Updates(userM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return errors.Wrap(repository.ErrUserConflict, constraintName(result.Error))
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AppendPurchasedProducts concatenates product ids onto the user's purchase history.
func (repo *userRepository) AppendPurchasedProducts(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID) error {
	if len(productIDs) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"purchased_products": gorm.Expr("array_cat(purchased_products, ?::text[])", uuidsToArray(productIDs)),
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to append purchased products")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// FindNotificationSubscribers lists users that accept promotional emails.
func (repo *userRepository) FindNotificationSubscribers(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("notifications = ?", true).
		Order("created_at ASC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification subscribers")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Count counts users, optionally restricted to those created at or after since.
func (repo *userRepository) Count(ctx context.Context, since *time.Time) (int64, error) {
	query := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.UserModel{})
	if since != nil {
		query = query.Where(clause.Gte{Column: "created_at", Value: *since})
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                 data.ID,
		FullName:           data.FullName,
		Username:           derefString(data.Username),
		Email:              data.Email,
		Phone:              data.Phone,
		PasswordHash:       data.PasswordHash,
		GoogleID:           derefString(data.GoogleID),
		Photo:              data.Photo,
		IsAdmin:            data.IsAdmin,
		Notifications:      data.Notifications,
		ResetPasswordToken: derefString(data.ResetPasswordToken),
		EditEmailToken:     derefString(data.EditEmailToken),
		PurchasedProducts:  arrayToUUIDs(data.PurchasedProducts),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                 data.ID,
		FullName:           data.FullName,
		Username:           nullableString(data.Username),
		Email:              data.Email,
		Phone:              data.Phone,
		PasswordHash:       data.PasswordHash,
		GoogleID:           nullableString(data.GoogleID),
		Photo:              data.Photo,
		IsAdmin:            data.IsAdmin,
		Notifications:      data.Notifications,
		ResetPasswordToken: nullableString(data.ResetPasswordToken),
		EditEmailToken:     nullableString(data.EditEmailToken),
		PurchasedProducts:  uuidsToArray(data.PurchasedProducts),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// nullableString stores empty strings as NULL so unique columns stay optional.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func uuidsToArray(ids []uuid.UUID) pq.StringArray {
	out := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}

// arrayToUUIDs skips malformed entries.
func arrayToUUIDs(values pq.StringArray) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		if id, err := uuid.Parse(v); err == nil {
			out = append(out, id)
		}
	}

	return out
}
