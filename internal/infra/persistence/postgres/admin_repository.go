package postgres

import (
	"context"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// adminRepository implements the repository.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (repo *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminM := fromAdminDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrAdminConflict, constraintName(err))
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin")
	}

	admin.ID = adminM.ID
	admin.CreatedAt = adminM.CreatedAt
	admin.UpdatedAt = adminM.UpdatedAt

	return nil
}

func (repo *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	return repo.findOne(ctx, "email = ?", email)
}

// FindByLogin matches an email or a username.
func (repo *adminRepository) FindByLogin(ctx context.Context, identifier string) (*entity.Admin, error) {
	return repo.findOne(ctx, "email = ? OR username = ?", identifier, identifier)
}

func (repo *adminRepository) FindByResetToken(ctx context.Context, token string) (*entity.Admin, error) {
	return repo.findOne(ctx, "reset_password_token = ?", token)
}

func (repo *adminRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Admin, error) {
	var adminM model.AdminModel

	if err := repo.db.WithContext(ctx).Where(query, args...).First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin")
	}

	return toAdminDomain(&adminM), nil
}

func (repo *adminRepository) Update(ctx context.Context, admin *entity.Admin) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdminModel{}).
		Where("id = ?", admin.ID).
		Select("full_name", "username", "email", "password_hash", "reset_password_token", "updated_at").
		Updates(fromAdminDomain(admin))
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return errors.Wrap(repository.ErrAdminConflict, constraintName(result.Error))
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update admin")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdminNotFound
	}

	return nil
}

func (repo *adminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.AdminModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count admins")
	}

	return count, nil
}

// --- Mapper Functions ---

func toAdminDomain(data *model.AdminModel) *entity.Admin {
	if data == nil {
		return nil
	}

	return &entity.Admin{
		ID:                 data.ID,
		FullName:           data.FullName,
		Username:           data.Username,
		Email:              data.Email,
		PasswordHash:       data.PasswordHash,
		ResetPasswordToken: derefString(data.ResetPasswordToken),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromAdminDomain(data *entity.Admin) *model.AdminModel {
	if data == nil {
		return nil
	}

	return &model.AdminModel{
		ID:                 data.ID,
		FullName:           data.FullName,
		Username:           data.Username,
		Email:              data.Email,
		PasswordHash:       data.PasswordHash,
		ResetPasswordToken: nullableString(data.ResetPasswordToken),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
