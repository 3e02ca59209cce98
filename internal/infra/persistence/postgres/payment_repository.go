package postgres

import (
	"context"
	"time"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// paymentTransactionRepository implements repository.PaymentTransactionRepository.
type paymentTransactionRepository struct {
	db *gorm.DB
}

// NewPaymentTransactionRepository is the constructor for paymentTransactionRepository.
func NewPaymentTransactionRepository(db *gorm.DB) repository.PaymentTransactionRepository {
	return &paymentTransactionRepository{db: db}
}

// FindByReference always reads from the primary; verification must observe its own writes.
func (repo *paymentTransactionRepository) FindByReference(ctx context.Context, reference string) (*entity.Transaction, error) {
	var txnM model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("reference = ?", reference).
		First(&txnM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction by reference")
	}

	return toTransactionDomain(&txnM), nil
}

// FindOrCreate inserts txn unless its reference is already stored, then returns the stored row.
func (repo *paymentTransactionRepository) FindOrCreate(ctx context.Context, txn *entity.Transaction) (*entity.Transaction, entity.Lookup, error) {
	txnM := fromTransactionDomain(txn)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "reference"}}, DoNothing: true}).
		Create(txnM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, 0, repository.ErrUserNotFound
		}

		return nil, 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create transaction")
	}

	lookup := entity.LookupFound
	if result.RowsAffected > 0 {
		lookup = entity.LookupCreated
	}

	stored, err := repo.FindByReference(ctx, txn.Reference)
	if err != nil {
		return nil, 0, err
	}

	return stored, lookup, nil
}

// UpdatePending only touches a pending row, so a paid transaction keeps the
// amount and lines it was settled against.
func (repo *paymentTransactionRepository) UpdatePending(ctx context.Context, txn *entity.Transaction) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("reference = ? AND status = ?", txn.Reference, string(entity.TransactionPending)).
		Select("amount", "currency", "lines", "payment_link", "updated_at").
		Updates(fromTransactionDomain(txn))
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update transaction")
	}

	return result.RowsAffected == 1, nil
}

// CompareAndSwapStatus is the idempotency guard for verification: exactly one
// caller observes the swap for a given (reference, from) pair.
func (repo *paymentTransactionRepository) CompareAndSwapStatus(ctx context.Context, reference string, from, to entity.TransactionStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("reference = ? AND status = ?", reference, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to swap transaction status")
	}

	return result.RowsAffected == 1, nil
}

func (repo *paymentTransactionRepository) SetFulfilmentStatus(ctx context.Context, reference string, status entity.TransactionStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("reference = ? AND status NOT IN ?", reference, []string{
			string(entity.TransactionPending),
			string(entity.TransactionFailed),
		}).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to set transaction fulfilment status")
	}

	return result.RowsAffected == 1, nil
}

func (repo *paymentTransactionRepository) SetGatewayTransactionID(ctx context.Context, reference, gatewayID string) error {
	return repo.updateColumn(ctx, reference, "gateway_transaction_id", gatewayID)
}

func (repo *paymentTransactionRepository) updateColumn(ctx context.Context, reference, column string, value any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("reference = ?", reference).
		Updates(map[string]any{
			column:       value,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update transaction "+column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

// SumAmount is served by a replica when one is configured.
func (repo *paymentTransactionRepository) SumAmount(ctx context.Context, statuses []entity.TransactionStatus, since *time.Time) (decimal.Decimal, error) {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("status IN ?", values)
	if since != nil {
		query = query.Where(clause.Gte{Column: "created_at", Value: *since})
	}

	var row struct {
		Total decimal.Decimal
	}
	if err := query.Scan(&row).Error; err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum transaction amounts")
	}

	return row.Total, nil
}

func (repo *paymentTransactionRepository) Count(ctx context.Context, since *time.Time) (int64, error) {
	query := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.TransactionModel{})
	if since != nil {
		query = query.Where(clause.Gte{Column: "created_at", Value: *since})
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count transactions")
	}

	return count, nil
}

// --- Mapper Functions ---

func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	return &entity.Transaction{
		ID:                   data.ID,
		Reference:            data.Reference,
		UserID:               data.UserID,
		Amount:               data.Amount,
		Currency:             data.Currency,
		Status:               entity.TransactionStatus(data.Status),
		Lines:                data.Lines,
		PaymentLink:          data.PaymentLink,
		GatewayTransactionID: data.GatewayTransactionID,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	if data == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:                   data.ID,
		Reference:            data.Reference,
		UserID:               data.UserID,
		Amount:               data.Amount,
		Currency:             data.Currency,
		Status:               string(data.Status),
		Lines:                data.Lines,
		PaymentLink:          data.PaymentLink,
		GatewayTransactionID: data.GatewayTransactionID,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
