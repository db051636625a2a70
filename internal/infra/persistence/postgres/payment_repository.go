package postgres

import (
	"context"

	"cordonnier/internal/domain/entity"
	domainerrors "cordonnier/internal/domain/errors"
	"cordonnier/internal/domain/repository"
	"cordonnier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the domain.PaymentRepository interface using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// Create persists a new payment transaction.
func (repo *paymentRepository) Create(ctx context.Context, tx *entity.PaymentTransaction) error {
	txM := fromPaymentTransactionDomain(tx)

	if err := repo.db.WithContext(ctx).Create(txM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("checkout session already recorded")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment transaction")
	}

	tx.ID = txM.ID
	tx.CreatedAt = txM.CreatedAt
	tx.UpdatedAt = txM.UpdatedAt

	return nil
}

// FindByID retrieves a payment transaction by its unique ID.
func (repo *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentTransaction, error) {
	var txM model.PaymentTransactionModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&txM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment transaction by id")
	}

	return toPaymentTransactionDomain(&txM), nil
}

// FindBySessionID retrieves a payment transaction by its checkout session ID.
func (repo *paymentRepository) FindBySessionID(ctx context.Context, sessionID string) (*entity.PaymentTransaction, error) {
	var txM model.PaymentTransactionModel
	err := repo.db.WithContext(ctx).Where("stripe_session_id = ?", sessionID).First(&txM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment transaction by session id")
	}

	return toPaymentTransactionDomain(&txM), nil
}

// FindByOrderID retrieves the latest payment transaction attached to an order.
func (repo *paymentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.PaymentTransaction, error) {
	var txM model.PaymentTransactionModel
	err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		First(&txM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment transaction by order id")
	}

	return toPaymentTransactionDomain(&txM), nil
}

// UpdateStatus transitions a payment transaction to a new status.
func (repo *paymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TransactionStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentTransactionModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment transaction status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPaymentTransactionDomain converts a GORM model to a domain PaymentTransaction entity.
func toPaymentTransactionDomain(data *model.PaymentTransactionModel) *entity.PaymentTransaction {
	if data == nil {
		return nil
	}

	return &entity.PaymentTransaction{
		ID:              data.ID,
		OrderID:         data.OrderID,
		StripeSessionID: data.StripeSessionID,
		Amount:          data.Amount,
		ApplicationFee:  data.ApplicationFee,
		Currency:        data.Currency,
		Status:          entity.TransactionStatus(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromPaymentTransactionDomain converts a domain PaymentTransaction entity to a GORM model.
func fromPaymentTransactionDomain(data *entity.PaymentTransaction) *model.PaymentTransactionModel {
	if data == nil {
		return nil
	}

	return &model.PaymentTransactionModel{
		ID:              data.ID,
		OrderID:         data.OrderID,
		StripeSessionID: data.StripeSessionID,
		Amount:          data.Amount,
		ApplicationFee:  data.ApplicationFee,
		Currency:        data.Currency,
		Status:          string(data.Status),
	}
}
