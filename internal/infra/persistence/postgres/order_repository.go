package postgres

import (
	"context"
	"encoding/json"
	"time"

	"cordonnier/internal/domain/entity"
	domainerrors "cordonnier/internal/domain/errors"
	"cordonnier/internal/domain/repository"
	"cordonnier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order together with its line items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("order reference already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound.WrapMessage("invalid order reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range order.Items {
		if i < len(orderM.Items) {
			order.Items[i].ID = orderM.Items[i].ID
			order.Items[i].OrderID = orderM.ID
		}
	}

	return nil
}

// FindByID retrieves an order by its unique ID, including line items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM)
}

// FindByReference retrieves an order by its public reference number.
func (repo *orderRepository) FindByReference(ctx context.Context, reference string) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("reference = ?", reference).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by reference")
	}

	return toOrderDomain(&orderM)
}

// List returns orders matching the filter, newest first.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).Preload("Items").Order("created_at DESC")

	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.CobblerID != nil {
		query = query.Where("cobbler_id = ?", *filter.CobblerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Since != nil {
		query = query.Where("created_at >= ?", *filter.Since)
	}
	if filter.Until != nil {
		query = query.Where("created_at < ?", *filter.Until)
	}

	var orderMs []*model.OrderModel
	if err := query.Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for _, orderM := range orderMs {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// UpdateStatus transitions an order to a new status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// UpdatePaymentState records the payment state of an order.
func (repo *orderRepository) UpdatePaymentState(ctx context.Context, id uuid.UUID, state entity.PaymentState) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("payment_state", string(state))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment state")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// AssignCobbler sets the cobbler responsible for an order.
func (repo *orderRepository) AssignCobbler(ctx context.Context, id uuid.UUID, cobblerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("cobbler_id", cobblerID)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to assign cobbler")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// CountByStatus returns the number of orders per status.
func (repo *orderRepository) CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	counts := make(map[entity.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.OrderStatus(row.Status)] = row.Count
	}

	return counts, nil
}

// SumRevenue totals the amount of delivered paid orders in the given window.
func (repo *orderRepository) SumRevenue(ctx context.Context, since, until time.Time) (float64, error) {
	var total *float64
	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("sum(total)").
		Where("status = ? AND payment_state = ?", entity.OrderStatusDelivered.String(), string(entity.PaymentStatePaid)).
		Where("created_at >= ? AND created_at < ?", since, until).
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum revenue")
	}
	if total == nil {
		return 0, nil
	}

	return *total, nil
}

// StatsByCobbler aggregates completed order counts and revenue per cobbler in the given window.
func (repo *orderRepository) StatsByCobbler(ctx context.Context, since, until time.Time) ([]*repository.CobblerOrderStats, error) {
	var rows []struct {
		CobblerID uuid.UUID
		Count     int64
		Revenue   float64
	}

	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("cobbler_id, count(*) as count, sum(total) as revenue").
		Where("cobbler_id IS NOT NULL").
		Where("status = ? AND payment_state = ?", entity.OrderStatusDelivered.String(), string(entity.PaymentStatePaid)).
		Where("created_at >= ? AND created_at < ?", since, until).
		Group("cobbler_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate cobbler stats")
	}

	stats := make([]*repository.CobblerOrderStats, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, &repository.CobblerOrderStats{
			CobblerID:      row.CobblerID,
			CompletedCount: row.Count,
			Revenue:        row.Revenue,
		})
	}

	return stats, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	if data == nil {
		return nil, nil
	}

	var photoKeys []string
	if data.PhotoKeys != "" {
		if err := json.Unmarshal([]byte(data.PhotoKeys), &photoKeys); err != nil {
			return nil, errors.Wrap(err, "decode order photo keys")
		}
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.OrderItem{
			ID:          itemM.ID,
			OrderID:     itemM.OrderID,
			ServiceID:   itemM.ServiceID,
			ServiceName: itemM.ServiceName,
			Quantity:    itemM.Quantity,
			UnitPrice:   itemM.UnitPrice,
			Total:       itemM.Total,
		})
	}

	return &entity.Order{
		ID:              data.ID,
		Reference:       data.Reference,
		ClientID:        data.ClientID,
		CobblerID:       data.CobblerID,
		Status:          entity.OrderStatus(data.Status),
		PaymentState:    entity.PaymentState(data.PaymentState),
		Items:           items,
		DeliveryOption:  entity.DeliveryOption(data.DeliveryOption),
		DeliveryAddress: data.DeliveryAddress,
		ContactName:     data.ContactName,
		ContactEmail:    data.ContactEmail,
		ContactPhone:    data.ContactPhone,
		Notes:           data.Notes,
		PhotoKeys:       photoKeys,
		Subtotal:        data.Subtotal,
		DeliveryFee:     data.DeliveryFee,
		Total:           data.Total,
		Currency:        data.Currency,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}, nil
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel for persistence.
func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	if data == nil {
		return nil, nil
	}

	var photoKeys string
	if len(data.PhotoKeys) > 0 {
		encoded, err := json.Marshal(data.PhotoKeys)
		if err != nil {
			return nil, errors.Wrap(err, "encode order photo keys")
		}
		photoKeys = string(encoded)
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ServiceID:   item.ServiceID,
			ServiceName: item.ServiceName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		Reference:       data.Reference,
		ClientID:        data.ClientID,
		CobblerID:       data.CobblerID,
		Status:          data.Status.String(),
		PaymentState:    string(data.PaymentState),
		DeliveryOption:  string(data.DeliveryOption),
		DeliveryAddress: data.DeliveryAddress,
		ContactName:     data.ContactName,
		ContactEmail:    data.ContactEmail,
		ContactPhone:    data.ContactPhone,
		Notes:           data.Notes,
		PhotoKeys:       photoKeys,
		Subtotal:        data.Subtotal,
		DeliveryFee:     data.DeliveryFee,
		Total:           data.Total,
		Currency:        data.Currency,
		Items:           items,
	}, nil
}
