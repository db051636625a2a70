package impl

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "cordonnier/internal/delivery/context"
	"cordonnier/internal/domain/constants"
	"cordonnier/internal/domain/entity"
	domainerrors "cordonnier/internal/domain/errors"
	"cordonnier/internal/domain/repository"
	"cordonnier/internal/domain/service"
	"cordonnier/internal/usecase"
	"cordonnier/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager      repository.TransactionManager
	orderRepo      repository.OrderRepository
	catalogRepo    repository.CatalogRepository
	settingsRepo   repository.SettingsRepository
	deviceRepo     repository.DeviceRepository
	assignment     usecase.AssignmentUsecase
	eventPublisher service.EventPublisher
	notification   service.NotificationService
	qrcodeService  service.QRCodeService
	fileStorage    service.FileStorage
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	OrderRepo      repository.OrderRepository
	CatalogRepo    repository.CatalogRepository
	SettingsRepo   repository.SettingsRepository
	DeviceRepo     repository.DeviceRepository
	Assignment     usecase.AssignmentUsecase
	EventPublisher service.EventPublisher
	Notification   service.NotificationService `optional:"true"`
	QRCodeService  service.QRCodeService
	FileStorage    service.FileStorage
	Logger         *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:      params.TxManager,
		orderRepo:      params.OrderRepo,
		catalogRepo:    params.CatalogRepo,
		settingsRepo:   params.SettingsRepo,
		deviceRepo:     params.DeviceRepo,
		assignment:     params.Assignment,
		eventPublisher: params.EventPublisher,
		notification:   params.Notification,
		qrcodeService:  params.QRCodeService,
		fileStorage:    params.FileStorage,
		logger:         params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder prices the cart, assigns the nearest cobbler and persists the
// order. Assignment failures of any kind leave the order pending; they never
// fail the checkout.
func (srv *orderService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*usecase.CreateOrderOutput, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrOrderEmpty.WrapMessage("an order needs at least one item")
	}
	if !input.DeliveryOption.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown delivery option")
	}

	settings, err := srv.settingsRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load platform settings")
	}

	items, subtotal, err := srv.priceItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	deliveryFee := settings.DeliveryPrice(input.DeliveryOption)

	order := &entity.Order{
		Reference:       util.GenerateReferenceNumber(),
		ClientID:        input.ClientID,
		Status:          entity.OrderStatusPending,
		PaymentState:    entity.PaymentStateUnpaid,
		Items:           items,
		DeliveryOption:  input.DeliveryOption,
		DeliveryAddress: input.DeliveryAddress,
		ContactName:     input.ContactName,
		ContactEmail:    input.ContactEmail,
		ContactPhone:    input.ContactPhone,
		Notes:           input.Notes,
		PhotoKeys:       input.PhotoKeys,
		Subtotal:        subtotal,
		DeliveryFee:     deliveryFee,
		Total:           subtotal + deliveryFee,
		Currency:        settings.Currency,
	}

	result, err := srv.assignment.AssignNearest(ctx, input.DeliveryAddress)
	if err != nil {
		// Finder failures degrade to an unassigned order.
		srv.log(ctx).Warn("Nearest-cobbler assignment failed, order stays pending", slog.Any("error", err))
		result = &usecase.AssignmentResult{}
	}
	if result.CobblerID != nil {
		order.CobblerID = result.CobblerID
		order.Status = entity.OrderStatusAccepted
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.OrderRepo().Create(ctx, order)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to persist order", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order creation transaction")
	}

	srv.log(ctx).Info("Order created",
		slog.String("reference", order.Reference),
		slog.String("status", order.Status.String()),
		slog.Bool("assigned", order.CobblerID != nil))

	srv.publishOrderEvent(ctx, constants.EventOrderCreated, order)
	if order.CobblerID != nil {
		srv.publishOrderEvent(ctx, constants.EventOrderAssigned, order)
		srv.notifyAssignedCobbler(ctx, order)
	}

	return &usecase.CreateOrderOutput{
		Order:              order,
		AssignedDistanceKm: result.DistanceKm,
	}, nil
}

// priceItems resolves the cart lines against the catalog and totals them.
func (srv *orderService) priceItems(ctx context.Context, inputs []usecase.OrderItemInput) ([]entity.OrderItem, float64, error) {
	ids := make([]uuid.UUID, 0, len(inputs))
	for _, item := range inputs {
		if item.Quantity < 1 {
			return nil, 0, domainerrors.ErrValidationFailed.WrapMessage("item quantity must be at least one")
		}
		ids = append(ids, item.ServiceID)
	}

	services, err := srv.catalogRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to load catalog services")
	}

	byID := make(map[uuid.UUID]*entity.RepairService, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	items := make([]entity.OrderItem, 0, len(inputs))
	var subtotal float64
	for _, item := range inputs {
		svc, ok := byID[item.ServiceID]
		if !ok || !svc.IsActive {
			return nil, 0, domainerrors.ErrServiceNotFound.WrapMessage("unknown or inactive catalog service")
		}

		lineTotal := svc.Price * float64(item.Quantity)
		items = append(items, entity.OrderItem{
			ServiceID:   svc.ID,
			ServiceName: svc.Name.FR,
			Quantity:    item.Quantity,
			UnitPrice:   svc.Price,
			Total:       lineTotal,
		})
		subtotal += lineTotal
	}

	return items, subtotal, nil
}

// GetOrder loads an order after checking the actor may see it.
func (srv *orderService) GetOrder(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !srv.canView(actor, order) {
		return nil, domainerrors.ErrForbidden.WrapMessage("order belongs to someone else")
	}

	return order, nil
}

// TrackOrder resolves an order by its public reference. No authentication:
// knowing the reference is the capability.
func (srv *orderService) TrackOrder(ctx context.Context, reference string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByReference(ctx, strings.ToUpper(strings.TrimSpace(reference)))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("no order with this reference")
		}

		return nil, errors.Wrap(err, "failed to find order by reference")
	}

	return order, nil
}

// ListMyOrders returns the actor's orders, newest first. Cobblers see the
// orders assigned to them, clients the orders they placed.
func (srv *orderService) ListMyOrders(ctx context.Context, actor usecase.Actor) ([]*entity.Order, error) {
	filter := repository.OrderFilter{}
	if actor.Roles.Contains(entity.RoleCobbler) {
		filter.CobblerID = &actor.UserID
	} else {
		filter.ClientID = &actor.UserID
	}

	orders, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ListAllOrders returns every order, optionally narrowed to one status.
func (srv *orderService) ListAllOrders(ctx context.Context, status *entity.OrderStatus) ([]*entity.Order, error) {
	if status != nil && !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WrapMessage("unknown order status")
	}

	orders, err := srv.orderRepo.List(ctx, repository.OrderFilter{Status: status})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateStatus applies a lifecycle transition. Administrators may set any
// valid status; cobblers only touch their own orders, with one exception: a
// cobbler may claim an unassigned pending order by accepting it.
func (srv *orderService) UpdateStatus(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WrapMessage("unknown order status")
	}

	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound.WrapMessage("no order with this id")
			}

			return errors.Wrap(err, "failed to find order")
		}

		claiming := false
		if !actor.IsAdmin {
			if !actor.Roles.Contains(entity.RoleCobbler) {
				return domainerrors.ErrForbidden.WrapMessage("only cobblers and administrators update order status")
			}

			switch {
			case order.CobblerID != nil && *order.CobblerID == actor.UserID:
				// Assigned cobbler moving their own order.
			case order.CobblerID == nil && input.Status == entity.OrderStatusAccepted:
				if order.Status != entity.OrderStatusPending {
					return domainerrors.ErrOrderNotPending.WrapMessage("only pending orders can be claimed")
				}
				claiming = true
			default:
				return domainerrors.ErrForbidden.WrapMessage("order is assigned to another cobbler")
			}
		}

		if claiming {
			if err := orderRepo.AssignCobbler(ctx, order.ID, actor.UserID); err != nil {
				return errors.Wrap(err, "failed to claim order")
			}
			order.CobblerID = &actor.UserID
		}

		if err := orderRepo.UpdateStatus(ctx, order.ID, input.Status); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}
		order.Status = input.Status
		updated = order

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute order status transaction")
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("reference", updated.Reference), slog.String("status", updated.Status.String()))

	if updated.Status == entity.OrderStatusAccepted && updated.CobblerID != nil {
		srv.publishOrderEvent(ctx, constants.EventOrderAssigned, updated)
	}

	return updated, nil
}

// TrackingQR renders the QR code pointing at the public tracking page.
func (srv *orderService) TrackingQR(ctx context.Context, reference string) ([]byte, error) {
	order, err := srv.TrackOrder(ctx, reference)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateTrackingQR(order.Reference)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render tracking QR code")
	}

	return png, nil
}

// UploadPhoto stores one shoe photo and hands back its storage key.
func (srv *orderService) UploadPhoto(ctx context.Context, contentType string, content []byte) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", domainerrors.ErrUnsupportedMediaType.WrapMessage("shoe photos must be images")
	}
	if len(content) == 0 {
		return "", domainerrors.ErrValidationFailed.WrapMessage("empty photo payload")
	}

	key := fmt.Sprintf("orders/photos/%s", uuid.NewString())
	if err := srv.fileStorage.Upload(ctx, key, contentType, bytes.NewReader(content)); err != nil {
		return "", errors.Wrap(err, "failed to store shoe photo")
	}

	srv.log(ctx).Info("Shoe photo stored",
		slog.String("key", key), slog.String("size", util.FormatBytes(int64(len(content)))))

	return key, nil
}

func (srv *orderService) findOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("no order with this id")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

func (srv *orderService) canView(actor usecase.Actor, order *entity.Order) bool {
	if actor.IsAdmin {
		return true
	}
	if order.ClientID != nil && *order.ClientID == actor.UserID {
		return true
	}
	if order.CobblerID != nil && *order.CobblerID == actor.UserID {
		return true
	}

	return false
}

// publishOrderEvent emits an order lifecycle event. Failures are logged and
// swallowed: eventing is best-effort and never blocks checkout.
func (srv *orderService) publishOrderEvent(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		EventType:      eventType,
		OrderID:        order.ID.String(),
		OrderReference: order.Reference,
		Status:         order.Status.String(),
		Total:          order.Total,
		Currency:       order.Currency,
	}
	if order.ClientID != nil {
		event.ClientID = order.ClientID.String()
	}
	if order.CobblerID != nil {
		event.CobblerID = order.CobblerID.String()
	}

	if err := srv.eventPublisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("eventType", eventType),
			slog.String("reference", order.Reference),
			slog.Any("error", err))
	}
}

// notifyAssignedCobbler pushes a heads-up to the assigned cobbler's active
// devices. Best-effort: failures are logged, never surfaced.
func (srv *orderService) notifyAssignedCobbler(ctx context.Context, order *entity.Order) {
	if srv.notification == nil || order.CobblerID == nil {
		return
	}

	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, *order.CobblerID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load cobbler devices for push", slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	title := "Nouvelle commande"
	body := fmt.Sprintf("La commande %s vous a été attribuée.", order.Reference)
	data := map[string]string{
		"order_id":  order.ID.String(),
		"reference": order.Reference,
	}

	_, failed, invalidTokens, err := srv.notification.SendBatchNotification(ctx, tokens, title, body, data)
	if err != nil {
		srv.log(ctx).Warn("Failed to push assignment notification", slog.Any("error", err))

		return
	}
	if failed > 0 {
		srv.log(ctx).Debug("Some assignment notifications failed",
			slog.Int("failed", failed), slog.Int("invalidTokens", len(invalidTokens)))
	}

	for _, token := range invalidTokens {
		if err := srv.deviceRepo.DeactivateDeviceByToken(ctx, token); err != nil {
			srv.log(ctx).Debug("Failed to deactivate stale device token", slog.Any("error", err))
		}
	}
}
