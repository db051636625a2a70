package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"cordonnier/internal/domain/entity"
	domainerrors "cordonnier/internal/domain/errors"
	"cordonnier/internal/domain/repository"
	mockRepo "cordonnier/internal/mocks/repository"
	mockSvc "cordonnier/internal/mocks/service"
	mockUC "cordonnier/internal/mocks/usecase"
	"cordonnier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service        usecase.OrderUsecase
	txManager      *mockRepo.MockTransactionManager
	orderRepo      *mockRepo.MockOrderRepository
	catalogRepo    *mockRepo.MockCatalogRepository
	settingsRepo   *mockRepo.MockSettingsRepository
	deviceRepo     *mockRepo.MockDeviceRepository
	assignment     *mockUC.MockAssignmentUsecase
	eventPublisher *mockSvc.MockEventPublisher
	notification   *mockSvc.MockNotificationService
	qrcodeService  *mockSvc.MockQRCodeService
	fileStorage    *mockSvc.MockFileStorage
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	assignment := mockUC.NewMockAssignmentUsecase(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	notification := mockSvc.NewMockNotificationService(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	fileStorage := mockSvc.NewMockFileStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewOrderService(OrderServiceParams{
		TxManager:      txManager,
		OrderRepo:      orderRepo,
		CatalogRepo:    catalogRepo,
		SettingsRepo:   settingsRepo,
		DeviceRepo:     deviceRepo,
		Assignment:     assignment,
		EventPublisher: eventPublisher,
		Notification:   notification,
		QRCodeService:  qrcodeService,
		FileStorage:    fileStorage,
		Logger:         logger,
	})

	return orderServiceFixtures{
		service:        service,
		txManager:      txManager,
		orderRepo:      orderRepo,
		catalogRepo:    catalogRepo,
		settingsRepo:   settingsRepo,
		deviceRepo:     deviceRepo,
		assignment:     assignment,
		eventPublisher: eventPublisher,
		notification:   notification,
		qrcodeService:  qrcodeService,
		fileStorage:    fileStorage,
	}
}

func testCatalogService(id uuid.UUID, name string, price float64) *entity.RepairService {
	return &entity.RepairService{
		ID:       id,
		Name:     entity.LocalizedText{FR: name, EN: name},
		Price:    price,
		IsActive: true,
	}
}

func expectOrderCreateTx(t *testing.T, fx orderServiceFixtures, ctx context.Context, createErr error) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = uuid.New()
				}).
				Return(createErr)

			_ = fn(mockFactory)
		}).
		Return(createErr)
}

func TestOrderService_CreateOrder_AssignedComesOutAccepted(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	clientID := uuid.New()
	cobblerID := uuid.New()
	heelID := uuid.New()
	soleID := uuid.New()

	input := usecase.CreateOrderInput{
		ClientID: &clientID,
		Items: []usecase.OrderItemInput{
			{ServiceID: heelID, Quantity: 2},
			{ServiceID: soleID, Quantity: 1},
		},
		DeliveryOption:  entity.DeliveryStandard,
		DeliveryAddress: "12 Rue de la Gare, 1003 Lausanne",
		ContactName:     "Test Client",
		ContactEmail:    "client@example.com",
	}

	fx.settingsRepo.EXPECT().Get(ctx).Return(entity.DefaultSettings(), nil)
	fx.catalogRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{heelID, soleID}).
		Return([]*entity.RepairService{
			testCatalogService(heelID, "Remplacement de talons", 25),
			testCatalogService(soleID, "Ressemelage complet", 60),
		}, nil)
	fx.assignment.EXPECT().
		AssignNearest(ctx, input.DeliveryAddress).
		Return(&usecase.AssignmentResult{CobblerID: &cobblerID, DistanceKm: 3.2}, nil)

	expectOrderCreateTx(t, fx, ctx, nil)

	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil).
		Times(2)
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, cobblerID).
		Return([]*entity.UserDevice{{FCMToken: "token-1", IsActive: true}}, nil)
	fx.notification.EXPECT().
		SendBatchNotification(ctx, []string{"token-1"}, "Nouvelle commande", mock.AnythingOfType("string"), mock.AnythingOfType("map[string]string")).
		Return(1, 0, nil, nil)

	output, err := fx.service.CreateOrder(ctx, input)

	require.NoError(t, err)
	order := output.Order
	assert.Equal(t, entity.OrderStatusAccepted, order.Status)
	require.NotNil(t, order.CobblerID)
	assert.Equal(t, cobblerID, *order.CobblerID)
	assert.InDelta(t, 3.2, output.AssignedDistanceKm, 0.001)

	// 2x25 + 60 = 110, plus the standard delivery fee of 8.
	assert.InDelta(t, 110, order.Subtotal, 0.001)
	assert.InDelta(t, 8, order.DeliveryFee, 0.001)
	assert.InDelta(t, 118, order.Total, 0.001)
	assert.Equal(t, "CHF", order.Currency)
	assert.NotEmpty(t, order.Reference)
}

func TestOrderService_CreateOrder_UnassignedStaysPending(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	serviceID := uuid.New()

	input := usecase.CreateOrderInput{
		Items:           []usecase.OrderItemInput{{ServiceID: serviceID, Quantity: 1}},
		DeliveryOption:  entity.DeliveryExpress,
		DeliveryAddress: "somewhere unresolvable",
		ContactEmail:    "guest@example.com",
	}

	fx.settingsRepo.EXPECT().Get(ctx).Return(entity.DefaultSettings(), nil)
	fx.catalogRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{serviceID}).
		Return([]*entity.RepairService{testCatalogService(serviceID, "Patine", 40)}, nil)
	fx.assignment.EXPECT().
		AssignNearest(ctx, input.DeliveryAddress).
		Return(&usecase.AssignmentResult{}, nil)

	expectOrderCreateTx(t, fx, ctx, nil)

	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	output, err := fx.service.CreateOrder(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, output.Order.Status)
	assert.Nil(t, output.Order.CobblerID)
	assert.InDelta(t, 60, output.Order.Total, 0.001) // 40 + express fee 20
}

func TestOrderService_CreateOrder_AssignmentErrorDegrades(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	serviceID := uuid.New()

	input := usecase.CreateOrderInput{
		Items:           []usecase.OrderItemInput{{ServiceID: serviceID, Quantity: 1}},
		DeliveryOption:  entity.DeliveryStandard,
		DeliveryAddress: "12 Rue de la Gare, 1003 Lausanne",
	}

	fx.settingsRepo.EXPECT().Get(ctx).Return(entity.DefaultSettings(), nil)
	fx.catalogRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{serviceID}).
		Return([]*entity.RepairService{testCatalogService(serviceID, "Patine", 40)}, nil)
	fx.assignment.EXPECT().
		AssignNearest(ctx, input.DeliveryAddress).
		Return(nil, errors.New("db down"))

	expectOrderCreateTx(t, fx, ctx, nil)

	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	output, err := fx.service.CreateOrder(ctx, input)

	require.NoError(t, err, "assignment failure must not fail checkout")
	assert.Equal(t, entity.OrderStatusPending, output.Order.Status)
}

func TestOrderService_CreateOrder_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	output, err := fx.service.CreateOrder(context.Background(), usecase.CreateOrderInput{
		DeliveryOption: entity.DeliveryStandard,
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderEmpty))
}

func TestOrderService_CreateOrder_UnknownService(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	serviceID := uuid.New()

	fx.settingsRepo.EXPECT().Get(ctx).Return(entity.DefaultSettings(), nil)
	fx.catalogRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{serviceID}).Return(nil, nil)

	output, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
		Items:          []usecase.OrderItemInput{{ServiceID: serviceID, Quantity: 1}},
		DeliveryOption: entity.DeliveryStandard,
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrServiceNotFound))
}

func TestOrderService_CreateOrder_InactiveService(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	serviceID := uuid.New()
	retired := testCatalogService(serviceID, "Ancien service", 30)
	retired.IsActive = false

	fx.settingsRepo.EXPECT().Get(ctx).Return(entity.DefaultSettings(), nil)
	fx.catalogRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{serviceID}).
		Return([]*entity.RepairService{retired}, nil)

	output, err := fx.service.CreateOrder(ctx, usecase.CreateOrderInput{
		Items:          []usecase.OrderItemInput{{ServiceID: serviceID, Quantity: 1}},
		DeliveryOption: entity.DeliveryStandard,
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrServiceNotFound))
}

func TestOrderService_GetOrder_ForbiddenForStranger(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	ownerID := uuid.New()
	order := &entity.Order{ID: orderID, ClientID: &ownerID}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	actor := usecase.Actor{UserID: uuid.New(), Roles: entity.Roles{entity.RoleClient}}
	result, err := fx.service.GetOrder(ctx, actor, orderID)

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_TrackOrder_NormalizesReference(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Reference: "REF-1A2B3C4D"}

	fx.orderRepo.EXPECT().FindByReference(ctx, "REF-1A2B3C4D").Return(order, nil)

	result, err := fx.service.TrackOrder(ctx, "  ref-1a2b3c4d  ")

	require.NoError(t, err)
	assert.Equal(t, order.Reference, result.Reference)
}

func TestOrderService_TrackOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByReference(ctx, "REF-DEADBEEF").
		Return(nil, repository.ErrOrderNotFound)

	result, err := fx.service.TrackOrder(ctx, "REF-DEADBEEF")

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_ListMyOrders_CobblerSeesAssignments(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	cobblerID := uuid.New()

	fx.orderRepo.EXPECT().
		List(ctx, repository.OrderFilter{CobblerID: &cobblerID}).
		Return([]*entity.Order{}, nil)

	actor := usecase.Actor{UserID: cobblerID, Roles: entity.Roles{entity.RoleCobbler}}
	_, err := fx.service.ListMyOrders(ctx, actor)

	require.NoError(t, err)
}

func TestOrderService_UpdateStatus_CobblerClaimsPendingOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	cobblerID := uuid.New()
	order := &entity.Order{
		ID:        orderID,
		Reference: "REF-1A2B3C4D",
		Status:    entity.OrderStatusPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
			mockOrderRepo.EXPECT().AssignCobbler(ctx, orderID, cobblerID).Return(nil)
			mockOrderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusAccepted).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	actor := usecase.Actor{UserID: cobblerID, Roles: entity.Roles{entity.RoleCobbler}}
	updated, err := fx.service.UpdateStatus(ctx, actor, orderID, usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatusAccepted,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusAccepted, updated.Status)
	require.NotNil(t, updated.CobblerID)
	assert.Equal(t, cobblerID, *updated.CobblerID)
}

func TestOrderService_UpdateStatus_ForeignOrderForbidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	assignedTo := uuid.New()
	order := &entity.Order{
		ID:        orderID,
		CobblerID: &assignedTo,
		Status:    entity.OrderStatusAccepted,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrForbidden, "order is assigned to another cobbler"))

	actor := usecase.Actor{UserID: uuid.New(), Roles: entity.Roles{entity.RoleCobbler}}
	updated, err := fx.service.UpdateStatus(ctx, actor, orderID, usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatusInProgress,
	})

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_UpdateStatus_InvalidStatus(t *testing.T) {
	fx := createTestOrderService(t)

	actor := usecase.Actor{UserID: uuid.New(), IsAdmin: true}
	updated, err := fx.service.UpdateStatus(context.Background(), actor, uuid.New(), usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatus("teleported"),
	})

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderStatus))
}

func TestOrderService_TrackingQR(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Reference: "REF-1A2B3C4D"}
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.orderRepo.EXPECT().FindByReference(ctx, "REF-1A2B3C4D").Return(order, nil)
	fx.qrcodeService.EXPECT().GenerateTrackingQR("REF-1A2B3C4D").Return(png, nil)

	result, err := fx.service.TrackingQR(ctx, "REF-1A2B3C4D")

	require.NoError(t, err)
	assert.Equal(t, png, result)
}

func TestOrderService_UploadPhoto_RejectsNonImage(t *testing.T) {
	fx := createTestOrderService(t)

	key, err := fx.service.UploadPhoto(context.Background(), "application/pdf", []byte("%PDF"))

	assert.Empty(t, key)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedMediaType))
}

func TestOrderService_UploadPhoto_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.fileStorage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
		Return(nil)

	key, err := fx.service.UploadPhoto(ctx, "image/jpeg", []byte{0xFF, 0xD8})

	require.NoError(t, err)
	assert.Contains(t, key, "orders/photos/")
}
