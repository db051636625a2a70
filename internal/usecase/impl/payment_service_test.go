package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"cordonnier/internal/domain/entity"
	domainerrors "cordonnier/internal/domain/errors"
	"cordonnier/internal/domain/repository"
	"cordonnier/internal/domain/service"
	mockRepo "cordonnier/internal/mocks/repository"
	mockSvc "cordonnier/internal/mocks/service"
	"cordonnier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// paymentServiceFixtures holds all test dependencies for payment service tests.
type paymentServiceFixtures struct {
	service      usecase.PaymentUsecase
	txManager    *mockRepo.MockTransactionManager
	orderRepo    *mockRepo.MockOrderRepository
	paymentRepo  *mockRepo.MockPaymentRepository
	userRepo     *mockRepo.MockUserRepository
	settingsRepo *mockRepo.MockSettingsRepository
	gateway      *mockSvc.MockPaymentGateway
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPaymentService(PaymentServiceParams{
		TxManager:    txManager,
		OrderRepo:    orderRepo,
		PaymentRepo:  paymentRepo,
		UserRepo:     userRepo,
		SettingsRepo: settingsRepo,
		Gateway:      gateway,
		Logger:       logger,
	})

	return paymentServiceFixtures{
		service:      service,
		txManager:    txManager,
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		gateway:      gateway,
	}
}

func TestPaymentService_StartCheckout_SplitsCommission(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	cobblerID := uuid.New()
	order := &entity.Order{
		ID:           uuid.New(),
		Reference:    "REF-1A2B3C4D",
		CobblerID:    &cobblerID,
		Total:        118,
		Currency:     "CHF",
		ContactEmail: "client@example.com",
		PaymentState: entity.PaymentStateUnpaid,
	}
	cobbler := &entity.User{
		ID: cobblerID,
		CobblerProfile: &entity.CobblerProfile{
			UserID:          cobblerID,
			StripeAccountID: "acct_123",
		},
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.settingsRepo.EXPECT().Get(ctx).Return(entity.DefaultSettings(), nil)
	fx.userRepo.EXPECT().FindByID(ctx, cobblerID).Return(cobbler, nil)

	fx.gateway.EXPECT().
		CreateCheckoutSession(ctx, mock.AnythingOfType("service.CheckoutSessionInput")).
		Run(func(ctx context.Context, input service.CheckoutSessionInput) {
			assert.Equal(t, int64(11800), input.AmountCents)
			// 15% commission of 118.00 = 17.70.
			assert.Equal(t, int64(1770), input.FeeCents)
			assert.Equal(t, "acct_123", input.ConnectedAccountID)
			assert.Equal(t, "CHF", input.Currency)
		}).
		Return(&service.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.example/cs_test_1"}, nil)

	fx.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PaymentTransaction")).
		Run(func(ctx context.Context, transaction *entity.PaymentTransaction) {
			assert.Equal(t, order.ID, transaction.OrderID)
			assert.Equal(t, "cs_test_1", transaction.StripeSessionID)
			assert.Equal(t, entity.TransactionPending, transaction.Status)
			assert.InDelta(t, 17.70, transaction.ApplicationFee, 0.001)
		}).
		Return(nil)

	output, err := fx.service.StartCheckout(ctx, usecase.StartCheckoutInput{
		OrderID:    order.ID,
		SuccessURL: "https://app.example/success",
		CancelURL:  "https://app.example/cancel",
	})

	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", output.SessionID)
	assert.Equal(t, "https://checkout.example/cs_test_1", output.CheckoutURL)
}

func TestPaymentService_StartCheckout_AlreadyPaid(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:           uuid.New(),
		PaymentState: entity.PaymentStatePaid,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	output, err := fx.service.StartCheckout(ctx, usecase.StartCheckoutInput{OrderID: order.ID})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestPaymentService_StartCheckout_GatewayFailure(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:           uuid.New(),
		Total:        50,
		Currency:     "CHF",
		PaymentState: entity.PaymentStateUnpaid,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.settingsRepo.EXPECT().Get(ctx).Return(entity.DefaultSettings(), nil)
	fx.gateway.EXPECT().
		CreateCheckoutSession(ctx, mock.AnythingOfType("service.CheckoutSessionInput")).
		Return(nil, errors.New("stripe: 502"))

	output, err := fx.service.StartCheckout(ctx, usecase.StartCheckoutInput{OrderID: order.ID})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentFailed))
}

func expectSettlementTx(t *testing.T, fx paymentServiceFixtures, ctx context.Context, transaction *entity.PaymentTransaction) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().PaymentRepo().Return(mockPaymentRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockPaymentRepo.EXPECT().
				FindBySessionID(ctx, transaction.StripeSessionID).
				Return(transaction, nil)

			if transaction.Status != entity.TransactionPaid {
				mockPaymentRepo.EXPECT().
					UpdateStatus(ctx, transaction.ID, entity.TransactionPaid).
					Return(nil)
				mockOrderRepo.EXPECT().
					UpdatePaymentState(ctx, transaction.OrderID, entity.PaymentStatePaid).
					Return(nil)
			}

			_ = fn(mockFactory)
		}).
		Return(nil)
}

func TestPaymentService_HandleWebhook_SettlesCompletedSession(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	transaction := &entity.PaymentTransaction{
		ID:              uuid.New(),
		OrderID:         uuid.New(),
		StripeSessionID: "cs_test_1",
		Status:          entity.TransactionPending,
	}

	fx.gateway.EXPECT().
		VerifyWebhook([]byte(`{"type":"checkout.session.completed"}`), "sig").
		Return(&service.WebhookEvent{Type: "checkout.session.completed", SessionID: "cs_test_1"}, nil)

	expectSettlementTx(t, fx, ctx, transaction)

	err := fx.service.HandleWebhook(ctx, []byte(`{"type":"checkout.session.completed"}`), "sig")

	require.NoError(t, err)
}

func TestPaymentService_HandleWebhook_BadSignature(t *testing.T) {
	fx := createTestPaymentService(t)

	fx.gateway.EXPECT().
		VerifyWebhook([]byte("payload"), "forged").
		Return(nil, errors.New("signature mismatch"))

	err := fx.service.HandleWebhook(context.Background(), []byte("payload"), "forged")

	assert.True(t, errors.Is(err, domainerrors.ErrWebhookSignature))
}

func TestPaymentService_HandleWebhook_IgnoresOtherEvents(t *testing.T) {
	fx := createTestPaymentService(t)

	fx.gateway.EXPECT().
		VerifyWebhook([]byte("payload"), "sig").
		Return(&service.WebhookEvent{Type: "invoice.created", SessionID: "cs_test_9"}, nil)

	err := fx.service.HandleWebhook(context.Background(), []byte("payload"), "sig")

	assert.NoError(t, err)
}

func TestPaymentService_HandleWebhook_SettlementIsIdempotent(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	transaction := &entity.PaymentTransaction{
		ID:              uuid.New(),
		OrderID:         uuid.New(),
		StripeSessionID: "cs_test_1",
		Status:          entity.TransactionPaid,
	}

	fx.gateway.EXPECT().
		VerifyWebhook([]byte("payload"), "sig").
		Return(&service.WebhookEvent{Type: "checkout.session.completed", SessionID: "cs_test_1"}, nil)

	// Already paid: the transaction lookup happens but no update follows.
	expectSettlementTx(t, fx, ctx, transaction)

	err := fx.service.HandleWebhook(ctx, []byte("payload"), "sig")

	require.NoError(t, err)
}

func TestPaymentService_ConfirmCheckout_PaidSessionSettles(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	transaction := &entity.PaymentTransaction{
		ID:              uuid.New(),
		OrderID:         uuid.New(),
		StripeSessionID: "cs_test_1",
		Status:          entity.TransactionPending,
	}
	order := &entity.Order{ID: transaction.OrderID, PaymentState: entity.PaymentStatePaid}

	fx.gateway.EXPECT().
		GetCheckoutSession(ctx, "cs_test_1").
		Return(&service.CheckoutSession{ID: "cs_test_1", Status: "complete", Paid: true}, nil)

	expectSettlementTx(t, fx, ctx, transaction)

	fx.paymentRepo.EXPECT().FindBySessionID(ctx, "cs_test_1").Return(transaction, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, transaction.OrderID).Return(order, nil)

	result, err := fx.service.ConfirmCheckout(ctx, "cs_test_1")

	require.NoError(t, err)
	assert.Equal(t, order.ID, result.ID)
}

func TestPaymentService_StartOnboarding_CreatesAccountOnce(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	cobblerID := uuid.New()
	user := &entity.User{
		ID:    cobblerID,
		Email: "cobbler@example.com",
		CobblerProfile: &entity.CobblerProfile{
			UserID: cobblerID,
		},
	}

	fx.userRepo.EXPECT().FindByID(ctx, cobblerID).Return(user, nil)
	fx.gateway.EXPECT().CreateExpressAccount(ctx, user.Email).Return("acct_new", nil)
	fx.userRepo.EXPECT().UpdateCobblerProfile(ctx, user.CobblerProfile).Return(nil)
	fx.gateway.EXPECT().
		CreateOnboardingLink(ctx, "acct_new", "https://app.example/return", "https://app.example/refresh").
		Return("https://connect.example/onboard", nil)

	output, err := fx.service.StartOnboarding(ctx, cobblerID, "https://app.example/return", "https://app.example/refresh")

	require.NoError(t, err)
	assert.Equal(t, "acct_new", output.AccountID)
	assert.Equal(t, "acct_new", user.CobblerProfile.StripeAccountID)
	assert.Equal(t, "https://connect.example/onboard", output.OnboardingURL)
}

func TestPaymentService_StartOnboarding_ReusesAccount(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	cobblerID := uuid.New()
	user := &entity.User{
		ID: cobblerID,
		CobblerProfile: &entity.CobblerProfile{
			UserID:          cobblerID,
			StripeAccountID: "acct_existing",
		},
	}

	fx.userRepo.EXPECT().FindByID(ctx, cobblerID).Return(user, nil)
	fx.gateway.EXPECT().
		CreateOnboardingLink(ctx, "acct_existing", "https://app.example/return", "https://app.example/refresh").
		Return("https://connect.example/onboard", nil)

	output, err := fx.service.StartOnboarding(ctx, cobblerID, "https://app.example/return", "https://app.example/refresh")

	require.NoError(t, err)
	assert.Equal(t, "acct_existing", output.AccountID)
}

func TestPaymentService_OnboardingStatus_NeverStarted(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	cobblerID := uuid.New()
	user := &entity.User{
		ID:             cobblerID,
		CobblerProfile: &entity.CobblerProfile{UserID: cobblerID},
	}

	fx.userRepo.EXPECT().FindByID(ctx, cobblerID).Return(user, nil)

	output, err := fx.service.OnboardingStatus(ctx, cobblerID)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrStripeAccountMissing))
}

func TestPaymentService_OnboardingStatus_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	cobblerID := uuid.New()
	user := &entity.User{
		ID: cobblerID,
		CobblerProfile: &entity.CobblerProfile{
			UserID:          cobblerID,
			StripeAccountID: "acct_123",
		},
	}

	fx.userRepo.EXPECT().FindByID(ctx, cobblerID).Return(user, nil)
	fx.gateway.EXPECT().
		GetAccountStatus(ctx, "acct_123").
		Return(&service.AccountStatus{
			AccountID:        "acct_123",
			ChargesEnabled:   true,
			PayoutsEnabled:   true,
			DetailsSubmitted: true,
		}, nil)

	output, err := fx.service.OnboardingStatus(ctx, cobblerID)

	require.NoError(t, err)
	assert.True(t, output.ChargesEnabled)
	assert.True(t, output.PayoutsEnabled)
}
