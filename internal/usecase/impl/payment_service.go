package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "cordonnier/internal/delivery/context"
	"cordonnier/internal/domain/entity"
	domainerrors "cordonnier/internal/domain/errors"
	"cordonnier/internal/domain/repository"
	"cordonnier/internal/domain/service"
	"cordonnier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkoutCompletedEvent is the provider event that settles an order.
const checkoutCompletedEvent = "checkout.session.completed"

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager    repository.TransactionManager
	orderRepo    repository.OrderRepository
	paymentRepo  repository.PaymentRepository
	userRepo     repository.UserRepository
	settingsRepo repository.SettingsRepository
	gateway      service.PaymentGateway
	logger       *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OrderRepo    repository.OrderRepository
	PaymentRepo  repository.PaymentRepository
	UserRepo     repository.UserRepository
	SettingsRepo repository.SettingsRepository
	Gateway      service.PaymentGateway
	Logger       *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:    params.TxManager,
		orderRepo:    params.OrderRepo,
		paymentRepo:  params.PaymentRepo,
		userRepo:     params.UserRepo,
		settingsRepo: params.SettingsRepo,
		gateway:      params.Gateway,
		logger:       params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartCheckout opens a hosted checkout page for an unpaid order. The
// platform commission is taken as an application fee; the remainder lands on
// the assigned cobbler's connected account when one exists.
func (srv *paymentService) StartCheckout(ctx context.Context, input usecase.StartCheckoutInput) (*usecase.CheckoutOutput, error) {
	order, err := srv.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("no order with this id")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}
	if order.PaymentState == entity.PaymentStatePaid {
		return nil, domainerrors.ErrConflict.WrapMessage("order is already paid")
	}

	settings, err := srv.settingsRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load platform settings")
	}

	connectedAccountID, err := srv.connectedAccountFor(ctx, order)
	if err != nil {
		return nil, err
	}

	amountCents := toCents(order.Total)
	feeCents := toCents(order.Total * settings.PlatformCommission / 100)

	session, err := srv.gateway.CreateCheckoutSession(ctx, service.CheckoutSessionInput{
		OrderID:            order.ID.String(),
		OrderReference:     order.Reference,
		AmountCents:        amountCents,
		FeeCents:           feeCents,
		Currency:           order.Currency,
		CustomerEmail:      order.ContactEmail,
		ConnectedAccountID: connectedAccountID,
		SuccessURL:         input.SuccessURL,
		CancelURL:          input.CancelURL,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to open checkout session",
			slog.String("reference", order.Reference), slog.Any("error", err))

		return nil, domainerrors.ErrPaymentFailed.WrapMessage("checkout session creation failed")
	}

	transaction := &entity.PaymentTransaction{
		OrderID:         order.ID,
		StripeSessionID: session.ID,
		Amount:          order.Total,
		ApplicationFee:  float64(feeCents) / 100,
		Currency:        order.Currency,
		Status:          entity.TransactionPending,
	}
	if err := srv.paymentRepo.Create(ctx, transaction); err != nil {
		return nil, errors.Wrap(err, "failed to record payment transaction")
	}

	srv.log(ctx).Info("Checkout session opened",
		slog.String("reference", order.Reference), slog.String("sessionID", session.ID))

	return &usecase.CheckoutOutput{SessionID: session.ID, CheckoutURL: session.URL}, nil
}

// HandleWebhook verifies and applies a provider webhook.
func (srv *paymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := srv.gateway.VerifyWebhook(payload, signature)
	if err != nil {
		return domainerrors.ErrWebhookSignature.WrapMessage("webhook signature verification failed")
	}

	if event.Type != checkoutCompletedEvent {
		srv.log(ctx).Debug("Ignoring webhook event", slog.String("type", event.Type))

		return nil
	}

	return srv.settleSession(ctx, event.SessionID)
}

// ConfirmCheckout polls the session state directly and settles the order when
// the provider reports it paid.
func (srv *paymentService) ConfirmCheckout(ctx context.Context, sessionID string) (*entity.Order, error) {
	session, err := srv.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, domainerrors.ErrPaymentFailed.WrapMessage("checkout session lookup failed")
	}

	if session.Paid {
		if err := srv.settleSession(ctx, sessionID); err != nil {
			return nil, err
		}
	}

	transaction, err := srv.paymentRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("no transaction for this session")
		}

		return nil, errors.Wrap(err, "failed to find payment transaction")
	}

	order, err := srv.orderRepo.FindByID(ctx, transaction.OrderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order for checkout confirmation")
	}

	return order, nil
}

// StartOnboarding creates (or reuses) the cobbler's connected account and
// returns the hosted onboarding URL.
func (srv *paymentService) StartOnboarding(ctx context.Context, cobblerID uuid.UUID, returnURL, refreshURL string) (*usecase.OnboardingOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, cobblerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cobbler")
	}
	if user.CobblerProfile == nil {
		return nil, domainerrors.ErrCobblerNotFound.WrapMessage("user has no cobbler profile")
	}

	accountID := user.CobblerProfile.StripeAccountID
	if accountID == "" {
		accountID, err = srv.gateway.CreateExpressAccount(ctx, user.Email)
		if err != nil {
			return nil, domainerrors.ErrPaymentFailed.WrapMessage("connected account creation failed")
		}

		user.CobblerProfile.StripeAccountID = accountID
		if err := srv.userRepo.UpdateCobblerProfile(ctx, user.CobblerProfile); err != nil {
			return nil, errors.Wrap(err, "failed to record connected account")
		}
	}

	link, err := srv.gateway.CreateOnboardingLink(ctx, accountID, returnURL, refreshURL)
	if err != nil {
		return nil, domainerrors.ErrPaymentFailed.WrapMessage("onboarding link creation failed")
	}

	srv.log(ctx).Info("Onboarding started",
		slog.Any("cobblerID", cobblerID), slog.String("accountID", accountID))

	return &usecase.OnboardingOutput{AccountID: accountID, OnboardingURL: link}, nil
}

// OnboardingStatus reports the payout readiness of the cobbler's account.
func (srv *paymentService) OnboardingStatus(ctx context.Context, cobblerID uuid.UUID) (*usecase.OnboardingStatusOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, cobblerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cobbler")
	}
	if user.CobblerProfile == nil {
		return nil, domainerrors.ErrCobblerNotFound.WrapMessage("user has no cobbler profile")
	}
	if user.CobblerProfile.StripeAccountID == "" {
		return nil, domainerrors.ErrStripeAccountMissing.WrapMessage("onboarding was never started")
	}

	status, err := srv.gateway.GetAccountStatus(ctx, user.CobblerProfile.StripeAccountID)
	if err != nil {
		return nil, domainerrors.ErrPaymentFailed.WrapMessage("account status lookup failed")
	}

	return &usecase.OnboardingStatusOutput{
		AccountID:        status.AccountID,
		ChargesEnabled:   status.ChargesEnabled,
		PayoutsEnabled:   status.PayoutsEnabled,
		DetailsSubmitted: status.DetailsSubmitted,
	}, nil
}

// settleSession marks the transaction and its order paid. Idempotent: a
// session already settled is left untouched.
func (srv *paymentService) settleSession(ctx context.Context, sessionID string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.PaymentRepo()
		orderRepo := repoFactory.OrderRepo()

		transaction, err := paymentRepo.FindBySessionID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, repository.ErrTransactionNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("no transaction for this session")
			}

			return errors.Wrap(err, "failed to find payment transaction")
		}
		if transaction.Status == entity.TransactionPaid {
			return nil
		}

		if err := paymentRepo.UpdateStatus(ctx, transaction.ID, entity.TransactionPaid); err != nil {
			return errors.Wrap(err, "failed to mark transaction paid")
		}
		if err := orderRepo.UpdatePaymentState(ctx, transaction.OrderID, entity.PaymentStatePaid); err != nil {
			return errors.Wrap(err, "failed to mark order paid")
		}

		srv.log(ctx).Info("Checkout settled",
			slog.String("sessionID", sessionID), slog.Any("orderID", transaction.OrderID))

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute settlement transaction")
	}

	return nil
}

// connectedAccountFor resolves the destination account of the order's
// assigned cobbler, empty when the order is unassigned or the cobbler never
// onboarded.
func (srv *paymentService) connectedAccountFor(ctx context.Context, order *entity.Order) (string, error) {
	if order.CobblerID == nil {
		return "", nil
	}

	cobbler, err := srv.userRepo.FindByID(ctx, *order.CobblerID)
	if err != nil {
		return "", errors.Wrap(err, "failed to find assigned cobbler")
	}
	if cobbler.CobblerProfile == nil {
		return "", nil
	}

	return cobbler.CobblerProfile.StripeAccountID, nil
}

// toCents converts a decimal amount to the provider's integer cents.
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
