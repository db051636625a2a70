package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cordonnier/config"
	"cordonnier/internal/delivery"
	"cordonnier/internal/delivery/api"
	apimiddleware "cordonnier/internal/delivery/api/middleware"
	"cordonnier/internal/delivery/api/router/handler"
	"cordonnier/internal/domain/service"
	"cordonnier/internal/infra/auth"
	"cordonnier/internal/infra/geocoding"
	logs "cordonnier/internal/infra/log"
	"cordonnier/internal/infra/notification"
	"cordonnier/internal/infra/payment"
	"cordonnier/internal/infra/persistence/postgres"
	"cordonnier/internal/infra/pubsub"
	"cordonnier/internal/infra/qrcode"
	"cordonnier/internal/infra/storage"
	"cordonnier/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		newFileStorage,
		pubsub.NewEventPublisher,
	)
}

// newFileStorage opens the blob bucket and ties its release to the Fx lifecycle.
func newFileStorage(lc fx.Lifecycle, ctx context.Context, cfg *config.Config) (service.FileStorage, error) {
	fileStorage, closeFunc, err := storage.NewBlobStorage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open blob storage: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return closeFunc()
		},
	})

	return fileStorage, nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
			postgres.NewCatalogRepository,
			postgres.NewOrderRepository,
			postgres.NewPaymentRepository,
			postgres.NewReviewRepository,
			postgres.NewMediaRepository,
			postgres.NewSettingsRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
			geocoding.NewNominatimGeocoder,
			payment.NewStripeGateway,
			newFirebaseService,
			newQRCodeService,
		),
	)
}

// newPasswordHasher honors an explicit bcrypt cost when one is configured.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
	}

	return auth.NewBcryptHasher()
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewPartnerService,
			impl.NewCatalogService,
			impl.NewAssignmentService,
			impl.NewOrderService,
			impl.NewPaymentService,
			impl.NewReviewService,
			impl.NewMediaService,
			impl.NewStatsService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCatalogHandler,
			handler.NewOrderHandler,
			handler.NewPartnerHandler,
			handler.NewPaymentHandler,
			handler.NewReviewHandler,
			handler.NewMediaHandler,
			handler.NewStatsHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
