package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"fieldforce/config"
	"fieldforce/internal/delivery"
	"fieldforce/internal/delivery/http"
	"fieldforce/internal/delivery/http/middleware"
	"fieldforce/internal/delivery/http/router/handler"
	"fieldforce/internal/domain/service"
	"fieldforce/internal/infra/auth"
	"fieldforce/internal/infra/location"
	logs "fieldforce/internal/infra/log"
	"fieldforce/internal/infra/notification"
	"fieldforce/internal/infra/persistence/postgres"
	"fieldforce/internal/infra/pubsub"
	"fieldforce/internal/infra/qrcode"
	"fieldforce/internal/usecase/impl"

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
		location.NewDeviceFeed,
		// The feed serves both sides of the location stream: the delivery
		// layer pushes samples in, tracking sessions consume them.
		func(feed *location.DeviceFeed) service.LocationSource { return feed },
		func(feed *location.DeviceFeed) service.LocationSink { return feed },
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewOutletRepository,
			postgres.NewVisitRepository,
			postgres.NewStockRepository,
			postgres.NewOrderRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			newFirebaseService,
			newQRCodeService,
		),
	)
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
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewVisitService,
			impl.NewTrackingService,
			impl.NewOrderService,
			impl.NewOutletService,
			impl.NewStockService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTrackingHandler,
			handler.NewVisitHandler,
			handler.NewOutletHandler,
			handler.NewStockHandler,
			handler.NewOrderHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
