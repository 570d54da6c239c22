package main

import (
	"context"
	"log/slog"
	"os"

	"packline/config"
	"packline/internal/delivery"
	"packline/internal/delivery/http"
	"packline/internal/delivery/http/middleware"
	"packline/internal/delivery/http/router/handler"
	"packline/internal/domain/service"
	"packline/internal/infra/auth"
	"packline/internal/infra/label"
	logs "packline/internal/infra/log"
	"packline/internal/infra/persistence/postgres"
	"packline/internal/infra/pubsub"
	"packline/internal/infra/relay"
	"packline/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewBundleRepository,
			postgres.NewUnitRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newLabelService,
			relay.NewEventRelay,
			pubsub.NewEventBridge,
		),
	)
}

// newLabelService creates a QR label service with dependency injection
func newLabelService(cfg *config.Config) service.LabelService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return label.NewLabelService(256, "M")
	}

	return label.NewLabelService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAssemblyService,
			impl.NewBundleService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewBundleHandler,
			handler.NewScanHandler,
			handler.NewStreamHandler,
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
