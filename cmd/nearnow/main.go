package main

import (
	"context"
	"log/slog"
	"os"

	"nearnow/config"
	"nearnow/internal/delivery"
	"nearnow/internal/delivery/http"
	"nearnow/internal/delivery/http/middleware"
	"nearnow/internal/delivery/http/router/handler"
	"nearnow/internal/infra/auth"
	logs "nearnow/internal/infra/log"
	"nearnow/internal/infra/persistence/postgres"
	"nearnow/internal/infra/pubsub"
	"nearnow/internal/infra/realtime"
	"nearnow/internal/infra/storage"
	"nearnow/internal/usecase/impl"

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
		realtime.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewLocationRepository,
			postgres.NewSwipeRepository,
			postgres.NewMatchRepository,
			postgres.NewPresenceRepository,
			postgres.NewMessageRepository,
			postgres.NewDeviceRepository,
			postgres.NewBlockChecker,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			realtime.NewFeed,
			realtime.NewPresenceChannel,
			storage.NewImageStore,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocationService,
			impl.NewDiscoveryService,
			impl.NewMatchingService,
			impl.NewPresenceService,
			impl.NewChatService,
			impl.NewDeviceService,
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
			handler.NewLocationHandler,
			handler.NewDiscoveryHandler,
			handler.NewMatchHandler,
			handler.NewPresenceHandler,
			handler.NewChatHandler,
			handler.NewDeviceHandler,
			handler.NewTestHandler,
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
