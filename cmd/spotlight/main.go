package main

import (
	"context"
	"log/slog"
	"os"

	"spotlight/config"
	"spotlight/internal/delivery"
	"spotlight/internal/delivery/http"
	httpmiddleware "spotlight/internal/delivery/http/middleware"
	httphandler "spotlight/internal/delivery/http/router/handler"
	"spotlight/internal/delivery/worker"
	workerhandler "spotlight/internal/delivery/worker/handler"
	"spotlight/internal/infra/auth"
	"spotlight/internal/infra/clock"
	logs "spotlight/internal/infra/log"
	"spotlight/internal/infra/persistence/postgres"
	"spotlight/internal/infra/pubsub"
	"spotlight/internal/infra/scheduler"
	"spotlight/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		scheduler.Module,
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
			postgres.NewProfileRepository,
			postgres.NewShardRepository,
			postgres.NewAuctionRepository,
			postgres.NewUserRepository,
			postgres.NewStateRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			clock.NewSystemClock,
			auth.NewTokenVerifier,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEngagementService,
			impl.NewAggregationService,
			impl.NewProfileService,
			impl.NewAuctionService,
			impl.NewLifecycleService,
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			httphandler.NewProfileHandler,
			httphandler.NewAuctionHandler,
			httphandler.NewEngagementHandler,
			workerhandler.NewTriggerHandler,
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
			fx.Annotate(
				worker.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
