package main

import (
	"context"
	"log/slog"
	"os"

	"planner/config"
	"planner/internal/delivery"
	"planner/internal/delivery/http"
	"planner/internal/delivery/http/middleware"
	"planner/internal/delivery/http/router/handler"
	"planner/internal/delivery/worker"
	"planner/internal/infra/api"
	"planner/internal/infra/auth"
	"planner/internal/infra/blob"
	logs "planner/internal/infra/log"
	"planner/internal/infra/metrics"
	"planner/internal/infra/persistence/sqlite"
	"planner/internal/infra/qrcode"
	"planner/internal/usecase"
	"planner/internal/usecase/impl"

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
		sqlite.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewSessionStore,
			api.NewClient,
			api.NewAuthRepository,
			api.NewWeddingRepository,
			api.NewScheduleRepository,
			api.NewGuestRepository,
			api.NewRSVPRepository,
			api.NewGiftRepository,
			api.NewGalleryRepository,
			api.NewNotificationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewTokenSealer,
			auth.NewJWTInspector,
			qrcode.NewQRCodeService,
			blob.NewImageSource,
			newTokenSource,
			newUnauthorizedHandler,
		),
	)
}

// newTokenSource hands the session cache to the API client as its token source
func newTokenSource(sessions usecase.SessionProvider) api.TokenSource {
	return sessions
}

// newUnauthorizedHandler lets a 401 from any call drop the cached session
func newUnauthorizedHandler(sessions usecase.SessionProvider) api.UnauthorizedHandler {
	return sessions
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewAuthService,
			impl.NewGuestService,
			impl.NewWeddingService,
			impl.NewScheduleService,
			impl.NewGiftService,
			impl.NewGalleryService,
			impl.NewNotificationService,
			impl.NewRSVPService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			newUnreadTracker,
			handler.NewAuthHandler,
			handler.NewGuestHandler,
			handler.NewWeddingHandler,
			handler.NewScheduleHandler,
			handler.NewGiftHandler,
			handler.NewGalleryHandler,
			handler.NewNotificationHandler,
			handler.NewRSVPHandler,
		),
	)
}

// newUnreadTracker keeps a polled count fresh for two poll intervals
func newUnreadTracker(cfg *config.Config) *worker.UnreadTracker {
	return worker.NewUnreadTracker(2 * cfg.Poller.UnreadInterval)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewUnreadPoller,
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
