package main

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"planner/config"
	"planner/internal/domain/lifecycle"
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
	"golang.org/x/term"
)

// cliDeps are the use cases a command may call, populated from the Fx graph.
type cliDeps struct {
	fx.In

	Auth          usecase.AuthUsecase
	Guests        usecase.GuestUsecase
	Wedding       usecase.WeddingUsecase
	Schedule      usecase.ScheduleUsecase
	Gifts         usecase.GiftUsecase
	Gallery       usecase.GalleryUsecase
	Notifications usecase.NotificationUsecase
	RSVP          usecase.RSVPUsecase
}

// newCLI starts the same graph as the dashboard server, minus delivery, and
// returns a shutdown func that stops it.
func newCLI(ctx context.Context, out io.Writer) (*cli, func(), error) {
	var deps cliDeps

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			sqlite.New,
			metrics.New,
			fx.Annotate(
				func() io.Writer { return os.Stderr },
				fx.ResultTags(`name:"logOutput"`),
			),
		),
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
		fx.Provide(
			auth.NewTokenSealer,
			auth.NewJWTInspector,
			qrcode.NewQRCodeService,
			blob.NewImageSource,
			func(sessions usecase.SessionProvider) api.TokenSource { return sessions },
			func(sessions usecase.SessionProvider) api.UnauthorizedHandler { return sessions },
		),
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
		fx.Populate(&deps),
	)

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return nil, nil, err
	}

	shutdown := func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	}

	return &cli{
		deps:         deps,
		out:          out,
		now:          time.Now,
		readPassword: promptPassword,
	}, shutdown, nil
}

// promptPassword reads a password from the terminal without echo.
func promptPassword() (string, error) {
	if v := os.Getenv("PLANNER_PASSWORD"); v != "" {
		return v, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		b, err := io.ReadAll(io.LimitReader(os.Stdin, 1024))
		if err != nil {
			return "", err
		}

		return strings.TrimRight(string(b), "\r\n"), nil
	}

	_, _ = os.Stderr.WriteString("Password: ")
	b, err := term.ReadPassword(fd)
	_, _ = os.Stderr.WriteString("\n")
	if err != nil {
		return "", err
	}

	return string(b), nil
}
