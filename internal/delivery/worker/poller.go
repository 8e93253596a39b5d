// Package worker runs background loops of the dashboard companion.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"planner/config"
	"planner/internal/delivery"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/lifecycle"
	"planner/internal/infra/metrics"
	"planner/internal/usecase"

	"go.uber.org/fx"
)

// PollerParams holds dependencies for the unread poller, injected by Fx.
type PollerParams struct {
	fx.In

	Lc            fx.Lifecycle
	Cfg           *config.Config
	Logger        *slog.Logger
	Sessions      usecase.SessionProvider
	Notifications usecase.NotificationUsecase
	Tracker       *UnreadTracker
	Metrics       *metrics.Metrics
}

type unreadPoller struct {
	disabled      bool
	interval      time.Duration
	sessions      usecase.SessionProvider
	notifications usecase.NotificationUsecase
	tracker       *UnreadTracker
	metrics       *metrics.Metrics
	logger        *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewUnreadPoller creates the background unread-count poll.
func NewUnreadPoller(params PollerParams) delivery.Delivery {
	p := &unreadPoller{
		disabled:      params.Cfg.Poller.Disabled,
		interval:      params.Cfg.Poller.UnreadInterval,
		sessions:      params.Sessions,
		notifications: params.Notifications,
		tracker:       params.Tracker,
		metrics:       params.Metrics,
		logger:        params.Logger.With(slog.String("component", "unread_poller")),
	}

	params.Lc.Append(fx.Hook{
		OnStop: p.stop,
	})

	return p
}

// Serve polls until ctx is done or the poller is stopped. It never fails.
func (p *unreadPoller) Serve(ctx context.Context) error {
	if p.disabled {
		p.logger.Info("Unread poller disabled")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.mu.Lock()
	p.cancel = cancel
	p.done = done
	p.mu.Unlock()
	defer close(done)
	defer cancel()

	p.logger.Info("Starting unread poller", slog.Duration("interval", p.interval))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Unread poller stopped")

			return nil
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *unreadPoller) poll(ctx context.Context) {
	if _, ok := p.sessions.Token(ctx); !ok {
		return
	}

	count, err := p.notifications.UnreadCount(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		level := slog.LevelWarn
		if domainerrors.IsUnauthorized(err) {
			level = slog.LevelInfo
		}
		p.logger.Log(ctx, level, "Unread poll failed", slog.Any("error", err))

		return
	}

	p.tracker.Set(count)
	p.metrics.SetUnread(count)
	p.logger.Debug("Unread poll", slog.Int("count", count))
}

func (p *unreadPoller) stop(ctx context.Context) error {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()

	stopCtx, stopCancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer stopCancel()
	select {
	case <-done:
	case <-stopCtx.Done():
	}

	return nil
}
