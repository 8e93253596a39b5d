package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/domain/view"
	"planner/internal/errors"
	"planner/internal/usecase"
)

// inboxMaxAge bounds how long a listed inbox is filtered locally before the API is asked again.
const inboxMaxAge = 30 * time.Second

type notificationService struct {
	notificationRepo repository.NotificationRepository
	sessions         usecase.SessionProvider
	logger           *slog.Logger
	now              func() time.Time

	// inbox is the last listed copy with local read marks applied, valid for
	// the session token it was fetched with.
	mu        sync.Mutex
	inbox     []entity.Notification
	owner     string
	fetchedAt time.Time
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	sessions usecase.SessionProvider,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		sessions:         sessions,
		logger:           logger,
		now:              time.Now,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListNotifications filters the cached inbox while it is fresh and belongs to
// the current session, and lists from the API otherwise.
func (s *notificationService) ListNotifications(ctx context.Context, filter view.NotificationFilter) (*view.NotificationView, error) {
	if !filter.Valid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	owner, _ := s.sessions.Token(ctx)
	items, ok := s.cached(owner)
	if !ok {
		var err error
		if items, err = s.notificationRepo.List(ctx); err != nil {
			return nil, errors.Wrap(err, "failed to list notifications")
		}
		s.keep(owner, items)
	}

	out := view.BuildNotificationView(items, filter)

	return &out, nil
}

// MarkRead flips the local copy only after the API accepted the change.
func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inbox {
		if s.inbox[i].ID == id {
			s.inbox[i].Read = true
		}
	}

	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	if err := s.notificationRepo.MarkAllRead(ctx); err != nil {
		return errors.Wrap(err, "failed to mark notifications read")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inbox {
		s.inbox[i].Read = true
	}
	s.log(ctx).Debug("All notifications marked read", slog.Int("count", len(s.inbox)))

	return nil
}

func (s *notificationService) UnreadCount(ctx context.Context) (int, error) {
	count, err := s.notificationRepo.UnreadCount(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

func (s *notificationService) cached(owner string) ([]entity.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fetchedAt.IsZero() || owner != s.owner || s.now().Sub(s.fetchedAt) > inboxMaxAge {
		return nil, false
	}

	return slices.Clone(s.inbox), true
}

func (s *notificationService) keep(owner string, items []entity.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inbox = slices.Clone(items)
	s.owner = owner
	s.fetchedAt = s.now()
}
