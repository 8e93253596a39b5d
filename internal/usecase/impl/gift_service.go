package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/domain/validation"
	"planner/internal/domain/view"
	"planner/internal/errors"
	"planner/internal/usecase"
)

type giftService struct {
	giftRepo repository.GiftRepository
	logger   *slog.Logger

	mu    sync.Mutex
	gifts []entity.GiftItem
}

// NewGiftService is the constructor for giftService.
func NewGiftService(giftRepo repository.GiftRepository, logger *slog.Logger) usecase.GiftUsecase {
	return &giftService{
		giftRepo: giftRepo,
		logger:   logger,
	}
}

func (s *giftService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *giftService) ListGifts(ctx context.Context, filter view.GiftFilter) (*view.GiftView, error) {
	if !filter.Valid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	gifts, err := s.giftRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list gifts")
	}

	s.mu.Lock()
	s.gifts = slices.Clone(gifts)
	s.mu.Unlock()

	out := view.BuildGiftView(gifts, filter)

	return &out, nil
}

func normalizeGift(g *entity.GiftItem) {
	g.Name = strings.TrimSpace(g.Name)
	g.URL = strings.TrimSpace(g.URL)
	g.ImageURL = strings.TrimSpace(g.ImageURL)
	if g.Priority == "" {
		g.Priority = entity.PriorityMedium
	}
	if g.Status == "" {
		g.Status = entity.GiftAvailable
	}
	if g.Quantity == 0 {
		g.Quantity = 1
	}
}

func (s *giftService) CreateGift(ctx context.Context, gift *entity.GiftItem) (*entity.GiftItem, error) {
	if gift == nil {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "gift", Message: "is required"})
	}
	gift.ID = ""
	normalizeGift(gift)
	if err := validation.Struct(gift); err != nil {
		return nil, err
	}

	created, err := s.giftRepo.Create(ctx, gift)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gift")
	}

	s.mu.Lock()
	s.gifts = append(s.gifts, *created)
	s.mu.Unlock()
	s.log(ctx).Info("Gift created", slog.String("giftID", created.ID))

	return created, nil
}

func (s *giftService) UpdateGift(ctx context.Context, id string, gift *entity.GiftItem) (*entity.GiftItem, error) {
	if gift == nil {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "gift", Message: "is required"})
	}
	gift.ID = id
	normalizeGift(gift)
	if err := validation.Struct(gift); err != nil {
		return nil, err
	}

	updated, err := s.giftRepo.Update(ctx, gift)
	if err != nil {
		if domainerrors.IsNotFound(err) {
			s.forget(id)

			return nil, domainerrors.ErrGiftNotFound
		}

		return nil, errors.Wrap(err, "failed to update gift")
	}
	s.remember(*updated)

	return updated, nil
}

func (s *giftService) DeleteGift(ctx context.Context, id string) error {
	if err := s.giftRepo.Delete(ctx, id); err != nil {
		if domainerrors.IsNotFound(err) {
			s.forget(id)

			return domainerrors.ErrGiftNotFound
		}

		return errors.Wrap(err, "failed to delete gift")
	}
	s.forget(id)

	return nil
}

// SetGiftStatus updates one field, starting from the last listed copy of the item.
func (s *giftService) SetGiftStatus(ctx context.Context, id string, status entity.GiftStatus) (*entity.GiftItem, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	gift, ok := s.lookup(id)
	if !ok {
		if _, err := s.ListGifts(ctx, view.GiftFilter{}); err != nil {
			return nil, err
		}
		if gift, ok = s.lookup(id); !ok {
			return nil, domainerrors.ErrGiftNotFound
		}
	}
	gift.Status = status
	if status == entity.GiftPurchased && gift.Purchased < gift.Quantity {
		gift.Purchased = gift.Quantity
	}

	return s.UpdateGift(ctx, id, &gift)
}

func (s *giftService) lookup(id string) (entity.GiftItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.gifts, func(g entity.GiftItem) bool { return g.ID == id })
	if i < 0 {
		return entity.GiftItem{}, false
	}

	return s.gifts[i], true
}

func (s *giftService) remember(gift entity.GiftItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := slices.IndexFunc(s.gifts, func(g entity.GiftItem) bool { return g.ID == gift.ID }); i >= 0 {
		s.gifts[i] = gift

		return
	}
	s.gifts = append(s.gifts, gift)
}

func (s *giftService) forget(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gifts = slices.DeleteFunc(s.gifts, func(g entity.GiftItem) bool { return g.ID == id })
}
