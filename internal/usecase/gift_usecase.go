package usecase

import (
	"context"

	"planner/internal/domain/entity"
	"planner/internal/domain/view"
)

// GiftUsecase defines the registry use cases.
type GiftUsecase interface {
	ListGifts(ctx context.Context, filter view.GiftFilter) (*view.GiftView, error)
	CreateGift(ctx context.Context, gift *entity.GiftItem) (*entity.GiftItem, error)
	UpdateGift(ctx context.Context, id string, gift *entity.GiftItem) (*entity.GiftItem, error)
	DeleteGift(ctx context.Context, id string) error
	SetGiftStatus(ctx context.Context, id string, status entity.GiftStatus) (*entity.GiftItem, error)
}
