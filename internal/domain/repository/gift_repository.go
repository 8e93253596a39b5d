package repository

import (
	"context"

	"planner/internal/domain/entity"
)

// GiftRepository defines the registry endpoints.
type GiftRepository interface {
	List(ctx context.Context) ([]entity.GiftItem, error)
	Create(ctx context.Context, gift *entity.GiftItem) (*entity.GiftItem, error)
	Update(ctx context.Context, gift *entity.GiftItem) (*entity.GiftItem, error)
	Delete(ctx context.Context, id string) error
}

// GalleryRepository defines the photo gallery endpoints.
type GalleryRepository interface {
	// List returns the image URLs of the gallery.
	List(ctx context.Context) ([]string, error)

	// Upload submits images in one multipart request and returns the gallery afterwards.
	Upload(ctx context.Context, images []entity.Image) ([]string, error)

	// Delete removes the image at url.
	Delete(ctx context.Context, url string) error
}
