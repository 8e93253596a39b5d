package usecase

import (
	"context"

	"planner/internal/domain/entity"
)

// GalleryUsecase defines the photo gallery use cases.
type GalleryUsecase interface {
	ListImages(ctx context.Context) ([]string, error)

	// UploadImages submits images in one multipart request.
	UploadImages(ctx context.Context, images []entity.Image) ([]string, error)

	// UploadFromBucket reads every image under prefix of the bucket at bucketURL
	// (file:// or mem://) and uploads them in one request.
	UploadFromBucket(ctx context.Context, bucketURL, prefix string) ([]string, error)

	DeleteImage(ctx context.Context, url string) error
}
