package service

import (
	"context"

	"planner/internal/domain/entity"
)

// ImageSource reads gallery images from a storage bucket.
type ImageSource interface {
	// ReadImages returns every image object under prefix of the bucket at bucketURL.
	// Objects without an image extension are skipped.
	ReadImages(ctx context.Context, bucketURL, prefix string) ([]entity.Image, error)
}
