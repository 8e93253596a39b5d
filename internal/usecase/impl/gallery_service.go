package impl

import (
	"context"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strings"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/domain/service"
	"planner/internal/errors"
	"planner/internal/usecase"
)

type galleryService struct {
	galleryRepo repository.GalleryRepository
	source      service.ImageSource
	logger      *slog.Logger
}

// NewGalleryService is the constructor for galleryService.
func NewGalleryService(
	galleryRepo repository.GalleryRepository,
	source service.ImageSource,
	logger *slog.Logger,
) usecase.GalleryUsecase {
	return &galleryService{
		galleryRepo: galleryRepo,
		source:      source,
		logger:      logger,
	}
}

func (s *galleryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *galleryService) ListImages(ctx context.Context) ([]string, error) {
	urls, err := s.galleryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list gallery")
	}

	return urls, nil
}

// UploadImages checks every file before sending any of them.
func (s *galleryService) UploadImages(ctx context.Context, images []entity.Image) ([]string, error) {
	if len(images) == 0 {
		return nil, domainerrors.ErrNoImages
	}

	prepared := make([]entity.Image, 0, len(images))
	for _, img := range images {
		contentType, ok := entity.ImageContentType(img.Filename)
		if !ok || len(img.Data) == 0 {
			return nil, domainerrors.ErrUnsupportedImage.WithDetails(img.Filename)
		}
		if sniffed := http.DetectContentType(img.Data); strings.HasPrefix(sniffed, "image/") {
			contentType = sniffed
		} else if byExt := mime.TypeByExtension(strings.ToLower(path.Ext(img.Filename))); byExt != "" && img.ContentType == "" {
			contentType = byExt
		}
		if img.ContentType == "" || !strings.HasPrefix(img.ContentType, "image/") {
			img.ContentType = contentType
		}
		prepared = append(prepared, img)
	}

	urls, err := s.galleryRepo.Upload(ctx, prepared)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload images")
	}
	s.log(ctx).Info("Gallery images uploaded", slog.Int("count", len(prepared)))

	return urls, nil
}

// UploadFromBucket uploads every image found under prefix in one request.
func (s *galleryService) UploadFromBucket(ctx context.Context, bucketURL, prefix string) ([]string, error) {
	images, err := s.source.ReadImages(ctx, bucketURL, prefix)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read images from %s", bucketURL)
	}
	if len(images) == 0 {
		return nil, domainerrors.ErrNoImages.WithDetails("no images under " + bucketURL)
	}

	return s.UploadImages(ctx, images)
}

func (s *galleryService) DeleteImage(ctx context.Context, url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return domainerrors.NewValidationError(domainerrors.FieldError{Field: "url", Message: "is required"})
	}

	if err := s.galleryRepo.Delete(ctx, url); err != nil {
		if domainerrors.IsNotFound(err) {
			return domainerrors.ErrNotFound.WithDetails(url)
		}

		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}
