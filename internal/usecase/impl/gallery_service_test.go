package impl

import (
	"context"
	"testing"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	mockRepo "planner/internal/mocks/repository"
	mockService "planner/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestGalleryService_UploadImages(t *testing.T) {
	tests := []struct {
		name    string
		images  []entity.Image
		wantErr error
	}{
		{name: "nothing selected", wantErr: domainerrors.ErrNoImages},
		{
			name:    "unsupported extension",
			images:  []entity.Image{{Filename: "a.png", Data: pngHeader}, {Filename: "b.tiff", Data: []byte("x")}},
			wantErr: domainerrors.ErrUnsupportedImage,
		},
		{
			name:    "empty file",
			images:  []entity.Image{{Filename: "a.png"}},
			wantErr: domainerrors.ErrUnsupportedImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewGalleryService(mockRepo.NewMockGalleryRepository(t), mockService.NewMockImageSource(t), newTestLogger())

			_, err := svc.UploadImages(context.Background(), tt.images)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGalleryService_UploadImages_SetsContentType(t *testing.T) {
	repo := mockRepo.NewMockGalleryRepository(t)
	svc := NewGalleryService(repo, mockService.NewMockImageSource(t), newTestLogger())

	var sent []entity.Image
	repo.On("Upload", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).([]entity.Image) }).
		Return([]string{"https://cdn/a.png", "https://cdn/b.webp"}, nil).Once()

	urls, err := svc.UploadImages(context.Background(), []entity.Image{
		{Filename: "a.png", Data: pngHeader},
		{Filename: "b.webp", Data: []byte("opaque"), ContentType: "application/octet-stream"},
	})

	require.NoError(t, err)
	assert.Len(t, urls, 2)
	require.Len(t, sent, 2)
	assert.Equal(t, "image/png", sent[0].ContentType)
	assert.Equal(t, "image/webp", sent[1].ContentType)
}

func TestGalleryService_UploadFromBucket(t *testing.T) {
	repo := mockRepo.NewMockGalleryRepository(t)
	source := mockService.NewMockImageSource(t)
	svc := NewGalleryService(repo, source, newTestLogger())

	source.On("ReadImages", mock.Anything, "mem://", "photos/").
		Return([]entity.Image{{Filename: "photos/a.png", Data: pngHeader}}, nil).Once()
	repo.On("Upload", mock.Anything, mock.Anything).Return([]string{"https://cdn/a.png"}, nil).Once()

	urls, err := svc.UploadFromBucket(context.Background(), "mem://", "photos/")

	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn/a.png"}, urls)
}

func TestGalleryService_UploadFromBucket_Empty(t *testing.T) {
	source := mockService.NewMockImageSource(t)
	svc := NewGalleryService(mockRepo.NewMockGalleryRepository(t), source, newTestLogger())
	source.On("ReadImages", mock.Anything, "file:///tmp/none", "").Return([]entity.Image{}, nil).Once()

	_, err := svc.UploadFromBucket(context.Background(), "file:///tmp/none", "")

	assert.ErrorIs(t, err, domainerrors.ErrNoImages)
}

func TestGalleryService_DeleteImage(t *testing.T) {
	repo := mockRepo.NewMockGalleryRepository(t)
	svc := NewGalleryService(repo, mockService.NewMockImageSource(t), newTestLogger())
	repo.On("Delete", mock.Anything, "https://cdn/a.png").Return(nil).Once()

	require.NoError(t, svc.DeleteImage(context.Background(), " https://cdn/a.png "))
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(svc.DeleteImage(context.Background(), "  ")))
}
