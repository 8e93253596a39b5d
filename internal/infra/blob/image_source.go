// Package blob reads gallery images out of gocloud buckets (file:// directories or mem:// buckets).
package blob

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"path"
	"sort"
	"strings"

	"planner/internal/domain/entity"
	"planner/internal/domain/service"
	"planner/internal/util"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // registers file://
	_ "gocloud.dev/blob/memblob"  // registers mem://
)

// maxImageSize caps a single object so a stray video does not end up in memory.
const maxImageSize = 32 << 20

type imageSource struct {
	opener func(ctx context.Context, url string) (*blob.Bucket, error)
	owned  bool // close the bucket after each read
	logger *slog.Logger
}

// NewImageSource returns an ImageSource that opens buckets by URL.
func NewImageSource(logger *slog.Logger) service.ImageSource {
	return &imageSource{
		opener: blob.OpenBucket,
		owned:  true,
		logger: logger,
	}
}

// NewBucketImageSource reads from an already opened bucket and ignores the URL argument.
func NewBucketImageSource(bucket *blob.Bucket, logger *slog.Logger) service.ImageSource {
	return &imageSource{
		opener: func(context.Context, string) (*blob.Bucket, error) { return bucket, nil },
		logger: logger,
	}
}

// ReadImages returns every image object under prefix, sorted by key. Other objects are skipped.
func (s *imageSource) ReadImages(ctx context.Context, bucketURL, prefix string) ([]entity.Image, error) {
	bucket, err := s.opener(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}
	if s.owned {
		defer func() {
			if cerr := bucket.Close(); cerr != nil {
				s.logger.Debug("Close bucket failed", slog.Any("error", cerr))
			}
		}()
	}

	var keys []string
	iter := bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "list bucket")
		}
		if obj.IsDir {
			continue
		}
		if !entity.IsImageFile(obj.Key) {
			s.logger.Debug("Skipping non-image object", slog.String("key", obj.Key))

			continue
		}
		if obj.Size > maxImageSize {
			s.logger.Warn("Skipping oversized image",
				slog.String("key", obj.Key),
				slog.String("size", util.FormatBytes(obj.Size)),
			)

			continue
		}
		keys = append(keys, obj.Key)
	}
	sort.Strings(keys)

	images := make([]entity.Image, 0, len(keys))
	for _, key := range keys {
		data, err := bucket.ReadAll(ctx, key)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", key)
		}
		images = append(images, entity.Image{
			Filename:    path.Base(key),
			ContentType: contentType(key),
			Data:        data,
		})
	}
	s.logger.Info("Read images from bucket",
		slog.String("bucket", bucketURL),
		slog.String("prefix", prefix),
		slog.Int("count", len(images)),
	)

	return images, nil
}

func contentType(key string) string {
	if ct := mime.TypeByExtension(strings.ToLower(path.Ext(key))); strings.HasPrefix(ct, "image/") {
		return ct
	}
	ct, _ := entity.ImageContentType(key)

	return ct
}
