package api

import (
	"context"
	"net/http"

	"planner/internal/domain/entity"
	"planner/internal/domain/repository"
)

type giftRepository struct {
	client *Client
}

// NewGiftRepository is the constructor for the remote GiftRepository.
func NewGiftRepository(client *Client) repository.GiftRepository {
	return &giftRepository{client: client}
}

func (r *giftRepository) List(ctx context.Context) ([]entity.GiftItem, error) {
	var out []entity.GiftItem
	if _, err := r.client.Do(ctx, http.MethodGet, Path("/api/v1/gifts"), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *giftRepository) Create(ctx context.Context, gift *entity.GiftItem) (*entity.GiftItem, error) {
	var out entity.GiftItem
	if _, err := r.client.Do(ctx, http.MethodPost, Path("/api/v1/gifts"), gift, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (r *giftRepository) Update(ctx context.Context, gift *entity.GiftItem) (*entity.GiftItem, error) {
	var out entity.GiftItem
	if _, err := r.client.Do(ctx, http.MethodPut, Path("/api/v1/gifts/:id", gift.ID), gift, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (r *giftRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Do(ctx, http.MethodDelete, Path("/api/v1/gifts/:id", id), nil, nil)

	return err
}

type galleryRepository struct {
	client *Client
}

// NewGalleryRepository is the constructor for the remote GalleryRepository.
func NewGalleryRepository(client *Client) repository.GalleryRepository {
	return &galleryRepository{client: client}
}

// galleryImagesField is the multipart field the upload endpoint reads.
const galleryImagesField = "images"

func (r *galleryRepository) List(ctx context.Context) ([]string, error) {
	var out []string
	if _, err := r.client.Do(ctx, http.MethodGet, Path("/api/v1/gallery"), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *galleryRepository) Upload(ctx context.Context, images []entity.Image) ([]string, error) {
	var out []string
	if err := r.client.Upload(ctx, Path("/api/v1/gallery/upload"), galleryImagesField, images, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *galleryRepository) Delete(ctx context.Context, url string) error {
	_, err := r.client.Do(ctx, http.MethodDelete, Path("/api/v1/gallery").WithQuery("url", url), nil, nil)

	return err
}

type notificationRepository struct {
	client *Client
}

// NewNotificationRepository is the constructor for the remote NotificationRepository.
func NewNotificationRepository(client *Client) repository.NotificationRepository {
	return &notificationRepository{client: client}
}

func (r *notificationRepository) List(ctx context.Context) ([]entity.Notification, error) {
	var out []entity.Notification
	if _, err := r.client.Do(ctx, http.MethodGet, Path("/api/v1/notifications"), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

type unreadCountResponse struct {
	Count int `json:"count"`
}

func (r *notificationRepository) UnreadCount(ctx context.Context) (int, error) {
	var out unreadCountResponse
	if _, err := r.client.Do(ctx, http.MethodGet, Path("/api/v1/notifications/unread-count"), nil, &out); err != nil {
		return 0, err
	}

	return out.Count, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.client.Do(ctx, http.MethodPatch, Path("/api/v1/notifications/:id/read", id), nil, nil)

	return err
}

func (r *notificationRepository) MarkAllRead(ctx context.Context) error {
	_, err := r.client.Do(ctx, http.MethodPatch, Path("/api/v1/notifications/read-all"), nil, nil)

	return err
}
