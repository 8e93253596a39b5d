// Package usecase holds testify mocks of the use case interfaces.
package usecase

import (
	"context"
	"testing"
	"time"

	"planner/internal/domain/entity"
	"planner/internal/domain/view"
	"planner/internal/usecase"

	"github.com/stretchr/testify/mock"
)

func register(t *testing.T, m *mock.Mock) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// MockSessionProvider is a mock of usecase.SessionProvider.
type MockSessionProvider struct{ mock.Mock }

// NewMockSessionProvider creates a mock whose expectations are asserted on cleanup.
func NewMockSessionProvider(t *testing.T) *MockSessionProvider {
	m := &MockSessionProvider{}
	register(t, &m.Mock)

	return m
}

func (m *MockSessionProvider) Token(ctx context.Context) (string, bool) {
	args := m.Called(ctx)

	return args.String(0), args.Bool(1)
}

func (m *MockSessionProvider) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSessionProvider) Cached(ctx context.Context) (*entity.CachedSession, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*entity.CachedSession)

	return res, args.Error(1)
}

func (m *MockSessionProvider) Store(ctx context.Context, token string, profile *entity.User) error {
	return m.Called(ctx, token, profile).Error(0)
}

func (m *MockSessionProvider) StoreProfile(ctx context.Context, profile *entity.User) error {
	return m.Called(ctx, profile).Error(0)
}

// MockAuthUsecase is a mock of usecase.AuthUsecase.
type MockAuthUsecase struct{ mock.Mock }

// NewMockAuthUsecase creates a mock whose expectations are asserted on cleanup.
func NewMockAuthUsecase(t *testing.T) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	register(t, &m.Mock)

	return m
}

func (m *MockAuthUsecase) LoadSession(ctx context.Context) (*usecase.SessionState, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*usecase.SessionState)

	return res, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, creds entity.Credentials) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, creds)
	res, _ := args.Get(0).(*usecase.LoginOutput)

	return res, args.Error(1)
}

func (m *MockAuthUsecase) Register(ctx context.Context, reg entity.Registration) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, reg)
	res, _ := args.Get(0).(*usecase.LoginOutput)

	return res, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context) (string, error) {
	args := m.Called(ctx)

	return args.String(0), args.Error(1)
}

// MockGuestUsecase is a mock of usecase.GuestUsecase.
type MockGuestUsecase struct{ mock.Mock }

// NewMockGuestUsecase creates a mock whose expectations are asserted on cleanup.
func NewMockGuestUsecase(t *testing.T) *MockGuestUsecase {
	m := &MockGuestUsecase{}
	register(t, &m.Mock)

	return m
}

func (m *MockGuestUsecase) ListGuests(ctx context.Context, filter view.GuestFilter) (*view.GuestView, error) {
	args := m.Called(ctx, filter)
	res, _ := args.Get(0).(*view.GuestView)

	return res, args.Error(1)
}

func (m *MockGuestUsecase) AddGuests(ctx context.Context, guests []entity.NewGuest) ([]entity.Guest, error) {
	args := m.Called(ctx, guests)
	res, _ := args.Get(0).([]entity.Guest)

	return res, args.Error(1)
}

func (m *MockGuestUsecase) SendInvitations(ctx context.Context, ids []string) (*usecase.BulkSendReport, error) {
	args := m.Called(ctx, ids)
	res, _ := args.Get(0).(*usecase.BulkSendReport)

	return res, args.Error(1)
}

func (m *MockGuestUsecase) RemoveGuest(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGuestUsecase) InvitationQR(ctx context.Context, id string) ([]byte, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).([]byte)

	return res, args.Error(1)
}

// MockScheduleUsecase is a mock of usecase.ScheduleUsecase.
type MockScheduleUsecase struct{ mock.Mock }

// NewMockScheduleUsecase creates a mock whose expectations are asserted on cleanup.
func NewMockScheduleUsecase(t *testing.T) *MockScheduleUsecase {
	m := &MockScheduleUsecase{}
	register(t, &m.Mock)

	return m
}

func (m *MockScheduleUsecase) GetSchedule(ctx context.Context) ([]entity.ScheduleEvent, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]entity.ScheduleEvent)

	return res, args.Error(1)
}

func (m *MockScheduleUsecase) AddEvent(ctx context.Context, event entity.ScheduleEvent) (*entity.ScheduleEvent, error) {
	args := m.Called(ctx, event)
	res, _ := args.Get(0).(*entity.ScheduleEvent)

	return res, args.Error(1)
}

func (m *MockScheduleUsecase) UpdateEvent(ctx context.Context, id string, event entity.ScheduleEvent) (*entity.ScheduleEvent, error) {
	args := m.Called(ctx, id, event)
	res, _ := args.Get(0).(*entity.ScheduleEvent)

	return res, args.Error(1)
}

func (m *MockScheduleUsecase) DeleteEvent(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockScheduleUsecase) MoveEvent(ctx context.Context, id string, index int) ([]entity.ScheduleEvent, error) {
	args := m.Called(ctx, id, index)
	res, _ := args.Get(0).([]entity.ScheduleEvent)

	return res, args.Error(1)
}

func (m *MockScheduleUsecase) SetEventStatus(ctx context.Context, id string, status entity.EventStatus) (*entity.ScheduleEvent, error) {
	args := m.Called(ctx, id, status)
	res, _ := args.Get(0).(*entity.ScheduleEvent)

	return res, args.Error(1)
}

// MockWeddingUsecase is a mock of usecase.WeddingUsecase.
type MockWeddingUsecase struct{ mock.Mock }

// NewMockWeddingUsecase creates a mock whose expectations are asserted on cleanup.
func NewMockWeddingUsecase(t *testing.T) *MockWeddingUsecase {
	m := &MockWeddingUsecase{}
	register(t, &m.Mock)

	return m
}

func (m *MockWeddingUsecase) GetWedding(ctx context.Context) (*entity.Wedding, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*entity.Wedding)

	return res, args.Error(1)
}

func (m *MockWeddingUsecase) SetupWedding(ctx context.Context, wedding *entity.Wedding) (*entity.Wedding, error) {
	args := m.Called(ctx, wedding)
	res, _ := args.Get(0).(*entity.Wedding)

	return res, args.Error(1)
}

func (m *MockWeddingUsecase) UpdateWedding(ctx context.Context, wedding *entity.Wedding) (*entity.Wedding, error) {
	args := m.Called(ctx, wedding)
	res, _ := args.Get(0).(*entity.Wedding)

	return res, args.Error(1)
}

func (m *MockWeddingUsecase) Countdown(ctx context.Context, now time.Time) (*usecase.Countdown, error) {
	args := m.Called(ctx, now)
	res, _ := args.Get(0).(*usecase.Countdown)

	return res, args.Error(1)
}

// MockGiftUsecase is a mock of usecase.GiftUsecase.
type MockGiftUsecase struct{ mock.Mock }

// NewMockGiftUsecase creates a mock whose expectations are asserted on cleanup.
func NewMockGiftUsecase(t *testing.T) *MockGiftUsecase {
	m := &MockGiftUsecase{}
	register(t, &m.Mock)

	return m
}

func (m *MockGiftUsecase) ListGifts(ctx context.Context, filter view.GiftFilter) (*view.GiftView, error) {
	args := m.Called(ctx, filter)
	res, _ := args.Get(0).(*view.GiftView)

	return res, args.Error(1)
}

func (m *MockGiftUsecase) CreateGift(ctx context.Context, gift *entity.GiftItem) (*entity.GiftItem, error) {
	args := m.Called(ctx, gift)
	res, _ := args.Get(0).(*entity.GiftItem)

	return res, args.Error(1)
}

func (m *MockGiftUsecase) UpdateGift(ctx context.Context, id string, gift *entity.GiftItem) (*entity.GiftItem, error) {
	args := m.Called(ctx, id, gift)
	res, _ := args.Get(0).(*entity.GiftItem)

	return res, args.Error(1)
}

func (m *MockGiftUsecase) DeleteGift(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGiftUsecase) SetGiftStatus(ctx context.Context, id string, status entity.GiftStatus) (*entity.GiftItem, error) {
	args := m.Called(ctx, id, status)
	res, _ := args.Get(0).(*entity.GiftItem)

	return res, args.Error(1)
}

// MockGalleryUsecase is a mock of usecase.GalleryUsecase.
type MockGalleryUsecase struct{ mock.Mock }

// NewMockGalleryUsecase creates a mock whose expectations are asserted on cleanup.
func NewMockGalleryUsecase(t *testing.T) *MockGalleryUsecase {
	m := &MockGalleryUsecase{}
	register(t, &m.Mock)

	return m
}

func (m *MockGalleryUsecase) ListImages(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]string)

	return res, args.Error(1)
}

func (m *MockGalleryUsecase) UploadImages(ctx context.Context, images []entity.Image) ([]string, error) {
	args := m.Called(ctx, images)
	res, _ := args.Get(0).([]string)

	return res, args.Error(1)
}

func (m *MockGalleryUsecase) UploadFromBucket(ctx context.Context, bucketURL, prefix string) ([]string, error) {
	args := m.Called(ctx, bucketURL, prefix)
	res, _ := args.Get(0).([]string)

	return res, args.Error(1)
}

func (m *MockGalleryUsecase) DeleteImage(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

// MockNotificationUsecase is a mock of usecase.NotificationUsecase.
type MockNotificationUsecase struct{ mock.Mock }

// NewMockNotificationUsecase creates a mock whose expectations are asserted on cleanup.
func NewMockNotificationUsecase(t *testing.T) *MockNotificationUsecase {
	m := &MockNotificationUsecase{}
	register(t, &m.Mock)

	return m
}

func (m *MockNotificationUsecase) ListNotifications(ctx context.Context, filter view.NotificationFilter) (*view.NotificationView, error) {
	args := m.Called(ctx, filter)
	res, _ := args.Get(0).(*view.NotificationView)

	return res, args.Error(1)
}

func (m *MockNotificationUsecase) MarkRead(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockNotificationUsecase) MarkAllRead(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockNotificationUsecase) UnreadCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)

	return args.Int(0), args.Error(1)
}

// MockRSVPUsecase is a mock of usecase.RSVPUsecase.
type MockRSVPUsecase struct{ mock.Mock }

// NewMockRSVPUsecase creates a mock whose expectations are asserted on cleanup.
func NewMockRSVPUsecase(t *testing.T) *MockRSVPUsecase {
	m := &MockRSVPUsecase{}
	register(t, &m.Mock)

	return m
}

func (m *MockRSVPUsecase) GetInvitation(ctx context.Context, token string) (*entity.RSVPInvitation, error) {
	args := m.Called(ctx, token)
	res, _ := args.Get(0).(*entity.RSVPInvitation)

	return res, args.Error(1)
}

func (m *MockRSVPUsecase) Submit(ctx context.Context, token string, submission *entity.RSVPSubmission) (*entity.RSVPInvitation, error) {
	args := m.Called(ctx, token, submission)
	res, _ := args.Get(0).(*entity.RSVPInvitation)

	return res, args.Error(1)
}
