// Package repository holds testify mocks of the repository interfaces.
package repository

import (
	"context"
	"testing"

	"planner/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockAuthRepository is a mock of repository.AuthRepository.
type MockAuthRepository struct{ mock.Mock }

// NewMockAuthRepository creates a mock whose expectations are asserted on cleanup.
func NewMockAuthRepository(t *testing.T) *MockAuthRepository {
	m := &MockAuthRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthRepository) Login(ctx context.Context, creds entity.Credentials) (*entity.AuthResult, error) {
	args := m.Called(ctx, creds)
	res, _ := args.Get(0).(*entity.AuthResult)

	return res, args.Error(1)
}

func (m *MockAuthRepository) Register(ctx context.Context, reg entity.Registration) (*entity.AuthResult, error) {
	args := m.Called(ctx, reg)
	res, _ := args.Get(0).(*entity.AuthResult)

	return res, args.Error(1)
}

func (m *MockAuthRepository) Me(ctx context.Context) (*entity.User, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*entity.User)

	return res, args.Error(1)
}

func (m *MockAuthRepository) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockSessionStore is a mock of repository.SessionStore.
type MockSessionStore struct{ mock.Mock }

// NewMockSessionStore creates a mock whose expectations are asserted on cleanup.
func NewMockSessionStore(t *testing.T) *MockSessionStore {
	m := &MockSessionStore{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSessionStore) Load(ctx context.Context) (*entity.CachedSession, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*entity.CachedSession)

	return res, args.Error(1)
}

func (m *MockSessionStore) Save(ctx context.Context, session *entity.CachedSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionStore) Clear(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockWeddingRepository is a mock of repository.WeddingRepository.
type MockWeddingRepository struct{ mock.Mock }

// NewMockWeddingRepository creates a mock whose expectations are asserted on cleanup.
func NewMockWeddingRepository(t *testing.T) *MockWeddingRepository {
	m := &MockWeddingRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockWeddingRepository) Get(ctx context.Context) (*entity.Wedding, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*entity.Wedding)

	return res, args.Error(1)
}

func (m *MockWeddingRepository) Create(ctx context.Context, wedding *entity.Wedding) (*entity.Wedding, error) {
	args := m.Called(ctx, wedding)
	res, _ := args.Get(0).(*entity.Wedding)

	return res, args.Error(1)
}

func (m *MockWeddingRepository) Update(ctx context.Context, wedding *entity.Wedding) (*entity.Wedding, error) {
	args := m.Called(ctx, wedding)
	res, _ := args.Get(0).(*entity.Wedding)

	return res, args.Error(1)
}

// MockScheduleRepository is a mock of repository.ScheduleRepository.
type MockScheduleRepository struct{ mock.Mock }

// NewMockScheduleRepository creates a mock whose expectations are asserted on cleanup.
func NewMockScheduleRepository(t *testing.T) *MockScheduleRepository {
	m := &MockScheduleRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockScheduleRepository) Replace(ctx context.Context, events []entity.ScheduleEvent) ([]entity.ScheduleEvent, error) {
	args := m.Called(ctx, events)
	if fn, ok := args.Get(0).(func(context.Context, []entity.ScheduleEvent) []entity.ScheduleEvent); ok {
		return fn(ctx, events), args.Error(1)
	}
	res, _ := args.Get(0).([]entity.ScheduleEvent)

	return res, args.Error(1)
}

func (m *MockScheduleRepository) UpdateStatus(ctx context.Context, id string, status entity.EventStatus) (*entity.ScheduleEvent, error) {
	args := m.Called(ctx, id, status)
	res, _ := args.Get(0).(*entity.ScheduleEvent)

	return res, args.Error(1)
}

// MockGuestRepository is a mock of repository.GuestRepository.
type MockGuestRepository struct{ mock.Mock }

// NewMockGuestRepository creates a mock whose expectations are asserted on cleanup.
func NewMockGuestRepository(t *testing.T) *MockGuestRepository {
	m := &MockGuestRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockGuestRepository) List(ctx context.Context, page entity.Page) ([]entity.Guest, *entity.PageMeta, error) {
	args := m.Called(ctx, page)
	res, _ := args.Get(0).([]entity.Guest)
	meta, _ := args.Get(1).(*entity.PageMeta)

	return res, meta, args.Error(2)
}

func (m *MockGuestRepository) ListAll(ctx context.Context) ([]entity.Guest, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]entity.Guest)

	return res, args.Error(1)
}

func (m *MockGuestRepository) Create(ctx context.Context, guests []entity.NewGuest) ([]entity.Guest, error) {
	args := m.Called(ctx, guests)
	res, _ := args.Get(0).([]entity.Guest)

	return res, args.Error(1)
}

func (m *MockGuestRepository) SendInvitations(ctx context.Context, guestIDs []string) (*entity.InvitationBatchResult, error) {
	args := m.Called(ctx, guestIDs)
	res, _ := args.Get(0).(*entity.InvitationBatchResult)

	return res, args.Error(1)
}

// MockRSVPRepository is a mock of repository.RSVPRepository.
type MockRSVPRepository struct{ mock.Mock }

// NewMockRSVPRepository creates a mock whose expectations are asserted on cleanup.
func NewMockRSVPRepository(t *testing.T) *MockRSVPRepository {
	m := &MockRSVPRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRSVPRepository) Get(ctx context.Context, token string) (*entity.RSVPInvitation, error) {
	args := m.Called(ctx, token)
	res, _ := args.Get(0).(*entity.RSVPInvitation)

	return res, args.Error(1)
}

func (m *MockRSVPRepository) Submit(ctx context.Context, token string, submission *entity.RSVPSubmission) (*entity.RSVPInvitation, error) {
	args := m.Called(ctx, token, submission)
	res, _ := args.Get(0).(*entity.RSVPInvitation)

	return res, args.Error(1)
}

// MockGiftRepository is a mock of repository.GiftRepository.
type MockGiftRepository struct{ mock.Mock }

// NewMockGiftRepository creates a mock whose expectations are asserted on cleanup.
func NewMockGiftRepository(t *testing.T) *MockGiftRepository {
	m := &MockGiftRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockGiftRepository) List(ctx context.Context) ([]entity.GiftItem, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]entity.GiftItem)

	return res, args.Error(1)
}

func (m *MockGiftRepository) Create(ctx context.Context, gift *entity.GiftItem) (*entity.GiftItem, error) {
	args := m.Called(ctx, gift)
	res, _ := args.Get(0).(*entity.GiftItem)

	return res, args.Error(1)
}

func (m *MockGiftRepository) Update(ctx context.Context, gift *entity.GiftItem) (*entity.GiftItem, error) {
	args := m.Called(ctx, gift)
	res, _ := args.Get(0).(*entity.GiftItem)

	return res, args.Error(1)
}

func (m *MockGiftRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockGalleryRepository is a mock of repository.GalleryRepository.
type MockGalleryRepository struct{ mock.Mock }

// NewMockGalleryRepository creates a mock whose expectations are asserted on cleanup.
func NewMockGalleryRepository(t *testing.T) *MockGalleryRepository {
	m := &MockGalleryRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockGalleryRepository) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]string)

	return res, args.Error(1)
}

func (m *MockGalleryRepository) Upload(ctx context.Context, images []entity.Image) ([]string, error) {
	args := m.Called(ctx, images)
	res, _ := args.Get(0).([]string)

	return res, args.Error(1)
}

func (m *MockGalleryRepository) Delete(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

// MockNotificationRepository is a mock of repository.NotificationRepository.
type MockNotificationRepository struct{ mock.Mock }

// NewMockNotificationRepository creates a mock whose expectations are asserted on cleanup.
func NewMockNotificationRepository(t *testing.T) *MockNotificationRepository {
	m := &MockNotificationRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockNotificationRepository) List(ctx context.Context) ([]entity.Notification, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]entity.Notification)

	return res, args.Error(1)
}

func (m *MockNotificationRepository) UnreadCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)

	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
