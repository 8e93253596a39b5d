// Package service holds testify mocks of the domain service interfaces.
package service

import (
	"context"
	"testing"

	"planner/internal/domain/entity"
	"planner/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockTokenInspector is a mock of service.TokenInspector.
type MockTokenInspector struct{ mock.Mock }

// NewMockTokenInspector creates a mock whose expectations are asserted on cleanup.
func NewMockTokenInspector(t *testing.T) *MockTokenInspector {
	m := &MockTokenInspector{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenInspector) Inspect(token string) (*service.TokenInfo, error) {
	args := m.Called(token)
	res, _ := args.Get(0).(*service.TokenInfo)

	return res, args.Error(1)
}

// MockQRCodeService is a mock of service.QRCodeService.
type MockQRCodeService struct{ mock.Mock }

// NewMockQRCodeService creates a mock whose expectations are asserted on cleanup.
func NewMockQRCodeService(t *testing.T) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockQRCodeService) RSVPLink(token string) string {
	return m.Called(token).String(0)
}

func (m *MockQRCodeService) GenerateRSVPQR(token string) ([]byte, error) {
	args := m.Called(token)
	res, _ := args.Get(0).([]byte)

	return res, args.Error(1)
}

// MockImageSource is a mock of service.ImageSource.
type MockImageSource struct{ mock.Mock }

// NewMockImageSource creates a mock whose expectations are asserted on cleanup.
func NewMockImageSource(t *testing.T) *MockImageSource {
	m := &MockImageSource{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockImageSource) ReadImages(ctx context.Context, bucketURL, prefix string) ([]entity.Image, error) {
	args := m.Called(ctx, bucketURL, prefix)
	res, _ := args.Get(0).([]entity.Image)

	return res, args.Error(1)
}
