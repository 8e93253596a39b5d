package qrcode

import (
	"net/url"
	"strings"

	"planner/config"
	"planner/internal/domain/service"
	"planner/internal/errors"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance from the qrcode config section
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, baseURL := 256, "M", ""
	if cfg.QRCode != nil {
		size = cfg.QRCode.Size
		level = cfg.QRCode.ErrorCorrectionLevel
		baseURL = cfg.QRCode.BaseURL
	}

	return newQRCodeService(size, level, baseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// RSVPLink returns <baseUrl>/rsvp/<token>
func (s *qrcodeService) RSVPLink(token string) string {
	return s.baseURL + "/rsvp/" + url.PathEscape(token)
}

// GenerateRSVPQR renders the guest's RSVP link as a PNG
func (s *qrcodeService) GenerateRSVPQR(token string) ([]byte, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("rsvp token is empty")
	}

	qrCode, err := qrcode.New(s.RSVPLink(token), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
