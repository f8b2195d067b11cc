package qrcode

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"spotshare/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultBaseURL = "https://spotshare.app/listings"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              *url.URL
}

// NewQRCodeService creates a new listing share code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) (service.QRCodeService, error) {
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

	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse share base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("share base URL must be absolute: %s", baseURL)
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              base,
	}, nil
}

// GenerateListingQR generates a PNG QR code encoding the listing deep link
func (s *qrcodeService) GenerateListingQR(listingID string) ([]byte, error) {
	if strings.TrimSpace(listingID) == "" {
		return nil, fmt.Errorf("listing ID is empty")
	}

	qrCode, err := qrcode.New(s.linkFor(listingID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseListingQR parses a scanned deep link and returns the listing ID
func (s *qrcodeService) ParseListingQR(qrData string) (string, error) {
	link, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return "", fmt.Errorf("failed to parse QR code data: %w", err)
	}

	if link.Scheme != s.baseURL.Scheme || link.Host != s.baseURL.Host {
		return "", fmt.Errorf("invalid QR code host: %s", link.Host)
	}

	dir, id := path.Split(strings.TrimRight(link.Path, "/"))
	if strings.TrimRight(dir, "/") != s.baseURL.Path || id == "" {
		return "", fmt.Errorf("invalid QR code path: %s", link.Path)
	}

	return id, nil
}

func (s *qrcodeService) linkFor(listingID string) string {
	return s.baseURL.JoinPath(listingID).String()
}
