package service

// QRCodeService defines the interface for listing share code generation and parsing
type QRCodeService interface {
	// GenerateListingQR generates a PNG QR code that links to a listing
	GenerateListingQR(listingID string) ([]byte, error)

	// ParseListingQR parses QR code content and returns the listing ID
	ParseListingQR(qrData string) (string, error)
}
