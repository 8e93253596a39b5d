package service

// QRCodeService defines the interface for RSVP link QR code generation
type QRCodeService interface {
	// RSVPLink returns the public URL a guest opens to reply.
	RSVPLink(token string) string

	// GenerateRSVPQR renders the RSVP link of token as a PNG QR code.
	GenerateRSVPQR(token string) ([]byte, error)
}
