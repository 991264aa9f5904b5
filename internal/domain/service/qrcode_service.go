package service

// QRCodeService renders QR codes
type QRCodeService interface {
	// Encode returns a PNG QR code of content
	Encode(content string) ([]byte, error)
}
