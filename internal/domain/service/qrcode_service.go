package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateTrackingQR generates a QR code pointing at the public tracking
	// page of an order reference. Returns the PNG bytes.
	GenerateTrackingQR(orderReference string) ([]byte, error)
}
