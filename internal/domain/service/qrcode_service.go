package service

// QRCodeService renders QR codes.
type QRCodeService interface {
	// GeneratePaymentQR renders the hosted payment link as a PNG.
	GeneratePaymentQR(link string) ([]byte, error)
}
