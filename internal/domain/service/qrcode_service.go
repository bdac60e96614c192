package service

import "github.com/google/uuid"

// QRCodeService generates and parses payment QR codes for submitted orders.
type QRCodeService interface {
	// GeneratePaymentQR renders a PNG QR code encoding the order ID and the
	// outstanding payable amount.
	GeneratePaymentQR(orderID uuid.UUID, amount float64) ([]byte, error)

	// ParsePaymentQR parses QR code data and returns the order ID and amount.
	ParsePaymentQR(qrData string) (uuid.UUID, float64, error)
}
