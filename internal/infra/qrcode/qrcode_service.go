package qrcode

import (
	"encoding/json"
	"fmt"

	"fieldforce/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the payment QR code data structure
type QRCodeData struct {
	OrderID string  `json:"order_id"`
	Amount  float64 `json:"amount"`
	Type    string  `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePaymentQR generates a QR code for an order's outstanding payment
func (s *qrcodeService) GeneratePaymentQR(orderID uuid.UUID, amount float64) ([]byte, error) {
	data := QRCodeData{
		OrderID: orderID.String(),
		Amount:  amount,
		Type:    "payment",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePaymentQR parses QR code data and returns the order ID and amount
func (s *qrcodeService) ParsePaymentQR(qrData string) (uuid.UUID, float64, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "payment" {
		return uuid.Nil, 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	orderID, err := uuid.Parse(data.OrderID)
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("failed to parse order ID: %w", err)
	}

	return orderID, data.Amount, nil
}
