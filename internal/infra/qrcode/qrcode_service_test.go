package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePaymentQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	orderID := uuid.New()

	qrBytes, err := service.GeneratePaymentQR(orderID, 1250.50)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GeneratePaymentQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")
			qrBytes, err := service.GeneratePaymentQR(uuid.New(), 99.0)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParsePaymentQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	orderID := uuid.New()

	payload, err := json.Marshal(QRCodeData{
		OrderID: orderID.String(),
		Amount:  430.25,
		Type:    "payment",
	})
	require.NoError(t, err)

	gotID, gotAmount, err := service.ParsePaymentQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, orderID, gotID)
	assert.Equal(t, 430.25, gotAmount)
}

func TestQRCodeService_ParsePaymentQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name   string
		qrData string
	}{
		{"Not JSON", "not-json-at-all"},
		{"Wrong type", `{"order_id":"` + uuid.New().String() + `","amount":10,"type":"subscription"}`},
		{"Bad order ID", `{"order_id":"not-a-uuid","amount":10,"type":"payment"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, amount, err := service.ParsePaymentQR(tt.qrData)
			assert.Error(t, err)
			assert.Equal(t, uuid.Nil, id)
			assert.Zero(t, amount)
		})
	}
}
