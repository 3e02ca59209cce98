package qrcode

import (
	"testing"

	"shop/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_GeneratePaymentQR(t *testing.T) {
	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}})

	png, err := svc.GeneratePaymentQR("https://checkout.flutterwave.com/v3/hosted/pay/abc123")
	require.NoError(t, err)
	require.Greater(t, len(png), 4)

	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

func TestQRCodeService_GeneratePaymentQR_DefaultsWithoutConfig(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	png, err := svc.GeneratePaymentQR("http://localhost/pay")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestQRCodeService_GeneratePaymentQR_RejectsNonLinks(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	for _, link := range []string{"", "not a url", "ftp://example.com/x", "/relative/path"} {
		_, err := svc.GeneratePaymentQR(link)
		assert.Error(t, err, link)
	}
}
