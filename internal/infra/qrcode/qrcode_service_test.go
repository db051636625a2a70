package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateTrackingQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://app.example.ch/suivi/")

	pngBytes, err := svc.GenerateTrackingQR("REF-AB12CD34")
	require.NoError(t, err)
	require.NotEmpty(t, pngBytes)

	// The output must be a decodable PNG of the requested size.
	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestQRCodeService_UnknownCorrectionLevelFallsBack(t *testing.T) {
	svc := NewQRCodeService(128, "X", "https://app.example.ch/suivi")

	pngBytes, err := svc.GenerateTrackingQR("REF-00000000")
	require.NoError(t, err)
	assert.NotEmpty(t, pngBytes)
}
