package compression

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	continuity_errors "continuity/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gradientImage produces a smooth ramp so JPEG re-encoding stays
// predictable across sizes.
func gradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: uint8((x + y) * 255 / (w + h)),
				A: 255,
			})
		}
	}
	return img
}

func encodeJPEG(t *testing.T, img image.Image, quality int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}))
	return buf.Bytes()
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeDims(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestCompressShrinksWideJPEG(t *testing.T) {
	c := New(1200, 80)
	original := encodeJPEG(t, gradientImage(2000, 2000), 95)

	out, err := c.Compress(original, "image/jpeg")
	require.NoError(t, err)

	assert.Less(t, len(out), len(original))

	w, h := decodeDims(t, out)
	assert.Equal(t, 1200, w)
	assert.Equal(t, 1200, h)
}

func TestCompressNeverUpscales(t *testing.T) {
	c := New(1200, 80)
	original := encodeJPEG(t, gradientImage(800, 600), 90)

	out, err := c.Compress(original, "image/jpeg")
	require.NoError(t, err)

	w, h := decodeDims(t, out)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestCompressPreservesPNGFormat(t *testing.T) {
	c := New(1200, 80)
	original := encodePNG(t, gradientImage(400, 400))

	out, err := c.Compress(original, "image/png")
	require.NoError(t, err)

	// PNG magic bytes
	require.GreaterOrEqual(t, len(out), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, out[:4])
}

func TestCompressQualityMonotonic(t *testing.T) {
	original := encodeJPEG(t, gradientImage(1000, 1000), 95)

	high, err := New(1200, 100).Compress(original, "image/jpeg")
	require.NoError(t, err)
	low, err := New(1200, 30).Compress(original, "image/jpeg")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(high), len(low))
}

func TestCompressUnsupportedFormat(t *testing.T) {
	c := New(1200, 80)

	_, err := c.Compress([]byte("GIF89a..."), "image/gif")
	require.Error(t, err)
	assert.True(t, errors.Is(err, continuity_errors.ErrInvalidInput))
	assert.Equal(t, "Only JPEG and PNG formats are supported", err.Error())
}

func TestCompressCorruptPayload(t *testing.T) {
	c := New(1200, 80)

	_, err := c.Compress([]byte("not an image at all"), "image/jpeg")
	require.Error(t, err)
	assert.False(t, errors.Is(err, continuity_errors.ErrInvalidInput))
}

func TestIsSupportedFormat(t *testing.T) {
	assert.True(t, IsSupportedFormat("image/jpeg"))
	assert.True(t, IsSupportedFormat("image/jpg"))
	assert.True(t, IsSupportedFormat("IMAGE/PNG"))
	assert.False(t, IsSupportedFormat("image/gif"))
	assert.False(t, IsSupportedFormat("application/pdf"))
}

func TestNewDefaults(t *testing.T) {
	c := New(0, 0)
	assert.Equal(t, DefaultMaxWidth, c.maxWidth)
	assert.Equal(t, DefaultQuality, c.quality)

	c = New(0, 150)
	assert.Equal(t, DefaultQuality, c.quality)
}
