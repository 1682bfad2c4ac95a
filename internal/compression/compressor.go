package compression

import (
	"bytes"
	"image/png"
	"strings"

	continuity_errors "continuity/pkg/errors"

	"github.com/disintegration/imaging"
)

const (
	DefaultMaxWidth = 1200
	DefaultQuality  = 80
)

var supportedFormats = map[string]imaging.Format{
	"image/jpeg": imaging.JPEG,
	"image/jpg":  imaging.JPEG,
	"image/png":  imaging.PNG,
}

// Compressor shrinks upload payloads before they reach remote storage.
// Wide images are scaled down to maxWidth preserving aspect ratio;
// small images are never upscaled. The container format is preserved.
type Compressor struct {
	maxWidth int
	quality  int
}

func New(maxWidth, quality int) *Compressor {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	return &Compressor{maxWidth: maxWidth, quality: quality}
}

// IsSupportedFormat reports whether the content type can be compressed.
func IsSupportedFormat(contentType string) bool {
	_, ok := supportedFormats[strings.ToLower(contentType)]
	return ok
}

// Compress decodes, resizes and re-encodes the image. PNG output uses
// maximum lossless compression; JPEG output uses the configured
// quality. Decode or encode failures surface as internal errors, never
// as a silent empty buffer.
func (c *Compressor) Compress(data []byte, contentType string) ([]byte, error) {
	format, ok := supportedFormats[strings.ToLower(contentType)]
	if !ok {
		return nil, continuity_errors.BadRequest("Only JPEG and PNG formats are supported")
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, continuity_errors.Internal(err)
	}

	if img.Bounds().Dx() > c.maxWidth {
		img = imaging.Resize(img, c.maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	switch format {
	case imaging.PNG:
		err = imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	default:
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(c.quality))
	}
	if err != nil {
		return nil, continuity_errors.Internal(err)
	}

	return buf.Bytes(), nil
}
