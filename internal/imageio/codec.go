package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/ironsheep/image-style-mcp/internal/raster"
)

// MimeType is the content type of every encoded payload.
const MimeType = "image/png"

// DefaultMaxPixels bounds the pixel count Codec.Decode accepts when
// Codec.MaxPixels is zero.
const DefaultMaxPixels = 1 << 26

var (
	// ErrEmptyImage is returned when a container decodes to zero pixels.
	ErrEmptyImage = errors.New("image has no pixels")

	// ErrTooLarge is returned when a header declares more pixels than the
	// codec accepts.
	ErrTooLarge = errors.New("image exceeds pixel limit")
)

// Codec decodes any registered container into a raster.Image and encodes
// raster.Image values as PNG. The zero value is ready to use.
type Codec struct {
	// MaxPixels caps width*height of decoded images. Zero selects
	// DefaultMaxPixels.
	MaxPixels int
}

func (c Codec) maxPixels() int64 {
	if c.MaxPixels > 0 {
		return int64(c.MaxPixels)
	}
	return DefaultMaxPixels
}

// Decode parses data and converts the result to non-premultiplied RGBA.
// The header is read first so oversized images are rejected before any
// pixel buffer is allocated.
func (c Codec) Decode(data []byte) (*raster.Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrEmptyImage
	}
	if n := int64(cfg.Width) * int64(cfg.Height); n > c.maxPixels() {
		return nil, fmt.Errorf("%w: %dx%d is over %d pixels", ErrTooLarge, cfg.Width, cfg.Height, c.maxPixels())
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return raster.FromNRGBA(imaging.Clone(img))
}

// Encode writes m as PNG.
func (Codec) Encode(m *raster.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, m.NRGBA(), imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// Fit scales m down with a Lanczos filter so that neither side exceeds
// maxDim, keeping the aspect ratio. Images already within bounds, and
// maxDim <= 0, return m unchanged.
func Fit(m *raster.Image, maxDim int) (*raster.Image, error) {
	if maxDim <= 0 || (m.Width <= maxDim && m.Height <= maxDim) {
		return m, nil
	}
	fitted := imaging.Fit(m.NRGBA(), maxDim, maxDim, imaging.Lanczos)
	return raster.FromNRGBA(fitted)
}
