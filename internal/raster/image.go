package raster

import (
	"fmt"
	"image"
)

// Image is an interleaved, non-premultiplied 8-bit RGBA buffer in row-major
// order. len(Pix) is always Width*Height*4.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// Sample is one pixel with each channel normalized to [0, 1].
type Sample struct {
	R, G, B, A float32
}

// New allocates a zeroed image. Width and height must both be at least 1.
func New(width, height int) (*Image, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}, nil
}

// NewLike allocates a zeroed image with the same dimensions as m.
func NewLike(m *Image) *Image {
	return &Image{
		Width:  m.Width,
		Height: m.Height,
		Pix:    make([]uint8, len(m.Pix)),
	}
}

// FromNRGBA copies an *image.NRGBA into a tightly packed Image.
func FromNRGBA(src *image.NRGBA) (*Image, error) {
	b := src.Bounds()
	dst, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	rowLen := dst.Width * 4
	for y := 0; y < dst.Height; y++ {
		off := src.PixOffset(b.Min.X, b.Min.Y+y)
		copy(dst.Pix[y*rowLen:(y+1)*rowLen], src.Pix[off:off+rowLen])
	}
	return dst, nil
}

// NRGBA wraps the buffer as an *image.NRGBA without copying.
func (m *Image) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    m.Pix,
		Stride: m.Width * 4,
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
}

// Offset returns the index of the R channel of pixel (x, y).
func (m *Image) Offset(x, y int) int {
	return (y*m.Width + x) * 4
}

// ClampX replicates the nearest column for out-of-range x.
func (m *Image) ClampX(x int) int {
	return clamp(x, 0, m.Width-1)
}

// ClampY replicates the nearest row for out-of-range y.
func (m *Image) ClampY(y int) int {
	return clamp(y, 0, m.Height-1)
}

// At returns pixel (x, y) normalized. Coordinates are clamped.
func At(m *Image, x, y int) Sample {
	i := m.Offset(m.ClampX(x), m.ClampY(y))
	p := m.Pix[i : i+4 : i+4]
	return Sample{
		R: float32(p[0]) / 255,
		G: float32(p[1]) / 255,
		B: float32(p[2]) / 255,
		A: float32(p[3]) / 255,
	}
}

// Set stores an 8-bit pixel at (x, y). Coordinates must be in range.
func Set(m *Image, x, y int, r, g, b, a uint8) {
	i := m.Offset(x, y)
	p := m.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = r, g, b, a
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Quantize converts a normalized channel to 8-bit, truncating toward zero.
func Quantize(v float32) uint8 {
	return uint8(Clamp01(v) * 255)
}

// clamp constrains an integer value to the range [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
