package style

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/image-style-mcp/internal/raster"
)

func rasterOf(t *testing.T, img *image.NRGBA) *raster.Image {
	t.Helper()
	m, err := raster.FromNRGBA(img)
	require.NoError(t, err)
	return m
}

func pixel(m *raster.Image, x, y int) [4]uint8 {
	i := m.Offset(x, y)
	return [4]uint8{m.Pix[i], m.Pix[i+1], m.Pix[i+2], m.Pix[i+3]}
}

func TestPalette(t *testing.T) {
	p := Palette()
	require.Len(t, p, 10)
	assert.Equal(t, PaletteColor{Name: "red", R: 230, G: 57, B: 70}, p[0])
	assert.Equal(t, PaletteColor{Name: "white", R: 250, G: 250, B: 250}, p[8])
	assert.Equal(t, PaletteColor{Name: "near-black", R: 15, G: 15, B: 20}, OutlineColor())
	assert.Len(t, FillColors(), 9)
	assert.Equal(t, "#e63946", p[0].Hex())
	assert.Equal(t, "#0f0f14", OutlineColor().Hex())
}

func TestNearestFill(t *testing.T) {
	assert.Equal(t, "red", nearestFill(255, 0, 0).Name)
	assert.Equal(t, 8774, dist2(255, 0, 0, palette[0]))
	assert.Equal(t, 17618, dist2(255, 0, 0, palette[6]))
	assert.Equal(t, "white", nearestFill(255, 255, 255).Name)
	assert.Equal(t, "navy", nearestFill(0, 0, 0).Name)
	// The outline color is never a fill candidate.
	assert.NotEqual(t, "near-black", nearestFill(15, 15, 20).Name)
}

func TestSegment_UniformRed(t *testing.T) {
	src := rasterOf(t, solidImage(4, 4, color.NRGBA{255, 0, 0, 255}))
	dst := Segment(src, nil)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, [4]uint8{230, 57, 70, 255}, pixel(dst, x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestSegment_OnlyPaletteColors(t *testing.T) {
	allowed := make(map[[3]uint8]bool)
	for _, c := range Palette() {
		allowed[[3]uint8{c.R, c.G, c.B}] = true
	}

	for _, size := range [][2]int{{1, 1}, {2, 2}, {45, 31}, {120, 90}} {
		dst := Segment(rasterOf(t, patternImage(size[0], size[1])), nil)
		for y := 0; y < dst.Height; y++ {
			for x := 0; x < dst.Width; x++ {
				p := pixel(dst, x, y)
				require.True(t, allowed[[3]uint8{p[0], p[1], p[2]}], "size %v pixel (%d,%d) = %v", size, x, y, p)
				require.Equal(t, uint8(255), p[3])
			}
		}
	}
}

func TestSegment_OutlinesStrongEdges(t *testing.T) {
	img := solidImage(40, 40, color.NRGBA{0, 0, 0, 255})
	for y := 0; y < 40; y++ {
		for x := 20; x < 40; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	dst := Segment(rasterOf(t, img), nil)
	outline := OutlineColor()
	want := [4]uint8{outline.R, outline.G, outline.B, 255}

	assert.Equal(t, want, pixel(dst, 19, 20))
	assert.Equal(t, want, pixel(dst, 20, 20))
	assert.NotEqual(t, want, pixel(dst, 5, 20))
	assert.NotEqual(t, want, pixel(dst, 35, 20))
	// Border pixels are never outlined.
	assert.NotEqual(t, want, pixel(dst, 19, 0))
	assert.NotEqual(t, want, pixel(dst, 20, 39))
}

func TestSegment_BlockClipping(t *testing.T) {
	// 25 columns with 10-pixel blocks leaves a 5-pixel last column.
	img := solidImage(25, 12, color.NRGBA{0, 0, 0, 255})
	for y := 0; y < 12; y++ {
		for x := 20; x < 25; x++ {
			img.SetNRGBA(x, y, color.NRGBA{250, 250, 250, 255})
		}
	}
	dst := Segment(rasterOf(t, img), nil)
	white := [4]uint8{250, 250, 250, 255}
	assert.Equal(t, white, pixel(dst, 24, 0))
	assert.Equal(t, white, pixel(dst, 24, 11))
}

func TestSobel(t *testing.T) {
	assert.Equal(t, []float32{0, 0, 0, 0}, sobel([]float32{0, 255, 0, 255}, 2, 2))

	field := []float32{
		0, 0, 255,
		0, 0, 255,
		0, 0, 255,
	}
	mag := sobel(field, 3, 3)
	assert.InDelta(t, 1020, mag[4], 1e-3)
	assert.Zero(t, mag[0])
	assert.Zero(t, mag[8])
}

func TestStroke_AlphaAlwaysOpaque(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {2, 2}, {30, 18}} {
		dst := Stroke(rasterOf(t, patternImage(size[0], size[1])), raster.NewGenerator(raster.DefaultSeed))
		for i := 3; i < len(dst.Pix); i += 4 {
			require.Equal(t, uint8(255), dst.Pix[i], "size %v", size)
		}
	}

	transparent := rasterOf(t, solidImage(5, 5, color.NRGBA{10, 20, 30, 0}))
	dst := Stroke(transparent, raster.NewGenerator(1))
	assert.Equal(t, uint8(255), dst.Pix[3])
}

func TestStroke_UniformColor(t *testing.T) {
	src := rasterOf(t, solidImage(12, 12, color.NRGBA{100, 150, 200, 255}))
	dst := Stroke(src, raster.NewGenerator(raster.DefaultSeed))

	// Saturation boost and yellow/blue tilt give ~(99.5, 162.6, 230.9);
	// dithering moves each channel by at most 1.3 levels.
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			p := pixel(dst, x, y)
			assert.InDelta(t, 99.5, float64(p[0]), 2)
			assert.InDelta(t, 162.6, float64(p[1]), 2)
			assert.InDelta(t, 230.85, float64(p[2]), 2)
		}
	}
}

// stepImage returns a width x height image with left on columns [0, edge)
// and right on columns [edge, width).
func stepImage(width, height, edge int, left, right color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := left
			if x >= edge {
				c = right
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestStroke_FollowsVerticalEdge(t *testing.T) {
	black := color.NRGBA{0, 0, 0, 255}
	white := color.NRGBA{255, 255, 255, 255}
	src := rasterOf(t, stepImage(40, 40, 20, black, white))
	dst := Stroke(src, raster.NewGenerator(raster.DefaultSeed))

	// Strokes run along the edge, bent by at most 0.25 rad of swirl, so a
	// half-length of 6 reaches at most 1.5 columns sideways. Columns two or
	// more away from the boundary pair (19, 20) keep their own side.
	for y := 0; y < 40; y++ {
		for x := 0; x <= 17; x++ {
			p := pixel(dst, x, y)
			// Black tilts to (0.03, 0.02, 0) before dithering.
			assert.InDelta(t, 7.65, float64(p[0]), 1.5, "(%d,%d)", x, y)
			assert.InDelta(t, 5.1, float64(p[1]), 1.5, "(%d,%d)", x, y)
			assert.LessOrEqual(t, p[2], uint8(1), "(%d,%d)", x, y)
		}
		for x := 22; x < 40; x++ {
			p := pixel(dst, x, y)
			for c := 0; c < 3; c++ {
				assert.GreaterOrEqual(t, p[c], uint8(253), "(%d,%d)", x, y)
			}
		}
	}

	// A stroke across the edge at the same column would pick up white.
	weights := strokeWeights(strokeHalfLength(40, 40))
	r, _, _ := strokeIntegral(src, 17, 20, 0, weights)
	assert.Greater(t, r, float32(0.05))
}

func TestStroke_DrawsOneBytePerPixel(t *testing.T) {
	src := rasterOf(t, solidImage(6, 4, color.NRGBA{80, 80, 80, 255}))
	gen := raster.NewGenerator(99)
	Stroke(src, gen)

	ref := raster.NewGenerator(99)
	ref.Fill(make([]uint8, 6*4))
	assert.Equal(t, ref.Byte(), gen.Byte())
}

func TestStrokeHalfLength(t *testing.T) {
	tests := []struct{ w, h, want int }{
		{1, 1, 6},
		{100, 100, 6},
		{500, 300, 7},
		{1000, 10, 15},
		{4000, 3000, 18},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, strokeHalfLength(tt.w, tt.h), "%dx%d", tt.w, tt.h)
	}
}

func TestStrokeWeights(t *testing.T) {
	w := strokeWeights(6)
	require.Len(t, w, 13)
	assert.InDelta(t, 1, w[6], 1e-6)
	assert.Equal(t, w[0], w[12])
	assert.InDelta(t, 0.1353, w[0], 1e-3) // exp(-2) at t = ±2σ
}

func TestDitherOffset(t *testing.T) {
	assert.InDelta(t, -0.005, ditherOffset(0), 1e-7)
	assert.InDelta(t, 0.005, ditherOffset(255), 1e-7)
}

func TestGrade_AlphaPassthrough(t *testing.T) {
	src := rasterOf(t, patternImage(40, 30))
	dst := Grade(src, nil)
	for i := 3; i < len(src.Pix); i += 4 {
		require.Equal(t, src.Pix[i], dst.Pix[i], "alpha at byte %d", i)
	}
}

func TestGrade_UniformGray(t *testing.T) {
	src := rasterOf(t, solidImage(6, 6, color.NRGBA{128, 128, 128, 200}))
	dst := Grade(src, nil)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			p := pixel(dst, x, y)
			assert.InDelta(t, 154, float64(p[0]), 1)
			assert.InDelta(t, 87, float64(p[1]), 1)
			assert.InDelta(t, 192, float64(p[2]), 1)
			assert.Equal(t, uint8(200), p[3])
		}
	}
}

func TestGrade_BloomBrightensHighlights(t *testing.T) {
	bright := color.NRGBA{230, 230, 230, 255}
	src := rasterOf(t, solidImage(7, 7, bright))
	dst := Grade(src, nil)

	p := pixel(dst, 3, 3)
	// Green is pulled down by the grade while red and blue are lifted by
	// the bloom remap.
	assert.Greater(t, p[0], p[1])
	assert.Greater(t, p[2], p[1])
}

func TestGrade_EdgeFactor(t *testing.T) {
	flat := []float32{0.5, 0.5, 0.5}
	assert.Zero(t, edgeFactor(flat, 3, 1, 1, 0))

	step := []float32{0, 0, 1}
	// gx = 1 - 0 = 1 -> (1 - 0.08) / 0.5 clamps to 1.
	assert.Equal(t, float32(1), edgeFactor(step, 3, 1, 1, 0))
}

func TestGrade_StepEdge(t *testing.T) {
	left := color.NRGBA{30, 60, 90, 255}
	right := color.NRGBA{200, 120, 40, 128}
	src := rasterOf(t, stepImage(8, 4, 4, left, right))
	dst := Grade(src, nil)

	for y := 0; y < 4; y++ {
		// Flat regions get the tone grade and saturation only.
		for _, x := range []int{0, 1, 2} {
			assert.Equal(t, [4]uint8{27, 35, 173, 255}, pixel(dst, x, y), "(%d,%d)", x, y)
		}
		for _, x := range []int{5, 6, 7} {
			assert.Equal(t, [4]uint8{255, 83, 48, 128}, pixel(dst, x, y), "(%d,%d)", x, y)
		}

		// Both edge columns glow, then average red with the right neighbor
		// and blue with the left neighbor of the source.
		assert.Equal(t, [4]uint8{81, 35, 96, 255}, pixel(dst, 3, y), "(3,%d)", y)
		assert.Equal(t, [4]uint8{151, 83, 55, 128}, pixel(dst, 4, y), "(4,%d)", y)
	}
}

func TestFilters_DegenerateSizes(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {2, 2}, {1, 7}, {7, 1}} {
		src := rasterOf(t, patternImage(size[0], size[1]))
		for _, st := range Styles() {
			assert.NotPanics(t, func() {
				dst := st.filter(src, raster.NewGenerator(0))
				assert.Equal(t, size[0], dst.Width)
				assert.Equal(t, size[1], dst.Height)
			}, "%s %v", st.Name, size)
		}
	}
}
