package style

import (
	"github.com/anthonynsimon/bild/parallel"
	"github.com/chewxy/math32"

	"github.com/ironsheep/image-style-mcp/internal/raster"
)

const (
	minBlockSize     = 10
	blockSizeDivisor = 40

	outlineRatio = 0.35
	outlineFloor = 60.0 // 8-bit luminance units
)

// Segment renders the "picasso" style.
//
// The image is tiled into square blocks; each block is filled with the fill
// color nearest to its mean RGB. Interior pixels whose Sobel magnitude
// reaches max(0.35·maxEdge, 60) are then overwritten with the outline color.
// Every output pixel is one of the 10 palette entries with alpha 255.
func Segment(src *raster.Image, _ *raster.Generator) *raster.Image {
	w, h := src.Width, src.Height
	dst := raster.NewLike(src)

	block := max(minBlockSize, min(w, h)/blockSizeDivisor)
	blockRows := (h + block - 1) / block
	parallel.Line(blockRows, func(start, end int) {
		for by := start; by < end; by++ {
			for bx := 0; bx < w; bx += block {
				fillBlock(src, dst, bx, by*block, block)
			}
		}
	})

	edges := sobel(raster.Rec601.Map(src, 1), w, h)
	var maxEdge float32
	for _, e := range edges {
		maxEdge = max(maxEdge, e)
	}
	thresh := max(maxEdge*outlineRatio, outlineFloor)

	outline := OutlineColor()
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			if edges[y*w+x] >= thresh {
				raster.Set(dst, x, y, outline.R, outline.G, outline.B, 255)
			}
		}
	}
	return dst
}

// fillBlock paints the block at (x0, y0), clipped to the image, with the fill
// color nearest to its truncated mean.
func fillBlock(src, dst *raster.Image, x0, y0, size int) {
	x1 := min(x0+size, src.Width)
	y1 := min(y0+size, src.Height)

	var sr, sg, sb, n int
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			i := src.Offset(x, y)
			sr += int(src.Pix[i])
			sg += int(src.Pix[i+1])
			sb += int(src.Pix[i+2])
			n++
		}
	}

	c := nearestFill(uint8(sr/n), uint8(sg/n), uint8(sb/n))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			raster.Set(dst, x, y, c.R, c.G, c.B, 255)
		}
	}
}

// sobel returns the 3x3 Sobel gradient magnitude of field. Border pixels, and
// every pixel of images 2 pixels or less on a side, are left at 0.
func sobel(field []float32, w, h int) []float32 {
	mag := make([]float32, w*h)
	if w <= 2 || h <= 2 {
		return mag
	}
	at := func(x, y int) float32 { return field[y*w+x] }
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gx := -at(x-1, y-1) - 2*at(x-1, y) - at(x-1, y+1) +
				at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1)
			gy := -at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1) +
				at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)
			mag[y*w+x] = math32.Sqrt(gx*gx + gy*gy)
		}
	}
	return mag
}
