package style

import (
	"github.com/anthonynsimon/bild/parallel"
	"github.com/chewxy/math32"

	"github.com/ironsheep/image-style-mcp/internal/raster"
)

const (
	gradeSaturation = 1.35

	bloomThreshold = 0.70
	bloomRadius    = 2

	edgeGlowOffset = 0.08
	edgeGlowRange  = 0.5
)

// Grade renders the "cyberpunk" style.
//
// Each pixel is regraded by its Rec.709 tone weights, saturated, given a
// magenta/cyan bloom from bright neighbors when it is itself bright, and
// lit along luminance edges with a small red/blue channel offset. Alpha is
// copied from the source.
func Grade(src *raster.Image, _ *raster.Generator) *raster.Image {
	w, h := src.Width, src.Height
	lum := raster.Rec709.Map(src, 1.0/255)
	dst := raster.NewLike(src)

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				s := raster.At(src, x, y)
				l := lum[y*w+x]

				r, g, b := toneGrade(s, l)

				avg := (r + g + b) / 3
				r = raster.Clamp01(boost(r, avg, gradeSaturation))
				g = raster.Clamp01(boost(g, avg, gradeSaturation))
				b = raster.Clamp01(boost(b, avg, gradeSaturation))

				if l > bloomThreshold {
					br, bg, bb := bloom(src, lum, x, y)
					r = raster.Clamp01(r + 0.35*br)
					g = raster.Clamp01(g + 0.20*bg)
					b = raster.Clamp01(b + 0.45*bb)
				}

				edge := edgeFactor(lum, w, h, x, y)
				r = raster.Clamp01(r + edge*0.15)
				b = raster.Clamp01(b + edge*0.25)

				if edge > 0 {
					r = (r + raster.At(src, x+1, y).R) / 2 / 1.5
					b = (b + raster.At(src, x-1, y).B) / 2 / 1.5
				}

				a := src.Pix[src.Offset(x, y)+3]
				raster.Set(dst, x, y, raster.Quantize(r), raster.Quantize(g), raster.Quantize(b), a)
			}
		}
	})
	return dst
}

// toneGrade splits l into shadow, mid and highlight weights and shifts each
// channel by them. The weights are not normalized.
func toneGrade(s raster.Sample, l float32) (r, g, b float32) {
	shadows := max(0, 1-l)
	shadows *= shadows
	highlights := l * l
	mids := max(0, 1-shadows-highlights)

	r = raster.Clamp01(s.R*1.05 + 0.10*mids + 0.08*highlights)
	g = raster.Clamp01(s.G*0.85 - 0.05*mids)
	b = raster.Clamp01(s.B*1.25 + 0.20*shadows + 0.06*mids)
	return r, g, b
}

// bloom averages the bright pixels in the 5x5 window around (x, y), weighted
// by 1/(1+dx²+dy²), and remaps the mean toward magenta/cyan. Pixels outside
// the image are skipped.
func bloom(src *raster.Image, lum []float32, x, y int) (r, g, b float32) {
	w, h := src.Width, src.Height
	var sum float32
	for dy := -bloomRadius; dy <= bloomRadius; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		for dx := -bloomRadius; dx <= bloomRadius; dx++ {
			nx := x + dx
			if nx < 0 || nx >= w || lum[ny*w+nx] <= bloomThreshold {
				continue
			}
			wt := 1 / float32(1+dx*dx+dy*dy)
			s := raster.At(src, nx, ny)
			r += s.R * wt
			g += s.G * wt
			b += s.B * wt
			sum += wt
		}
	}
	if sum == 0 {
		return 0, 0, 0
	}
	r, g, b = r/sum, g/sum, b/sum
	return r*0.9 + 0.1, g*0.4 + 0.05, b*1.1 + 0.2
}

// edgeFactor maps the central-difference gradient magnitude to [0, 1].
func edgeFactor(lum []float32, w, h, x, y int) float32 {
	gx, gy := raster.Gradient(lum, w, h, x, y)
	grad := math32.Sqrt(gx*gx + gy*gy)
	return raster.Clamp01((grad - edgeGlowOffset) / edgeGlowRange)
}
