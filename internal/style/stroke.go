package style

import (
	"github.com/anthonynsimon/bild/parallel"
	"github.com/chewxy/math32"

	"github.com/ironsheep/image-style-mcp/internal/raster"
)

const (
	strokeLengthScale   = 0.015
	strokeMinHalfLength = 6
	strokeMaxHalfLength = 18

	swirlRadiusScale = 0.45
	swirlStrength    = 0.25 // radians

	// ditherAmplitude is the largest offset a dither byte adds, as a
	// fraction of full scale.
	ditherAmplitude = 0.005
)

// strokeSaturation is the extra saturation gain per R, G, B channel.
var strokeSaturation = [3]float32{0.25, 0.225, 0.275}

// Stroke renders the "vangogh" style.
//
// The luminance gradient of the source gives, at every pixel, the isophote
// direction (gradient angle + 90°), bent by a Gaussian swirl centered on the
// image. Source colors are averaged along that direction with Gaussian
// weights (a 1D line-integral convolution), then saturated, tilted toward
// yellow and blue, and dithered. Output alpha is always 255.
func Stroke(src *raster.Image, gen *raster.Generator) *raster.Image {
	w, h := src.Width, src.Height
	half := strokeHalfLength(w, h)
	weights := strokeWeights(half)
	lum := raster.Rec601.Map(src, 1.0/255)

	dither := make([]uint8, w*h)
	gen.Fill(dither)

	sw := newSwirl(w, h)
	dst := raster.NewLike(src)

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				gx, gy := raster.Gradient(lum, w, h, x, y)
				theta := math32.Atan2(gy, gx) + math32.Pi/2 + sw.at(x, y)
				r, g, b := strokeIntegral(src, x, y, theta, weights)
				r, g, b = strokeTilt(r, g, b)

				d := ditherOffset(dither[y*w+x])
				raster.Set(dst, x, y,
					raster.Quantize(r+d), raster.Quantize(g+d), raster.Quantize(b+d), 255)
			}
		}
	})
	return dst
}

// strokeHalfLength is L = clamp(0.015 * max(w, h), 6, 18) in whole pixels.
func strokeHalfLength(w, h int) int {
	l := int(strokeLengthScale * float32(max(w, h)))
	return min(max(l, strokeMinHalfLength), strokeMaxHalfLength)
}

// strokeWeights returns exp(-t²/2σ²) for t in [-half, half] with σ = half/2,
// indexed by t+half.
func strokeWeights(half int) []float32 {
	sigma := float32(half) / 2
	den := 2 * sigma * sigma
	weights := make([]float32, 2*half+1)
	for i := range weights {
		t := float32(i - half)
		weights[i] = math32.Exp(-t * t / den)
	}
	return weights
}

// swirl bends stroke angles near the image center.
type swirl struct {
	cx, cy float32
	den    float32 // 2·Rs²
}

func newSwirl(w, h int) swirl {
	rs := swirlRadiusScale * float32(min(w, h))
	return swirl{
		cx:  float32(w) / 2,
		cy:  float32(h) / 2,
		den: 2 * rs * rs,
	}
}

func (s swirl) at(x, y int) float32 {
	dx, dy := float32(x)-s.cx, float32(y)-s.cy
	return swirlStrength * math32.Exp(-(dx*dx+dy*dy)/s.den)
}

// strokeIntegral averages bilinear samples of src taken at (x,y) + t·(cosθ, sinθ)
// for every tap in weights.
func strokeIntegral(src *raster.Image, x, y int, theta float32, weights []float32) (r, g, b float32) {
	half := len(weights) / 2
	cos, sin := math32.Cos(theta), math32.Sin(theta)
	fx, fy := float32(x), float32(y)

	var sum float32
	for i, wt := range weights {
		t := float32(i - half)
		s := raster.Bilinear(src, fx+t*cos, fy+t*sin)
		r += s.R * wt
		g += s.G * wt
		b += s.B * wt
		sum += wt
	}
	return r / sum, g / sum, b / sum
}

// strokeTilt applies the per-channel saturation boost and the yellow/blue
// bias, clamping after each step.
func strokeTilt(r, g, b float32) (float32, float32, float32) {
	avg := (r + g + b) / 3
	r = raster.Clamp01(boost(r, avg, 1+strokeSaturation[0]))
	g = raster.Clamp01(boost(g, avg, 1+strokeSaturation[1]))
	b = raster.Clamp01(boost(b, avg, 1+strokeSaturation[2]))

	r = raster.Clamp01(r*1.05 + 0.03)
	g = raster.Clamp01(g*1.05 + 0.02)
	b = raster.Clamp01(b * 1.08)
	return r, g, b
}

// ditherOffset maps a byte to [-ditherAmplitude, +ditherAmplitude].
func ditherOffset(v uint8) float32 {
	return (float32(v)/255 - 0.5) * 2 * ditherAmplitude
}

// boost pushes c away from avg by gain.
func boost(c, avg, gain float32) float32 {
	return avg + (c-avg)*gain
}
