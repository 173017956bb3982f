package raster

// LumaWeights are the per-channel coefficients of a luminance formula.
type LumaWeights struct {
	R, G, B float32
}

var (
	// Rec601 is the ITU-R BT.601 weighting used by the stroke and segment filters.
	Rec601 = LumaWeights{R: 0.299, G: 0.587, B: 0.114}

	// Rec709 is the ITU-R BT.709 weighting used by the grade filter.
	Rec709 = LumaWeights{R: 0.2126, G: 0.7152, B: 0.0722}
)

// Of returns the weighted sum of r, g and b.
func (w LumaWeights) Of(r, g, b float32) float32 {
	return w.R*r + w.G*g + w.B*b
}

// Map computes the luminance of every pixel of m. With scale 1 the values are
// in 8-bit units [0, 255]; with scale 1/255 they are normalized.
func (w LumaWeights) Map(m *Image, scale float32) []float32 {
	out := make([]float32, m.Width*m.Height)
	for i := range out {
		p := m.Pix[i*4 : i*4+3 : i*4+3]
		out[i] = w.Of(float32(p[0]), float32(p[1]), float32(p[2])) * scale
	}
	return out
}

// Gradient estimates the luminance gradient of field at (x, y) with central
// differences over the four orthogonal neighbors:
//
//	gx = f(x+1, y) - f(x-1, y)
//	gy = f(x, y+1) - f(x, y-1)
//
// Neighbors outside the image are clamped to the border, so a 1-pixel-wide
// image yields a zero gradient along that axis.
func Gradient(field []float32, width, height, x, y int) (gx, gy float32) {
	xl, xr := clamp(x-1, 0, width-1), clamp(x+1, 0, width-1)
	yu, yd := clamp(y-1, 0, height-1), clamp(y+1, 0, height-1)
	gx = field[y*width+xr] - field[y*width+xl]
	gy = field[yd*width+x] - field[yu*width+x]
	return gx, gy
}
