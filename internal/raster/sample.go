package raster

import "github.com/chewxy/math32"

// Bilinear samples m at fractional coordinates (fx, fy). The four integer
// neighbors are clamped to the image bounds and blended by area weight.
// Integer coordinates return the pixel itself.
func Bilinear(m *Image, fx, fy float32) Sample {
	x0f, y0f := math32.Floor(fx), math32.Floor(fy)
	tx, ty := fx-x0f, fy-y0f
	x0, y0 := int(x0f), int(y0f)

	p00 := At(m, x0, y0)
	p10 := At(m, x0+1, y0)
	p01 := At(m, x0, y0+1)
	p11 := At(m, x0+1, y0+1)

	w00 := (1 - tx) * (1 - ty)
	w10 := tx * (1 - ty)
	w01 := (1 - tx) * ty
	w11 := tx * ty

	return Sample{
		R: p00.R*w00 + p10.R*w10 + p01.R*w01 + p11.R*w11,
		G: p00.G*w00 + p10.G*w10 + p01.G*w01 + p11.G*w11,
		B: p00.B*w00 + p10.B*w10 + p01.B*w01 + p11.B*w11,
		A: p00.A*w00 + p10.A*w10 + p01.A*w01 + p11.A*w11,
	}
}
