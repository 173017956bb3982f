// Package raster holds the pixel buffer type and the numeric primitives shared
// by the style filters.
//
// All arithmetic is done in float32 on channels normalized to [0, 1]. Values
// are converted back to 8-bit by truncation toward zero (see Quantize), never
// by rounding, so filter output is bit-for-bit reproducible.
//
// # Coordinate System
//
// Pixel (0,0) is the top-left corner, X increases rightward and Y downward.
// Out-of-range coordinates passed to the sampling helpers are clamped to the
// nearest valid pixel (edge replicate).
//
// # Thread Safety
//
// Image values are plain buffers. Reading one from many goroutines is safe as
// long as nobody writes to it; filters never write to their source image.
// Generator is not safe for concurrent use.
package raster
