// Package style applies deterministic, hand-authored artistic filters to
// raster images.
//
// Three styles are registered:
//
//   - "vangogh": painterly strokes. Colors are integrated along the local
//     isophote direction, then tilted toward yellow and blue.
//   - "picasso": posterized blocks. Each block is snapped to a fixed
//     palette and strong edges are traced in a near-black outline.
//   - "cyberpunk": neon grade. A teal/magenta tonal regrade with bloom
//     around highlights, edge glow and a light chromatic offset.
//
// # Pipeline
//
// ApplyStyle decodes the input bytes, runs the selected filter on the source
// buffer and encodes the freshly allocated output as PNG. Filters never
// modify their source, so rows are processed in parallel.
//
// # Determinism
//
// Dithering draws from a raster.Generator created for each call from the
// configured seed. The bytes are drawn in row-major pixel order before the
// parallel pass, so output is identical for identical input and seed,
// regardless of GOMAXPROCS.
//
// # Error Handling
//
// Every failure is reported through Result. Panics raised on the calling
// goroutine by a decoder or an encoder are recovered and returned as
// failures of that stage. A failed Result never carries a payload. Use
// errors.Is on Result.Err() with ErrDecode, ErrUnsupportedStyle or ErrEncode
// to tell the kinds apart.
package style
