// Package imageio adapts container formats to raster.Image buffers.
//
// It provides the decoder and encoder the style pipeline depends on, a
// thread-safe cache of input file bytes, and header-only metadata lookup.
//
// # Supported Formats
//
// Decoding accepts PNG, JPEG, GIF, BMP, TIFF and WebP. Encoding always
// produces PNG so filter output is preserved losslessly.
//
// # Orientation
//
// EXIF orientation tags are ignored. The decoded dimensions always match the
// dimensions stored in the container.
package imageio
