package imageio

import (
	"bytes"
	"fmt"
	"image"
)

// ImageInfo contains metadata about an image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the container format detected from the file contents,
	// e.g. "png", "jpeg", "gif", "bmp", "tiff" or "webp".
	Format string `json:"format"`

	// FileSizeBytes is the size of the file in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo reads path through the cache and reports its dimensions and
// format. Only the container header is parsed; pixels are not decoded.
func LoadImageInfo(cache *FileCache, path string) (*ImageInfo, error) {
	data, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return Info(data)
}

// Info parses the header of an in-memory image.
func Info(data []byte) (*ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to read image header: %w", err)
	}
	return &ImageInfo{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Format:        format,
		FileSizeBytes: int64(len(data)),
	}, nil
}
