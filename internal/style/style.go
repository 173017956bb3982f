package style

import (
	"errors"
	"fmt"
	"time"

	"github.com/ironsheep/image-style-mcp/internal/envelope"
	"github.com/ironsheep/image-style-mcp/internal/imageio"
	"github.com/ironsheep/image-style-mcp/internal/raster"
)

// Error kinds reported by Result.Err.
var (
	ErrDecode           = errors.New("decode error")
	ErrUnsupportedStyle = errors.New("unsupported style")
	ErrEncode           = errors.New("encode error")
)

// Decoder turns container bytes into a raster image.
type Decoder interface {
	Decode(data []byte) (*raster.Image, error)
}

// Encoder serializes a raster image into a lossless container.
type Encoder interface {
	Encode(m *raster.Image) ([]byte, error)
}

// Filter renders src into a new image of the same size. gen supplies
// dithering bytes; filters that do not dither ignore it.
type Filter func(src *raster.Image, gen *raster.Generator) *raster.Image

// Style describes a registered filter.
type Style struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	filter      Filter
}

var registry = []Style{
	{
		Name:        "vangogh",
		Title:       "Painterly strokes",
		Description: "Long brush strokes that follow image contours, with a yellow/blue tilt.",
		filter:      Stroke,
	},
	{
		Name:        "picasso",
		Title:       "Posterized blocks",
		Description: "Flat blocks snapped to a bold 9-color palette with dark outlines on strong edges.",
		filter:      Segment,
	},
	{
		Name:        "cyberpunk",
		Title:       "Neon grade",
		Description: "Teal/magenta color grade with highlight bloom, edge glow and chromatic offset.",
		filter:      Grade,
	},
}

// Styles returns the registered styles in display order.
func Styles() []Style {
	out := make([]Style, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds a registered style by name.
func Lookup(name string) (Style, bool) {
	for _, s := range registry {
		if s.Name == name {
			return s, true
		}
	}
	return Style{}, false
}

// Result is the outcome of one ApplyStyle call.
type Result struct {
	// Success reports whether Payload holds an encoded image.
	Success bool `json:"success"`

	// Message is a human-readable summary. It is advisory and not meant
	// to be parsed.
	Message string `json:"message"`

	// Payload is the encoded output image. Always nil on failure.
	Payload []byte `json:"-"`

	// Width and Height are the output dimensions (zero on failure).
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// MimeType is the content type of Payload (empty on failure).
	MimeType string `json:"mime_type,omitempty"`

	err error
}

// Err returns the failure cause, or nil on success.
func (r *Result) Err() error {
	return r.err
}

// DataURI renders the payload as a base64 data URI. Empty on failure.
func (r *Result) DataURI() string {
	if !r.Success {
		return ""
	}
	return envelope.DataURI(r.MimeType, r.Payload)
}

// failure builds a failed Result. The message is shown as is; Err wraps kind
// and, when present, the underlying cause.
func failure(kind error, msg string, cause error) *Result {
	err := fmt.Errorf("%w: %s", kind, msg)
	if cause != nil {
		err = fmt.Errorf("%w: %w", kind, cause)
	}
	return &Result{Message: msg, err: err}
}

// Option configures a Styler.
type Option func(*Styler)

// WithSeed sets the dithering seed. Zero selects raster.DefaultSeed.
func WithSeed(seed uint64) Option {
	return func(s *Styler) { s.seed = seed }
}

// WithCodec replaces the decoder and encoder.
func WithCodec(dec Decoder, enc Encoder) Option {
	return func(s *Styler) {
		s.dec = dec
		s.enc = enc
	}
}

// WithMaxDimension downsizes decoded images whose longer side exceeds n
// before filtering. Zero disables fitting, so the output keeps the input
// dimensions.
func WithMaxDimension(n int) Option {
	return func(s *Styler) { s.maxDim = n }
}

// WithMaxPixels caps width*height of images the default decoder accepts.
// Larger inputs fail with ErrDecode before any pixel buffer is allocated.
// Zero selects imageio.DefaultMaxPixels. Ignored when WithCodec supplies a
// decoder.
func WithMaxPixels(n int) Option {
	return func(s *Styler) { s.maxPixels = n }
}

// Styler applies registered styles to encoded images. A Styler holds only
// configuration and is safe for concurrent use.
type Styler struct {
	dec       Decoder
	enc       Encoder
	seed      uint64
	maxDim    int
	maxPixels int
}

// New returns a Styler using the imageio codec and the default seed.
func New(opts ...Option) *Styler {
	s := &Styler{seed: raster.DefaultSeed}
	for _, opt := range opts {
		opt(s)
	}
	if s.dec == nil {
		s.dec = imageio.Codec{MaxPixels: s.maxPixels}
	}
	if s.enc == nil {
		s.enc = imageio.Codec{}
	}
	return s
}

var defaultStyler = New()

// ApplyStyle runs the named style on data with the default configuration.
func ApplyStyle(data []byte, name string) *Result {
	return defaultStyler.Apply(data, name)
}

// Apply decodes data, runs the named style and encodes the result as PNG.
// A panic raised on this goroutine while decoding or encoding is reported
// as a failed Result.
func (s *Styler) Apply(data []byte, name string) (res *Result) {
	log := Logger()

	st, ok := Lookup(name)
	if !ok {
		return failure(ErrUnsupportedStyle, "Unknown style: "+name, nil)
	}

	stage := ErrDecode
	defer func() {
		if r := recover(); r != nil {
			log.Error("style: panic", "style", name, "panic", r)
			res = failure(stage, fmt.Sprintf("Failed to apply %s style: %v", name, r), nil)
		}
	}()

	src, err := s.dec.Decode(data)
	if err == nil && src == nil {
		err = imageio.ErrEmptyImage
	}
	if err == nil {
		src, err = imageio.Fit(src, s.maxDim)
	}
	if err != nil {
		log.Warn("style: decode failed", "style", name, "err", err)
		return failure(ErrDecode, "Failed to load image: "+err.Error(), err)
	}

	start := time.Now()
	dst := st.filter(src, raster.NewGenerator(s.seed))
	log.Debug("style: applied", "style", name,
		"width", dst.Width, "height", dst.Height, "elapsed", time.Since(start))

	stage = ErrEncode
	payload, err := s.enc.Encode(dst)
	if err != nil {
		log.Warn("style: encode failed", "style", name, "err", err)
		return failure(ErrEncode, "Failed to encode processed image: "+err.Error(), err)
	}

	return &Result{
		Success:  true,
		Message:  fmt.Sprintf("Successfully applied %s style", name),
		Payload:  payload,
		Width:    dst.Width,
		Height:   dst.Height,
		MimeType: imageio.MimeType,
	}
}
