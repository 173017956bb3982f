// Package envelope wraps binary payloads in text-safe data URIs for callers
// that can only carry strings.
package envelope

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEnvelope is returned when a string is neither a base64 data URI
// nor bare standard base64.
var ErrInvalidEnvelope = errors.New("invalid envelope")

// DataURI renders payload as "data:<mime>;base64,<payload>".
func DataURI(mime string, payload []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(payload)
}

// Parse extracts the payload from a data URI or from bare base64 text.
// The mime type is empty for bare input.
func Parse(s string) ([]byte, string, error) {
	s = strings.TrimSpace(s)
	mime := ""
	if rest, ok := strings.CutPrefix(s, "data:"); ok {
		meta, body, found := strings.Cut(rest, ",")
		if !found {
			return nil, "", fmt.Errorf("%w: missing ',' in data URI", ErrInvalidEnvelope)
		}
		var isBase64 bool
		mime, isBase64 = strings.CutSuffix(meta, ";base64")
		if !isBase64 {
			return nil, "", fmt.Errorf("%w: data URI is not base64 encoded", ErrInvalidEnvelope)
		}
		s = body
	}
	if s == "" {
		return nil, "", fmt.Errorf("%w: empty payload", ErrInvalidEnvelope)
	}
	payload, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	return payload, mime, nil
}
