// Package colour provides colour conversion, contrast, palette and extraction functionality.
package colour

import "errors"

// Sentinel errors returned by the colour engine. Operations wrap these with
// detail, so callers should test with errors.Is.
var (
	// ErrInvalidColorFormat is returned when a hex, rgb() or hsl() string cannot be parsed.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrInvalidArgument is returned for out-of-range sizes, counts and stop lists.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedImage is returned when an image has no extractable pixels.
	ErrUnsupportedImage = errors.New("unsupported image")
)
