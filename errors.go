package tttcodec

import "errors"

// ErrMalformedFrame is returned when a frame's declared section sizes don't
// match its actual length.
var ErrMalformedFrame = errors.New("tttcodec: malformed frame")
