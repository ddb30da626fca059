// Package frame assembles and parses the on-wire Frame: a fixed 24-byte
// header followed by a Huffman TreeBlob and its EncodedPayload.
package frame

import (
	"encoding/binary"
	"errors"
)

// HeaderSize is the fixed byte length of a Frame header.
const HeaderSize = 24

// ErrMalformed is returned when a buffer's declared section sizes don't
// match its actual length.
var ErrMalformed = errors.New("frame: malformed frame")

// Header holds the three section sizes carried at the front of a Frame.
type Header struct {
	TreeByteCount    uint64
	PayloadByteCount uint64
	BoardCount       uint64
}

// Encode assembles header || tree || payload into one buffer.
func Encode(tree, payload []byte, boardCount uint64) []byte {
	buf := make([]byte, HeaderSize+len(tree)+len(payload))
	binary.LittleEndian.PutUint64(buf[0:8], uint64(len(tree)))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(len(payload)))
	binary.LittleEndian.PutUint64(buf[16:24], boardCount)
	copy(buf[HeaderSize:], tree)
	copy(buf[HeaderSize+len(tree):], payload)
	return buf
}

// Decode splits buf back into its header, TreeBlob, and EncodedPayload. It
// fails with ErrMalformed if buf is shorter than the header or its length
// doesn't match the header's declared section sizes.
func Decode(buf []byte) (Header, []byte, []byte, error) {
	if len(buf) < HeaderSize {
		return Header{}, nil, nil, ErrMalformed
	}
	h := Header{
		TreeByteCount:    binary.LittleEndian.Uint64(buf[0:8]),
		PayloadByteCount: binary.LittleEndian.Uint64(buf[8:16]),
		BoardCount:       binary.LittleEndian.Uint64(buf[16:24]),
	}

	want := uint64(HeaderSize) + h.TreeByteCount + h.PayloadByteCount
	if want != uint64(len(buf)) {
		return Header{}, nil, nil, ErrMalformed
	}

	tree := buf[HeaderSize : HeaderSize+h.TreeByteCount]
	payload := buf[HeaderSize+h.TreeByteCount : HeaderSize+h.TreeByteCount+h.PayloadByteCount]
	return h, tree, payload, nil
}
