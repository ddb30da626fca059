package tttcodec

import (
	"fmt"

	"github.com/pixeldrift/tttcodec/internal/bitpack"
	"github.com/pixeldrift/tttcodec/internal/frame"
	"github.com/pixeldrift/tttcodec/internal/huffman"
)

// Encode compresses boards into a single self-contained Frame: the packed
// bitstream is Huffman-coded against a tree trained on itself, and both the
// tree and the coded payload are framed with a header carrying their sizes
// and the board count.
func Encode(boards BoardStream) []byte {
	packed := bitpack.Pack(boards)
	tree := huffman.Build(packed)
	treeBlob := tree.Serialize()

	// EncodePayload only fails on a symbol absent from its own tree, which
	// cannot happen for a tree just built from this exact packed buffer.
	payload, err := tree.EncodePayload(packed)
	if err != nil {
		panic(fmt.Sprintf("tttcodec: tree built from its own input rejected a symbol: %v", err))
	}

	return frame.Encode(treeBlob, payload, uint64(len(boards)))
}

// Decode reverses Encode, recovering the original BoardStream from a Frame.
func Decode(buf []byte) (BoardStream, error) {
	header, treeBlob, payload, err := frame.Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}

	tree := huffman.Deserialize(treeBlob)
	packed, err := tree.DecodePayload(payload, int(header.BoardCount))
	if err != nil {
		return nil, fmt.Errorf("tttcodec: decode: %w", err)
	}

	return bitpack.Unpack(packed, int(header.BoardCount)), nil
}
