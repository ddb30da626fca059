// Package bitpack packs a sequence of Tic-Tac-Toe boards into the dense
// 15-bit-per-board bitstream the rest of the codec operates on, and unpacks
// it again.
//
// A Board contributes exactly 15 bits — its three RowCodes, 5 bits each, in
// row-major order — with no padding between boards or between rows. This
// mirrors the original tool's boardsToMemoryBlock/memoryBlockToBoards.
package bitpack

import (
	"github.com/pixeldrift/tttcodec/internal/bitio"
	"github.com/pixeldrift/tttcodec/internal/rowcode"
)

// Board is a 3x3 grid of squares in row-major order.
type Board [3][3]rowcode.Square

// BoardStream is a finite ordered sequence of Boards.
type BoardStream []Board

// bitsPerBoard is the fixed width of one packed board: 3 rows of 5 bits.
const bitsPerBoard = 15

// Pack packs boards into a dense, LSB-first, byte-unaligned buffer of
// ceil(15*len(boards)/8) bytes.
func Pack(boards BoardStream) []byte {
	totalBits := bitsPerBoard * len(boards)
	buf := make([]byte, (totalBits+7)/8)

	bitPos := 0
	for _, board := range boards {
		for r := 0; r < 3; r++ {
			row := [3]rowcode.Square{board[r][0], board[r][1], board[r][2]}
			code := rowcode.Encode(row)
			bitio.WriteBitsAt(buf, bitPos, 5, uint32(code))
			bitPos += 5
		}
	}
	return buf
}

// Unpack reads n boards back out of a packed buffer produced by Pack. The
// caller is responsible for knowing n up front; this codec carries it in
// the frame header (see the frame package) rather than inferring it from
// buffer length, since the final byte may hold padding.
func Unpack(buf []byte, n int) BoardStream {
	boards := make(BoardStream, n)
	bitPos := 0
	for i := 0; i < n; i++ {
		var board Board
		for r := 0; r < 3; r++ {
			code := uint8(bitio.ReadBitsAt(buf, bitPos, 5))
			row := rowcode.Decode(code)
			board[r][0], board[r][1], board[r][2] = row[0], row[1], row[2]
			bitPos += 5
		}
		boards[i] = board
	}
	return boards
}

