package tttcodec

import (
	"github.com/pixeldrift/tttcodec/internal/bitpack"
	"github.com/pixeldrift/tttcodec/internal/rowcode"
)

// Square is the ternary value held by one board cell.
type Square = rowcode.Square

const (
	Empty = rowcode.Empty
	X     = rowcode.X
	O     = rowcode.O
)

// Board is a 3x3 grid of Squares in row-major order.
type Board = bitpack.Board

// BoardStream is a finite ordered sequence of Boards.
type BoardStream = bitpack.BoardStream

// Occupied reports how many of a board's nine cells are non-empty.
func Occupied(b Board) int {
	n := 0
	for _, row := range b {
		for _, sq := range row {
			if sq != Empty {
				n++
			}
		}
	}
	return n
}
