// Package game provides the self-play generator and game/board grouping
// heuristics that sit around the core codec: generating realistic board
// traces to compress, and recovering game boundaries from a flat
// BoardStream.
package game

import (
	"errors"
	"math/rand"

	"github.com/pixeldrift/tttcodec"
)

// ErrEmptyBoard is returned by Segment when a fully empty board appears
// mid-stream, which the grouping rule treats as a protocol violation.
var ErrEmptyBoard = errors.New("game: board has zero occupied cells")

// Game is one playthrough: every board state after each move, in order,
// excluding the initial empty board.
type Game []tttcodec.Board

// GameList is an ordered collection of Games.
type GameList []Game

// Flatten concatenates every board of every game, in order, into a single
// BoardStream — the inverse of Segment for well-formed input.
func Flatten(games GameList) tttcodec.BoardStream {
	var boards tttcodec.BoardStream
	for _, g := range games {
		boards = append(boards, g...)
	}
	return boards
}

// Segment recovers game boundaries from a flat BoardStream: a board with
// exactly one occupied cell starts a new game, a board with two or more
// continues the current one, and a fully empty board is a protocol
// violation (ErrEmptyBoard).
func Segment(boards tttcodec.BoardStream) (GameList, error) {
	var games GameList
	var current Game

	for _, b := range boards {
		switch tttcodec.Occupied(b) {
		case 0:
			return nil, ErrEmptyBoard
		case 1:
			if len(current) > 0 {
				games = append(games, current)
			}
			current = Game{b}
		default:
			current = append(current, b)
		}
	}
	if len(current) > 0 {
		games = append(games, current)
	}
	return games, nil
}

var winLines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

func isWinner(b tttcodec.Board, player tttcodec.Square) bool {
	for _, line := range winLines {
		if b[line[0][0]][line[0][1]] == player &&
			b[line[1][0]][line[1][1]] == player &&
			b[line[2][0]][line[2][1]] == player {
			return true
		}
	}
	return false
}

type move struct{ row, col int }

func legalMoves(b tttcodec.Board) []move {
	var moves []move
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if b[r][c] == tttcodec.Empty {
				moves = append(moves, move{r, c})
			}
		}
	}
	return moves
}

// findImmediateWin returns the move that wins for player this turn, and
// whether one exists.
func findImmediateWin(b tttcodec.Board, player tttcodec.Square) (move, bool) {
	for _, mv := range legalMoves(b) {
		b[mv.row][mv.col] = player
		won := isWinner(b, player)
		b[mv.row][mv.col] = tttcodec.Empty
		if won {
			return mv, true
		}
	}
	return move{}, false
}

var corners = [4]move{{0, 0}, {0, 2}, {2, 0}, {2, 2}}

func other(player tttcodec.Square) tttcodec.Square {
	if player == tttcodec.X {
		return tttcodec.O
	}
	return tttcodec.X
}

// SimulateGame plays one game of self-play Tic-Tac-Toe with an
// epsilon-greedy AI: it always takes an immediate win, blocks an immediate
// opponent win, otherwise plays randomly with probability epsilon, else
// prefers the center, then a free corner, then any legal move.
func SimulateGame(rng *rand.Rand, epsilon float64) Game {
	var board tttcodec.Board
	current := tttcodec.X
	var g Game

	for {
		moves := legalMoves(board)
		if len(moves) == 0 {
			break
		}

		chosen, ok := findImmediateWin(board, current)
		if !ok {
			chosen, ok = findImmediateWin(board, other(current))
		}
		if !ok && rng.Float64() < epsilon {
			chosen, ok = moves[rng.Intn(len(moves))], true
		}
		if !ok && board[1][1] == tttcodec.Empty {
			chosen, ok = move{1, 1}, true
		}
		if !ok {
			var free []move
			for _, c := range corners {
				if board[c.row][c.col] == tttcodec.Empty {
					free = append(free, c)
				}
			}
			if len(free) > 0 {
				chosen, ok = free[rng.Intn(len(free))], true
			}
		}
		if !ok {
			chosen = moves[rng.Intn(len(moves))]
		}

		board[chosen.row][chosen.col] = current
		g = append(g, board)

		if isWinner(board, current) {
			break
		}
		full := true
		for _, row := range board {
			for _, sq := range row {
				if sq == tttcodec.Empty {
					full = false
				}
			}
		}
		if full {
			break
		}
		current = other(current)
	}
	return g
}

// SimulateGames runs count independent games with the given epsilon.
func SimulateGames(rng *rand.Rand, count int, epsilon float64) GameList {
	games := make(GameList, count)
	for i := range games {
		games[i] = SimulateGame(rng, epsilon)
	}
	return games
}
