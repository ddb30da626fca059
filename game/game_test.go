package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/pixeldrift/tttcodec"
)

func TestSimulateGameEndsLegally(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		g := SimulateGame(rng, 0.2)
		if len(g) == 0 {
			t.Fatal("SimulateGame produced an empty game")
		}
		for _, b := range g {
			if tttcodec.Occupied(b) == 0 {
				t.Fatal("SimulateGame produced an empty board mid-game")
			}
		}
		last := g[len(g)-1]
		if tttcodec.Occupied(last) < 1 {
			t.Fatal("last board in a game has no moves")
		}
	}
}

func TestFlattenSegmentRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	games := SimulateGames(rng, 50, 0.3)
	boards := Flatten(games)

	got, err := Segment(boards)
	if err != nil {
		t.Fatalf("Segment: %v", err)
	}
	if len(got) != len(games) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(games))
	}
	for i := range games {
		if len(got[i]) != len(games[i]) {
			t.Fatalf("game %d: len = %d, want %d", i, len(got[i]), len(games[i]))
		}
		for j := range games[i] {
			if got[i][j] != games[i][j] {
				t.Fatalf("game %d board %d mismatch", i, j)
			}
		}
	}
}

func TestSegmentRejectsEmptyBoard(t *testing.T) {
	boards := tttcodec.BoardStream{tttcodec.Board{}}
	_, err := Segment(boards)
	if !errors.Is(err, ErrEmptyBoard) {
		t.Fatalf("Segment(empty board) err = %v, want ErrEmptyBoard", err)
	}
}
