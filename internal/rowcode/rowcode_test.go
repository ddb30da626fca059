package rowcode

import "testing"

func allRows() [][3]Square {
	var rows [][3]Square
	for a := Empty; a <= O; a++ {
		for b := Empty; b <= O; b++ {
			for c := Empty; c <= O; c++ {
				rows = append(rows, [3]Square{a, b, c})
			}
		}
	}
	return rows
}

func TestRoundTrip(t *testing.T) {
	for _, row := range allRows() {
		code := Encode(row)
		got := Decode(code)
		if got != row {
			t.Errorf("Decode(Encode(%v)) = %v, want %v (code=%#05b)", row, got, row, code)
		}
	}
}

func TestCodeUniqueness(t *testing.T) {
	seen := make(map[uint8][3]Square)
	for _, row := range allRows() {
		code := Encode(row)
		if code >= 32 {
			t.Fatalf("Encode(%v) = %d, out of range", row, code)
		}
		if prev, ok := seen[code]; ok && prev != row {
			t.Errorf("code %#05b produced by both %v and %v", code, prev, row)
		}
		seen[code] = row
	}
}

func TestEmptySentinel(t *testing.T) {
	empty := [3]Square{Empty, Empty, Empty}
	if got := Encode(empty); got != patternEmpty {
		t.Errorf("Encode(empty row) = %#05b, want %#05b", got, patternEmpty)
	}
	for _, row := range allRows() {
		if row == empty {
			continue
		}
		if Encode(row) == patternEmpty {
			t.Errorf("Encode(%v) collided with the empty sentinel", row)
		}
	}
}

func TestMixedRowExample(t *testing.T) {
	// [X, Empty, O]: occ=101, meta bits over occupied columns (X then O) = 1,0 -> meta=01
	row := [3]Square{X, Empty, O}
	const want = 0b01101
	if got := Encode(row); got != want {
		t.Errorf("Encode(%v) = %#07b, want %#07b", row, got, want)
	}
	if got := Decode(want); got != row {
		t.Errorf("Decode(%#07b) = %v, want %v", want, got, row)
	}
}

func TestFullXBoardRow(t *testing.T) {
	row := [3]Square{X, X, X}
	const want = 0b11111
	if got := Encode(row); got != want {
		t.Errorf("Encode(all-X) = %#07b, want %#07b", got, want)
	}
	if got := Decode(want); got != row {
		t.Errorf("Decode(%#07b) = %v, want %v", want, got, row)
	}
}
