package bitio

import "testing"

func TestWriteReadBitsAtRoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	positions := []int{0, 5, 10, 15, 20}
	values := []uint32{0b10001, 0b11111, 0b00000, 0b01010, 0b11100}

	for i, pos := range positions {
		WriteBitsAt(buf, pos, 5, values[i])
	}
	for i, pos := range positions {
		got := ReadBitsAt(buf, pos, 5)
		if got != values[i] {
			t.Errorf("ReadBitsAt(pos=%d) = %#07b, want %#07b", pos, got, values[i])
		}
	}
}

func TestSequentialWriterReader(t *testing.T) {
	w := NewWriter(4)
	w.WriteBit(1)
	w.WriteBit(0)
	w.WriteBits(0b10110, 5)
	w.WriteBits(0x7FFF, 15)

	if w.BitLen() != 2+5+15 {
		t.Fatalf("BitLen() = %d, want %d", w.BitLen(), 2+5+15)
	}

	r := NewReader(w.Bytes())
	if bit, ok := r.ReadBit(); !ok || bit != 1 {
		t.Fatalf("ReadBit() = %d, %v, want 1, true", bit, ok)
	}
	if bit, ok := r.ReadBit(); !ok || bit != 0 {
		t.Fatalf("ReadBit() = %d, %v, want 0, true", bit, ok)
	}
	if v, ok := r.ReadBits(5); !ok || v != 0b10110 {
		t.Fatalf("ReadBits(5) = %#b, %v, want %#b, true", v, ok, 0b10110)
	}
	if v, ok := r.ReadBits(15); !ok || v != 0x7FFF {
		t.Fatalf("ReadBits(15) = %#x, %v, want %#x, true", v, ok, 0x7FFF)
	}
}

func TestReaderExhaustion(t *testing.T) {
	r := NewReader([]byte{0xFF})
	for i := 0; i < 8; i++ {
		if _, ok := r.ReadBit(); !ok {
			t.Fatalf("ReadBit() %d: ok = false, want true", i)
		}
	}
	if _, ok := r.ReadBit(); ok {
		t.Error("ReadBit() past the end of the buffer returned ok = true")
	}
	if _, ok := r.ReadBits(1); ok {
		t.Error("ReadBits(1) past the end of the buffer returned ok = true")
	}
}

func TestRemaining(t *testing.T) {
	r := NewReader([]byte{0x00, 0x00})
	if r.Remaining() != 16 {
		t.Fatalf("Remaining() = %d, want 16", r.Remaining())
	}
	r.ReadBits(5)
	if r.Remaining() != 11 {
		t.Fatalf("Remaining() = %d, want 11", r.Remaining())
	}
}
