package raster

import "testing"

func TestBitmapSetAt(t *testing.T) {
	b := NewBitmap(10, 2)
	b.Set(0, 0)
	b.Set(9, 1)
	b.Set(-1, 0) // out of range, ignored
	b.Set(10, 0)

	if !b.At(0, 0) || !b.At(9, 1) {
		t.Error("set pixels read back unset")
	}
	if b.At(1, 0) || b.At(9, 0) {
		t.Error("unset pixels read back set")
	}
	if b.At(-1, 0) || b.At(10, 1) {
		t.Error("out-of-range pixels read back set")
	}
}

// Rows are byte-padded MSB-first: the leftmost pixel is the most
// significant bit of the row's first byte, trailing bits are zero.
func TestBitmapRowLayout(t *testing.T) {
	b := NewBitmap(10, 2)
	if b.Size() != 4 {
		t.Fatalf("10 x 2 bitmap occupies %d bytes; want 4", b.Size())
	}
	b.Set(0, 0)
	b.Set(9, 0)
	b.Set(8, 1)
	want := []byte{0x80, 0x40, 0x00, 0x80}
	for i, by := range b.Bytes() {
		if by != want[i] {
			t.Errorf("byte %d = %#02x; want %#02x", i, by, want[i])
		}
	}
}

func TestBitmapPad(t *testing.T) {
	b := NewBitmap(3, 2)
	b.Set(0, 0)
	b.Set(2, 1)
	padded, err := b.Pad(9, 4)
	if err != nil {
		t.Fatalf("Pad failed: %v", err)
	}
	if padded.Width != 9 || padded.Height != 4 {
		t.Fatalf("padded size = %d x %d; want 9 x 4", padded.Width, padded.Height)
	}
	// original content stays anchored at the origin
	if !padded.At(0, 0) || !padded.At(2, 1) {
		t.Error("padding lost original pixels")
	}
	// everything else is unset
	for y := 0; y < 4; y++ {
		for x := 0; x < 9; x++ {
			if (x == 0 && y == 0) || (x == 2 && y == 1) {
				continue
			}
			if padded.At(x, y) {
				t.Errorf("added pixel (%d,%d) is set", x, y)
			}
		}
	}
}

func TestBitmapPadNoop(t *testing.T) {
	b := NewBitmap(4, 4)
	b.Set(1, 2)
	padded, err := b.Pad(4, 4)
	if err != nil {
		t.Fatalf("Pad failed: %v", err)
	}
	if padded != b {
		t.Error("padding to the same size should return the receiver")
	}
}

func TestBitmapPadShrinkFails(t *testing.T) {
	b := NewBitmap(4, 4)
	if _, err := b.Pad(3, 4); err == nil {
		t.Error("padding to a smaller width should fail")
	}
	if _, err := b.Pad(4, 3); err == nil {
		t.Error("padding to a smaller height should fail")
	}
}

func TestBitmapOverlay(t *testing.T) {
	a := NewBitmap(8, 1)
	a.Set(0, 0)
	b := NewBitmap(8, 1)
	b.Set(7, 0)
	sum, err := a.Overlay(b)
	if err != nil {
		t.Fatalf("Overlay failed: %v", err)
	}
	if !sum.At(0, 0) || !sum.At(7, 0) {
		t.Error("overlay lost pixels")
	}
	if sum.Bytes()[0] != 0x81 {
		t.Errorf("overlay byte = %#02x; want 0x81", sum.Bytes()[0])
	}
}

func TestBitmapOverlayMismatch(t *testing.T) {
	a := NewBitmap(8, 1)
	b := NewBitmap(8, 2)
	if _, err := a.Overlay(b); err == nil {
		t.Error("overlaying bitmaps of different sizes should fail")
	}
}

func TestBitmapEqual(t *testing.T) {
	a := NewBitmap(5, 5)
	b := NewBitmap(5, 5)
	a.Set(2, 2)
	if a.Equal(b) {
		t.Error("bitmaps with different content compare equal")
	}
	b.Set(2, 2)
	if !a.Equal(b) {
		t.Error("identical bitmaps compare unequal")
	}
	if a.Equal(NewBitmap(5, 6)) {
		t.Error("bitmaps with different dimensions compare equal")
	}
}
