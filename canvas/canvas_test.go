package canvas

import "testing"

func TestNew(t *testing.T) {
	c := New(64, 16)
	if c.Width() != 64 || c.Height() != 16 {
		t.Fatalf("expected (64, 16), got (%d, %d)", c.Width(), c.Height())
	}
	if len(c.Pixels()) != 64*16 {
		t.Fatalf("expected buffer length %d, got %d", 64*16, len(c.Pixels()))
	}
	for i, value := range c.Pixels() {
		if value != 0 { t.Fatalf("expected zero-filled buffer, got %d at %d", value, i) }
	}
}

func TestNewInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 16}, {16, 0}, {-1, 16}, {16, -1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic for dimensions %v", dims)
				}
			}()
			_ = New(dims[0], dims[1])
		}()
	}
}

func TestReset(t *testing.T) {
	c := New(8, 8)
	pixels := c.Pixels()
	for i := range pixels { pixels[i] = 0xFF }
	c.Reset()
	for i, value := range c.Pixels() {
		if value != 0 { t.Fatalf("expected zero after reset, got %d at %d", value, i) }
	}
}

func TestFits(t *testing.T) {
	c := New(8, 8)
	tests := []struct {
		x, y, width, height int
		want bool
	}{
		{0, 0, 8, 8, true},   // exact full-canvas fit
		{0, 0, 10, 10, false}, // oversized
		{0, 0, 0, 0, true},
		{7, 7, 1, 1, true},
		{7, 7, 2, 1, false},
		{-1, 0, 4, 4, false},
		{0, -1, 4, 4, false},
		{0, 0, -1, 4, false},
		{5, 0, 4, 4, false},
		{0, 5, 4, 4, false},
	}
	for _, test := range tests {
		got := c.Fits(test.x, test.y, test.width, test.height)
		if got != test.want {
			t.Fatalf("Fits(%d, %d, %d, %d): expected %t, got %t",
				test.x, test.y, test.width, test.height, test.want, got)
		}
	}
}

func TestOffset(t *testing.T) {
	c := New(64, 16)
	if offset := c.Offset(0, 0); offset != 0 {
		t.Fatalf("expected offset 0, got %d", offset)
	}
	if offset := c.Offset(10, 4); offset != 4*64 + 10 {
		t.Fatalf("expected offset %d, got %d", 4*64 + 10, offset)
	}
}

func TestImageSharesMemory(t *testing.T) {
	c := New(8, 4)
	img := c.Image()
	bounds := img.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 4 {
		t.Fatalf("unexpected image bounds: %v", bounds)
	}

	c.Pixels()[c.Offset(3, 2)] = 0xAB
	if img.GrayAt(3, 2).Y != 0xAB {
		t.Fatal("expected the image to share the canvas memory")
	}
	c.Reset()
	if img.GrayAt(3, 2).Y != 0 {
		t.Fatal("expected the image to reflect resets")
	}
}
