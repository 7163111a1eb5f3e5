package canvas

import "image"

// A Canvas is a fixed-size single-channel pixel buffer. Each byte is
// a coverage value in [0, 255]. Canvases are created once, reused
// across renders, and only ever mutated through [Canvas.Reset] and
// direct writes into [Canvas.Pixels] by glyph composition.
//
// The buffer length is always exactly width*height; there is no
// dynamic growth. Content that doesn't fit must be clipped or skipped
// by the writer, the canvas itself won't reallocate.
type Canvas struct {
	pixels []byte
	width  int
	height int
}

// Creates a new zero-filled canvas of the given dimensions.
// Non-positive dimensions will panic.
func New(width, height int) *Canvas {
	if width <= 0 || height <= 0 { panic("canvas dimensions must be positive") } // likely a dev mistake
	return &Canvas{
		pixels: make([]byte, width*height),
		width: width,
		height: height,
	}
}

// Returns the canvas width in pixels.
func (self *Canvas) Width() int { return self.width }

// Returns the canvas height in pixels.
func (self *Canvas) Height() int { return self.height }

// Fills the whole canvas with zero coverage.
func (self *Canvas) Reset() {
	for i := range self.pixels { self.pixels[i] = 0 }
}

// Returns the underlying pixel buffer, of length Width()*Height(),
// laid out row by row. The returned slice aliases the canvas memory:
// it remains valid across resets, but its contents change with them.
func (self *Canvas) Pixels() []byte { return self.pixels }

// Whether a rectangle of the given size with its top-left corner at
// (x, y) lies entirely inside the canvas.
func (self *Canvas) Fits(x, y, width, height int) bool {
	if x < 0 || y < 0 { return false }
	if width < 0 || height < 0 { return false }
	return x + width <= self.width && y + height <= self.height
}

// Returns the buffer index of the pixel at (x, y). The coordinates
// must be within the canvas; use [Canvas.Fits] to check first.
func (self *Canvas) Offset(x, y int) int {
	return y*self.width + x
}

// Returns a grayscale view of the canvas. The image shares memory
// with the canvas, so it reflects later renders too. Mostly useful
// for debugging and testing; for texture uploads, [Canvas.Pixels]
// avoids going through the image abstraction.
func (self *Canvas) Image() *image.Gray {
	return &image.Gray{
		Pix: self.pixels,
		Stride: self.width,
		Rect: image.Rect(0, 0, self.width, self.height),
	}
}
