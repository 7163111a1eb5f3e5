package ttex

import "fmt"

// Renders the given text into the session's canvas at the given pixel
// height, replacing any previous contents. The canvas can then be
// read through [Session.Buffer] or [Session.Image], or uploaded with
// [Session.UploadTexture].
//
// Text is treated as a byte sequence: each byte is one codepoint, no
// multi-byte decoding is performed. Glyphs are placed on a common
// baseline starting at the canvas left edge; glyphs whose rectangle
// doesn't fit entirely inside the canvas are skipped, the rest of the
// string still renders.
//
// Returns [ErrInvalidSize] for a non-positive pixelSize, leaving the
// canvas untouched. Degenerate input is not an error: rendering the
// empty string simply leaves the canvas blank, and strings with no
// visible advancement only produce a log warning.
func (self *Session) Render(text string, pixelSize float64) error {
	if pixelSize <= 0 {
		return fmt.Errorf("%w (got %g)", ErrInvalidSize, pixelSize)
	}

	self.canvas.Reset()
	penX := self.composeText(text, pixelSize)
	if penX == 0 {
		logger().Warn("no glyphs rendered", "textLen", len(text), "pixelSize", pixelSize)
	}
	return nil
}

// The per-render composition loop. Returns the final pen position,
// which is zero when nothing advanced (empty or all-missing input).
func (self *Session) composeText(text string, pixelSize float64) int {
	// derive scale and baseline once; the baseline is shared by every
	// glyph in the string, only bounding boxes vary per character
	scale := self.provider.ScaleForPixelHeight(pixelSize)
	ascent, _, _ := self.provider.VerticalMetrics()
	pen := newCursor(roundAwayFromZero(ascent*scale))

	canvasWidth := self.canvas.Width()
	for i := 0; i < len(text); i++ {
		codepoint := text[i]
		advance, leftSideBearing := self.provider.HorizontalMetrics(codepoint)
		x1, y1, x2, y2 := self.provider.BoundingBox(codepoint, scale, scale)

		glyphWidth, glyphHeight := x2 - x1, y2 - y1
		if glyphWidth > 0 && glyphHeight > 0 {
			top  := pen.baselineY + y1 // y1 is negative above the baseline
			left := pen.penX + roundAwayFromZero(leftSideBearing*scale)
			if self.canvas.Fits(left, top, glyphWidth, glyphHeight) {
				self.provider.RasterizeGlyphInto(
					codepoint, self.canvas.Pixels(), self.canvas.Offset(left, top),
					glyphWidth, glyphHeight, canvasWidth, scale, scale,
				)
			} else {
				logger().Debug("glyph outside canvas, skipped",
					"codepoint", codepoint, "left", left, "top", top,
					"width", glyphWidth, "height", glyphHeight,
				)
			}
		}

		pen.advance(roundAwayFromZero(advance*scale))

		// kerning only applies between pairs: the final byte must not
		// trigger a lookup past the end of the input
		if i + 1 < len(text) {
			kern := self.provider.KerningAdvance(codepoint, text[i + 1])
			pen.advance(roundAwayFromZero(kern*scale))
		}
	}
	return pen.penX
}
