package ttex

// The layout cursor for one render pass: the horizontal pen position
// and the baseline row shared by every glyph in the string. The
// baseline doesn't vary per character even though bounding boxes do,
// which is what makes a single row offset formula work uniformly.
//
// penX starts at zero and is only adjusted through advance().
type cursor struct {
	penX      int
	baselineY int
}

func newCursor(baselineY int) cursor {
	return cursor{penX: 0, baselineY: baselineY}
}

// Advances the pen. Kerning adjustments may be negative.
func (self *cursor) advance(pixels int) {
	self.penX += pixels
}
