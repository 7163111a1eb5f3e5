package metrics

// When laying out and compositing glyphs we need information related
// to the font metrics: how much to advance after a glyph, where its
// visual left edge sits, what the kerning between a specific pair of
// codepoints is, and so on.
//
// Providers are the interface the rendering pipeline uses to obtain
// that information and to rasterize single glyphs. The default
// implementation is [FontProvider], backed by x/image/font/sfnt; the
// interface mainly exists so layout behavior can be tested and tuned
// with substitute implementations.
//
// All length values are expressed in font design units unless a scale
// factor is involved. Descent is reported as a negative value (below
// the baseline), which is what the pipeline's placement formulas
// assume.
//
// Providers are pure query façades: they never mutate the canvas
// except through [Provider.RasterizeGlyphInto], and even then only
// inside the sub-rectangle described by the call arguments.
type Provider interface {
	// Returns the factor that converts design units to pixels for
	// the requested pixel height. Only well-defined for positive
	// pixel heights.
	ScaleForPixelHeight(pixels float64) float64

	// Returns (ascent, descent, lineGap) in design units, unscaled.
	// Ascent is positive, descent negative or zero.
	VerticalMetrics() (ascent, descent, lineGap float64)

	// Returns (advanceWidth, leftSideBearing) for the given codepoint,
	// in design units. Codepoints without a glyph yield (0, 0).
	HorizontalMetrics(codepoint byte) (advance, leftSideBearing float64)

	// Returns the glyph's bounding box in scaled pixel units, in
	// y-down coordinates relative to the baseline origin: y1 is
	// typically negative for glyphs that extend above the baseline.
	// Whitespace and missing glyphs yield a degenerate (zero-area)
	// box, which is expected and not an error.
	BoundingBox(codepoint byte, scaleX, scaleY float64) (x1, y1, x2, y2 int)

	// Returns the kerning adjustment between two adjacent codepoints,
	// in design units. May be negative. Both codepoints must come
	// from the input sequence: callers must never look one past its
	// end.
	KerningAdvance(left, right byte) float64

	// Writes the glyph's coverage into dst starting at the given byte
	// offset, each row advancing by stride bytes, overwriting previous
	// values in the width x height sub-rectangle. Nothing is written
	// for whitespace or missing glyphs.
	//
	// The provider trusts the caller on destination bounds: callers
	// are responsible for checking that the sub-rectangle fits inside
	// dst before calling.
	RasterizeGlyphInto(codepoint byte, dst []byte, offset, width, height, stride int, scaleX, scaleY float64)
}
