package metrics

import "math"

import xfont "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/tinrye/ttex/cache"
import "github.com/tinrye/ttex/raster"

var _ Provider = (*FontProvider)(nil)

// The default [Provider], backed by an [sfnt.Font].
//
// The font is queried at ppem == unitsPerEm, so every unhinted value
// sfnt returns is numerically an exact design unit; scaling down to
// the requested pixel size then happens in the provider's callers,
// one rounding step at a time.
//
// Query failures for individual codepoints (missing glyphs, fonts
// without kerning tables) degrade to zero values instead of being
// propagated: a missing glyph is simply absent from the output.
//
// FontProviders can't be used concurrently: they reuse an internal
// sfnt.Buffer and rasterizer state across calls.
type FontProvider struct {
	font *sfnt.Font
	buffer sfnt.Buffer
	unitSize fixed.Int26_6 // ppem at which raw 26.6 values equal design units

	// vertical metrics, cached at construction (design units)
	ascent  float64
	descent float64 // negative or zero
	lineGap float64

	glyphCache *cache.GlyphCache // may be nil
}

// Creates a provider for the given font. A nil font will panic.
func NewFontProvider(font *sfnt.Font) (*FontProvider, error) {
	if font == nil { panic("nil font") }
	self := &FontProvider{ font: font }
	self.unitSize = fixed.Int26_6(font.UnitsPerEm())
	metrics, err := font.Metrics(&self.buffer, self.unitSize, xfont.HintingNone)
	if err != nil { return nil, err }
	self.ascent  = float64(metrics.Ascent)
	self.descent = -float64(metrics.Descent)
	self.lineGap = float64(metrics.Height - metrics.Ascent - metrics.Descent)
	return self, nil
}

// Sets the cache used to skip re-rasterizing recently used glyphs.
// Nil disables caching.
func (self *FontProvider) SetCache(glyphCache *cache.GlyphCache) {
	self.glyphCache = glyphCache
}

// Satisfies the [Provider] interface.
//
// Like stb_truetype's stbtt_ScaleForPixelHeight, the scale maps the
// ascent-to-descent range to the requested pixel height.
func (self *FontProvider) ScaleForPixelHeight(pixels float64) float64 {
	return pixels/(self.ascent - self.descent)
}

// Satisfies the [Provider] interface.
func (self *FontProvider) VerticalMetrics() (ascent, descent, lineGap float64) {
	return self.ascent, self.descent, self.lineGap
}

// Satisfies the [Provider] interface.
func (self *FontProvider) HorizontalMetrics(codepoint byte) (advance, leftSideBearing float64) {
	index, found := self.glyphIndex(codepoint)
	if !found { return 0, 0 }
	rawAdvance, err := self.font.GlyphAdvance(&self.buffer, index, self.unitSize, xfont.HintingNone)
	if err != nil { return 0, 0 }
	bounds, _, err := self.font.GlyphBounds(&self.buffer, index, self.unitSize, xfont.HintingNone)
	if err != nil { return float64(rawAdvance), 0 }
	return float64(rawAdvance), float64(bounds.Min.X)
}

// Satisfies the [Provider] interface.
//
// The box edges follow stb_truetype's bitmap box convention:
// floor for the minimum corner, ceil for the maximum one.
func (self *FontProvider) BoundingBox(codepoint byte, scaleX, scaleY float64) (x1, y1, x2, y2 int) {
	index, found := self.glyphIndex(codepoint)
	if !found { return 0, 0, 0, 0 }
	bounds, _, err := self.font.GlyphBounds(&self.buffer, index, self.unitSize, xfont.HintingNone)
	if err != nil { return 0, 0, 0, 0 }
	return scaledBox(bounds, scaleX, scaleY)
}

// Satisfies the [Provider] interface.
func (self *FontProvider) KerningAdvance(left, right byte) float64 {
	leftIndex, found := self.glyphIndex(left)
	if !found { return 0 }
	rightIndex, found := self.glyphIndex(right)
	if !found { return 0 }
	kern, err := self.font.Kern(&self.buffer, leftIndex, rightIndex, self.unitSize, xfont.HintingNone)
	if err != nil { return 0 } // including sfnt.ErrNotFound (no kerning table)
	return float64(kern)
}

// Satisfies the [Provider] interface.
func (self *FontProvider) RasterizeGlyphInto(codepoint byte, dst []byte, offset, width, height, stride int, scaleX, scaleY float64) {
	if width <= 0 || height <= 0 { return }

	coverage := self.glyphCoverage(codepoint, width, height, scaleX, scaleY)
	if coverage == nil { return } // whitespace or missing glyph

	for row := 0; row < height; row++ {
		dstRow := offset + row*stride
		copy(dst[dstRow : dstRow + width], coverage[row*width : (row + 1)*width])
	}
}

// Returns the width*height coverage slice for the given codepoint,
// from the cache when possible. Nil when there's nothing to draw.
func (self *FontProvider) glyphCoverage(codepoint byte, width, height int, scaleX, scaleY float64) []byte {
	var key cache.Key
	if self.glyphCache != nil {
		key = cache.NewKey(codepoint, scaleX, scaleY)
		coverage, found := self.glyphCache.Coverage(key)
		if found { return coverage }
	}

	index, found := self.glyphIndex(codepoint)
	if !found { return nil }
	bounds, _, err := self.font.GlyphBounds(&self.buffer, index, self.unitSize, xfont.HintingNone)
	if err != nil { return nil }
	outline, err := self.font.LoadGlyph(&self.buffer, index, self.unitSize, nil)
	if err != nil { return nil }

	// the origin must be derived exactly like BoundingBox derives it,
	// or the outline would land misaligned within the sub-rectangle
	x1, y1, _, _ := scaledBox(bounds, scaleX, scaleY)
	mask := raster.Outline(outline, width, height, x1, y1, scaleX, scaleY)
	if mask == nil { return nil }

	coverage := mask.Pix
	if self.glyphCache != nil { self.glyphCache.Pass(key, coverage) }
	return coverage
}

// Glyph index lookup. The zero index is the font's "missing glyph"
// placeholder, treated here as not found.
func (self *FontProvider) glyphIndex(codepoint byte) (sfnt.GlyphIndex, bool) {
	index, err := self.font.GlyphIndex(&self.buffer, rune(codepoint))
	if err != nil || index == 0 { return 0, false }
	return index, true
}

// Converts design-unit glyph bounds to a scaled pixel box, flooring
// the minimum corner and ceiling the maximum one.
func scaledBox(bounds fixed.Rectangle26_6, scaleX, scaleY float64) (x1, y1, x2, y2 int) {
	x1 = int(math.Floor(float64(bounds.Min.X)*scaleX))
	y1 = int(math.Floor(float64(bounds.Min.Y)*scaleY))
	x2 = int(math.Ceil(float64(bounds.Max.X)*scaleX))
	y2 = int(math.Ceil(float64(bounds.Max.Y)*scaleY))
	return x1, y1, x2, y2
}
