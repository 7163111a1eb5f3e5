package ttex

import "errors"
import "testing"

import "github.com/tinrye/ttex/canvas"

// ---- stub provider ----

type stubGlyph struct {
	advance float64
	lsb     float64
	box     [4]int // x1, y1, x2, y2; stub tests always use scale 1.0
	value   byte   // coverage value written on rasterization
}

type rasterCall struct {
	codepoint byte
	offset, width, height, stride int
}

// Stub metrics.Provider with a fixed glyph table. Scale factors are
// ignored: the tests drive the pipeline at scale 1.0 by reporting a
// unit scale for any pixel size.
type stubProvider struct {
	glyphs  map[byte]stubGlyph
	ascent  float64
	descent float64
	kerns   map[[2]byte]float64

	kernCalls   [][2]byte
	rasterCalls []rasterCall
}

func (self *stubProvider) ScaleForPixelHeight(pixels float64) float64 { return 1.0 }

func (self *stubProvider) VerticalMetrics() (float64, float64, float64) {
	return self.ascent, self.descent, 0
}

func (self *stubProvider) HorizontalMetrics(codepoint byte) (float64, float64) {
	glyph := self.glyphs[codepoint]
	return glyph.advance, glyph.lsb
}

func (self *stubProvider) BoundingBox(codepoint byte, scaleX, scaleY float64) (int, int, int, int) {
	box := self.glyphs[codepoint].box
	return box[0], box[1], box[2], box[3]
}

func (self *stubProvider) KerningAdvance(left, right byte) float64 {
	self.kernCalls = append(self.kernCalls, [2]byte{left, right})
	return self.kerns[[2]byte{left, right}]
}

func (self *stubProvider) RasterizeGlyphInto(codepoint byte, dst []byte, offset, width, height, stride int, scaleX, scaleY float64) {
	self.rasterCalls = append(self.rasterCalls, rasterCall{codepoint, offset, width, height, stride})
	value := self.glyphs[codepoint].value
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			dst[offset + row*stride + col] = value
		}
	}
}

func newStubSession(width, height int, provider *stubProvider) *Session {
	return &Session{canvas: canvas.New(width, height), provider: provider}
}

// Monospace stub font: every listed glyph advances 10px, zero lsb.
func monoProvider(values ...byte) *stubProvider {
	glyphs := make(map[byte]stubGlyph)
	for _, codepoint := range values {
		glyphs[codepoint] = stubGlyph{
			advance: 10, lsb: 0,
			box: [4]int{0, -8, 6, 0},
			value: 0xFF,
		}
	}
	return &stubProvider{
		glyphs: glyphs,
		ascent: 12, descent: -4,
		kerns: make(map[[2]byte]float64),
	}
}

// ---- tests ----

func TestRenderMonospaceScenario(t *testing.T) {
	provider := monoProvider('A', 'B')
	session := newStubSession(64, 16, provider)

	penX := session.composeText("AB", 16)
	if penX != 20 { t.Fatalf("expected final pen = 20, got %d", penX) }

	provider.rasterCalls = nil
	err := session.Render("AB", 16)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(provider.rasterCalls) != 2 {
		t.Fatalf("expected 2 raster calls, got %d", len(provider.rasterCalls))
	}

	// baseline at row 12, boxes rise 8px above it, so tops sit at row 4
	wantFirst := rasterCall{'A', 4*64 + 0, 6, 8, 64}
	wantSecond := rasterCall{'B', 4*64 + 10, 6, 8, 64}
	if provider.rasterCalls[0] != wantFirst {
		t.Fatalf("first call: expected %v, got %v", wantFirst, provider.rasterCalls[0])
	}
	if provider.rasterCalls[1] != wantSecond {
		t.Fatalf("second call: expected %v, got %v", wantSecond, provider.rasterCalls[1])
	}
}

func TestRenderEmptyString(t *testing.T) {
	session := newStubSession(64, 16, monoProvider('A'))

	// dirty the canvas first so the implicit reset is observable
	if err := session.Render("A", 16); err != nil { t.Fatalf("unexpected error: %s", err) }
	if allZero(session.Buffer()) { t.Fatal("expected glyph coverage on the canvas") }

	if err := session.Render("", 16); err != nil { t.Fatalf("unexpected error: %s", err) }
	if !allZero(session.Buffer()) { t.Fatal("expected blank canvas after empty render") }
}

func TestRenderRepeatable(t *testing.T) {
	session := newStubSession(64, 16, monoProvider('A', 'B'))

	if err := session.Render("AB", 16); err != nil { t.Fatalf("unexpected error: %s", err) }
	first := snapshot(session)
	if err := session.Render("AB", 16); err != nil { t.Fatalf("unexpected error: %s", err) }
	if !equalBytes(first, session.Buffer()) {
		t.Fatal("expected bit-identical canvases for repeated renders")
	}
}

func TestRenderClearsPreviousContents(t *testing.T) {
	session := newStubSession(64, 16, monoProvider('A', 'B'))
	if err := session.Render("AB", 16); err != nil { t.Fatalf("unexpected error: %s", err) }
	if err := session.Render("A", 16); err != nil { t.Fatalf("unexpected error: %s", err) }
	shorter := snapshot(session)

	fresh := newStubSession(64, 16, monoProvider('A', 'B'))
	if err := fresh.Render("A", 16); err != nil { t.Fatalf("unexpected error: %s", err) }
	if !equalBytes(shorter, fresh.Buffer()) {
		t.Fatal("expected leftovers from the longer render to be cleared")
	}
}

func TestKernNotLookedUpForLastIndex(t *testing.T) {
	provider := monoProvider('A', 'B')
	session := newStubSession(64, 16, provider)

	if err := session.Render("A", 16); err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(provider.kernCalls) != 0 {
		t.Fatalf("single codepoint must not trigger kern lookups, got %v", provider.kernCalls)
	}

	if err := session.Render("AB", 16); err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(provider.kernCalls) != 1 {
		t.Fatalf("expected exactly one kern lookup, got %v", provider.kernCalls)
	}
	if provider.kernCalls[0] != [2]byte{'A', 'B'} {
		t.Fatalf("expected kern lookup for (A, B), got %v", provider.kernCalls[0])
	}
}

func TestKernAdjustsPen(t *testing.T) {
	provider := monoProvider('A', 'B')
	provider.kerns[[2]byte{'A', 'B'}] = -2
	session := newStubSession(64, 16, provider)

	penX := session.composeText("AB", 16)
	if penX != 18 { t.Fatalf("expected final pen = 18, got %d", penX) }

	// the second glyph lands at the kern-adjusted pen
	last := provider.rasterCalls[len(provider.rasterCalls) - 1]
	if last.offset != 4*64 + 8 {
		t.Fatalf("expected second glyph at offset %d, got %d", 4*64 + 8, last.offset)
	}
}

func TestExactFitGlyphAccepted(t *testing.T) {
	provider := &stubProvider{
		glyphs: map[byte]stubGlyph{
			'#': {advance: 8, lsb: 0, box: [4]int{0, 0, 8, 8}, value: 0xFF},
		},
		ascent: 0, descent: 0,
		kerns: make(map[[2]byte]float64),
	}
	session := newStubSession(8, 8, provider)

	if err := session.Render("#", 16); err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(provider.rasterCalls) != 1 {
		t.Fatalf("expected the full-canvas glyph to composite, got %d calls", len(provider.rasterCalls))
	}
	want := rasterCall{'#', 0, 8, 8, 8}
	if provider.rasterCalls[0] != want {
		t.Fatalf("expected %v, got %v", want, provider.rasterCalls[0])
	}
	for i, value := range session.Buffer() {
		if value != 0xFF { t.Fatalf("expected full coverage at index %d", i) }
	}
}

func TestOversizedGlyphSkipped(t *testing.T) {
	provider := &stubProvider{
		glyphs: map[byte]stubGlyph{
			'#': {advance: 8, lsb: 0, box: [4]int{0, 0, 10, 10}, value: 0xFF},
			'.': {advance: 2, lsb: 0, box: [4]int{0, 0, 2, 2}, value: 0x80},
		},
		ascent: 0, descent: 0,
		kerns: make(map[[2]byte]float64),
	}
	session := newStubSession(8, 8, provider)

	if err := session.Render("#", 16); err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(provider.rasterCalls) != 0 {
		t.Fatal("expected the oversized glyph to be skipped without writing")
	}
	if !allZero(session.Buffer()) { t.Fatal("expected untouched canvas after skip") }

	// the rest of the string still composites after a skip
	if err := session.Render("#.", 16); err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(provider.rasterCalls) != 1 || provider.rasterCalls[0].codepoint != '.' {
		t.Fatalf("expected only the fitting glyph to composite, got %v", provider.rasterCalls)
	}
	want := rasterCall{'.', 8, 2, 2, 8} // pen advanced 8px past the skipped glyph
	if provider.rasterCalls[0] != want {
		t.Fatalf("expected %v, got %v", want, provider.rasterCalls[0])
	}
}

func TestGlyphAboveCanvasSkipped(t *testing.T) {
	provider := monoProvider('A')
	provider.ascent = 2 // boxes rise 8px, so glyph tops land at row -6
	session := newStubSession(64, 16, provider)

	if err := session.Render("A", 16); err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(provider.rasterCalls) != 0 {
		t.Fatal("expected the above-canvas glyph to be skipped")
	}
	if penX := session.composeText("A", 16); penX != 10 {
		t.Fatalf("skipped glyphs must still advance the pen, got %d", penX)
	}
}

func TestRenderInvalidPixelSize(t *testing.T) {
	session := newStubSession(64, 16, monoProvider('A'))
	if err := session.Render("A", 16); err != nil { t.Fatalf("unexpected error: %s", err) }
	before := snapshot(session)

	for _, pixelSize := range []float64{0, -5} {
		err := session.Render("A", pixelSize)
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("expected ErrInvalidSize for pixelSize = %g, got %v", pixelSize, err)
		}
		if !equalBytes(before, session.Buffer()) {
			t.Fatal("rejected renders must leave the canvas unchanged")
		}
	}
}

func TestPenAdvancesForNonEmptyText(t *testing.T) {
	session := newStubSession(64, 16, monoProvider('A', 'B', 'C'))
	for _, text := range []string{"A", "AB", "CAB"} {
		if penX := session.composeText(text, 16); penX <= 0 {
			t.Fatalf("expected positive final pen for %q, got %d", text, penX)
		}
	}

	// codepoints without metrics produce no advancement at all
	if penX := session.composeText("zz", 16); penX != 0 {
		t.Fatalf("expected zero pen for unknown codepoints, got %d", penX)
	}
}

// ---- test helpers ----

func snapshot(session *Session) []byte {
	buffer := session.Buffer()
	copied := make([]byte, len(buffer))
	copy(copied, buffer)
	return copied
}

func allZero(buffer []byte) bool {
	for _, value := range buffer {
		if value != 0 { return false }
	}
	return true
}

func equalBytes(a, b []byte) bool {
	if len(a) != len(b) { return false }
	for i := range a {
		if a[i] != b[i] { return false }
	}
	return true
}
