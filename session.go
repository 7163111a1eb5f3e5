package ttex

import "image"

import "golang.org/x/image/font/sfnt"

import "github.com/tinrye/ttex/font"
import "github.com/tinrye/ttex/cache"
import "github.com/tinrye/ttex/canvas"
import "github.com/tinrye/ttex/metrics"

// Default canvas dimensions, sized for a one-line overlay such as an
// FPS counter at 64px.
const (
	DefaultWidth  = 512
	DefaultHeight = 128
)

// Default byte budget for the per-session glyph cache.
const defaultCacheBytes = 1024*1024

// A Session owns one loaded font and one canvas, and converts text
// strings into coverage bitmaps through [Session.Render]. Construct
// it once and reuse it across frames: the canvas is allocated a
// single time and reset on each render.
//
// Sessions are not safe for concurrent use: the canvas is mutated in
// place without synchronization. Use one session per goroutine or
// serialize access externally. The buffer returned by
// [Session.Buffer] must also be fully consumed (e.g. the texture
// upload completed) before the next Render call on the same session.
type Session struct {
	fontPath  string
	fontBytes []byte
	sfntFont  *sfnt.Font
	provider  metrics.Provider
	canvas    *canvas.Canvas
}

// Creates a session with the default 512x128 canvas. See [NewWithSize].
func New(fontPath string) (*Session, error) {
	return NewWithSize(DefaultWidth, DefaultHeight, fontPath)
}

// Creates a session with a canvas of the given dimensions, loading
// the font from the given path (.ttf or .otf). Returns a [*LoadError]
// if the file can't be read or the font engine rejects its contents.
// Non-positive canvas dimensions will panic.
func NewWithSize(width, height int, fontPath string) (*Session, error) {
	parsedFont, fontBytes, err := font.ParsePath(fontPath)
	if err != nil { return nil, &LoadError{Path: fontPath, Err: err} }
	return newSession(width, height, fontPath, parsedFont, fontBytes)
}

// Same as [NewWithSize], but parsing the font from raw bytes (e.g.
// an embedded font). The bytes must not be modified for the lifetime
// of the session.
func NewFromBytes(width, height int, data []byte) (*Session, error) {
	parsedFont, err := font.ParseBytes(data)
	if err != nil { return nil, &LoadError{Err: err} }
	return newSession(width, height, "", parsedFont, data)
}

func newSession(width, height int, fontPath string, parsedFont *sfnt.Font, fontBytes []byte) (*Session, error) {
	provider, err := metrics.NewFontProvider(parsedFont)
	if err != nil { return nil, &LoadError{Path: fontPath, Err: err} }
	provider.SetCache(cache.New(defaultCacheBytes))
	logger().Info("font loaded", "name", font.Name(parsedFont), "path", fontPath)
	return &Session{
		fontPath: fontPath,
		fontBytes: fontBytes,
		sfntFont: parsedFont,
		provider: provider,
		canvas: canvas.New(width, height),
	}, nil
}

// Returns the canvas dimensions as (width, height).
func (self *Session) Dimensions() (int, int) {
	return self.canvas.Width(), self.canvas.Height()
}

// Returns the path the session's font was loaded from. Empty for
// sessions created through [NewFromBytes].
func (self *Session) FontPath() string { return self.fontPath }

// Returns the canvas pixel buffer: width*height single-channel
// coverage bytes, laid out row by row. The slice aliases the canvas
// memory, so each [Session.Render] call rewrites its contents.
func (self *Session) Buffer() []byte { return self.canvas.Pixels() }

// Returns a grayscale view of the canvas, sharing its memory.
func (self *Session) Image() *image.Gray { return self.canvas.Image() }

// Replaces the glyph metrics provider used by the rendering pipeline.
// Mostly useful for tests and for tuning layout behavior; sessions
// come with an sfnt-backed provider for their font by default.
// Nil providers are not allowed.
func (self *Session) SetMetricsProvider(provider metrics.Provider) {
	if provider == nil { panic("nil metrics.Provider") }
	self.provider = provider
}
