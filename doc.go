// ttex converts text strings into single-channel coverage bitmaps
// suitable for upload as textures in a graphics pipeline (e.g. an
// OpenGL or Ebitengine text overlay showing an FPS counter).
//
// Common usage only involves one type and a few calls. First, you
// create a [Session] for a font and a canvas size:
//
//	session, err := ttex.New("path/to/font.ttf")
//	if err != nil { ... }
//
// Then, each frame or whenever the text changes, you render:
//
//	err := session.Render("60 fps", 64)
//	if err != nil { ... }
//
// And finally you grab the canvas contents and upload them:
//
//	pixels := session.Buffer() // single channel, width*height bytes
//
// With Ebitengine, [Session.NewTexture] and [Session.UploadTexture]
// handle the upload directly.
//
// Input text is treated as a byte sequence: each byte is one codepoint.
// There is no multi-byte decoding, no word wrapping and no color; the
// canvas has a fixed size and glyphs that don't fit are skipped. These
// are deliberate restrictions to keep per-frame costs predictable for
// overlay-style rendering.
package ttex
