//go:build !gtxt

package ttex

import "github.com/hajimehoshi/ebiten/v2"

// Alias to allow compiling the package without Ebitengine (gtxt
// version). With Ebitengine, Texture defaults to *ebiten.Image;
// without it, to *image.RGBA.
type Texture = *ebiten.Image

// Creates a texture of the canvas dimensions holding the current
// canvas contents as white text with coverage as alpha. For per-frame
// overlays, create the texture once and refresh it with
// [Session.UploadTexture] instead.
func (self *Session) NewTexture() Texture {
	texture := ebiten.NewImage(self.canvas.Width(), self.canvas.Height())
	self.UploadTexture(texture)
	return texture
}

// Replaces the texture's pixels with the current canvas contents.
// The texture dimensions must match the canvas dimensions.
func (self *Session) UploadTexture(texture Texture) {
	texture.ReplacePixels(self.texturePixels())
}
