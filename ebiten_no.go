//go:build gtxt

package ttex

import "image"

// Alias to allow compiling the package without Ebitengine (gtxt
// version). With Ebitengine, Texture defaults to *ebiten.Image;
// without it, to *image.RGBA.
type Texture = *image.RGBA

// Creates an RGBA image of the canvas dimensions holding the current
// canvas contents as white text with coverage as alpha.
func (self *Session) NewTexture() Texture {
	texture := image.NewRGBA(image.Rect(0, 0, self.canvas.Width(), self.canvas.Height()))
	self.UploadTexture(texture)
	return texture
}

// Replaces the image's pixels with the current canvas contents.
// The image dimensions must match the canvas dimensions.
func (self *Session) UploadTexture(texture Texture) {
	copy(texture.Pix, self.texturePixels())
}
