package ttex

// Expands the single-channel canvas into premultiplied RGBA pixels
// (white text, coverage as alpha), the layout texture uploads expect.
func (self *Session) texturePixels() []byte {
	coverage := self.canvas.Pixels()
	pixels := make([]byte, len(coverage)*4)
	index := 0
	for _, value := range coverage {
		pixels[index + 0] = value
		pixels[index + 1] = value
		pixels[index + 2] = value
		pixels[index + 3] = value
		index += 4
	}
	return pixels
}
