package font

import "golang.org/x/image/font/sfnt"

// Returns the full name of the given font, or an empty string if the
// naming table doesn't include one. Only used for log attribution, so
// the helper swallows lookup errors on purpose.
func Name(parsedFont *sfnt.Font) string {
	var buffer sfnt.Buffer
	name, err := parsedFont.Name(&buffer, sfnt.NameIDFull)
	if err != nil { return "" }
	return name
}
