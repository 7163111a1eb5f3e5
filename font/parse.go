package font

import "os"
import "io"
import "io/fs"
import "errors"

import "golang.org/x/image/font/sfnt"

// Parses a font from raw bytes. The bytes must not be modified while
// the font is in use.
func ParseBytes(data []byte) (*sfnt.Font, error) {
	return sfnt.Parse(data)
}

// Attempts to parse the font at the given filepath, returning the
// font along with the raw bytes it references. Supported formats are
// .ttf and .otf.
func ParsePath(path string) (*sfnt.Font, []byte, error) {
	if !hasValidFontExtension(path) {
		return nil, nil, errors.New("invalid font path '" + path + "'")
	}
	file, err := os.Open(path)
	if err != nil { return nil, nil, err }
	return parseFontFileAndClose(file)
}

// Same as [ParsePath], but for embedded filesystems.
func ParseFS(filesys fs.FS, path string) (*sfnt.Font, []byte, error) {
	if !hasValidFontExtension(path) {
		return nil, nil, errors.New("invalid font path '" + path + "'")
	}
	file, err := filesys.Open(path)
	if err != nil { return nil, nil, err }
	return parseFontFileAndClose(file)
}

// ---- helpers ----

func parseFontFileAndClose(file io.ReadCloser) (*sfnt.Font, []byte, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}
	err = file.Close()
	if err != nil { return nil, nil, err }
	parsedFont, err := ParseBytes(data)
	if err != nil { return nil, nil, err }
	return parsedFont, data, nil
}

// Whether the font path ends in .ttf or .otf.
func hasValidFontExtension(path string) bool {
	if len(path) < 4 { return false }
	if path[len(path) - 1] != 'f' { return false }
	if path[len(path) - 2] != 't' { return false }
	thrd := path[len(path) - 3]
	if thrd != 't' && thrd != 'o' { return false }
	return path[len(path) - 4] == '.'
}
