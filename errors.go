package ttex

import "errors"

// Returned by [Session.Render] when the requested pixel size is zero
// or negative. The canvas is left untouched in that case.
var ErrInvalidSize = errors.New("pixel size must be positive")

// LoadError is returned by session constructors when the font source
// can't be opened or read, or when the font engine rejects the data
// as malformed. The underlying cause is available through Unwrap.
type LoadError struct {
	Path string // empty when loading from raw bytes
	Err  error
}

func (self *LoadError) Error() string {
	if self.Path == "" { return "font load failed: " + self.Err.Error() }
	return "font load failed for '" + self.Path + "': " + self.Err.Error()
}

func (self *LoadError) Unwrap() error { return self.Err }
