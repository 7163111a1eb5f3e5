// canvas provides the fixed-size single-channel buffer that glyphs
// are composited into. A [Canvas] belongs to a single session and is
// not safe for concurrent mutation.
package canvas
