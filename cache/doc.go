// cache implements a memory-bounded store for rasterized glyph
// coverage. Overlay-style text (FPS counters, HUD labels) renders the
// same few glyphs at the same size frame after frame, so skipping the
// outline rasterization pays off quickly.
//
// Sizing reference: one cached glyph takes width*height bytes plus a
// small bookkeeping overhead. A 64px overlay font caches the whole
// printable ASCII range comfortably under 256KiB.
package cache
