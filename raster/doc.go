// raster converts glyph outlines into coverage masks through the
// x/image/vector rasterizer. It only deals with geometry: metrics,
// kerning and placement live in the metrics package and the session.
package raster
