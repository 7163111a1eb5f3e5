package raster

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/font/sfnt"

// Rasterizes a glyph outline into a coverage mask of exactly
// width x height pixels, backed by [golang.org/x/image/vector].
//
// The outline coordinates are interpreted as raw design units: one
// fixed-point unit equals one design unit, which is what sfnt's
// LoadGlyph produces when queried at ppem == unitsPerEm. Each point
// is mapped to pixels as unit*scale - origin, so passing the floored
// bounding box corner as (originX, originY) places the outline at
// the mask's top-left corner.
//
// Returns nil if the outline contains no lines or curves (e.g. space
// glyphs), which callers must treat as "nothing to draw", not as an
// error.
func Outline(outline sfnt.Segments, width, height, originX, originY int, scaleX, scaleY float64) *image.Alpha {
	if width <= 0 || height <= 0 { return nil }
	if !hasDrawingOps(outline) { return nil }

	var rasterizer vector.Rasterizer
	rasterizer.Reset(width, height)
	rasterizer.DrawOp = draw.Src
	traceOutline(&rasterizer, outline, float64(originX), float64(originY), scaleX, scaleY)

	// the source is a uniform, so the sample point is irrelevant
	mask := image.NewAlpha(rasterizer.Bounds())
	rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// Whether the outline includes anything beyond MoveTo operations.
func hasDrawingOps(outline sfnt.Segments) bool {
	for _, segment := range outline {
		if segment.Op != sfnt.SegmentOpMoveTo { return true }
	}
	return false
}

// Calls MoveTo(), LineTo(), QuadTo() and CubeTo() on the rasterizer,
// as corresponding, for each segment in the glyph outline, scaling
// and translating every point on the way.
func traceOutline(rasterizer *vector.Rasterizer, outline sfnt.Segments, originX, originY, scaleX, scaleY float64) {
	px := func(arg int) float32 { return float32(float64(arg)*scaleX - originX) }
	py := func(arg int) float32 { return float32(float64(arg)*scaleY - originY) }

	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			rasterizer.MoveTo(
				px(int(segment.Args[0].X)), py(int(segment.Args[0].Y)),
			)
		case sfnt.SegmentOpLineTo:
			rasterizer.LineTo(
				px(int(segment.Args[0].X)), py(int(segment.Args[0].Y)),
			)
		case sfnt.SegmentOpQuadTo:
			rasterizer.QuadTo(
				px(int(segment.Args[0].X)), py(int(segment.Args[0].Y)),
				px(int(segment.Args[1].X)), py(int(segment.Args[1].Y)),
			)
		case sfnt.SegmentOpCubeTo:
			rasterizer.CubeTo(
				px(int(segment.Args[0].X)), py(int(segment.Args[0].Y)),
				px(int(segment.Args[1].X)), py(int(segment.Args[1].Y)),
				px(int(segment.Args[2].X)), py(int(segment.Args[2].Y)),
			)
		default:
			panic("unexpected segment.Op case")
		}
	}
}
