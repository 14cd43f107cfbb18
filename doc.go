// Package nastaliq computes inter-glyph spacing and collision information for
// cursive scripts whose outlines follow diagonal, overlapping baselines, as in
// Nastaliq-style Arabic. Latin spacing can assume a fixed horizontal baseline;
// here, outlines from different glyphs routinely pass above and below one
// another, and the gap between two glyphs is a property of their actual curve
// geometry, not of their advance widths.
//
// The package answers three questions about pairs of glyph outlines, where an
// outline is a set of closed contours built from line and quadratic Bézier
// segments:
//
//   - the minimum Euclidean distance between two outlines (see [Distance])
//   - the horizontal offset that places two outlines at a target distance
//     (see [Kern])
//   - whether two positioned outlines physically overlap (see
//     [Glyph.Collides])
//
// # Scope
//
// This is the geometric core of a shaping pipeline, not the pipeline itself.
// Font file access, conversion to and from a shaping engine's buffer records,
// and deciding what role a glyph plays in a word are the caller's concern; the
// caller communicates roles through the tags on [Glyph] and font metrics
// through the [FontMetrics] interface.
//
// Only the segment types that glyph outlines in this domain contain are
// modeled: lines and quadratic Béziers. Cubic Béziers can be represented (see
// [CubicKind]) but only so that malformed input degrades predictably rather
// than crashing; see [SegmentDistance].
//
// # Concurrency
//
// All operations are pure with respect to caller-owned data. The kerning
// solver works on private translated copies of its input and never mutates
// the contours it is given. Independent glyph pairs may therefore be
// processed concurrently without synchronization.
package nastaliq
