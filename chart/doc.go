// Package chart lays out a daily sales series as drawable primitives and drives
// pointer interaction over them.
//
// The engine owns every primitive it creates. Layout happens once per Init:
//
//	records → bars + day labels → month/year buckets → bracket shapes.
//
// After layout the collection is only mutated in place: dragging with the
// button held shifts every primitive by the pointer delta, and wheel input is
// turned into a cursor-anchored horizontal zoom applied once per frame.
//
// Rendering goes through the Surface interface, which mirrors a small subset of
// a 2D canvas context (origin top-left, y down). The raster and svgcanvas
// packages provide implementations.
//
// An Engine is not safe for concurrent use; callers serialize pointer
// notifications and frames on one goroutine.
package chart
