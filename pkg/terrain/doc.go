// Package terrain loads elevation grids for the hill-climbing search.
//
// # Overview
//
// A terrain grid is a rectangular block of text in which every byte is an
// elevation letter from 'a' (lowest) to 'z' (highest), plus exactly one
// start marker 'S' and exactly one goal marker 'E':
//
//	Sabqponm
//	abcryxxl
//	accszExk
//	acctuvwj
//	abdefghi
//
// [Parse] turns that text into an immutable [Grid]. Markers are canonicalized
// on load: 'S' is stored at the minimum elevation (as 'a') and 'E' at the
// maximum (as 'z'), so downstream code never special-cases them. The input
// glyph is kept for rendering via [Grid.Rune].
//
// # Cell Identity
//
// Cells are addressed by a [CellID], the row-major linearization
// row*Cols + col. [Grid.ID] and [Grid.Coord] are mutual inverses for every
// in-bounds coordinate. Neither checks bounds; use [Grid.InBounds] first.
//
// # Errors
//
// Loading fails with a MALFORMED_GRID coded error (see pkg/errors) when lines
// differ in length, contain a byte outside {a-z, S, E}, repeat a marker, or
// the input cannot be read; and with MISSING_ENDPOINT when 'S' or 'E' is
// absent. No partial grid is ever returned.
//
// # Concurrency
//
// A [Grid] is never mutated after [Parse] returns and may be shared freely
// between goroutines.
package terrain
