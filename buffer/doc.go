// Package buffer implements the row-oriented document model for vimkit.
//
// Coordinates are 0-based (Row, Col) where Col counts grapheme clusters.
// Ranges are half-open spans in document coordinates: [Start, End).
// Every operation clamps out-of-range arguments instead of failing.
package buffer
