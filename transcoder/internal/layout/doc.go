// Package layout computes size, alignment and field offsets of the record
// types that cross the boundary in sequences (rectangles, draggable
// regions, screen info).
//
// # Layout Rules
//
//   - Primitives: size equals alignment (u8=1, u32=4, u64=8, etc.)
//   - Records: fields laid out sequentially with padding for alignment
//   - Enums: smallest discriminant that holds every case
//   - Lists/Strings: (pointer, length) pair, content elsewhere
//
// These are the rules a C compiler applies to the matching structs, so a
// record described here and the Go struct in capi agree on size.
//
// This package is internal to the transcoder.
package layout
