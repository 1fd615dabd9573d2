// Package types defines the compiled type structures used by the heap codecs.
//
// CompiledType holds precomputed layout information (size, alignment,
// offsets) so encoding a sequence of records does no layout work per
// element.
//
// This package is internal to the transcoder.
package types
