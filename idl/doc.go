// Package idl describes every interface the bridge binds.
//
// A description names each method, the struct field that carries it and
// the translation class of every parameter. Verify checks a capi struct
// against its description, so a struct edited by hand cannot drift from
// what the shims assume: field order, self parameter, string and sequence
// conventions and value struct sizes are all checked.
//
// The value records (rect, size, screen-info, ...) are described as WIT
// types; the same types drive the heap codecs in the bridge.
package idl
