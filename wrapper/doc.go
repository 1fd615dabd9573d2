// Package wrapper implements the identity and lifetime rules shared by every
// bound interface.
//
// Two generic bindings carry an object across the boundary:
//
//	CppToC[T, S]  a Go object T exposed as a capi struct S
//	CToCpp[T, S]  a capi struct S from the other side seen as a Go T
//
// A CppToC struct is registered in the process-wide Table under a handle.
// Wrapping the same object again returns the same struct with one more
// reference; the final Release removes the entry and calls Drop on objects
// that implement Dropper.
//
// A CToCpp adapter embeds *CRef[S], which owns one reference to the struct.
// Adapters are cached weakly so a struct maps to one adapter while any Go
// code holds it; once the adapter is collected its reference is released.
//
// Unwrapping checks the type tag. A tag that belongs to a refinement is
// routed to the converter registered with Derive; any other tag is a
// programming error and NotReached panics rather than returning a wrongly
// typed struct.
//
// # Contract checks
//
// MissingParam and Violation log at DPanic: a development logger turns them
// into assertions, a production logger only records them, and the caller
// carries on with the documented default. Building with the
// cefbridge_release tag compiles the checks and the live counters out.
package wrapper
