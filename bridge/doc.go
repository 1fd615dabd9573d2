// Package bridge holds the call-site shims for every bound interface.
//
// Each interface has two bindings:
//
//	XCppToC  exposes a Go implementation of cef.X as a *capi.X
//	XCToCpp  turns a *capi.X from the other side into a cef.X
//
// The CppToC builders fill the struct's function fields with shims. A shim
// finds its Go receiver, adopts or releases the references that came with
// its object parameters, reads strings and sequences out of the boundary
// heap, forwards the call and marshals the result back. The CToCpp
// adapters do the reverse: they marshal Go arguments through a
// transcoder.Scratch, call the function field and translate the result.
//
// Handlers are partial. A Go handler implements only the capability
// interfaces it cares about (cef.LoadStartHandler, ...) and the builder
// leaves the other fields nil; an adapter calling a nil field returns the
// default result.
//
// Neither direction lets a panic cross: every shim and adapter method
// defers wrapper.Recover or CRef.Exit and returns its default instead.
package bridge
