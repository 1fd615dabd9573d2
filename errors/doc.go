// Package errors provides structured error types for the binding layer.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the interface and method involved, the parameter path
// and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseMarshal, errors.KindAllocation).
//		Interface("render_handler").
//		Method("on_paint").
//		Path("dirty_rects").
//		Detail("heap exhausted").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnexpectedType(errors.PhaseUnwrap, "view", 17)
//	err := errors.OutOfBounds(errors.PhaseMarshal, path, 4096, 1024)
//
// Errors never cross the ABI. Shims translate every failure into the
// method's default result; these values are returned by the Go-facing APIs
// (heap, configuration, stores, context initialization) and used as panic
// payloads for unrecoverable type-tag mismatches.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
