package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseWrap     Phase = "wrap"     // managed object -> boundary struct
	PhaseUnwrap   Phase = "unwrap"   // boundary struct -> managed object
	PhaseMarshal  Phase = "marshal"  // values into the boundary heap
	PhaseDispatch Phase = "dispatch" // forwarding a call through a shim
	PhaseRegister Phase = "register" // binding and scheme registration
	PhaseConfig   Phase = "config"   // configuration loading
	PhaseStorage  Phase = "storage"  // persisted state
	PhaseEngine   Phase = "engine"   // heap engine lifecycle
	PhaseContext  Phase = "context"  // process context lifecycle
)

// Kind categorizes the error
type Kind string

const (
	KindNilHandle          Kind = "nil_handle"
	KindMissingParam       Kind = "missing_param"
	KindUnexpectedType     Kind = "unexpected_type"
	KindUnknownHandle      Kind = "unknown_handle"
	KindAllocation         Kind = "allocation"
	KindOutOfBounds        Kind = "out_of_bounds"
	KindInvalidUTF8        Kind = "invalid_utf8"
	KindAlreadyInitialized Kind = "already_initialized"
	KindNotInitialized     Kind = "not_initialized"
	KindInvalidInput       Kind = "invalid_input"
	KindNotFound           Kind = "not_found"
	KindClosed             Kind = "closed"
	KindPanic              Kind = "panic"
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	Interface string
	Method    string
	Detail    string
	Path      []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Interface != "" {
		b.WriteString(" in ")
		b.WriteString(e.Interface)
		if e.Method != "" {
			b.WriteByte('.')
			b.WriteString(e.Method)
		}
	}

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether err or an error it wraps is an *Error of kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Kind == kind
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Interface sets the bound interface name
func (b *Builder) Interface(name string) *Builder {
	b.err.Interface = name
	return b
}

// Method sets the method name
func (b *Builder) Method(name string) *Builder {
	b.err.Method = name
	return b
}

// Path sets the parameter path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MissingParam creates an error for a required parameter that was null
func MissingParam(iface, method, param string) *Error {
	return &Error{
		Phase:     PhaseDispatch,
		Kind:      KindMissingParam,
		Interface: iface,
		Method:    method,
		Path:      []string{param},
		Detail:    "required parameter is null",
	}
}

// NilHandle creates an error for a call made on a null self handle
func NilHandle(iface, method string) *Error {
	return &Error{
		Phase:     PhaseDispatch,
		Kind:      KindNilHandle,
		Interface: iface,
		Method:    method,
		Detail:    "self is null",
	}
}

// UnexpectedType creates the error raised when a type tag matches no known refinement
func UnexpectedType(phase Phase, iface string, tag any) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindUnexpectedType,
		Interface: iface,
		Detail:    fmt.Sprintf("unexpected class type: %v", tag),
		Value:     tag,
	}
}

// UnknownHandle creates an error for a struct that did not originate from the bridge
func UnknownHandle(phase Phase, iface string, handle uint32) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindUnknownHandle,
		Interface: iface,
		Detail:    fmt.Sprintf("handle %d is not registered", handle),
		Value:     handle,
	}
}

// Allocation creates a heap allocation error
func Allocation(size uint32, cause error) *Error {
	return &Error{
		Phase:  PhaseMarshal,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("cannot allocate %d bytes", size),
		Value:  size,
		Cause:  cause,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, offset, size uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("offset %d out of bounds (size %d)", offset, size),
		Value:  offset,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, path []string, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Path:   path,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %q", preview),
		Value:  data,
	}
}

// Panic converts a recovered panic value into an error
func Panic(iface, method string, value any) *Error {
	e := &Error{
		Phase:     PhaseDispatch,
		Kind:      KindPanic,
		Interface: iface,
		Method:    method,
		Value:     value,
	}
	if err, ok := value.(error); ok {
		e.Cause = err
	} else {
		e.Detail = fmt.Sprint(value)
	}
	return e
}

// AlreadyInitialized creates an error for a second initialization
func AlreadyInitialized(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAlreadyInitialized,
		Detail: fmt.Sprintf("%s already initialized", what),
	}
}

// NotInitialized creates a not-initialized error
func NotInitialized(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", what),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Closed creates an error for use after close
func Closed(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s is closed", what),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
