package wrapper

import (
	"reflect"

	"github.com/wippyai/cef-bridge/errors"
	"go.uber.org/zap"
)

// Violation reports a broken calling contract. The caller continues with
// its documented default.
func Violation(err *errors.Error) {
	if !debugChecks {
		return
	}
	Logger().DPanic("contract violation",
		zap.String("interface", err.Interface),
		zap.String("method", err.Method),
		zap.Error(err))
}

// MissingParam reports a required parameter that arrived null.
func MissingParam(iface, method, param string) {
	Violation(errors.MissingParam(iface, method, param))
}

// NilSelf reports a call made on a null struct.
func NilSelf(iface, method string) {
	Violation(errors.NilHandle(iface, method))
}

// NotReached is called when a type tag matches no registered refinement.
// It never returns.
func NotReached(iface string, tag Type) {
	err := errors.UnexpectedType(errors.PhaseUnwrap, iface, tag)
	Logger().Error("not reached", zap.String("interface", iface), zap.Stringer("type", tag))
	panic(err)
}

// Recover stops a panic at a shim. Use it directly in a defer:
//
//	defer wrapper.Recover("LoadHandler", "OnLoadStart")
func Recover(iface, method string) {
	if r := recover(); r != nil {
		logPanic(iface, method, r)
	}
}

func logPanic(iface, method string, r any) {
	Logger().Error("panic in bound call",
		zap.String("interface", iface),
		zap.String("method", method),
		zap.Error(errors.Panic(iface, method, r)))
}

// IsNil reports whether v is nil or a typed nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
