package bridge

import (
	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/transcoder"
	"github.com/wippyai/cef-bridge/wrapper"
	"go.uber.org/zap"
)

// receiver returns the Go object behind self.
func receiver[T any, S any](c *wrapper.CppToC[T, S], self *S, iface, method string) (T, bool) {
	var zero T
	if self == nil {
		wrapper.NilSelf(iface, method)
		return zero, false
	}
	obj := c.Get(self)
	if wrapper.IsNil(obj) {
		return zero, false
	}
	return obj, true
}

// capability returns the Go object behind self as the capability C.
func capability[C any, T any, S any](c *wrapper.CppToC[T, S], self *S, iface, method string) (C, bool) {
	var zero C
	obj, ok := receiver(c, self, iface, method)
	if !ok {
		return zero, false
	}
	h, ok := any(obj).(C)
	return h, ok
}

func heap() *transcoder.Heap {
	return transcoder.Default()
}

func isTrue(v int32) bool {
	return v != 0
}

func readString(s *capi.String) string {
	return heap().ReadString(s)
}

// takeString reads a string the callee handed over and frees it.
func takeString(s capi.String) string {
	v := heap().ReadString(&s)
	s.Clear()
	return v
}

// newString returns an owned heap string for a result. On failure the
// result is the empty string.
func newString(iface, method, v string) capi.String {
	s, err := heap().NewString(v)
	if err != nil {
		wrapper.Logger().Warn("marshal string",
			zap.String("interface", iface),
			zap.String("method", method),
			zap.Error(err))
		return capi.String{}
	}
	return s
}

// copyString fills a string out-parameter.
func copyString(iface, method string, dst *capi.String, v string) {
	if err := heap().CopyString(dst, v); err != nil {
		wrapper.Logger().Warn("marshal string",
			zap.String("interface", iface),
			zap.String("method", method),
			zap.Error(err))
	}
}

func takeStringList(l capi.List) []string {
	v := heap().ReadStringList(&l)
	l.Clear()
	return v
}

func newStringList(iface, method string, v []string) capi.List {
	l, err := heap().NewStringList(v)
	if err != nil {
		wrapper.Logger().Warn("marshal string list",
			zap.String("interface", iface),
			zap.String("method", method),
			zap.Error(err))
		return capi.List{}
	}
	return l
}
