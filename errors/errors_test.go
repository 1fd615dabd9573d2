package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:     PhaseMarshal,
				Kind:      KindAllocation,
				Interface: "render_handler",
				Method:    "on_paint",
				Path:      []string{"dirty_rects", "3"},
				Detail:    "heap exhausted",
			},
			contains: []string{"[marshal]", "allocation", "render_handler.on_paint", "dirty_rects.3", "heap exhausted"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseUnwrap,
				Kind:  KindUnknownHandle,
			},
			contains: []string{"[unwrap]", "unknown_handle"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseEngine,
				Kind:   KindAllocation,
				Detail: "memory full",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[engine]", "allocation", "memory full", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseStorage,
		Kind:  KindInvalidInput,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseUnwrap,
		Kind:  KindUnexpectedType,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseUnwrap, Kind: KindUnexpectedType}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseWrap, Kind: KindUnexpectedType}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseUnwrap, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseUnwrap, Kind: KindUnexpectedType}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDispatch, KindMissingParam).
		Interface("load_handler").
		Method("on_load_end").
		Path("frame").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "frame", "null").
		Build()

	if err.Phase != PhaseDispatch {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDispatch)
	}
	if err.Kind != KindMissingParam {
		t.Errorf("Kind = %v, want %v", err.Kind, KindMissingParam)
	}
	if err.Interface != "load_handler" || err.Method != "on_load_end" {
		t.Errorf("Interface.Method = %s.%s", err.Interface, err.Method)
	}
	if len(err.Path) != 1 || err.Path[0] != "frame" {
		t.Errorf("Path = %v, want [frame]", err.Path)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected frame, got null" {
		t.Errorf("Detail = %v", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("MissingParam", func(t *testing.T) {
		err := MissingParam("drag_handler", "on_drag_enter", "drag_data")
		if err.Kind != KindMissingParam || err.Phase != PhaseDispatch {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
		if !strings.Contains(err.Error(), "drag_data") {
			t.Errorf("message %q should name the parameter", err.Error())
		}
	})

	t.Run("NilHandle", func(t *testing.T) {
		err := NilHandle("browser", "is_loading")
		if err.Kind != KindNilHandle {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNilHandle)
		}
	})

	t.Run("UnexpectedType", func(t *testing.T) {
		err := UnexpectedType(PhaseUnwrap, "view_delegate", 99)
		if err.Kind != KindUnexpectedType {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnexpectedType)
		}
		if !strings.Contains(err.Detail, "99") {
			t.Errorf("Detail = %v, should contain tag", err.Detail)
		}
	})

	t.Run("UnknownHandle", func(t *testing.T) {
		err := UnknownHandle(PhaseUnwrap, "frame", 7)
		if err.Value != uint32(7) {
			t.Errorf("Value = %v, want 7", err.Value)
		}
	})

	t.Run("Allocation", func(t *testing.T) {
		err := Allocation(1024, errors.New("no space"))
		if err.Kind != KindAllocation {
			t.Errorf("Kind = %v, want %v", err.Kind, KindAllocation)
		}
		if !strings.Contains(err.Detail, "1024") {
			t.Errorf("Detail = %v, should contain size", err.Detail)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseMarshal, []string{"list"}, 10, 5)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if err.Value != uint32(10) {
			t.Errorf("Value = %v, want 10", err.Value)
		}
	})

	t.Run("InvalidUTF8", func(t *testing.T) {
		err := InvalidUTF8(PhaseMarshal, []string{"str"}, []byte{0xff, 0xfe})
		if err.Kind != KindInvalidUTF8 {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidUTF8)
		}
	})

	t.Run("Panic", func(t *testing.T) {
		cause := errors.New("boom")
		err := Panic("client", "get_load_handler", cause)
		if !errors.Is(err, cause) {
			t.Error("panic error should wrap an error payload")
		}
		err = Panic("client", "get_load_handler", "text")
		if err.Detail != "text" {
			t.Errorf("Detail = %q, want text", err.Detail)
		}
	})

	t.Run("AlreadyInitialized", func(t *testing.T) {
		err := AlreadyInitialized(PhaseContext, "browser context")
		if !errors.Is(err, &Error{Phase: PhaseContext, Kind: KindAlreadyInitialized}) {
			t.Errorf("unexpected %v", err)
		}
	})
}

func TestIsKind(t *testing.T) {
	nf := NotFound(PhaseConfig, "crash config", "/tmp/x")
	if !IsKind(nf, KindNotFound) {
		t.Error("IsKind should match the error's own kind")
	}
	if IsKind(nf, KindClosed) {
		t.Error("IsKind should not match another kind")
	}
	if !IsKind(fmt.Errorf("load: %w", nf), KindNotFound) {
		t.Error("IsKind should see through wrapping")
	}
	if IsKind(errors.New("plain"), KindNotFound) {
		t.Error("IsKind should not match a plain error")
	}
}
