package idl

import (
	"fmt"
	"reflect"

	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/errors"
	"go.bytecodealliance.org/wit"
)

var (
	baseType     = reflect.TypeOf(capi.Base{})
	stringType   = reflect.TypeOf(capi.String{})
	listType     = reflect.TypeOf(capi.List{})
	int32Type    = reflect.TypeOf(int32(0))
	uint32Type   = reflect.TypeOf(uint32(0))
	stringPtr    = reflect.PointerTo(stringType)
	int32PtrType = reflect.PointerTo(int32Type)
)

// Verify checks that structType, a capi struct, matches desc: the first
// field is capi.Base or the parent struct, and every other field is a
// function for the described method at the same position, taking self
// first and parameters in the shape their class requires.
func Verify(desc Interface, structType reflect.Type) error {
	fail := func(format string, args ...any) error {
		return errors.New(errors.PhaseRegister, errors.KindInvalidInput).
			Interface(desc.Name).
			Detail(format, args...).
			Build()
	}

	if structType.Kind() != reflect.Struct {
		return fail("%s is not a struct", structType)
	}
	if structType.Name() != desc.Name {
		return fail("struct %s does not carry interface %s", structType.Name(), desc.Name)
	}
	if structType.NumField() == 0 {
		return fail("struct has no fields")
	}

	head := structType.Field(0)
	if desc.Parent == "" {
		if head.Type != baseType {
			return fail("first field is %s, want capi.Base", head.Type)
		}
	} else if head.Type.Name() != desc.Parent || head.Type.Kind() != reflect.Struct {
		return fail("first field is %s, want parent %s", head.Type, desc.Parent)
	}

	if got, want := structType.NumField()-1, len(desc.Methods); got != want {
		return fail("struct has %d function fields, description has %d methods", got, want)
	}

	self := reflect.PointerTo(structType)
	for i, method := range desc.Methods {
		f := structType.Field(i + 1)
		if f.Name != method.Field {
			return fail("field %d is %s, want %s", i+1, f.Name, method.Field)
		}
		if err := verifyMethod(desc, method, f.Type, self); err != nil {
			return fail("%s: %v", method.Field, err)
		}
	}
	return nil
}

func verifyMethod(desc Interface, method Method, fn reflect.Type, self reflect.Type) error {
	if fn.Kind() != reflect.Func {
		return fmt.Errorf("field is %s, not a function", fn)
	}
	if fn.NumIn() == 0 || fn.In(0) != self {
		return fmt.Errorf("first parameter must be self %s", self)
	}

	in := 1
	for _, param := range method.Params {
		if param.Class == SimpleVec {
			if in+1 >= fn.NumIn() || fn.In(in) != uint32Type || fn.In(in+1) != uint32Type {
				return fmt.Errorf("%s: want (count, ptr uint32)", param.Name)
			}
			in += 2
			continue
		}
		if in >= fn.NumIn() {
			return fmt.Errorf("missing parameter %s", param.Name)
		}
		if err := verifyParam(desc, param, fn.In(in)); err != nil {
			return fmt.Errorf("%s: %w", param.Name, err)
		}
		in++
	}
	if in != fn.NumIn() {
		return fmt.Errorf("function takes %d parameters, description has %d", fn.NumIn(), in)
	}

	switch {
	case method.Result == nil && fn.NumOut() != 0:
		return fmt.Errorf("described as void, returns %s", fn.Out(0))
	case method.Result != nil && fn.NumOut() != 1:
		return fmt.Errorf("want one result, got %d", fn.NumOut())
	case method.Result != nil:
		if err := verifyResult(desc, *method.Result, fn.Out(0)); err != nil {
			return fmt.Errorf("result: %w", err)
		}
	}
	return nil
}

func verifyParam(desc Interface, param Param, t reflect.Type) error {
	switch param.Class {
	case Simple:
		return verifySimple(param.Type, t)
	case Bool, Enum:
		return expect(t, int32Type)
	case StringByRef, StringOut:
		return expect(t, stringPtr)
	case RefPtrSame, RefPtrDiff:
		return verifyRef(desc, param, t)
	case RefPtrOut:
		if t.Kind() != reflect.Pointer {
			return fmt.Errorf("want **%s, got %s", param.Ref, t)
		}
		return verifyRefTarget(param.Ref, t.Elem())
	case BoolByRef:
		return expect(t, int32PtrType)
	case SimpleByRef:
		if t.Kind() != reflect.Pointer {
			return fmt.Errorf("want pointer, got %s", t)
		}
		return verifySimple(param.Type, t.Elem())
	case Struct:
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		return verifyStruct(param.Type, t)
	default:
		return fmt.Errorf("class %s is not valid for a parameter", param.Class)
	}
}

func verifyResult(desc Interface, result Param, t reflect.Type) error {
	switch result.Class {
	case Simple:
		return verifySimple(result.Type, t)
	case Bool, Enum:
		return expect(t, int32Type)
	case StringUserFree:
		return expect(t, stringType)
	case StringVec, SimpleVec:
		return expect(t, listType)
	case RefPtrSame, RefPtrDiff:
		return verifyRef(desc, result, t)
	case Struct:
		return verifyStruct(result.Type, t)
	default:
		return fmt.Errorf("class %s is not valid for a result", result.Class)
	}
}

func verifyRef(desc Interface, param Param, t reflect.Type) error {
	target, ok := Lookup(param.Ref)
	if !ok {
		return fmt.Errorf("unknown interface %s", param.Ref)
	}
	same := target.Side == desc.Side
	if same != (param.Class == RefPtrSame) {
		return fmt.Errorf("%s is implemented on the %s side; %s is wrong", param.Ref, target.Side, param.Class)
	}
	return verifyRefTarget(param.Ref, t)
}

func verifyRefTarget(name string, t reflect.Type) error {
	if t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct || t.Elem().Name() != name {
		return fmt.Errorf("want *%s, got %s", name, t)
	}
	return nil
}

func verifySimple(w wit.Type, t reflect.Type) error {
	want, ok := map[reflect.Type]reflect.Kind{
		reflect.TypeOf(wit.S8{}):  reflect.Int8,
		reflect.TypeOf(wit.U8{}):  reflect.Uint8,
		reflect.TypeOf(wit.S16{}): reflect.Int16,
		reflect.TypeOf(wit.U16{}): reflect.Uint16,
		reflect.TypeOf(wit.S32{}): reflect.Int32,
		reflect.TypeOf(wit.U32{}): reflect.Uint32,
		reflect.TypeOf(wit.S64{}): reflect.Int64,
		reflect.TypeOf(wit.U64{}): reflect.Uint64,
		reflect.TypeOf(wit.F32{}): reflect.Float32,
		reflect.TypeOf(wit.F64{}): reflect.Float64,
	}[reflect.TypeOf(w)]
	if !ok {
		return fmt.Errorf("simple value needs a primitive type, have %T", w)
	}
	if t.Kind() != want {
		return fmt.Errorf("want %s, got %s", want, t)
	}
	return nil
}

func verifyStruct(w wit.Type, t reflect.Type) error {
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("want a value struct, got %s", t)
	}
	if w == nil {
		return fmt.Errorf("struct %s has no layout", t)
	}
	if size := Layout(w).Size; uintptr(size) != t.Size() {
		return fmt.Errorf("%s is %d bytes, layout says %d", t, t.Size(), size)
	}
	return nil
}

func expect(got, want reflect.Type) error {
	if got != want {
		return fmt.Errorf("want %s, got %s", want, got)
	}
	return nil
}
