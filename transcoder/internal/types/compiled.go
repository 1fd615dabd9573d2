package types

import (
	"reflect"
)

// CompiledType is a record or field type with its heap layout resolved
// against a Go type.
type CompiledType struct {
	GoType   reflect.Type
	Fields   []Field
	GoSize   uintptr
	WitAlign uint32
	WitSize  uint32
	Cases    int
	Kind     Kind
}

type Field struct {
	Type      *CompiledType
	Name      string
	WitName   string
	GoOffset  uintptr
	WitOffset uint32
}

func (ct *CompiledType) IsPrimitive() bool {
	return ct.Kind.IsPrimitive()
}

// IsPure returns true if the type holds no strings, so encoding it never
// allocates.
func (ct *CompiledType) IsPure() bool {
	switch ct.Kind {
	case KindString:
		return false
	case KindRecord:
		for _, f := range ct.Fields {
			if !f.Type.IsPure() {
				return false
			}
		}
		return true
	default:
		return true
	}
}
