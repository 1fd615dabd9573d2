package types

import (
	"testing"
)

func TestCompiledTypeIsPrimitive(t *testing.T) {
	primitiveType := &CompiledType{Kind: KindU32}
	if !primitiveType.IsPrimitive() {
		t.Error("u32 should be primitive")
	}

	stringType := &CompiledType{Kind: KindString}
	if stringType.IsPrimitive() {
		t.Error("string should not be primitive")
	}
}

func TestCompiledTypeIsPure(t *testing.T) {
	t.Run("primitive_is_pure", func(t *testing.T) {
		ct := &CompiledType{Kind: KindU32}
		if !ct.IsPure() {
			t.Error("primitive should be pure")
		}
	})

	t.Run("string_not_pure", func(t *testing.T) {
		ct := &CompiledType{Kind: KindString}
		if ct.IsPure() {
			t.Error("string should not be pure")
		}
	})

	t.Run("record_with_string", func(t *testing.T) {
		ct := &CompiledType{Kind: KindRecord, Fields: []Field{
			{Type: &CompiledType{Kind: KindS32}},
			{Type: &CompiledType{Kind: KindString}},
		}}
		if ct.IsPure() {
			t.Error("record holding a string should not be pure")
		}
	})

	t.Run("nested_pure_record", func(t *testing.T) {
		inner := &CompiledType{Kind: KindRecord, Fields: []Field{{Type: &CompiledType{Kind: KindS32}}}}
		ct := &CompiledType{Kind: KindRecord, Fields: []Field{{Type: inner}, {Type: &CompiledType{Kind: KindBool}}}}
		if !ct.IsPure() {
			t.Error("nested primitive record should be pure")
		}
	})
}
