package transcoder

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/wippyai/cef-bridge/errors"
	"go.bytecodealliance.org/wit"
)

// Compiler resolves WIT types against Go types and caches the result.
type Compiler struct {
	layout *LayoutCalculator
	cache  sync.Map // cacheKey -> *CompiledType
}

type cacheKey struct {
	goType reflect.Type
	def    *wit.TypeDef
}

func NewCompiler() *Compiler {
	return &Compiler{
		layout: NewLayoutCalculator(),
	}
}

var defaultCompiler = NewCompiler()

// Compile resolves witType against goType with the shared compiler.
func Compile(witType wit.Type, goType reflect.Type) (*CompiledType, error) {
	return defaultCompiler.Compile(witType, goType)
}

// MustCompile is Compile for package-level codecs; it panics on mismatch.
func MustCompile(witType wit.Type, goType reflect.Type) *CompiledType {
	ct, err := Compile(witType, goType)
	if err != nil {
		panic(err)
	}
	return ct
}

func (c *Compiler) Compile(witType wit.Type, goType reflect.Type) (*CompiledType, error) {
	if goType == nil {
		return nil, errors.InvalidInput(errors.PhaseMarshal, "Go type cannot be nil")
	}
	if goType.Kind() == reflect.Pointer {
		goType = goType.Elem()
	}

	// Only named definitions are cached; primitives are cheap to resolve.
	def, ok := witType.(*wit.TypeDef)
	if !ok {
		return c.compile(witType, goType, nil)
	}

	key := cacheKey{def: def, goType: goType}
	if cached, ok := c.cache.Load(key); ok {
		return cached.(*CompiledType), nil
	}

	ct, err := c.compile(witType, goType, nil)
	if err != nil {
		return nil, err
	}

	actual, _ := c.cache.LoadOrStore(key, ct)
	return actual.(*CompiledType), nil
}

func (c *Compiler) compile(witType wit.Type, goType reflect.Type, path []string) (*CompiledType, error) {
	layout := c.layout.Calculate(witType)

	switch t := witType.(type) {
	case wit.Bool:
		return c.compilePrimitive(KindBool, goType, layout, path)
	case wit.U8:
		return c.compilePrimitive(KindU8, goType, layout, path)
	case wit.S8:
		return c.compilePrimitive(KindS8, goType, layout, path)
	case wit.U16:
		return c.compilePrimitive(KindU16, goType, layout, path)
	case wit.S16:
		return c.compilePrimitive(KindS16, goType, layout, path)
	case wit.U32:
		return c.compilePrimitive(KindU32, goType, layout, path)
	case wit.S32:
		return c.compilePrimitive(KindS32, goType, layout, path)
	case wit.U64:
		return c.compilePrimitive(KindU64, goType, layout, path)
	case wit.S64:
		return c.compilePrimitive(KindS64, goType, layout, path)
	case wit.F32:
		return c.compilePrimitive(KindF32, goType, layout, path)
	case wit.F64:
		return c.compilePrimitive(KindF64, goType, layout, path)
	case wit.String:
		if goType.Kind() != reflect.String {
			return nil, mismatch(path, goType, "string")
		}
		return &CompiledType{GoType: goType, GoSize: goType.Size(), WitSize: layout.Size, WitAlign: layout.Align, Kind: KindString}, nil
	case *wit.TypeDef:
		return c.compileTypeDef(t, goType, layout, path)
	default:
		return nil, errors.New(errors.PhaseMarshal, errors.KindInvalidInput).
			Path(path...).
			Detail("unsupported WIT type: %T", witType).
			Build()
	}
}

func (c *Compiler) compileTypeDef(t *wit.TypeDef, goType reflect.Type, layout LayoutInfo, path []string) (*CompiledType, error) {
	switch kind := t.Kind.(type) {
	case *wit.Record:
		return c.compileRecord(kind, goType, layout, path)
	case *wit.Enum:
		switch goType.Kind() {
		case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Int8, reflect.Int16, reflect.Int32:
		default:
			return nil, mismatch(path, goType, "integer")
		}
		return &CompiledType{
			GoType:   goType,
			GoSize:   goType.Size(),
			WitSize:  layout.Size,
			WitAlign: layout.Align,
			Cases:    len(kind.Cases),
			Kind:     KindEnum,
		}, nil
	case wit.Type:
		return c.compile(kind, goType, path)
	default:
		return nil, errors.New(errors.PhaseMarshal, errors.KindInvalidInput).
			Path(path...).
			Detail("unsupported type definition: %T", t.Kind).
			Build()
	}
}

func (c *Compiler) compilePrimitive(kind TypeKind, goType reflect.Type, layout LayoutInfo, path []string) (*CompiledType, error) {
	want := map[TypeKind]reflect.Kind{
		KindBool: reflect.Bool,
		KindU8:   reflect.Uint8,
		KindS8:   reflect.Int8,
		KindU16:  reflect.Uint16,
		KindS16:  reflect.Int16,
		KindU32:  reflect.Uint32,
		KindS32:  reflect.Int32,
		KindU64:  reflect.Uint64,
		KindS64:  reflect.Int64,
		KindF32:  reflect.Float32,
		KindF64:  reflect.Float64,
	}[kind]
	if goType.Kind() != want {
		return nil, mismatch(path, goType, want.String())
	}

	return &CompiledType{
		GoType:   goType,
		GoSize:   goType.Size(),
		WitSize:  layout.Size,
		WitAlign: layout.Align,
		Kind:     kind,
	}, nil
}

func (c *Compiler) compileRecord(r *wit.Record, goType reflect.Type, layout LayoutInfo, path []string) (*CompiledType, error) {
	if goType.Kind() != reflect.Struct {
		return nil, mismatch(path, goType, "struct")
	}

	fields := make([]CompiledField, 0, len(r.Fields))
	for _, witField := range r.Fields {
		goField, found := findGoField(goType, witField.Name)
		if !found {
			return nil, errors.New(errors.PhaseMarshal, errors.KindNotFound).
				Path(append(append([]string{}, path...), witField.Name)...).
				Detail("%s has no field for %q", goType, witField.Name).
				Build()
		}

		fieldPath := append(append([]string{}, path...), witField.Name)
		fieldType, err := c.compile(witField.Type, goField.Type, fieldPath)
		if err != nil {
			return nil, err
		}

		fields = append(fields, CompiledField{
			Name:      goField.Name,
			WitName:   witField.Name,
			GoOffset:  goField.Offset,
			WitOffset: layout.FieldOffs[witField.Name],
			Type:      fieldType,
		})
	}

	return &CompiledType{
		GoType:   goType,
		GoSize:   goType.Size(),
		WitSize:  layout.Size,
		WitAlign: layout.Align,
		Fields:   fields,
		Kind:     KindRecord,
	}, nil
}

// findGoField matches by: 1) wit:"name" tag, 2) case-insensitive, 3) kebab-to-camel.
func findGoField(goType reflect.Type, witName string) (reflect.StructField, bool) {
	for i := 0; i < goType.NumField(); i++ {
		field := goType.Field(i)
		if !field.IsExported() {
			continue
		}

		if tag := field.Tag.Get("wit"); tag != "" {
			if tag == "-" {
				continue
			}
			if tag == witName {
				return field, true
			}
		}

		if strings.EqualFold(field.Name, witName) {
			return field, true
		}

		if toKebabCase(field.Name) == witName {
			return field, true
		}
	}
	return reflect.StructField{}, false
}

func toKebabCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func mismatch(path []string, goType reflect.Type, expected string) *errors.Error {
	return errors.New(errors.PhaseMarshal, errors.KindInvalidInput).
		Path(path...).
		Value(goType.String()).
		Detail("cannot use %s as %s", goType, expected).
		Build()
}
