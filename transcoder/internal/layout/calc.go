package layout

import (
	"sync"

	"github.com/wippyai/cef-bridge/transcoder/internal/abi"
	"go.bytecodealliance.org/wit"
)

// Info is the heap layout of a type.
type Info struct {
	FieldOffs map[string]uint32
	Size      uint32
	Align     uint32
}

// Calculator computes layouts and caches them per type definition. It is
// safe for concurrent use.
type Calculator struct {
	cache map[*wit.TypeDef]Info
	mu    sync.Mutex
}

func NewCalculator() *Calculator {
	return &Calculator{
		cache: make(map[*wit.TypeDef]Info),
	}
}

func (c *Calculator) Calculate(t wit.Type) Info {
	switch typ := t.(type) {
	case wit.U8, wit.S8, wit.Bool:
		return Info{Size: 1, Align: 1}
	case wit.U16, wit.S16:
		return Info{Size: 2, Align: 2}
	case wit.U32, wit.S32, wit.F32, wit.Char:
		return Info{Size: 4, Align: 4}
	case wit.U64, wit.S64, wit.F64:
		return Info{Size: 8, Align: 8}
	case wit.String:
		return Info{Size: 8, Align: 4} // [ptr: u32, len: u32]
	case *wit.TypeDef:
		return c.calculateTypeDef(typ)
	default:
		return Info{Size: 0, Align: 1}
	}
}

func (c *Calculator) calculateTypeDef(t *wit.TypeDef) Info {
	c.mu.Lock()
	cached, ok := c.cache[t]
	c.mu.Unlock()
	if ok {
		return cached
	}

	var info Info

	switch kind := t.Kind.(type) {
	case *wit.Record:
		info = c.calculateRecord(kind)
	case *wit.Enum:
		size := abi.DiscriminantSize(len(kind.Cases))
		info = Info{Size: size, Align: size}
	case *wit.List:
		info = Info{Size: 8, Align: 4} // [ptr: u32, count: u32]
	case wit.Type:
		info = c.Calculate(kind)
	default:
		info = Info{Size: 0, Align: 1}
	}

	c.mu.Lock()
	c.cache[t] = info
	c.mu.Unlock()
	return info
}

func (c *Calculator) calculateRecord(r *wit.Record) Info {
	if len(r.Fields) == 0 {
		return Info{Size: 0, Align: 1}
	}

	fieldOffs := make(map[string]uint32, len(r.Fields))
	maxAlign := uint32(1)
	offset := uint32(0)

	for _, field := range r.Fields {
		fieldLayout := c.Calculate(field.Type)

		offset = abi.AlignTo(offset, fieldLayout.Align)
		fieldOffs[field.Name] = offset

		if fieldLayout.Align > maxAlign {
			maxAlign = fieldLayout.Align
		}

		offset += fieldLayout.Size
	}

	return Info{
		Size:      abi.AlignTo(offset, maxAlign),
		Align:     maxAlign,
		FieldOffs: fieldOffs,
	}
}
