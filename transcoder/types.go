package transcoder

import (
	"github.com/wippyai/cef-bridge/transcoder/internal/layout"
	"github.com/wippyai/cef-bridge/transcoder/internal/types"
	"go.bytecodealliance.org/wit"
)

type TypeKind = types.Kind

const (
	KindBool   = types.KindBool
	KindU8     = types.KindU8
	KindS8     = types.KindS8
	KindU16    = types.KindU16
	KindS16    = types.KindS16
	KindU32    = types.KindU32
	KindS32    = types.KindS32
	KindU64    = types.KindU64
	KindS64    = types.KindS64
	KindF32    = types.KindF32
	KindF64    = types.KindF64
	KindString = types.KindString
	KindRecord = types.KindRecord
	KindEnum   = types.KindEnum
)

type CompiledType = types.CompiledType
type CompiledField = types.Field

type LayoutInfo = layout.Info

// LayoutCalculator exposes the internal layout rules to other packages.
type LayoutCalculator struct {
	calc *layout.Calculator
}

func NewLayoutCalculator() *LayoutCalculator {
	return &LayoutCalculator{
		calc: layout.NewCalculator(),
	}
}

func (lc *LayoutCalculator) Calculate(t wit.Type) LayoutInfo {
	return lc.calc.Calculate(t)
}
