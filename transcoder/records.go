package transcoder

import (
	"math"
	"unicode/utf8"
	"unsafe"

	"github.com/wippyai/cef-bridge/errors"
	"github.com/wippyai/cef-bridge/transcoder/internal/abi"
)

func encodeField(addr uint32, ct *CompiledType, ptr unsafe.Pointer, mem Memory, alloc Allocator, allocList *AllocationList, path []string) error {
	switch ct.Kind {
	case KindBool:
		var b uint8
		if *(*bool)(ptr) {
			b = 1
		}
		return mem.WriteU8(addr, b)

	case KindU8:
		return mem.WriteU8(addr, *(*uint8)(ptr))

	case KindS8:
		return mem.WriteU8(addr, uint8(*(*int8)(ptr)))

	case KindU16:
		return mem.WriteU16(addr, *(*uint16)(ptr))

	case KindS16:
		return mem.WriteU16(addr, uint16(*(*int16)(ptr)))

	case KindU32:
		return mem.WriteU32(addr, *(*uint32)(ptr))

	case KindS32:
		return mem.WriteU32(addr, uint32(*(*int32)(ptr)))

	case KindU64:
		return mem.WriteU64(addr, *(*uint64)(ptr))

	case KindS64:
		return mem.WriteU64(addr, uint64(*(*int64)(ptr)))

	case KindF32:
		bits := math.Float32bits(*(*float32)(ptr))
		return mem.WriteU32(addr, abi.CanonicalizeF32(bits))

	case KindF64:
		bits := math.Float64bits(*(*float64)(ptr))
		return mem.WriteU64(addr, abi.CanonicalizeF64(bits))

	case KindString:
		return encodeString(addr, *(*string)(ptr), mem, alloc, allocList, path)

	case KindRecord:
		for _, field := range ct.Fields {
			fieldPtr := unsafe.Add(ptr, field.GoOffset)
			fieldPath := append(path, field.WitName)
			if err := encodeField(addr+field.WitOffset, field.Type, fieldPtr, mem, alloc, allocList, fieldPath); err != nil {
				return err
			}
		}
		return nil

	case KindEnum:
		disc := readDiscriminant(ct, ptr)
		if disc >= uint32(ct.Cases) {
			return errors.New(errors.PhaseMarshal, errors.KindInvalidInput).
				Path(path...).
				Value(disc).
				Detail("enum case %d out of range (%d cases)", disc, ct.Cases).
				Build()
		}
		switch abi.DiscriminantSize(ct.Cases) {
		case 1:
			return mem.WriteU8(addr, uint8(disc))
		case 2:
			return mem.WriteU16(addr, uint16(disc))
		default:
			return mem.WriteU32(addr, disc)
		}

	default:
		return errors.New(errors.PhaseMarshal, errors.KindInvalidInput).
			Path(path...).
			Detail("cannot encode %s", ct.Kind).
			Build()
	}
}

// encodeString writes a (ptr, len) pair at addr and the bytes into a fresh
// allocation. The empty string is (0, 0).
func encodeString(addr uint32, s string, mem Memory, alloc Allocator, allocList *AllocationList, path []string) error {
	if !utf8.ValidString(s) {
		return errors.InvalidUTF8(errors.PhaseMarshal, path, []byte(s))
	}

	dataLen := uint32(len(s))
	if len(s) > abi.MaxStringSize {
		return errors.New(errors.PhaseMarshal, errors.KindAllocation).
			Path(path...).
			Detail("string size %d exceeds maximum %d", len(s), abi.MaxStringSize).
			Build()
	}

	if dataLen == 0 {
		if err := mem.WriteU32(addr, 0); err != nil {
			return err
		}
		return mem.WriteU32(addr+4, 0)
	}

	dataAddr, err := alloc.Alloc(dataLen, 1)
	if err != nil {
		return errors.Allocation(dataLen, err)
	}
	if allocList != nil {
		allocList.Add(dataAddr, dataLen, 1)
	}

	data := unsafe.Slice(unsafe.StringData(s), len(s))
	if err := mem.Write(dataAddr, data); err != nil {
		return err
	}

	if err := mem.WriteU32(addr, dataAddr); err != nil {
		return err
	}
	return mem.WriteU32(addr+4, dataLen)
}

func decodeField(addr uint32, ct *CompiledType, ptr unsafe.Pointer, mem Memory, path []string) error {
	switch ct.Kind {
	case KindBool:
		v, err := mem.ReadU8(addr)
		if err != nil {
			return err
		}
		*(*bool)(ptr) = v != 0

	case KindU8:
		v, err := mem.ReadU8(addr)
		if err != nil {
			return err
		}
		*(*uint8)(ptr) = v

	case KindS8:
		v, err := mem.ReadU8(addr)
		if err != nil {
			return err
		}
		*(*int8)(ptr) = int8(v)

	case KindU16:
		v, err := mem.ReadU16(addr)
		if err != nil {
			return err
		}
		*(*uint16)(ptr) = v

	case KindS16:
		v, err := mem.ReadU16(addr)
		if err != nil {
			return err
		}
		*(*int16)(ptr) = int16(v)

	case KindU32:
		v, err := mem.ReadU32(addr)
		if err != nil {
			return err
		}
		*(*uint32)(ptr) = v

	case KindS32:
		v, err := mem.ReadU32(addr)
		if err != nil {
			return err
		}
		*(*int32)(ptr) = int32(v)

	case KindU64:
		v, err := mem.ReadU64(addr)
		if err != nil {
			return err
		}
		*(*uint64)(ptr) = v

	case KindS64:
		v, err := mem.ReadU64(addr)
		if err != nil {
			return err
		}
		*(*int64)(ptr) = int64(v)

	case KindF32:
		v, err := mem.ReadU32(addr)
		if err != nil {
			return err
		}
		*(*float32)(ptr) = math.Float32frombits(abi.CanonicalizeF32(v))

	case KindF64:
		v, err := mem.ReadU64(addr)
		if err != nil {
			return err
		}
		*(*float64)(ptr) = math.Float64frombits(abi.CanonicalizeF64(v))

	case KindString:
		s, err := decodeString(addr, mem, path)
		if err != nil {
			return err
		}
		*(*string)(ptr) = s

	case KindRecord:
		for _, field := range ct.Fields {
			fieldPtr := unsafe.Add(ptr, field.GoOffset)
			if err := decodeField(addr+field.WitOffset, field.Type, fieldPtr, mem, append(path, field.WitName)); err != nil {
				return err
			}
		}

	case KindEnum:
		var disc uint32
		switch abi.DiscriminantSize(ct.Cases) {
		case 1:
			v, err := mem.ReadU8(addr)
			if err != nil {
				return err
			}
			disc = uint32(v)
		case 2:
			v, err := mem.ReadU16(addr)
			if err != nil {
				return err
			}
			disc = uint32(v)
		default:
			v, err := mem.ReadU32(addr)
			if err != nil {
				return err
			}
			disc = v
		}
		if disc >= uint32(ct.Cases) {
			return errors.New(errors.PhaseUnwrap, errors.KindInvalidInput).
				Path(path...).
				Value(disc).
				Detail("enum case %d out of range (%d cases)", disc, ct.Cases).
				Build()
		}
		writeDiscriminant(ct, ptr, disc)

	default:
		return errors.New(errors.PhaseUnwrap, errors.KindInvalidInput).
			Path(path...).
			Detail("cannot decode %s", ct.Kind).
			Build()
	}
	return nil
}

func decodeString(addr uint32, mem Memory, path []string) (string, error) {
	dataAddr, err := mem.ReadU32(addr)
	if err != nil {
		return "", err
	}
	dataLen, err := mem.ReadU32(addr + 4)
	if err != nil {
		return "", err
	}
	if dataLen == 0 {
		return "", nil
	}
	data, err := mem.Read(dataAddr, dataLen)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.InvalidUTF8(errors.PhaseUnwrap, path, data)
	}
	return string(data), nil
}

func readDiscriminant(ct *CompiledType, ptr unsafe.Pointer) uint32 {
	switch ct.GoSize {
	case 1:
		return uint32(*(*uint8)(ptr))
	case 2:
		return uint32(*(*uint16)(ptr))
	default:
		return *(*uint32)(ptr)
	}
}

func writeDiscriminant(ct *CompiledType, ptr unsafe.Pointer, disc uint32) {
	switch ct.GoSize {
	case 1:
		*(*uint8)(ptr) = uint8(disc)
	case 2:
		*(*uint16)(ptr) = uint16(disc)
	default:
		*(*uint32)(ptr) = disc
	}
}
