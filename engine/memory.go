package engine

import (
	"github.com/tetratelabs/wazero/api"
	"github.com/wippyai/cef-bridge/errors"
	"go.uber.org/zap"
)

// PageSize is the WebAssembly page size.
const PageSize = 65536

// Memory adapts a wazero api.Memory to cefbridge.Memory. Reads return
// copies: the underlying buffer is replaced when the memory grows.
type Memory struct {
	mem api.Memory
}

// WrapMemory wraps mem. A nil mem yields nil.
func WrapMemory(mem api.Memory) *Memory {
	if mem == nil {
		return nil
	}
	return &Memory{mem: mem}
}

func (m *Memory) oob(offset, length uint32) error {
	return errors.OutOfBounds(errors.PhaseEngine, nil, offset, m.mem.Size())
}

func (m *Memory) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, m.oob(offset, length)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *Memory) Write(offset uint32, data []byte) error {
	if !m.mem.Write(offset, data) {
		return m.oob(offset, uint32(len(data)))
	}
	return nil
}

func (m *Memory) ReadU8(offset uint32) (uint8, error) {
	v, ok := m.mem.ReadByte(offset)
	if !ok {
		return 0, m.oob(offset, 1)
	}
	return v, nil
}

func (m *Memory) ReadU16(offset uint32) (uint16, error) {
	v, ok := m.mem.ReadUint16Le(offset)
	if !ok {
		return 0, m.oob(offset, 2)
	}
	return v, nil
}

func (m *Memory) ReadU32(offset uint32) (uint32, error) {
	v, ok := m.mem.ReadUint32Le(offset)
	if !ok {
		return 0, m.oob(offset, 4)
	}
	return v, nil
}

func (m *Memory) ReadU64(offset uint32) (uint64, error) {
	v, ok := m.mem.ReadUint64Le(offset)
	if !ok {
		return 0, m.oob(offset, 8)
	}
	return v, nil
}

func (m *Memory) WriteU8(offset uint32, value uint8) error {
	if !m.mem.WriteByte(offset, value) {
		return m.oob(offset, 1)
	}
	return nil
}

func (m *Memory) WriteU16(offset uint32, value uint16) error {
	if !m.mem.WriteUint16Le(offset, value) {
		return m.oob(offset, 2)
	}
	return nil
}

func (m *Memory) WriteU32(offset uint32, value uint32) error {
	if !m.mem.WriteUint32Le(offset, value) {
		return m.oob(offset, 4)
	}
	return nil
}

func (m *Memory) WriteU64(offset uint32, value uint64) error {
	if !m.mem.WriteUint64Le(offset, value) {
		return m.oob(offset, 8)
	}
	return nil
}

// Size returns the memory size in bytes.
func (m *Memory) Size() uint32 {
	return m.mem.Size()
}

// Grow adds enough pages to hold delta more bytes and returns the new size
// in bytes.
func (m *Memory) Grow(delta uint32) (uint32, bool) {
	pages := (uint64(delta) + PageSize - 1) / PageSize
	if pages == 0 {
		return m.mem.Size(), true
	}
	if pages > 65536 {
		return m.mem.Size(), false
	}
	prev, ok := m.mem.Grow(uint32(pages))
	if !ok {
		Logger().Warn("memory grow refused", zap.Uint32("pages", prev), zap.Uint64("delta_pages", pages))
		return m.mem.Size(), false
	}
	return m.mem.Size(), true
}
