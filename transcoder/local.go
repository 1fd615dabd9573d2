package transcoder

import (
	"encoding/binary"
	"sync"

	"github.com/wippyai/cef-bridge/errors"
	"github.com/wippyai/cef-bridge/transcoder/internal/abi"
)

// LocalMemory is a growable byte slice implementing Memory. Reads return
// copies, so growth never invalidates data a caller holds.
type LocalMemory struct {
	data []byte
	max  uint32
	mu   sync.RWMutex
}

// NewLocalMemory creates a memory of initial bytes that may grow up to max.
// A zero max means abi.MaxAlloc.
func NewLocalMemory(initial, max uint32) *LocalMemory {
	if max == 0 {
		max = abi.MaxAlloc
	}
	if initial > max {
		initial = max
	}
	return &LocalMemory{data: make([]byte, initial), max: max}
}

// Size returns the current size in bytes.
func (m *LocalMemory) Size() uint32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return uint32(len(m.data))
}

// Grow adds at least delta bytes, doubling when that is larger.
func (m *LocalMemory) Grow(delta uint32) (uint32, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur := uint32(len(m.data))
	want, ok := abi.SafeAddU32(cur, delta)
	if !ok || want > m.max {
		return cur, false
	}
	if doubled := cur * 2; doubled > want && doubled <= m.max {
		want = doubled
	}
	grown := make([]byte, want)
	copy(grown, m.data)
	m.data = grown
	return want, true
}

func (m *LocalMemory) slice(offset, length uint32) ([]byte, error) {
	end, ok := abi.SafeAddU32(offset, length)
	if !ok || end > uint32(len(m.data)) {
		return nil, errors.OutOfBounds(errors.PhaseMarshal, nil, offset, uint32(len(m.data)))
	}
	return m.data[offset:end], nil
}

func (m *LocalMemory) Read(offset uint32, length uint32) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, err := m.slice(offset, length)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (m *LocalMemory) Write(offset uint32, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := m.slice(offset, uint32(len(data)))
	if err != nil {
		return err
	}
	copy(b, data)
	return nil
}

func (m *LocalMemory) ReadU8(offset uint32) (uint8, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, err := m.slice(offset, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (m *LocalMemory) ReadU16(offset uint32) (uint16, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, err := m.slice(offset, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (m *LocalMemory) ReadU32(offset uint32) (uint32, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, err := m.slice(offset, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (m *LocalMemory) ReadU64(offset uint32) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, err := m.slice(offset, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (m *LocalMemory) WriteU8(offset uint32, value uint8) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := m.slice(offset, 1)
	if err != nil {
		return err
	}
	b[0] = value
	return nil
}

func (m *LocalMemory) WriteU16(offset uint32, value uint16) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := m.slice(offset, 2)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b, value)
	return nil
}

func (m *LocalMemory) WriteU32(offset uint32, value uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := m.slice(offset, 4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b, value)
	return nil
}

func (m *LocalMemory) WriteU64(offset uint32, value uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := m.slice(offset, 8)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b, value)
	return nil
}
