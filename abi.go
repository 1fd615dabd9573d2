package cefbridge

// Memory is the linear memory backing the boundary heap. Strings and
// sequence arrays that cross the ABI live here and are addressed by offset.
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
	ReadU8(offset uint32) (uint8, error)
	ReadU16(offset uint32) (uint16, error)
	ReadU32(offset uint32) (uint32, error)
	ReadU64(offset uint32) (uint64, error)
	WriteU8(offset uint32, value uint8) error
	WriteU16(offset uint32, value uint16) error
	WriteU32(offset uint32, value uint32) error
	WriteU64(offset uint32, value uint64) error
}

// MemorySizer provides the current size of the linear memory in bytes.
type MemorySizer interface {
	Size() uint32
}

// MemoryGrower is implemented by memories that can be extended on demand.
// Grow adds at least delta bytes and returns the new size.
type MemoryGrower interface {
	Grow(delta uint32) (uint32, bool)
}

// Allocator allocates blocks in the boundary heap. Offset 0 is never a
// valid allocation; it is the null pointer on both sides.
type Allocator interface {
	Alloc(size, align uint32) (uint32, error)
	Free(ptr, size, align uint32)
}
