package transcoder

import (
	"sync"

	cefbridge "github.com/wippyai/cef-bridge"
)

type Memory = cefbridge.Memory
type Allocator = cefbridge.Allocator

// Allocation is one block handed out by the heap allocator.
type Allocation struct {
	Ptr   uint32
	Size  uint32
	Align uint32
}

// AllocationList tracks the blocks behind one boundary value, or behind the
// arguments of one shim call, so they are freed together exactly once.
type AllocationList struct {
	blocks []Allocation
}

// Lists above this capacity came from an unusually large call and are left
// to the garbage collector.
const maxPooledBlocks = 128

var allocationLists = sync.Pool{
	New: func() any { return &AllocationList{blocks: make([]Allocation, 0, 8)} },
}

func NewAllocationList() *AllocationList {
	return allocationLists.Get().(*AllocationList)
}

func (al *AllocationList) Add(ptr, size, align uint32) {
	al.blocks = append(al.blocks, Allocation{Ptr: ptr, Size: size, Align: align})
}

// FreeAndRelease frees every block, newest first, and returns the list to
// the pool. The list must not be used afterwards.
func (al *AllocationList) FreeAndRelease(allocator Allocator) {
	if allocator != nil {
		for i := len(al.blocks) - 1; i >= 0; i-- {
			if b := al.blocks[i]; b.Ptr != 0 {
				allocator.Free(b.Ptr, b.Size, b.Align)
			}
		}
	}
	al.blocks = al.blocks[:0]
	if cap(al.blocks) <= maxPooledBlocks {
		allocationLists.Put(al)
	}
}

// Len returns the number of blocks not yet freed.
func (al *AllocationList) Len() int {
	return len(al.blocks)
}
