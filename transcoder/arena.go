package transcoder

import (
	"sort"
	"sync"

	cefbridge "github.com/wippyai/cef-bridge"
	"github.com/wippyai/cef-bridge/errors"
	"github.com/wippyai/cef-bridge/transcoder/internal/abi"
	"go.uber.org/zap"
)

// arenaBase is the first offset an Arena hands out. Everything below it
// stays unused so that 0 is never a valid allocation.
const arenaBase = 16

// Arena is a first-fit allocator over a Memory. Freed blocks are coalesced
// with their neighbours; a block at the top of the arena gives its space
// back to the bump pointer.
type Arena struct {
	sizer cefbridge.MemorySizer
	grow  cefbridge.MemoryGrower
	live  map[uint32]uint32
	free  []span
	stats Stats
	top   uint32
	mu    sync.Mutex
}

type span struct {
	off uint32
	len uint32
}

// Stats reports arena usage.
type Stats struct {
	Allocs    uint64
	Frees     uint64
	Live      int
	LiveBytes uint64
	Top       uint32
}

// NewArena creates an allocator over mem. The memory must report its size;
// if it can also grow, the arena grows it on demand.
func NewArena(mem cefbridge.MemorySizer) *Arena {
	a := &Arena{
		sizer: mem,
		live:  make(map[uint32]uint32),
		top:   arenaBase,
	}
	if g, ok := mem.(cefbridge.MemoryGrower); ok {
		a.grow = g
	}
	return a
}

// Alloc returns an aligned block of at least size bytes.
func (a *Arena) Alloc(size, align uint32) (uint32, error) {
	if size == 0 {
		size = 1
	}
	if align == 0 {
		align = 1
	}
	if size > abi.MaxAlloc {
		return 0, errors.Allocation(size, nil)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	ptr, ok := a.fromFreeList(size, align)
	if !ok {
		var err error
		ptr, err = a.bump(size, align)
		if err != nil {
			return 0, err
		}
	}

	a.live[ptr] = size
	a.stats.Allocs++
	a.stats.Live++
	a.stats.LiveBytes += uint64(size)
	return ptr, nil
}

func (a *Arena) fromFreeList(size, align uint32) (uint32, bool) {
	for i, s := range a.free {
		aligned := abi.AlignTo(s.off, align)
		end := s.off + s.len
		if aligned < s.off || aligned+size > end || aligned+size < aligned {
			continue
		}

		var rest []span
		if aligned > s.off {
			rest = append(rest, span{off: s.off, len: aligned - s.off})
		}
		if tail := end - (aligned + size); tail > 0 {
			rest = append(rest, span{off: aligned + size, len: tail})
		}
		a.free = append(a.free[:i], append(rest, a.free[i+1:]...)...)
		return aligned, true
	}
	return 0, false
}

func (a *Arena) bump(size, align uint32) (uint32, error) {
	aligned := abi.AlignTo(a.top, align)
	end, ok := abi.SafeAddU32(aligned, size)
	if !ok {
		return 0, errors.Allocation(size, nil)
	}

	if cur := a.sizer.Size(); end > cur {
		if a.grow == nil {
			return 0, errors.Allocation(size, nil)
		}
		if _, ok := a.grow.Grow(end - cur); !ok {
			return 0, errors.Allocation(size, nil)
		}
	}

	if aligned > a.top {
		a.insertFree(span{off: a.top, len: aligned - a.top})
	}
	a.top = end
	return aligned, nil
}

// Free releases a block returned by Alloc. Unknown pointers are logged and
// ignored, which also makes a double free harmless.
func (a *Arena) Free(ptr, size, align uint32) {
	if ptr == 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	n, ok := a.live[ptr]
	if !ok {
		Logger().Warn("free of unknown block", zap.Uint32("ptr", ptr), zap.Uint32("size", size))
		return
	}
	delete(a.live, ptr)
	a.stats.Frees++
	a.stats.Live--
	a.stats.LiveBytes -= uint64(n)

	a.insertFree(span{off: ptr, len: n})
	a.reclaimTop()
}

func (a *Arena) insertFree(s span) {
	i := sort.Search(len(a.free), func(i int) bool { return a.free[i].off >= s.off })
	a.free = append(a.free, span{})
	copy(a.free[i+1:], a.free[i:])
	a.free[i] = s

	// merge with the next block, then with the previous one
	if i+1 < len(a.free) && a.free[i].off+a.free[i].len == a.free[i+1].off {
		a.free[i].len += a.free[i+1].len
		a.free = append(a.free[:i+1], a.free[i+2:]...)
	}
	if i > 0 && a.free[i-1].off+a.free[i-1].len == a.free[i].off {
		a.free[i-1].len += a.free[i].len
		a.free = append(a.free[:i], a.free[i+1:]...)
	}
}

func (a *Arena) reclaimTop() {
	if n := len(a.free); n > 0 {
		last := a.free[n-1]
		if last.off+last.len == a.top {
			a.top = last.off
			a.free = a.free[:n-1]
		}
	}
}

// Stats returns a snapshot of usage counters.
func (a *Arena) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	s := a.stats
	s.Top = a.top
	return s
}
