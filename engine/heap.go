package engine

import (
	"context"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/wippyai/cef-bridge/errors"
	"github.com/wippyai/cef-bridge/transcoder"
	"go.uber.org/zap"
)

// Config holds configuration for heap creation
type Config struct {
	// MemoryLimitPages sets the maximum heap size in pages (64KB each).
	// 0 means default (65536 pages = 4GB).
	// 256 = 16MB, 1024 = 64MB, 4096 = 256MB
	MemoryLimitPages uint32

	// InitialPages is the size the heap starts at. 0 means one page.
	InitialPages uint32
}

// Heap is a transcoder.Heap whose memory is a wazero linear memory.
type Heap struct {
	*transcoder.Heap

	runtime wazero.Runtime
	mem     *Memory
	arena   *transcoder.Arena
	closeMu sync.Mutex
	closed  bool
}

// NewHeap creates a heap with default configuration.
func NewHeap(ctx context.Context) (*Heap, error) {
	return NewHeapWithConfig(ctx, nil)
}

// NewHeapWithConfig creates a heap with custom configuration.
func NewHeapWithConfig(ctx context.Context, cfg *Config) (*Heap, error) {
	runtimeCfg := wazero.NewRuntimeConfig()

	initial := uint32(1)
	if cfg != nil {
		if cfg.MemoryLimitPages > 0 {
			runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
		}
		if cfg.InitialPages > 0 {
			initial = cfg.InitialPages
		}
		if cfg.MemoryLimitPages > 0 && initial > cfg.MemoryLimitPages {
			return nil, errors.InvalidInput(errors.PhaseEngine, "initial pages exceed memory limit")
		}
	}

	runtime := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)

	mod, err := runtime.Instantiate(ctx, memoryModule(initial))
	if err != nil {
		_ = runtime.Close(ctx)
		return nil, errors.Wrap(errors.PhaseEngine, errors.KindAllocation, err, "instantiate heap module")
	}

	mem := WrapMemory(mod.ExportedMemory("memory"))
	if mem == nil {
		_ = runtime.Close(ctx)
		return nil, errors.NotFound(errors.PhaseEngine, "export", "memory")
	}

	arena := transcoder.NewArena(mem)
	Logger().Debug("heap created",
		zap.Uint32("initial_pages", initial),
		zap.Uint32("size", mem.Size()))

	return &Heap{
		Heap:    transcoder.NewHeap(mem, arena),
		runtime: runtime,
		mem:     mem,
		arena:   arena,
	}, nil
}

// Stats reports allocator usage.
func (h *Heap) Stats() transcoder.Stats {
	return h.arena.Stats()
}

// Size returns the size of the linear memory in bytes.
func (h *Heap) Size() uint32 {
	return h.mem.Size()
}

// Close releases the wazero runtime. Values still allocated from the heap
// must not be used afterwards.
func (h *Heap) Close(ctx context.Context) error {
	h.closeMu.Lock()
	defer h.closeMu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true

	if live := h.arena.Stats().Live; live > 0 {
		Logger().Warn("heap closed with live allocations", zap.Int("live", live))
	}
	return h.runtime.Close(ctx)
}

// memoryModule returns a binary module that exports a single memory of
// initial pages under the name "memory".
func memoryModule(initial uint32) []byte {
	limits := append([]byte{0x00}, uleb128(initial)...)
	memSection := append([]byte{0x01}, limits...)

	export := []byte{0x01, 0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00}

	out := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	out = append(out, 0x05)
	out = append(out, uleb128(uint32(len(memSection)))...)
	out = append(out, memSection...)
	out = append(out, 0x07)
	out = append(out, uleb128(uint32(len(export)))...)
	out = append(out, export...)
	return out
}

func uleb128(v uint32) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		out = append(out, b)
		if v == 0 {
			return out
		}
	}
}
