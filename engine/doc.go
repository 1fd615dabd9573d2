// Package engine backs the boundary heap with a wazero linear memory.
//
// The bridge itself never runs WebAssembly. It instantiates a module that
// does nothing but export one memory, and uses that memory as the heap the
// two sides of the ABI share. This gives the heap the same addressing,
// bounds checks and page-granular growth as a guest memory, and makes it
// possible to hand the same memory to a guest later.
//
//	h, err := engine.NewHeap(ctx)
//	if err != nil {
//		return err
//	}
//	defer h.Close(ctx)
//	transcoder.SetDefault(h.Heap)
//
// Memory is grown in 64 KiB pages on demand by the Arena allocator and is
// limited by Config.MemoryLimitPages.
package engine
