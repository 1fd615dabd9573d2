// Package transcoder moves values between Go and the boundary heap.
//
// Strings and sequences never cross the ABI by value. The sender writes
// them into a Heap and passes (ptr, len) or (count, ptr); the receiver
// reads them back before the call returns.
//
// # Memory Layout
//
//	Type            Size    Alignment
//	──────────────────────────────────
//	bool            1       1
//	u8/s8           1       1
//	u16/s16         2       2
//	u32/s32/f32     4       4
//	u64/s64/f64     8       8
//	string          8       4 (ptr + len)
//	record          sum     max field align
//	enum            1/2/4   discriminant size
//
// # Key Types
//
//	Heap          - Memory plus Allocator; owns strings and owned lists
//	LocalMemory   - growable Go-backed Memory
//	Arena         - first-fit allocator over any Memory
//	Compiler      - resolves a WIT record against a Go struct once
//	Scratch       - allocations made for one call, freed together
//
// # Call Flow
//
//	sc := transcoder.NewScratch()
//	defer sc.Release()
//	url := sc.String(u)
//	fn(self, url)
//
// Release runs on every exit path, including a panic in the callee.
package transcoder
