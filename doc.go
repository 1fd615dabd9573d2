// Package cefbridge is a binding layer that exposes a browser engine's
// polymorphic interfaces through a stable struct-of-function-pointers ABI,
// and wraps structs coming from the other side back into Go interfaces.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	cefbridge/           Root package with the boundary heap contract (Memory, Allocator)
//	├── capi/            Boundary ABI: Base refcount, String, List, one struct per interface
//	├── cef/             Managed interfaces, capability interfaces, value types and enums
//	├── wrapper/         Wrapped-handle table, type tags, generic CppToC/CToCpp bindings
//	├── bridge/          Per-method shims for every bound interface, both directions
//	├── transcoder/      Strings, string lists and record arrays in the boundary heap
//	├── engine/          wazero-backed boundary heap
//	├── idl/             Interface descriptions and ABI drift verification
//	├── content/         Extension points of the embedding engine
//	├── browser/         Engine adapters: context, content client, browser host, OSR view
//	├── renderer/        Render-process adapter with quickjs script contexts
//	├── crashreport/     Crash keys, switch filtering, persisted snapshots
//	├── errors/          Structured error types
//	└── cmd/
//	    └── bridge-inspect/  CLI and TUI over the interface descriptions
//
// # Directions
//
// A Go object handed to the other side is wrapped by a CppToC binding: the
// binding builds a capi struct whose function fields are shims forwarding to
// the object, and registers it in the process-wide handle table.
//
//	s := bridge.BrowserCppToC.Wrap(host)   // *capi.Browser, one reference held by the caller
//	b := bridge.BrowserCppToC.Unwrap(s)    // host again, reference released
//
// A struct received from the other side is wrapped by a CToCpp binding into
// an adapter implementing the cef interface:
//
//	h := bridge.LoadHandlerCToCpp.Wrap(s)  // cef.LoadHandler
//	h.OnLoadEnd(browser, frame, 200)       // validated, marshalled, forwarded
//
// # Thread Safety
//
// The bridge does not serialize calls. Each interface keeps the threading
// contract of the engine it forwards to. Reference counts and debug counters
// are atomic, so handles may be passed between goroutines.
package cefbridge
