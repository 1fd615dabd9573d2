// Package cef declares the managed side of every bound interface.
//
// Engine-implemented objects (Browser, Frame, View, ...) are full Go
// interfaces. Client-implemented handlers are open: App, LoadHandler and the
// other handler types accept any value, and the bridge looks for the
// per-method interfaces below to decide which functions to expose. A handler
// that only cares about load starts implements LoadStartHandler and nothing
// else:
//
//	type startLogger struct{}
//
//	func (startLogger) OnLoadStart(b cef.Browser, f cef.Frame, t cef.TransitionType) {
//		log.Println("load start", f.URL())
//	}
//
// Every other load notification then reaches the engine as a missing
// function and is skipped.
package cef
