// Package content declares the extension points of the external browser
// engine that the adapters in browser, browser/osr and renderer implement
// or call. Nothing here is implemented by the bridge itself; tests supply
// fakes and an embedding engine supplies the real objects.
package content
