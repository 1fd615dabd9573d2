// Package osr implements off-screen render widget host views. Instead of
// drawing into a native window, a View hands damaged pixels, cursor
// changes, popups and IME state to the client's RenderHandler, and asks
// the RenderHandler for its size and screen.
package osr
