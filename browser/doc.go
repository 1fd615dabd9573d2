// Package browser adapts the engine's browser-process extension points to
// the client application.
//
// Init creates the process Context: it takes the client's App struct,
// runs command line processing and custom scheme registration, sets up
// crash reporting and calls OnContextInitialized. Browsers created through
// the Context are Hosts. A Host is the cef.Browser the client sees and the
// content.WebContentsObserver the engine drives; page events reach the
// client's load, drag, dialog and request handlers through it.
//
// ContentBrowserClient answers the engine's process-level questions
// (handled schemes, child process switches, certificate errors, popups).
package browser
