// Package renderer adapts the engine's render-process events to the
// client's RenderProcessHandler.
//
// A Process is created once per render process from the App struct. It
// tracks the browsers shown in the process and one ScriptContext per frame.
// Script contexts run on modernc.org/quickjs; page scripts that throw are
// reported through OnUncaughtException when the browser process enabled it
// with the uncaught-exception-stack-size switch.
package renderer
