//go:build cefbridge_release

package wrapper

const debugChecks = false
