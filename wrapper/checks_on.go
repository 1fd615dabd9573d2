//go:build !cefbridge_release

package wrapper

// debugChecks enables contract logging and live counters.
const debugChecks = true
