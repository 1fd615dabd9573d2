package crashreport

import (
	"strconv"
	"strings"
)

// MaxSwitches is the number of switch-N crash keys.
const MaxSwitches = 15

const numSwitchesKey = "num-switches"

var boringSwitches = []string{
	// Engine internals.
	"channel",
	"enable-crash-reporter",
	"flag-switches-begin",
	"flag-switches-end",
	"type",
	"v",
	"vmodule",

	// Embedder internals.
	"log-file",
	"content-image-texture-target",
	"mojo-platform-channel-handle",
	"primordial-pipe-token",
	"service-request-channel-token",
}

// IsBoringSwitch reports whether a command line argument carries nothing
// worth recording. Only "--name" and "--name=value" forms can be boring.
func IsBoringSwitch(flag string) bool {
	if !strings.HasPrefix(flag, "--") {
		return false
	}
	name, _, _ := strings.Cut(flag[2:], "=")
	for _, s := range boringSwitches {
		if name == s {
			return true
		}
	}
	return false
}

func switchKey(i int) string {
	return "switch-" + strconv.Itoa(i)
}
