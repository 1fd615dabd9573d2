package browser

import (
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// engineSchemes are handled by the engine itself and cannot be registered.
var engineSchemes = map[string]struct{}{
	"about":            {},
	"blob":             {},
	"chrome":           {},
	"chrome-devtools":  {},
	"chrome-extension": {},
	"data":             {},
	"file":             {},
	"filesystem":       {},
	"ftp":              {},
	"http":             {},
	"https":            {},
	"javascript":       {},
	"view-source":      {},
	"ws":               {},
	"wss":              {},
}

// Scheme is a registered custom scheme.
type Scheme struct {
	Name            string
	Standard        bool
	Local           bool
	DisplayIsolated bool
}

// SchemeRegistry collects custom schemes. It is the SchemeRegistrar handed
// to App.OnRegisterCustomSchemes and stops accepting schemes once the
// callback returns.
type SchemeRegistry struct {
	mu      sync.RWMutex
	schemes []Scheme
	sealed  bool
}

func newSchemeRegistry() *SchemeRegistry {
	return &SchemeRegistry{}
}

// AddCustomScheme registers a scheme. Names are case-insensitive. Engine
// schemes, duplicates, malformed names and late registrations fail.
func (r *SchemeRegistry) AddCustomScheme(name string, isStandard, isLocal, isDisplayIsolated bool) bool {
	name = strings.ToLower(name)
	if !validScheme(name) {
		Logger().Warn("invalid custom scheme", zap.String("scheme", name))
		return false
	}
	if _, ok := engineSchemes[name]; ok {
		Logger().Warn("cannot register engine scheme", zap.String("scheme", name))
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		Logger().Warn("custom scheme registered after startup", zap.String("scheme", name))
		return false
	}
	if slices.ContainsFunc(r.schemes, func(s Scheme) bool { return s.Name == name }) {
		return false
	}
	r.schemes = append(r.schemes, Scheme{
		Name:            name,
		Standard:        isStandard,
		Local:           isLocal,
		DisplayIsolated: isDisplayIsolated,
	})
	return true
}

// Lookup returns a registered scheme.
func (r *SchemeRegistry) Lookup(name string) (Scheme, bool) {
	name = strings.ToLower(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.schemes {
		if s.Name == name {
			return s, true
		}
	}
	return Scheme{}, false
}

// Schemes returns the registered schemes in registration order.
func (r *SchemeRegistry) Schemes() []Scheme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.schemes)
}

func (r *SchemeRegistry) seal() {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
}

// validScheme follows RFC 3986: a letter, then letters, digits, '+', '-'
// or '.'.
func validScheme(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		switch {
		case c >= 'a' && c <= 'z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}
