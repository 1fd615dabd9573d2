package browser

import (
	"sync"

	"github.com/wippyai/cef-bridge/content"
)

// IncognitoHelper picks the browser context services use for an
// off-the-record profile. Returning nil falls back to the default rule.
type IncognitoHelper interface {
	RedirectedInIncognito(ctx content.BrowserContext) content.BrowserContext
	OwnInstanceInIncognito(ctx content.BrowserContext) content.BrowserContext
}

var (
	incognitoMu     sync.RWMutex
	incognitoHelper IncognitoHelper
)

// SetIncognitoHelper installs the helper. nil removes it.
func SetIncognitoHelper(h IncognitoHelper) {
	incognitoMu.Lock()
	incognitoHelper = h
	incognitoMu.Unlock()
}

func currentIncognitoHelper() IncognitoHelper {
	incognitoMu.RLock()
	defer incognitoMu.RUnlock()
	return incognitoHelper
}

// RedirectedInIncognito returns the context a service shared with the
// regular profile should use: the original context by default.
func RedirectedInIncognito(ctx content.BrowserContext) content.BrowserContext {
	if h := currentIncognitoHelper(); h != nil {
		if c := h.RedirectedInIncognito(ctx); c != nil {
			return c
		}
	}
	return ctx.OriginalContext()
}

// OwnInstanceInIncognito returns the context a service with its own
// off-the-record instance should use: ctx itself by default.
func OwnInstanceInIncognito(ctx content.BrowserContext) content.BrowserContext {
	if h := currentIncognitoHelper(); h != nil {
		if c := h.OwnInstanceInIncognito(ctx); c != nil {
			return c
		}
	}
	return ctx
}
