package browser

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wippyai/cef-bridge/content"
)

type fixedIncognitoHelper struct {
	redirect content.BrowserContext
	own      content.BrowserContext
}

func (h *fixedIncognitoHelper) RedirectedInIncognito(content.BrowserContext) content.BrowserContext {
	return h.redirect
}

func (h *fixedIncognitoHelper) OwnInstanceInIncognito(content.BrowserContext) content.BrowserContext {
	return h.own
}

func TestIncognitoDefaults(t *testing.T) {
	regular := &fakeBrowserContext{path: "/profile"}
	otr := &fakeBrowserContext{offTheRecord: true, original: regular}

	require.Same(t, regular, RedirectedInIncognito(otr))
	require.Same(t, otr, OwnInstanceInIncognito(otr))
	require.Same(t, regular, RedirectedInIncognito(regular))
}

func TestIncognitoHelper(t *testing.T) {
	regular := &fakeBrowserContext{path: "/profile"}
	otr := &fakeBrowserContext{offTheRecord: true, original: regular}
	shared := &fakeBrowserContext{path: "/shared"}

	SetIncognitoHelper(&fixedIncognitoHelper{redirect: shared})
	t.Cleanup(func() { SetIncognitoHelper(nil) })

	require.Same(t, shared, RedirectedInIncognito(otr))
	// A nil answer falls back to the default rule.
	require.Same(t, otr, OwnInstanceInIncognito(otr))
}
