package browser

import (
	"sync"

	"github.com/wippyai/cef-bridge/content"
)

// certificateCallback answers a certificate error. Only the first answer
// counts.
type certificateCallback struct {
	once sync.Once
	run  content.CertificateCallback
}

func newCertificateCallback(run content.CertificateCallback) *certificateCallback {
	return &certificateCallback{run: run}
}

func (c *certificateCallback) Continue(allow bool) {
	result := content.CertificateDeny
	if allow {
		result = content.CertificateContinue
	}
	c.once.Do(func() { c.run(result) })
}

func (c *certificateCallback) Cancel() {
	c.once.Do(func() { c.run(content.CertificateCancel) })
}

// authCallback answers an authentication challenge.
type authCallback struct {
	once sync.Once
	run  content.AuthCallback
}

func (c *authCallback) Continue(username, password string) {
	c.once.Do(func() { c.run(username, password, true) })
}

func (c *authCallback) Cancel() {
	c.once.Do(func() { c.run("", "", false) })
}

func (c *authCallback) disconnect() {
	c.once.Do(func() {})
}

// dialogCallback completes a script dialog and tells the host it closed.
type dialogCallback struct {
	once sync.Once
	host *Host
	run  content.DialogCallback
}

func (c *dialogCallback) Continue(success bool, userInput string) {
	c.once.Do(func() {
		c.run(success, userInput)
		c.host.dialogClosed(c)
	})
}

func (c *dialogCallback) disconnect() {
	c.once.Do(func() {})
}

// dragData presents engine drop data to the client.
type dragData struct {
	data content.DropData
}

func (d *dragData) IsLink() bool         { return d.data.URL != "" }
func (d *dragData) IsFragment() bool     { return d.data.Fragment != "" }
func (d *dragData) IsFile() bool         { return len(d.data.FileNames) > 0 }
func (d *dragData) LinkURL() string      { return d.data.URL }
func (d *dragData) FragmentText() string { return d.data.Fragment }

func (d *dragData) FileNames() []string {
	out := make([]string, len(d.data.FileNames))
	copy(out, d.data.FileNames)
	return out
}
