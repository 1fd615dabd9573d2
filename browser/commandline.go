package browser

import (
	"github.com/wippyai/cef-bridge/content"
	"go.uber.org/zap"
)

// commandLine exposes an engine command line as a cef.CommandLine.
type commandLine struct {
	content.CommandLine
	readOnly bool
}

func newCommandLine(cmd content.CommandLine, readOnly bool) *commandLine {
	return &commandLine{CommandLine: cmd, readOnly: readOnly}
}

func (c *commandLine) IsReadOnly() bool { return c.readOnly }

func (c *commandLine) AppendSwitch(name string) {
	if c.readOnly {
		Logger().Warn("append to read-only command line", zap.String("switch", name))
		return
	}
	c.CommandLine.AppendSwitch(name)
}

func (c *commandLine) AppendSwitchWithValue(name, value string) {
	if c.readOnly {
		Logger().Warn("append to read-only command line", zap.String("switch", name))
		return
	}
	c.CommandLine.AppendSwitchWithValue(name, value)
}
