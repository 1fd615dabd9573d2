package browser

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCommandLine(t *testing.T) {
	cmd := newFakeCommandLine("existing")
	c := newCommandLine(cmd, false)

	require.False(t, c.IsReadOnly())
	c.AppendSwitch("flag")
	c.AppendSwitchWithValue("name", "value")
	require.True(t, c.HasSwitch("existing"))
	require.Equal(t, "value", c.SwitchValue("name"))
	require.Equal(t, []string{"/opt/app/app", "--existing", "--flag", "--name=value"}, c.Argv())
}

func TestReadOnlyCommandLine(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })

	cmd := newFakeCommandLine()
	c := newCommandLine(cmd, true)

	require.True(t, c.IsReadOnly())
	c.AppendSwitch("flag")
	c.AppendSwitchWithValue("name", "value")
	require.Equal(t, []string{"/opt/app/app"}, cmd.Argv())
	require.Equal(t, 2, logs.FilterMessage("append to read-only command line").Len())
}

func TestSettingsApply(t *testing.T) {
	cmd := newFakeCommandLine()
	Settings{
		BrowserSubprocessPath: "/opt/app/helper",
		ProductVersion:        "Test/1.0",
		LogFile:               "/tmp/app.log",
		ResourcesDirPath:      "/opt/app/res",
		LocalesDirPath:        "/opt/app/locales",
		RemoteDebuggingPort:   70000,
	}.apply(cmd)

	require.Equal(t, []string{
		"/opt/app/app",
		"--browser-subprocess-path=/opt/app/helper",
		"--product-version=Test/1.0",
		"--log-file=/tmp/app.log",
		"--resources-dir-path=/opt/app/res",
		"--locales-dir-path=/opt/app/locales",
	}, cmd.Argv())
}
