package bridge

import (
	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/transcoder"
	"github.com/wippyai/cef-bridge/wrapper"
)

var (
	DragDataCppToC = wrapper.NewCppToC[cef.DragData, capi.DragData]("DragData", wrapper.TypeDragData)
	DragDataCToCpp = wrapper.NewCToCpp[cef.DragData, capi.DragData]("DragData", wrapper.TypeDragData)

	CommandLineCppToC = wrapper.NewCppToC[cef.CommandLine, capi.CommandLine]("CommandLine", wrapper.TypeCommandLine)
	CommandLineCToCpp = wrapper.NewCToCpp[cef.CommandLine, capi.CommandLine]("CommandLine", wrapper.TypeCommandLine)

	SchemeRegistrarCppToC = wrapper.NewCppToC[cef.SchemeRegistrar, capi.SchemeRegistrar]("SchemeRegistrar", wrapper.TypeSchemeRegistrar)
	SchemeRegistrarCToCpp = wrapper.NewCToCpp[cef.SchemeRegistrar, capi.SchemeRegistrar]("SchemeRegistrar", wrapper.TypeSchemeRegistrar)
)

func init() {
	DragDataCppToC.SetBuilder(func(cef.DragData) *capi.DragData {
		return &capi.DragData{
			IsLink:          dragDataIsLink,
			IsFragment:      dragDataIsFragment,
			IsFile:          dragDataIsFile,
			GetLinkURL:      dragDataGetLinkURL,
			GetFragmentText: dragDataGetFragmentText,
			GetFileNames:    dragDataGetFileNames,
		}
	})
	DragDataCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.DragData]) cef.DragData {
		return &dragDataAdapter{CRef: ref}
	})

	CommandLineCppToC.SetBuilder(func(cef.CommandLine) *capi.CommandLine {
		return &capi.CommandLine{
			IsReadOnly:            commandLineIsReadOnly,
			HasSwitch:             commandLineHasSwitch,
			GetSwitchValue:        commandLineGetSwitchValue,
			AppendSwitch:          commandLineAppendSwitch,
			AppendSwitchWithValue: commandLineAppendSwitchWithValue,
			GetArgv:               commandLineGetArgv,
		}
	})
	CommandLineCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.CommandLine]) cef.CommandLine {
		return &commandLineAdapter{CRef: ref}
	})

	SchemeRegistrarCppToC.SetBuilder(func(cef.SchemeRegistrar) *capi.SchemeRegistrar {
		return &capi.SchemeRegistrar{AddCustomScheme: schemeRegistrarAddCustomScheme}
	})
	SchemeRegistrarCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.SchemeRegistrar]) cef.SchemeRegistrar {
		return &schemeRegistrarAdapter{CRef: ref}
	})
}

func dragDataIsLink(self *capi.DragData) int32 {
	defer wrapper.Recover("DragData", "IsLink")
	d, ok := receiver(DragDataCppToC, self, "DragData", "IsLink")
	if !ok {
		return 0
	}
	return capi.Bool(d.IsLink())
}

func dragDataIsFragment(self *capi.DragData) int32 {
	defer wrapper.Recover("DragData", "IsFragment")
	d, ok := receiver(DragDataCppToC, self, "DragData", "IsFragment")
	if !ok {
		return 0
	}
	return capi.Bool(d.IsFragment())
}

func dragDataIsFile(self *capi.DragData) int32 {
	defer wrapper.Recover("DragData", "IsFile")
	d, ok := receiver(DragDataCppToC, self, "DragData", "IsFile")
	if !ok {
		return 0
	}
	return capi.Bool(d.IsFile())
}

func dragDataGetLinkURL(self *capi.DragData) capi.String {
	defer wrapper.Recover("DragData", "GetLinkURL")
	d, ok := receiver(DragDataCppToC, self, "DragData", "GetLinkURL")
	if !ok {
		return capi.String{}
	}
	return newString("DragData", "GetLinkURL", d.LinkURL())
}

func dragDataGetFragmentText(self *capi.DragData) capi.String {
	defer wrapper.Recover("DragData", "GetFragmentText")
	d, ok := receiver(DragDataCppToC, self, "DragData", "GetFragmentText")
	if !ok {
		return capi.String{}
	}
	return newString("DragData", "GetFragmentText", d.FragmentText())
}

func dragDataGetFileNames(self *capi.DragData) capi.List {
	defer wrapper.Recover("DragData", "GetFileNames")
	d, ok := receiver(DragDataCppToC, self, "DragData", "GetFileNames")
	if !ok {
		return capi.List{}
	}
	return newStringList("DragData", "GetFileNames", d.FileNames())
}

type dragDataAdapter struct {
	*wrapper.CRef[capi.DragData]
}

func (a *dragDataAdapter) IsLink() bool {
	defer a.Exit("DragData", "IsLink")
	s := a.Struct()
	if s.IsLink == nil {
		return false
	}
	return isTrue(s.IsLink(s))
}

func (a *dragDataAdapter) IsFragment() bool {
	defer a.Exit("DragData", "IsFragment")
	s := a.Struct()
	if s.IsFragment == nil {
		return false
	}
	return isTrue(s.IsFragment(s))
}

func (a *dragDataAdapter) IsFile() bool {
	defer a.Exit("DragData", "IsFile")
	s := a.Struct()
	if s.IsFile == nil {
		return false
	}
	return isTrue(s.IsFile(s))
}

func (a *dragDataAdapter) LinkURL() string {
	defer a.Exit("DragData", "GetLinkURL")
	s := a.Struct()
	if s.GetLinkURL == nil {
		return ""
	}
	return takeString(s.GetLinkURL(s))
}

func (a *dragDataAdapter) FragmentText() string {
	defer a.Exit("DragData", "GetFragmentText")
	s := a.Struct()
	if s.GetFragmentText == nil {
		return ""
	}
	return takeString(s.GetFragmentText(s))
}

func (a *dragDataAdapter) FileNames() []string {
	defer a.Exit("DragData", "GetFileNames")
	s := a.Struct()
	if s.GetFileNames == nil {
		return nil
	}
	return takeStringList(s.GetFileNames(s))
}

func commandLineIsReadOnly(self *capi.CommandLine) int32 {
	defer wrapper.Recover("CommandLine", "IsReadOnly")
	c, ok := receiver(CommandLineCppToC, self, "CommandLine", "IsReadOnly")
	if !ok {
		return 0
	}
	return capi.Bool(c.IsReadOnly())
}

func commandLineHasSwitch(self *capi.CommandLine, name *capi.String) int32 {
	defer wrapper.Recover("CommandLine", "HasSwitch")
	c, ok := receiver(CommandLineCppToC, self, "CommandLine", "HasSwitch")
	if !ok {
		return 0
	}
	if name == nil {
		wrapper.MissingParam("CommandLine", "HasSwitch", "name")
		return 0
	}
	return capi.Bool(c.HasSwitch(readString(name)))
}

func commandLineGetSwitchValue(self *capi.CommandLine, name *capi.String) capi.String {
	defer wrapper.Recover("CommandLine", "GetSwitchValue")
	c, ok := receiver(CommandLineCppToC, self, "CommandLine", "GetSwitchValue")
	if !ok {
		return capi.String{}
	}
	if name == nil {
		wrapper.MissingParam("CommandLine", "GetSwitchValue", "name")
		return capi.String{}
	}
	return newString("CommandLine", "GetSwitchValue", c.SwitchValue(readString(name)))
}

func commandLineAppendSwitch(self *capi.CommandLine, name *capi.String) {
	defer wrapper.Recover("CommandLine", "AppendSwitch")
	c, ok := receiver(CommandLineCppToC, self, "CommandLine", "AppendSwitch")
	if !ok {
		return
	}
	if name == nil {
		wrapper.MissingParam("CommandLine", "AppendSwitch", "name")
		return
	}
	c.AppendSwitch(readString(name))
}

func commandLineAppendSwitchWithValue(self *capi.CommandLine, name, value *capi.String) {
	defer wrapper.Recover("CommandLine", "AppendSwitchWithValue")
	c, ok := receiver(CommandLineCppToC, self, "CommandLine", "AppendSwitchWithValue")
	if !ok {
		return
	}
	if name == nil {
		wrapper.MissingParam("CommandLine", "AppendSwitchWithValue", "name")
		return
	}
	if value == nil {
		wrapper.MissingParam("CommandLine", "AppendSwitchWithValue", "value")
		return
	}
	c.AppendSwitchWithValue(readString(name), readString(value))
}

func commandLineGetArgv(self *capi.CommandLine) capi.List {
	defer wrapper.Recover("CommandLine", "GetArgv")
	c, ok := receiver(CommandLineCppToC, self, "CommandLine", "GetArgv")
	if !ok {
		return capi.List{}
	}
	return newStringList("CommandLine", "GetArgv", c.Argv())
}

type commandLineAdapter struct {
	*wrapper.CRef[capi.CommandLine]
}

func (a *commandLineAdapter) IsReadOnly() bool {
	defer a.Exit("CommandLine", "IsReadOnly")
	s := a.Struct()
	if s.IsReadOnly == nil {
		return false
	}
	return isTrue(s.IsReadOnly(s))
}

func (a *commandLineAdapter) HasSwitch(name string) bool {
	defer a.Exit("CommandLine", "HasSwitch")
	s := a.Struct()
	if s.HasSwitch == nil {
		return false
	}
	sc := transcoder.NewScratch()
	defer sc.Release()
	return isTrue(s.HasSwitch(s, sc.String(name)))
}

func (a *commandLineAdapter) SwitchValue(name string) string {
	defer a.Exit("CommandLine", "GetSwitchValue")
	s := a.Struct()
	if s.GetSwitchValue == nil {
		return ""
	}
	sc := transcoder.NewScratch()
	defer sc.Release()
	return takeString(s.GetSwitchValue(s, sc.String(name)))
}

func (a *commandLineAdapter) AppendSwitch(name string) {
	defer a.Exit("CommandLine", "AppendSwitch")
	s := a.Struct()
	if s.AppendSwitch == nil {
		return
	}
	sc := transcoder.NewScratch()
	defer sc.Release()
	s.AppendSwitch(s, sc.String(name))
}

func (a *commandLineAdapter) AppendSwitchWithValue(name, value string) {
	defer a.Exit("CommandLine", "AppendSwitchWithValue")
	s := a.Struct()
	if s.AppendSwitchWithValue == nil {
		return
	}
	sc := transcoder.NewScratch()
	defer sc.Release()
	s.AppendSwitchWithValue(s, sc.String(name), sc.String(value))
}

func (a *commandLineAdapter) Argv() []string {
	defer a.Exit("CommandLine", "GetArgv")
	s := a.Struct()
	if s.GetArgv == nil {
		return nil
	}
	return takeStringList(s.GetArgv(s))
}

func schemeRegistrarAddCustomScheme(self *capi.SchemeRegistrar, schemeName *capi.String, isStandard, isLocal, isDisplayIsolated int32) int32 {
	defer wrapper.Recover("SchemeRegistrar", "AddCustomScheme")
	r, ok := receiver(SchemeRegistrarCppToC, self, "SchemeRegistrar", "AddCustomScheme")
	if !ok {
		return 0
	}
	if schemeName == nil {
		wrapper.MissingParam("SchemeRegistrar", "AddCustomScheme", "schemeName")
		return 0
	}
	return capi.Bool(r.AddCustomScheme(readString(schemeName), isTrue(isStandard), isTrue(isLocal), isTrue(isDisplayIsolated)))
}

type schemeRegistrarAdapter struct {
	*wrapper.CRef[capi.SchemeRegistrar]
}

func (a *schemeRegistrarAdapter) AddCustomScheme(name string, isStandard, isLocal, isDisplayIsolated bool) bool {
	defer a.Exit("SchemeRegistrar", "AddCustomScheme")
	s := a.Struct()
	if s.AddCustomScheme == nil {
		return false
	}
	sc := transcoder.NewScratch()
	defer sc.Release()
	return isTrue(s.AddCustomScheme(s, sc.String(name), capi.Bool(isStandard), capi.Bool(isLocal), capi.Bool(isDisplayIsolated)))
}
