package bridge

import (
	"github.com/wippyai/cef-bridge/capi"
	"github.com/wippyai/cef-bridge/cef"
	"github.com/wippyai/cef-bridge/transcoder"
	"github.com/wippyai/cef-bridge/wrapper"
)

var (
	ListValueCppToC = wrapper.NewCppToC[cef.ListValue, capi.ListValue]("ListValue", wrapper.TypeListValue)
	ListValueCToCpp = wrapper.NewCToCpp[cef.ListValue, capi.ListValue]("ListValue", wrapper.TypeListValue)
)

func init() {
	ListValueCppToC.SetBuilder(func(cef.ListValue) *capi.ListValue {
		return &capi.ListValue{
			IsValid:   listValueIsValid,
			GetSize:   listValueGetSize,
			SetSize:   listValueSetSize,
			GetType:   listValueGetType,
			GetString: listValueGetString,
			SetString: listValueSetString,
			GetInt:    listValueGetInt,
			SetInt:    listValueSetInt,
		}
	})
	ListValueCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.ListValue]) cef.ListValue {
		return &listValueAdapter{CRef: ref}
	})
}

func listValueIsValid(self *capi.ListValue) int32 {
	defer wrapper.Recover("ListValue", "IsValid")
	l, ok := receiver(ListValueCppToC, self, "ListValue", "IsValid")
	if !ok {
		return 0
	}
	return capi.Bool(l.IsValid())
}

func listValueGetSize(self *capi.ListValue) uint32 {
	defer wrapper.Recover("ListValue", "GetSize")
	l, ok := receiver(ListValueCppToC, self, "ListValue", "GetSize")
	if !ok {
		return 0
	}
	return uint32(l.Size())
}

func listValueSetSize(self *capi.ListValue, size uint32) int32 {
	defer wrapper.Recover("ListValue", "SetSize")
	l, ok := receiver(ListValueCppToC, self, "ListValue", "SetSize")
	if !ok {
		return 0
	}
	return capi.Bool(l.SetSize(int(size)))
}

func listValueGetType(self *capi.ListValue, index uint32) int32 {
	defer wrapper.Recover("ListValue", "GetType")
	l, ok := receiver(ListValueCppToC, self, "ListValue", "GetType")
	if !ok {
		return int32(cef.ValueTypeInvalid)
	}
	return int32(l.GetType(int(index)))
}

func listValueGetString(self *capi.ListValue, index uint32) capi.String {
	defer wrapper.Recover("ListValue", "GetString")
	l, ok := receiver(ListValueCppToC, self, "ListValue", "GetString")
	if !ok {
		return capi.String{}
	}
	return newString("ListValue", "GetString", l.GetString(int(index)))
}

func listValueSetString(self *capi.ListValue, index uint32, value *capi.String) int32 {
	defer wrapper.Recover("ListValue", "SetString")
	l, ok := receiver(ListValueCppToC, self, "ListValue", "SetString")
	if !ok {
		return 0
	}
	return capi.Bool(l.SetString(int(index), readString(value)))
}

func listValueGetInt(self *capi.ListValue, index uint32) int32 {
	defer wrapper.Recover("ListValue", "GetInt")
	l, ok := receiver(ListValueCppToC, self, "ListValue", "GetInt")
	if !ok {
		return 0
	}
	return l.GetInt(int(index))
}

func listValueSetInt(self *capi.ListValue, index uint32, value int32) int32 {
	defer wrapper.Recover("ListValue", "SetInt")
	l, ok := receiver(ListValueCppToC, self, "ListValue", "SetInt")
	if !ok {
		return 0
	}
	return capi.Bool(l.SetInt(int(index), value))
}

type listValueAdapter struct {
	*wrapper.CRef[capi.ListValue]
}

func (a *listValueAdapter) IsValid() bool {
	defer a.Exit("ListValue", "IsValid")
	s := a.Struct()
	if s.IsValid == nil {
		return false
	}
	return isTrue(s.IsValid(s))
}

func (a *listValueAdapter) Size() int {
	defer a.Exit("ListValue", "GetSize")
	s := a.Struct()
	if s.GetSize == nil {
		return 0
	}
	return int(s.GetSize(s))
}

func (a *listValueAdapter) SetSize(size int) bool {
	defer a.Exit("ListValue", "SetSize")
	s := a.Struct()
	if s.SetSize == nil || size < 0 {
		return false
	}
	return isTrue(s.SetSize(s, uint32(size)))
}

func (a *listValueAdapter) GetType(index int) cef.ValueType {
	defer a.Exit("ListValue", "GetType")
	s := a.Struct()
	if s.GetType == nil || index < 0 {
		return cef.ValueTypeInvalid
	}
	return cef.ValueType(s.GetType(s, uint32(index)))
}

func (a *listValueAdapter) GetString(index int) string {
	defer a.Exit("ListValue", "GetString")
	s := a.Struct()
	if s.GetString == nil || index < 0 {
		return ""
	}
	return takeString(s.GetString(s, uint32(index)))
}

func (a *listValueAdapter) SetString(index int, value string) bool {
	defer a.Exit("ListValue", "SetString")
	s := a.Struct()
	if s.SetString == nil || index < 0 {
		return false
	}
	sc := transcoder.NewScratch()
	defer sc.Release()
	return isTrue(s.SetString(s, uint32(index), sc.String(value)))
}

func (a *listValueAdapter) GetInt(index int) int32 {
	defer a.Exit("ListValue", "GetInt")
	s := a.Struct()
	if s.GetInt == nil || index < 0 {
		return 0
	}
	return s.GetInt(s, uint32(index))
}

func (a *listValueAdapter) SetInt(index int, value int32) bool {
	defer a.Exit("ListValue", "SetInt")
	s := a.Struct()
	if s.SetInt == nil || index < 0 {
		return false
	}
	return isTrue(s.SetInt(s, uint32(index), value))
}

var (
	ProcessMessageCppToC = wrapper.NewCppToC[cef.ProcessMessage, capi.ProcessMessage]("ProcessMessage", wrapper.TypeProcessMessage)
	ProcessMessageCToCpp = wrapper.NewCToCpp[cef.ProcessMessage, capi.ProcessMessage]("ProcessMessage", wrapper.TypeProcessMessage)
)

func init() {
	ProcessMessageCppToC.SetBuilder(func(cef.ProcessMessage) *capi.ProcessMessage {
		return &capi.ProcessMessage{
			IsValid:         processMessageIsValid,
			GetName:         processMessageGetName,
			GetArgumentList: processMessageGetArgumentList,
		}
	})
	ProcessMessageCToCpp.SetBuilder(func(ref *wrapper.CRef[capi.ProcessMessage]) cef.ProcessMessage {
		return &processMessageAdapter{CRef: ref}
	})
}

func processMessageIsValid(self *capi.ProcessMessage) int32 {
	defer wrapper.Recover("ProcessMessage", "IsValid")
	m, ok := receiver(ProcessMessageCppToC, self, "ProcessMessage", "IsValid")
	if !ok {
		return 0
	}
	return capi.Bool(m.IsValid())
}

func processMessageGetName(self *capi.ProcessMessage) capi.String {
	defer wrapper.Recover("ProcessMessage", "GetName")
	m, ok := receiver(ProcessMessageCppToC, self, "ProcessMessage", "GetName")
	if !ok {
		return capi.String{}
	}
	return newString("ProcessMessage", "GetName", m.Name())
}

func processMessageGetArgumentList(self *capi.ProcessMessage) *capi.ListValue {
	defer wrapper.Recover("ProcessMessage", "GetArgumentList")
	m, ok := receiver(ProcessMessageCppToC, self, "ProcessMessage", "GetArgumentList")
	if !ok {
		return nil
	}
	return ListValueCppToC.Wrap(m.ArgumentList())
}

type processMessageAdapter struct {
	*wrapper.CRef[capi.ProcessMessage]
}

func (a *processMessageAdapter) IsValid() bool {
	defer a.Exit("ProcessMessage", "IsValid")
	s := a.Struct()
	if s.IsValid == nil {
		return false
	}
	return isTrue(s.IsValid(s))
}

func (a *processMessageAdapter) Name() string {
	defer a.Exit("ProcessMessage", "GetName")
	s := a.Struct()
	if s.GetName == nil {
		return ""
	}
	return takeString(s.GetName(s))
}

func (a *processMessageAdapter) ArgumentList() cef.ListValue {
	defer a.Exit("ProcessMessage", "GetArgumentList")
	s := a.Struct()
	if s.GetArgumentList == nil {
		return nil
	}
	return ListValueCToCpp.Wrap(s.GetArgumentList(s))
}
