package idl

import (
	"github.com/wippyai/cef-bridge/wrapper"
	"go.bytecodealliance.org/wit"
)

// Class is the translation rule applied to a parameter or result.
type Class uint8

const (
	Simple Class = iota
	Bool
	Enum
	StringByRef
	StringOut
	StringUserFree
	RefPtrSame
	RefPtrDiff
	RefPtrOut
	SimpleVec
	StringVec
	BoolByRef
	SimpleByRef
	Struct
)

var classNames = [...]string{
	Simple:         "simple",
	Bool:           "bool",
	Enum:           "enum",
	StringByRef:    "string_byref_const",
	StringOut:      "string_byref",
	StringUserFree: "string_userfree",
	RefPtrSame:     "refptr_same",
	RefPtrDiff:     "refptr_diff",
	RefPtrOut:      "refptr_byref",
	SimpleVec:      "simple_vec",
	StringVec:      "string_vec",
	BoolByRef:      "bool_byref",
	SimpleByRef:    "simple_byref",
	Struct:         "struct",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

// Side is where an interface is implemented.
type Side uint8

const (
	// Engine interfaces are implemented by the browser engine and called by
	// client code.
	Engine Side = iota
	// Client interfaces are implemented by client code and called by the
	// engine.
	Client
)

func (s Side) String() string {
	if s == Client {
		return "client"
	}
	return "engine"
}

type Param struct {
	Name string
	// Ref names the referenced interface for the refptr classes.
	Ref string
	// Type is the WIT type of simple values, value structs and vector
	// elements.
	Type     wit.Type
	Class    Class
	Required bool
}

type Method struct {
	Name   string
	Field  string
	Params []Param
	Result *Param
}

type Interface struct {
	Name    string
	Parent  string
	Methods []Method
	Type    wrapper.Type
	Side    Side
}

func p(name string, class Class, t wit.Type) Param {
	return Param{Name: name, Class: class, Type: t, Required: true}
}

func ref(name string, class Class, iface string) Param {
	return Param{Name: name, Class: class, Ref: iface, Required: true}
}

func optional(param Param) Param {
	param.Required = false
	return param
}

func ret(class Class, t wit.Type) *Param {
	return &Param{Class: class, Type: t}
}

func retRef(class Class, iface string) *Param {
	return &Param{Class: class, Ref: iface}
}

func m(name, field string, result *Param, params ...Param) Method {
	return Method{Name: name, Field: field, Result: result, Params: params}
}
