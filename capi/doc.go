// Package capi defines the boundary ABI.
//
// Every bound interface is a struct whose first member is either Base or the
// struct of the interface it refines, followed by one function field per
// method in declaration order. A nil function field means the implementing
// side did not supply that method. New methods are only ever appended, so
// callers built against an older layout keep working.
//
// Value conventions:
//
//	bool            int32 0/1
//	enum            int32
//	string (in)     *String, borrowed for the duration of the call
//	string (out)    *String filled by the callee, owned by the caller
//	string (ret)    String returned by value, caller calls Clear
//	sequence        (count, ptr) pairs or List, pointing into the heap
//	object          *Struct with one reference transferred to the receiver
package capi
