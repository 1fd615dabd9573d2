package cef

import (
	"slices"
	"sync"
)

// List is an engine-side ListValue holding string and int32 entries.
// Unset entries are null.
type List struct {
	mu       sync.RWMutex
	values   []any
	readOnly bool
}

// NewList returns a list holding values. Entries that are neither string
// nor int32 are stored as null.
func NewList(values ...any) *List {
	l := &List{values: make([]any, len(values))}
	for i, v := range values {
		switch v := v.(type) {
		case string, int32:
			l.values[i] = v
		case int:
			l.values[i] = int32(v)
		}
	}
	return l
}

// ListValues copies the entries of any ListValue into a slice of string,
// int32 and nil values.
func ListValues(l ListValue) []any {
	if l == nil {
		return nil
	}
	if own, ok := l.(*List); ok {
		return own.Values()
	}
	out := make([]any, l.Size())
	for i := range out {
		switch l.GetType(i) {
		case ValueTypeString:
			out[i] = l.GetString(i)
		case ValueTypeInt:
			out[i] = l.GetInt(i)
		}
	}
	return out
}

// Values returns a copy of the entries.
func (l *List) Values() []any {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.values)
}

// SetReadOnly freezes the list. Setters fail afterwards.
func (l *List) SetReadOnly() {
	l.mu.Lock()
	l.readOnly = true
	l.mu.Unlock()
}

func (l *List) IsValid() bool { return true }

func (l *List) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.values)
}

func (l *List) SetSize(size int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.readOnly || size < 0 {
		return false
	}
	next := make([]any, size)
	copy(next, l.values)
	l.values = next
	return true
}

func (l *List) GetType(index int) ValueType {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if index < 0 || index >= len(l.values) {
		return ValueTypeInvalid
	}
	switch l.values[index].(type) {
	case string:
		return ValueTypeString
	case int32:
		return ValueTypeInt
	default:
		return ValueTypeNull
	}
}

func (l *List) GetString(index int) string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if index < 0 || index >= len(l.values) {
		return ""
	}
	s, _ := l.values[index].(string)
	return s
}

func (l *List) SetString(index int, value string) bool {
	return l.set(index, value)
}

func (l *List) GetInt(index int) int32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if index < 0 || index >= len(l.values) {
		return 0
	}
	v, _ := l.values[index].(int32)
	return v
}

func (l *List) SetInt(index int, value int32) bool {
	return l.set(index, value)
}

// set grows the list when index is past the end.
func (l *List) set(index int, v any) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.readOnly || index < 0 {
		return false
	}
	if index >= len(l.values) {
		next := make([]any, index+1)
		copy(next, l.values)
		l.values = next
	}
	l.values[index] = v
	return true
}

// Message is an engine-side ProcessMessage.
type Message struct {
	name string
	args *List
}

// NewProcessMessage creates a message with the given arguments.
func NewProcessMessage(name string, args ...any) *Message {
	return &Message{name: name, args: NewList(args...)}
}

func (m *Message) IsValid() bool { return true }

func (m *Message) Name() string { return m.name }

func (m *Message) ArgumentList() ListValue { return m.args }

// Arguments returns the message's list.
func (m *Message) Arguments() *List { return m.args }
