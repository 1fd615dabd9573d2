package wrapper

import (
	"reflect"
	"sync"

	"github.com/wippyai/cef-bridge/capi"
)

// Table maps handles to the structs the bridge built for Go objects.
// Handle 0 is reserved and always invalid.
//
// The lock guards bookkeeping only. Nothing in Table calls into a bound
// object while holding it.
type Table struct {
	entries  []entry
	freeList []uint32
	index    map[identity]uint32
	mu       sync.RWMutex
}

type entry struct {
	object any
	base   *capi.Base
	tag    Type
	valid  bool
}

type identity struct {
	object any
	tag    Type
}

var handles = NewTable()

// Handles returns the process-wide table used by every binding.
func Handles() *Table {
	return handles
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries:  make([]entry, 0, 64),
		freeList: make([]uint32, 0, 16),
		index:    make(map[identity]uint32),
	}
}

// Intern returns the live struct registered for (tag, object) with one more
// reference, or calls build, registers the result and reports created.
// Objects whose dynamic type is not a pointer are never deduplicated.
func (t *Table) Intern(tag Type, object any, build func() *capi.Base) (base *capi.Base, created bool) {
	key, keyed := identityOf(tag, object)

	t.mu.Lock()
	defer t.mu.Unlock()

	if keyed {
		if h, ok := t.index[key]; ok {
			e := t.entries[h-1]
			if e.valid && e.base.TryAddRef() {
				return e.base, false
			}
		}
	}

	base = build()
	e := entry{
		object: object,
		base:   base,
		tag:    tag,
		valid:  true,
	}

	var handle uint32
	if len(t.freeList) > 0 {
		handle = t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.entries[handle-1] = e
	} else {
		t.entries = append(t.entries, e)
		handle = uint32(len(t.entries))
	}
	base.Handle = handle

	if keyed {
		t.index[key] = handle
	}
	return base, true
}

// Lookup returns the tag and object for a struct. The struct must be the
// one registered under its handle; a forged or stale handle fails.
func (t *Table) Lookup(base *capi.Base) (Type, any, bool) {
	if base == nil || base.Handle == 0 {
		return TypeUnknown, nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := base.Handle - 1
	if int(idx) >= len(t.entries) {
		return TypeUnknown, nil, false
	}

	e := t.entries[idx]
	if !e.valid || e.base != base {
		return TypeUnknown, nil, false
	}
	return e.tag, e.object, true
}

// Remove drops the entry for a struct and returns its object.
func (t *Table) Remove(base *capi.Base) (any, bool) {
	if base == nil || base.Handle == 0 {
		return nil, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	handle := base.Handle
	idx := handle - 1
	if int(idx) >= len(t.entries) {
		return nil, false
	}

	e := &t.entries[idx]
	if !e.valid || e.base != base {
		return nil, false
	}

	object := e.object
	if key, keyed := identityOf(e.tag, object); keyed && t.index[key] == handle {
		delete(t.index, key)
	}

	*e = entry{}
	t.freeList = append(t.freeList, handle)
	return object, true
}

// Len returns the number of live entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, e := range t.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Each iterates over live entries until fn returns false.
func (t *Table) Each(fn func(handle uint32, tag Type, object any) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i, e := range t.entries {
		if e.valid {
			if !fn(uint32(i+1), e.tag, e.object) {
				break
			}
		}
	}
}

func identityOf(tag Type, object any) (identity, bool) {
	if object == nil {
		return identity{}, false
	}
	switch reflect.TypeOf(object).Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return identity{object: object, tag: tag}, true
	default:
		return identity{}, false
	}
}
