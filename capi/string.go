package capi

// String is a UTF-8 string in the boundary heap.
type String struct {
	Ptr uint32
	Len uint32

	// Dtor frees the bytes. Nil for borrowed strings.
	Dtor func(ptr, length uint32)
}

// Empty reports whether s holds no bytes.
func (s *String) Empty() bool {
	return s == nil || s.Len == 0
}

// Clear frees an owned string and zeroes it.
func (s *String) Clear() {
	if s == nil {
		return
	}
	if s.Dtor != nil && s.Ptr != 0 {
		s.Dtor(s.Ptr, s.Len)
	}
	*s = String{}
}

// List is a sequence in the boundary heap: Count elements starting at Ptr.
type List struct {
	Count uint32
	Ptr   uint32

	// Dtor frees the array and anything it owns. Nil for borrowed lists.
	Dtor func(ptr, count uint32)
}

// Clear frees an owned list and zeroes it.
func (l *List) Clear() {
	if l == nil {
		return
	}
	if l.Dtor != nil && l.Ptr != 0 {
		l.Dtor(l.Ptr, l.Count)
	}
	*l = List{}
}
