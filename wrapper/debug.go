package wrapper

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Binding describes one registered binding and its live instance count.
type Binding struct {
	Name      string
	Type      Type
	Direction Direction
	Live      int64
}

type counter struct {
	name string
	tag  Type
	dir  Direction
	live atomic.Int64
}

var registry struct {
	counters []*counter
	mu       sync.Mutex
}

func newCounter(name string, tag Type, dir Direction) *counter {
	c := &counter{name: name, tag: tag, dir: dir}
	registry.mu.Lock()
	registry.counters = append(registry.counters, c)
	registry.mu.Unlock()
	return c
}

func (c *counter) inc() {
	if debugChecks {
		c.live.Add(1)
	}
}

func (c *counter) dec() {
	if debugChecks {
		c.live.Add(-1)
	}
}

// Bindings lists every binding created so far, sorted by name and direction.
// Live counts are always zero in release builds.
func Bindings() []Binding {
	registry.mu.Lock()
	out := make([]Binding, 0, len(registry.counters))
	for _, c := range registry.counters {
		out = append(out, Binding{
			Name:      c.name,
			Type:      c.tag,
			Direction: c.dir,
			Live:      c.live.Load(),
		})
	}
	registry.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Direction < out[j].Direction
	})
	return out
}
