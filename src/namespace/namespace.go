// Package namespace generates fresh identifiers, disjoint from any name
// already used in the module being lowered.
//
// vslc's util/label.go solves the same problem (assembly jump labels) with a
// process-wide goroutine and three channels (ListenLabel/NewLabel/
// CloseLabel) so that concurrent compiler worker threads can share one label
// counter. That sharing has no counterpart here: each module's lowering
// uses its own private Namespace, never touched by another module's lowering
// even when backend.Compile runs modules on parallel workers, so a Namespace
// is a plain per-module struct instead of a shared singleton.
package namespace

import "fmt"

// Namespace tracks every identifier already used in one module and hands
// out fresh ones on request.
type Namespace struct {
	used     map[string]bool
	counters map[string]int
}

// New returns a Namespace seeded with the names already present in the
// module (so generated names never collide with user-declared ones).
func New(seed []string) *Namespace {
	ns := &Namespace{
		used:     make(map[string]bool, len(seed)+16),
		counters: make(map[string]int, 4),
	}
	for _, n := range seed {
		ns.used[n] = true
	}
	return ns
}

// Reserve marks name as used, so future Fresh calls skip it.
func (ns *Namespace) Reserve(name string) {
	ns.used[name] = true
}

// Fresh returns a new identifier of the form "<prefix>_<n>" that has not
// been used before in this Namespace, and reserves it.
func (ns *Namespace) Fresh(prefix string) string {
	for {
		n := ns.counters[prefix]
		ns.counters[prefix] = n + 1
		name := fmt.Sprintf("%s_%d", prefix, n)
		if !ns.used[name] {
			ns.used[name] = true
			return name
		}
	}
}

// FreshRand returns the next "_RAND_N" identifier used by randomization
// scaffolding; it has its own counter so RAND numbering stays dense
// regardless of how many other fresh names were allocated in between.
func (ns *Namespace) FreshRand() string {
	return ns.Fresh("_RAND")
}
