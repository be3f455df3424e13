// Package netlist provides the per-module driver lookup used by the Verilog
// back end: an insertion-ordered map from a connect/node target's canonical
// key to its driving expression.
//
// The shape is grounded on the symTab type in vslc's src/ir/llvm/transform.go
// (a name-to-value map built by one pass over a function body before codegen
// references it), minus its sync.RWMutex: a module's netlist is built and
// consumed by a single lowering pass over that one module (see spec.md §5),
// so no concurrent access ever occurs.
package netlist

import "rtlgen/src/lir"

// entry records a key, and the driver first set for it, at the key's
// first-insertion position, letting Netlist preserve that order even though
// lookups (which see the latest driver) go through a map.
type entry struct {
	key    string
	driver lir.Expression
}

// Netlist maps a connect/node target to its driving expression, keyed by
// lir.Expression.Key() (value equality, not identity) per spec.md §3.
type Netlist struct {
	order   []entry
	byKey   map[string]lir.Expression
}

// New returns an empty Netlist.
func New() *Netlist {
	return &Netlist{byKey: make(map[string]lir.Expression, 32)}
}

// Set records that target is driven by driver, overwriting any prior driver
// for the same target (later connects win, matching last-assignment-wins
// LIR semantics).
func (n *Netlist) Set(target, driver lir.Expression) {
	key := target.Key()
	if _, ok := n.byKey[key]; !ok {
		n.order = append(n.order, entry{key: key, driver: driver})
	}
	n.byKey[key] = driver
}

// Lookup returns the driver of target and whether one was found.
func (n *Netlist) Lookup(target lir.Expression) (lir.Expression, bool) {
	d, ok := n.byKey[target.Key()]
	return d, ok
}

// Resolve follows target through the netlist once if it is a Wire or Node
// reference (per spec.md §3's invariant that only Wire/Node references are
// ever dereferenced this way); any other reference kind, or a target with no
// recorded driver, is returned unchanged.
func (n *Netlist) Resolve(target lir.Expression) lir.Expression {
	if !lir.IsRefChain(target) || !lir.RefKindOf(target).IsWireLike() {
		return target
	}
	if d, ok := n.Lookup(target); ok {
		return d
	}
	return target
}
