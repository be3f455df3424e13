// Package prep implements the C9 pre-passes of spec.md §4.9: the
// normalizations that must run over a module before the verilog package's
// emitter sees it, so every invariant the emitter assumes already holds.
//
// vslc's ir.Optimise (src/ir/optimise.go) is the closest teacher analogue:
// one exported entry point per concern, each doing a single recursive
// descent over the tree and rewriting nodes in place as it unwinds. Our
// Statement/Expression values are immutable interface values rather than
// vslc's mutable *Node, so every pass here rebuilds the subtree it touches
// and returns the replacement instead of mutating through a pointer.
package prep

import "rtlgen/src/lir"

// Run applies all four pre-passes to m, in the order spec.md §4.9 lists
// them, and returns the normalized module.
func Run(m *lir.InternalModule) (*lir.InternalModule, error) {
	m, err := ModulusCleanup(m)
	if err != nil {
		return nil, err
	}
	m = WidthWrap(m)
	m = IdentifierRename(m)
	return Lift(m)
}
