package verilog

import (
	"rtlgen/src/lir"
	"rtlgen/src/lir/types"
	"rtlgen/src/namespace"
	"rtlgen/src/netlist"
)

// buildNetlist performs the single pre-scan of a module body (C6) that
// indexes the right-hand side of every connect, node and invalid
// declaration, so later lowering stages can ask "what drives this wire or
// node". Order of insertion is preserved (first Connect/DefNode/IsInvalid
// for a given target wins the position, per netlist.Netlist.Set), matching
// spec.md §4.6.
func buildNetlist(body lir.Statement, ns *namespace.Namespace) *netlist.Netlist {
	nl := netlist.New()
	walkNetlist(body, nl, ns)
	return nl
}

func walkNetlist(s lir.Statement, nl *netlist.Netlist, ns *namespace.Namespace) {
	if s == nil {
		return
	}
	switch v := s.(type) {
	case *lir.Block:
		for _, sub := range v.Stmts {
			walkNetlist(sub, nl, ns)
		}
	case *lir.Connect:
		nl.Set(v.Loc, v.Rhs)
	case *lir.IsInvalid:
		tmp := &lir.Reference{
			Name: ns.Fresh("_GEN"),
			Ref:  types.WireRef,
			Typ:  v.Target.Type(),
		}
		nl.Set(v.Target, tmp)
	case *lir.DefNode:
		nl.Set(&lir.Reference{Name: v.Name, Ref: types.NodeRef, Typ: v.Typ}, v.Value)
	default:
		// DefWire, DefRegister, DefMemory, DefInstance, Attach, Stop, Print,
		// Skip contribute no netlist entries of their own.
	}
}
