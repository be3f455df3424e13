package verilog

import (
	"rtlgen/src/lir"
	"rtlgen/src/lir/types"
	"rtlgen/src/netlist"
)

// registerUpdate renders the always-block body for register r (C3,
// spec.md §4.3): "next value" is Mux(rst, init, netlist(r)) unless init is
// literally r itself (the async-identity shortcut), in which case
// netlist(r) drives directly.
func registerUpdate(w *Writer, r *lir.DefRegister, nl *netlist.Netlist) error {
	target := &lir.Reference{Name: r.Name, Ref: types.RegisterRef, Typ: r.Typ}

	// netlist(r): the register's own target is RegisterRef, which
	// Netlist.Resolve deliberately never auto-dereferences (that guard is
	// for references met *while descending* an expression tree); here we
	// want the Connect that targeted r directly, so look it up, falling
	// back to the bare reference for an unconnected (dangling) register.
	driver := target
	if d, ok := nl.Lookup(target); ok {
		driver = d
	}

	var next lir.Expression
	switch {
	case r.Reset == nil:
		next = driver
	case isSelfReference(r.Init, r.Name):
		next = driver
	default:
		next = &lir.Mux{Cond: r.Reset, Tru: r.Init, Fls: driver, Typ: r.Typ}
	}

	counts := make(map[lir.Expression]int)
	return addUpdate(w, target, next, counts, nl)
}

// isSelfReference reports whether e is exactly the bare reference named
// name, i.e. the register's own current value (the async-identity
// shortcut's "init equals r itself" test).
func isSelfReference(e lir.Expression, name string) bool {
	ref, ok := e.(*lir.Reference)
	return ok && ref.Name == name
}

// addUpdate performs the bounded mux-tree recursive descent of spec.md
// §4.3. counts is keyed by mux pointer IDENTITY, not structural equality
// (see DESIGN.md's Open Question resolution): the same *lir.Mux object
// reached via two different paths shares one counter, but a structurally
// identical Mux built fresh at another site gets its own budget.
func addUpdate(w *Writer, target lir.Expression, e lir.Expression, counts map[lir.Expression]int, nl *netlist.Netlist) error {
	if isSelfReference(e, lir.LoweredName(target)) {
		return nil
	}

	resolved := e
	if lir.IsRefChain(e) && lir.RefKindOf(e).IsWireLike() {
		resolved = nl.Resolve(e)
	}

	if mux, ok := resolved.(*lir.Mux); ok && counts[mux] < 4 {
		counts[mux]++
		return addMux(w, target, mux, counts, nl)
	}

	tok, err := RenderExpr(resolved)
	if err != nil {
		return err
	}
	tgtTok, err := RenderExpr(target)
	if err != nil {
		return err
	}
	w.Line("%s <= %s;", tgtTok, tok)
	return nil
}

func addMux(w *Writer, target lir.Expression, m *lir.Mux, counts map[lir.Expression]int, nl *netlist.Netlist) error {
	condTok, err := RenderExpr(m.Cond)
	if err != nil {
		return err
	}

	truEmpty := isSelfReference(m.Tru, lir.LoweredName(target))
	flsEmpty := isSelfReference(m.Fls, lir.LoweredName(target))

	switch {
	case !truEmpty && !flsEmpty:
		w.Line("if (%s) begin", condTok)
		w.Indent()
		if err := addUpdate(w, target, m.Tru, counts, nl); err != nil {
			return err
		}
		w.Dedent()
		w.Line("end else begin")
		w.Indent()
		if err := addUpdate(w, target, m.Fls, counts, nl); err != nil {
			return err
		}
		w.Dedent()
		w.Line("end")
	case !truEmpty:
		w.Line("if (%s) begin", condTok)
		w.Indent()
		if err := addUpdate(w, target, m.Tru, counts, nl); err != nil {
			return err
		}
		w.Dedent()
		w.Line("end")
	case !flsEmpty:
		w.Line("if (!(%s)) begin", condTok)
		w.Indent()
		if err := addUpdate(w, target, m.Fls, counts, nl); err != nil {
			return err
		}
		w.Dedent()
		w.Line("end")
	default:
		// Both branches are no-ops: nothing to emit.
	}
	return nil
}
