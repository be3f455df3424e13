package prep

import (
	"rtlgen/src/lir"
	"rtlgen/src/lir/types"
	"rtlgen/src/namespace"
)

// Lift is the "Prep" pass of spec.md §4.9: it lifts every primitive-op
// argument that is not a literal, reference or subfield out into a fresh
// DefNode bound just before the statement that uses it, so
// lir.IsPrimOpArg holds for every primop argument the emitter will see.
func Lift(m *lir.InternalModule) (*lir.InternalModule, error) {
	ns := namespace.New(lir.CollectNames(m))
	l := &lifter{ns: ns}
	body := &lir.Block{Stmts: l.liftStmt(m.Body)}
	return &lir.InternalModule{Name: m.Name, Ports: m.Ports, Body: body}, nil
}

type lifter struct {
	ns *namespace.Namespace
}

func (l *lifter) liftStmt(s lir.Statement) []lir.Statement {
	switch v := s.(type) {
	case nil:
		return nil
	case *lir.Block:
		out := make([]lir.Statement, 0, len(v.Stmts))
		for _, sub := range v.Stmts {
			out = append(out, l.liftStmt(sub)...)
		}
		return out

	case *lir.Connect:
		pre1, loc := l.liftExpr(v.Loc)
		pre2, rhs := l.liftExpr(v.Rhs)
		return finish(&lir.Connect{Loc: loc, Rhs: rhs}, pre1, pre2)

	case *lir.DefNode:
		pre, val := l.liftExpr(v.Value)
		return finish(&lir.DefNode{Name: v.Name, Value: val, Typ: v.Typ}, pre)

	case *lir.DefRegister:
		var pre []lir.Statement
		reset, init := v.Reset, v.Init
		if reset != nil {
			var p []lir.Statement
			p, reset = l.liftExpr(reset)
			pre = append(pre, p...)
		}
		if init != nil {
			var p []lir.Statement
			p, init = l.liftExpr(init)
			pre = append(pre, p...)
		}
		return finish(&lir.DefRegister{Name: v.Name, Typ: v.Typ, Clock: v.Clock, Reset: reset, Init: init}, pre)

	case *lir.Stop:
		pre, en := l.liftExpr(v.En)
		return finish(&lir.Stop{Clock: v.Clock, En: en, Ret: v.Ret}, pre)

	case *lir.Print:
		pre, en := l.liftExpr(v.En)
		args := make([]lir.Expression, len(v.Args))
		for i, a := range v.Args {
			p, e := l.liftExpr(a)
			pre = append(pre, p...)
			args[i] = e
		}
		return finish(&lir.Print{Clock: v.Clock, En: en, Fmt: v.Fmt, Args: args}, pre)

	case *lir.DefInstance:
		var pre []lir.Statement
		ports := make([]lir.PortConnection, len(v.Ports))
		for i, pc := range v.Ports {
			p, e := l.liftExpr(pc.Expr)
			pre = append(pre, p...)
			ports[i] = lir.PortConnection{Port: pc.Port, Expr: e}
		}
		return finish(&lir.DefInstance{Name: v.Name, Module: v.Module, Ports: ports}, pre)

	default:
		// IsInvalid, DefWire, DefMemory, Attach, Skip carry no primop
		// arguments of their own.
		return []lir.Statement{s}
	}
}

// liftExpr recursively lifts non-simple primop arguments out of e, and
// returns the statements that must precede whatever statement embeds e,
// plus e itself (rewritten wherever a lift occurred).
func (l *lifter) liftExpr(e lir.Expression) ([]lir.Statement, lir.Expression) {
	switch v := e.(type) {
	case *lir.PrimOpExpr:
		var pre []lir.Statement
		args := make([]lir.Expression, len(v.Args))
		for i, a := range v.Args {
			p, a2 := l.liftExpr(a)
			pre = append(pre, p...)
			if !lir.IsPrimOpArg(a2) {
				name := l.ns.Fresh("_T")
				pre = append(pre, &lir.DefNode{Name: name, Value: a2, Typ: a2.Type()})
				a2 = &lir.Reference{Name: name, Ref: types.NodeRef, Typ: a2.Type()}
			}
			args[i] = a2
		}
		return pre, &lir.PrimOpExpr{Op: v.Op, Args: args, Consts: v.Consts, Typ: v.Typ}

	case *lir.Mux:
		p1, c := l.liftExpr(v.Cond)
		p2, t := l.liftExpr(v.Tru)
		p3, f := l.liftExpr(v.Fls)
		return appendExprPre(p1, p2, p3), &lir.Mux{Cond: c, Tru: t, Fls: f, Typ: v.Typ}

	case *lir.ValidIf:
		p1, c := l.liftExpr(v.Cond)
		p2, val := l.liftExpr(v.Val)
		return appendExprPre(p1, p2), &lir.ValidIf{Cond: c, Val: val, Typ: v.Typ}

	case *lir.SubAccess:
		p1, ex := l.liftExpr(v.Expr)
		p2, idx := l.liftExpr(v.Idx)
		return appendExprPre(p1, p2), &lir.SubAccess{Expr: ex, Idx: idx, Typ: v.Typ}

	case *lir.Subfield:
		p, ex := l.liftExpr(v.Expr)
		return p, &lir.Subfield{Expr: ex, Field: v.Field, Typ: v.Typ}

	case *lir.Subindex:
		p, ex := l.liftExpr(v.Expr)
		return p, &lir.Subindex{Expr: ex, Index: v.Index, Typ: v.Typ}

	default:
		return nil, e
	}
}

// finish concatenates every pre-statement chunk (in order) and appends stmt.
func finish(stmt lir.Statement, pres ...[]lir.Statement) []lir.Statement {
	var out []lir.Statement
	for _, p := range pres {
		out = append(out, p...)
	}
	return append(out, stmt)
}

func appendExprPre(chunks ...[]lir.Statement) []lir.Statement {
	var out []lir.Statement
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}
