package prep

import "rtlgen/src/lir"

// mapExpr rewrites e bottom-up: every child is rewritten first, then f is
// applied to the (possibly already-rewritten) node itself. Leaf kinds with
// no children (References, literals, Random) are passed to f unchanged.
func mapExpr(e lir.Expression, f func(lir.Expression) lir.Expression) lir.Expression {
	if e == nil {
		return nil
	}
	switch v := e.(type) {
	case *lir.Subfield:
		e = &lir.Subfield{Expr: mapExpr(v.Expr, f), Field: v.Field, Typ: v.Typ}
	case *lir.Subindex:
		e = &lir.Subindex{Expr: mapExpr(v.Expr, f), Index: v.Index, Typ: v.Typ}
	case *lir.SubAccess:
		e = &lir.SubAccess{Expr: mapExpr(v.Expr, f), Idx: mapExpr(v.Idx, f), Typ: v.Typ}
	case *lir.Mux:
		e = &lir.Mux{Cond: mapExpr(v.Cond, f), Tru: mapExpr(v.Tru, f), Fls: mapExpr(v.Fls, f), Typ: v.Typ}
	case *lir.ValidIf:
		e = &lir.ValidIf{Cond: mapExpr(v.Cond, f), Val: mapExpr(v.Val, f), Typ: v.Typ}
	case *lir.PrimOpExpr:
		args := make([]lir.Expression, len(v.Args))
		for i, a := range v.Args {
			args[i] = mapExpr(a, f)
		}
		e = &lir.PrimOpExpr{Op: v.Op, Args: args, Consts: v.Consts, Typ: v.Typ}
	}
	return f(e)
}

// mapStmtExprs rebuilds s, applying f (via mapExpr) to every expression it
// directly or transitively (through Block) contains. Statement shape itself
// is unchanged; only embedded expressions are rewritten.
func mapStmtExprs(s lir.Statement, f func(lir.Expression) lir.Expression) lir.Statement {
	switch v := s.(type) {
	case *lir.Block:
		stmts := make([]lir.Statement, len(v.Stmts))
		for i, sub := range v.Stmts {
			stmts[i] = mapStmtExprs(sub, f)
		}
		return &lir.Block{Stmts: stmts}
	case *lir.Connect:
		return &lir.Connect{Loc: mapExpr(v.Loc, f), Rhs: mapExpr(v.Rhs, f)}
	case *lir.IsInvalid:
		return &lir.IsInvalid{Target: mapExpr(v.Target, f)}
	case *lir.DefNode:
		return &lir.DefNode{Name: v.Name, Value: mapExpr(v.Value, f), Typ: v.Typ}
	case *lir.DefRegister:
		r := &lir.DefRegister{Name: v.Name, Typ: v.Typ, Clock: v.Clock}
		if v.Reset != nil {
			r.Reset = mapExpr(v.Reset, f)
		}
		if v.Init != nil {
			r.Init = mapExpr(v.Init, f)
		}
		return r
	case *lir.Stop:
		return &lir.Stop{Clock: v.Clock, En: mapExpr(v.En, f), Ret: v.Ret}
	case *lir.Print:
		args := make([]lir.Expression, len(v.Args))
		for i, a := range v.Args {
			args[i] = mapExpr(a, f)
		}
		return &lir.Print{Clock: v.Clock, En: mapExpr(v.En, f), Fmt: v.Fmt, Args: args}
	case *lir.Attach:
		exprs := make([]lir.Expression, len(v.Exprs))
		for i, e := range v.Exprs {
			exprs[i] = mapExpr(e, f)
		}
		return &lir.Attach{Exprs: exprs}
	case *lir.DefInstance:
		ports := make([]lir.PortConnection, len(v.Ports))
		for i, pc := range v.Ports {
			ports[i] = lir.PortConnection{Port: pc.Port, Expr: mapExpr(pc.Expr, f)}
		}
		return &lir.DefInstance{Name: v.Name, Module: v.Module, Ports: ports}
	default:
		return s
	}
}
