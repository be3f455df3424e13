package prep

import (
	"rtlgen/src/lir"
	"rtlgen/src/lir/types"
)

// widthMatchedOps are the binary primitive operations whose two arguments
// Verilog requires (or at least strongly prefers) at equal bit width;
// mismatches elsewhere (e.g. Cat, Dshl's shift amount) are intentional.
var widthMatchedOps = map[types.PrimOp]bool{
	types.Add: true, types.Sub: true, types.Mul: true,
	types.And: true, types.Or: true, types.Xor: true,
}

// WidthWrap inserts explicit Pad operations so that every width-matched
// binary primop's operands share a width (spec.md §4.9). It pads only the
// operands of the ops in widthMatchedOps; result widths are not adjusted. The Pad
// nodes introduced here are not yet literal/ref/subfield themselves; Lift
// (the Prep pass proper) runs afterward and flattens them into fresh nodes.
func WidthWrap(m *lir.InternalModule) *lir.InternalModule {
	body := mapStmtExprs(m.Body, func(e lir.Expression) lir.Expression {
		op, ok := e.(*lir.PrimOpExpr)
		if !ok || len(op.Args) != 2 || !widthMatchedOps[op.Op] {
			return e
		}
		w0, w1 := op.Args[0].Type().Width, op.Args[1].Type().Width
		if w0 == w1 {
			return e
		}
		args := make([]lir.Expression, 2)
		copy(args, op.Args)
		if w0 < w1 {
			args[0] = pad(args[0], w1)
		} else {
			args[1] = pad(args[1], w0)
		}
		return &lir.PrimOpExpr{Op: op.Op, Args: args, Consts: op.Consts, Typ: op.Typ}
	})
	return &lir.InternalModule{Name: m.Name, Ports: m.Ports, Body: body}
}

func pad(e lir.Expression, width int) lir.Expression {
	t := e.Type()
	t.Width = width
	return &lir.PrimOpExpr{Op: types.Pad, Args: []lir.Expression{e}, Consts: []int64{int64(width)}, Typ: t}
}
