package prep

import (
	"github.com/pkg/errors"

	"rtlgen/src/lir"
	"rtlgen/src/lir/types"
)

// ErrMalformedIR classifies a pre-pass failure the same way the emitter
// does (spec.md §7); prep has no dependency on package verilog, so it keeps
// its own sentinel rather than importing verilog's.
var ErrMalformedIR = errors.New("malformed-ir")

// ModulusCleanup ensures Rem operands satisfy Verilog semantics (spec.md
// §4.9): a literal zero divisor is caught here rather than surfacing as a
// runtime division-by-zero once simulated, and a Rem between two SInt
// operands is normalized to operate on their unsigned bit patterns so
// Verilog's `%` (which is sign-aware, unlike most HDL modulus operators)
// doesn't silently change behavior.
func ModulusCleanup(m *lir.InternalModule) (*lir.InternalModule, error) {
	var firstErr error
	body := mapStmtExprs(m.Body, func(e lir.Expression) lir.Expression {
		op, ok := e.(*lir.PrimOpExpr)
		if !ok || op.Op != types.Rem {
			return e
		}
		if lit, ok := op.Args[1].(*lir.UIntLiteral); ok && lit.Value.Sign() == 0 {
			if firstErr == nil {
				firstErr = errors.Wrapf(ErrMalformedIR, "rem by literal zero")
			}
			return e
		}
		if lit, ok := op.Args[1].(*lir.SIntLiteral); ok && lit.Value.Sign() == 0 {
			if firstErr == nil {
				firstErr = errors.Wrapf(ErrMalformedIR, "rem by literal zero")
			}
			return e
		}
		if op.Args[0].Type().IsSigned() && op.Args[1].Type().IsSigned() {
			inner := &lir.PrimOpExpr{
				Op:   types.Rem,
				Args: []lir.Expression{asUInt(op.Args[0]), asUInt(op.Args[1])},
				Typ:  lir.UIntT(op.Typ.Width),
			}
			return &lir.PrimOpExpr{Op: types.AsSInt, Args: []lir.Expression{inner}, Typ: op.Typ}
		}
		return op
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return &lir.InternalModule{Name: m.Name, Ports: m.Ports, Body: body}, nil
}

func asUInt(e lir.Expression) lir.Expression {
	if !e.Type().IsSigned() {
		return e
	}
	return &lir.PrimOpExpr{Op: types.AsUInt, Args: []lir.Expression{e}, Typ: lir.UIntT(e.Type().Width)}
}
