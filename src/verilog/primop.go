package verilog

import (
	"fmt"

	"rtlgen/src/lir"
	"rtlgen/src/lir/types"
)

// ----------------------------
// ----- Constants -----
// ----------------------------

var infixSymbol = map[types.PrimOp]string{
	types.Add:  "+",
	types.Sub:  "-",
	types.Mul:  "*",
	types.Div:  "/",
	types.Rem:  "%",
	types.Addw: "+",
	types.Subw: "-",
	types.Lt:   "<",
	types.Leq:  "<=",
	types.Gt:   ">",
	types.Geq:  ">=",
	types.Eq:   "==",
	types.Neq:  "!=",
	types.And:  "&",
	types.Or:   "|",
	types.Xor:  "^",
}

// ---------------------
// ----- Functions -----
// ---------------------

// resultCast signs tok according to resultTyp: $signed(...) iff SInt. This is
// the primitive-op translator's "cast(e)" helper (spec.md §4.2), distinct
// from the expression printer's per-operand "cast" used by Mux/ValidIf (see
// exprCast in expr.go).
func resultCast(tok string, resultTyp lir.GroundType) string {
	if resultTyp.IsSigned() {
		return fmt.Sprintf("$signed(%s)", tok)
	}
	return tok
}

// castIf coerces tok to signed when anySigned is true, per spec.md §4.2:
// SInt args go straight through $signed(...), UInt args are zero-extended by
// one bit first so the sign bit is unambiguous.
func castIf(tok string, argTyp lir.GroundType, anySigned bool) string {
	if !anySigned {
		return tok
	}
	if argTyp.IsSigned() {
		return fmt.Sprintf("$signed(%s)", tok)
	}
	return fmt.Sprintf("$signed({1'b0,%s})", tok)
}

// translatePrimOp renders a PrimOpExpr to its Verilog fragment (C2).
func translatePrimOp(e *lir.PrimOpExpr) (string, error) {
	for i, a := range e.Args {
		if !lir.IsPrimOpArg(a) {
			return "", malformed("primop %s argument %d is a %T, not a literal/ref/subfield", e.Op, i, a)
		}
	}
	toks := make([]string, len(e.Args))
	for i, a := range e.Args {
		t, err := RenderExpr(a)
		if err != nil {
			return "", err
		}
		toks[i] = t
	}

	anySigned := false
	for _, a := range e.Args {
		if a.Type().IsSigned() {
			anySigned = true
			break
		}
	}

	switch e.Op {
	case types.Add, types.Sub, types.Mul, types.Div, types.Rem, types.Addw, types.Subw,
		types.Lt, types.Leq, types.Gt, types.Geq, types.Eq, types.Neq:
		return fmt.Sprintf("%s %s %s",
			castIf(toks[0], e.Args[0].Type(), anySigned),
			infixSymbol[e.Op],
			castIf(toks[1], e.Args[1].Type(), anySigned)), nil

	case types.And, types.Or, types.Xor:
		return fmt.Sprintf("%s %s %s", resultCast(toks[0], e.Typ), infixSymbol[e.Op], resultCast(toks[1], e.Typ)), nil

	case types.Not:
		return fmt.Sprintf("~ %s", toks[0]), nil
	case types.Andr:
		return fmt.Sprintf("&%s", toks[0]), nil
	case types.Orr:
		return fmt.Sprintf("|%s", toks[0]), nil
	case types.Xorr:
		return fmt.Sprintf("^%s", toks[0]), nil

	case types.Shl, types.Shlw:
		return fmt.Sprintf("%s << %d", resultCast(toks[0], e.Typ), e.Consts[0]), nil

	case types.Shr:
		w := e.Args[0].Type().Width
		c0 := int(e.Consts[0])
		if c0 >= w {
			return "", unsupported("shr constant %d >= operand width %d", c0, w)
		}
		return fmt.Sprintf("%s[%d:%d]", toks[0], w-1, c0), nil

	case types.Dshl, types.Dshlw:
		return fmt.Sprintf("%s << %s", resultCast(toks[0], e.Typ), toks[1]), nil

	case types.Dshr:
		op := ">>"
		if e.Typ.IsSigned() {
			op = ">>>"
		}
		return fmt.Sprintf("%s %s %s", toks[0], op, toks[1]), nil

	case types.Pad:
		n := int(e.Consts[0])
		w := e.Args[0].Type().Width
		if w == 0 {
			return toks[0], nil
		}
		if e.Typ.Kind == types.UInt {
			return fmt.Sprintf("{{%d'd0}, %s}", n-w, toks[0]), nil
		}
		if w == 1 {
			return fmt.Sprintf("{%d{%s}}", n, toks[0]), nil
		}
		return fmt.Sprintf("{{%d{%s[%d]}}, %s}", n-w, toks[0], w-1, toks[0]), nil

	case types.Neg:
		return fmt.Sprintf("-{%s}", resultCast(toks[0], e.Typ)), nil

	case types.Cvt:
		if e.Args[0].Type().Kind == types.UInt {
			return fmt.Sprintf("{1'b0, %s}", resultCast(toks[0], e.Typ)), nil
		}
		return resultCast(toks[0], e.Typ), nil

	case types.AsUInt:
		return fmt.Sprintf("$unsigned(%s)", toks[0]), nil
	case types.AsSInt:
		return fmt.Sprintf("$signed(%s)", toks[0]), nil
	case types.AsClock:
		return fmt.Sprintf("$unsigned(%s)", toks[0]), nil

	case types.Cat:
		return fmt.Sprintf("{%s, %s}", resultCast(toks[0], e.Typ), resultCast(toks[1], e.Typ)), nil

	case types.Bits:
		hi, lo := e.Consts[0], e.Consts[1]
		if hi == 0 && lo == 0 && e.Args[0].Type().Width == 1 {
			return toks[0], nil
		}
		if hi == lo {
			return fmt.Sprintf("%s[%d]", toks[0], hi), nil
		}
		return fmt.Sprintf("%s[%d:%d]", toks[0], hi, lo), nil

	case types.Head:
		w := e.Args[0].Type().Width
		n := int(e.Consts[0])
		return fmt.Sprintf("%s[%d:%d]", toks[0], w-1, w-n), nil

	case types.Tail:
		w := e.Args[0].Type().Width
		n := int(e.Consts[0])
		return fmt.Sprintf("%s[%d:0]", toks[0], w-n-1), nil

	default:
		return "", internalErr("unhandled primop %s", e.Op)
	}
}
