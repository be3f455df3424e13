package verilog

import (
	"fmt"
	"math/big"
	"strings"

	"rtlgen/src/lir"
)

// hexDigits zero-pads hex to the number of nibbles width bits occupy
// (spec.md §8's S3 example renders UInt<8>(0) as "8'h00", not "8'h0").
func hexDigits(width int, hex string) string {
	n := (width + 3) / 4
	if n < 1 {
		n = 1
	}
	if len(hex) < n {
		hex = strings.Repeat("0", n-len(hex)) + hex
	}
	return hex
}

// exprCast wraps tok in $signed(...) when e's own type is SInt. This is the
// expression printer's "cast" helper (spec.md §4.1): Mux and ValidIf sign
// each branch/value per its OWN type, not the enclosing expression's result
// type (contrast with the primop translator's resultCast in primop.go).
func exprCast(tok string, e lir.Expression) string {
	if e.Type().IsSigned() {
		return fmt.Sprintf("$signed(%s)", tok)
	}
	return tok
}

// uintHex renders an unsigned sized hex literal: w'h<hex>.
func uintHex(width int, v *big.Int) string {
	return fmt.Sprintf("%d'h%s", width, hexDigits(width, v.Text(16)))
}

// sintHex renders a signed sized hex literal: -w'sh<hex> when negative,
// w'sh<hex> otherwise.
func sintHex(width int, v *big.Int) string {
	if v.Sign() < 0 {
		abs := new(big.Int).Neg(v)
		return fmt.Sprintf("-%d'sh%s", width, hexDigits(width, abs.Text(16)))
	}
	return fmt.Sprintf("%d'sh%s", width, hexDigits(width, v.Text(16)))
}

// RenderExpr renders e to its Verilog token sequence (C1, spec.md §4.1).
// This is the single recursive entry point every other component calls to
// turn an Expression into text; it is where Malformed-IR failures on
// ill-typed or unlowered subtrees are raised.
func RenderExpr(e lir.Expression) (string, error) {
	switch v := e.(type) {
	case *lir.Reference:
		return v.Name, nil

	case *lir.Subfield, *lir.Subindex:
		return lir.LoweredName(e), nil

	case *lir.SubAccess:
		exprTok := lir.LoweredName(v.Expr)
		idxTok, err := RenderExpr(v.Idx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s[%s]", exprTok, idxTok), nil

	case *lir.UIntLiteral:
		return uintHex(v.Width, v.Value), nil

	case *lir.SIntLiteral:
		return sintHex(v.Width, v.Value), nil

	case *lir.Mux:
		condTok, err := RenderExpr(v.Cond)
		if err != nil {
			return "", err
		}
		truTok, err := RenderExpr(v.Tru)
		if err != nil {
			return "", err
		}
		flsTok, err := RenderExpr(v.Fls)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s ? %s : %s", condTok, exprCast(truTok, v.Tru), exprCast(flsTok, v.Fls)), nil

	case *lir.ValidIf:
		valTok, err := RenderExpr(v.Val)
		if err != nil {
			return "", err
		}
		return exprCast(valTok, v.Val), nil

	case *lir.Random:
		words := (v.Typ.Width + 31) / 32
		if words < 1 {
			words = 1
		}
		return fmt.Sprintf("{%d{$random}}", words), nil

	case *lir.PrimOpExpr:
		return translatePrimOp(v)

	default:
		return "", malformed("unrenderable expression %T", e)
	}
}
