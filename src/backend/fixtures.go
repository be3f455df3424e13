package backend

import (
	"math/big"

	"rtlgen/src/lir"
	"rtlgen/src/lir/types"
)

// Fixtures returns a small circuit exercising a handful of the emitter's
// behaviors (a plain adder, a reset register, and a three-entry memory),
// standing in for the IR parser spec.md scopes out: with no front end in
// this repo, cmd/rtlgen builds its input circuits directly with the LIR
// types rather than reading LIR text.
func Fixtures() *lir.Circuit {
	clk := &lir.Reference{Name: "clock", Ref: types.PortRef, Typ: lir.ClockT()}
	a := &lir.Reference{Name: "a", Ref: types.PortRef, Typ: lir.UIntT(8)}
	b := &lir.Reference{Name: "b", Ref: types.PortRef, Typ: lir.UIntT(8)}
	sum := &lir.Reference{Name: "sum", Ref: types.PortRef, Typ: lir.UIntT(9)}

	adder := &lir.InternalModule{
		Name: "Adder",
		Ports: []*lir.Port{
			{Name: "clock", Dir: types.Input, Typ: lir.ClockT()},
			{Name: "a", Dir: types.Input, Typ: lir.UIntT(8)},
			{Name: "b", Dir: types.Input, Typ: lir.UIntT(8)},
			{Name: "sum", Dir: types.Output, Typ: lir.UIntT(9)},
		},
		Body: &lir.Block{Stmts: []lir.Statement{
			&lir.Connect{
				Loc: sum,
				Rhs: &lir.PrimOpExpr{Op: types.Add, Args: []lir.Expression{a, b}, Typ: lir.UIntT(9)},
			},
		}},
	}

	reset := &lir.Reference{Name: "reset", Ref: types.PortRef, Typ: lir.UIntT(1)}
	en := &lir.Reference{Name: "en", Ref: types.PortRef, Typ: lir.UIntT(1)}
	counterOut := &lir.Reference{Name: "count", Ref: types.PortRef, Typ: lir.UIntT(8)}
	countReg := &lir.Reference{Name: "value", Ref: types.RegisterRef, Typ: lir.UIntT(8)}

	counter := &lir.InternalModule{
		Name: "Counter",
		Ports: []*lir.Port{
			{Name: "clock", Dir: types.Input, Typ: lir.ClockT()},
			{Name: "reset", Dir: types.Input, Typ: lir.UIntT(1)},
			{Name: "en", Dir: types.Input, Typ: lir.UIntT(1)},
			{Name: "count", Dir: types.Output, Typ: lir.UIntT(8)},
		},
		Body: &lir.Block{Stmts: []lir.Statement{
			&lir.DefRegister{
				Name:  "value",
				Typ:   lir.UIntT(8),
				Clock: clk,
				Reset: reset,
				Init:  &lir.UIntLiteral{Width: 8, Value: big.NewInt(0)},
			},
			&lir.Connect{
				Loc: countReg,
				Rhs: &lir.Mux{
					Cond: en,
					Tru:  &lir.PrimOpExpr{Op: types.Add, Args: []lir.Expression{countReg, &lir.UIntLiteral{Width: 8, Value: big.NewInt(1)}}, Typ: lir.UIntT(8)},
					Fls:  countReg,
					Typ:  lir.UIntT(8),
				},
			},
			&lir.Connect{Loc: counterOut, Rhs: countReg},
		}},
	}

	mem := &lir.Memory{
		Name:         "ram",
		DataType:     lir.UIntT(8),
		Depth:        3,
		Readers:      []string{"r"},
		Writers:      []string{"w"},
		ReadLatency:  0,
		WriteLatency: 1,
	}
	raddr := &lir.Reference{Name: "raddr", Ref: types.PortRef, Typ: lir.UIntT(2)}
	rdata := &lir.Reference{Name: "rdata", Ref: types.PortRef, Typ: lir.UIntT(8)}
	waddr := &lir.Reference{Name: "waddr", Ref: types.PortRef, Typ: lir.UIntT(2)}
	wdata := &lir.Reference{Name: "wdata", Ref: types.PortRef, Typ: lir.UIntT(8)}
	wen := &lir.Reference{Name: "wen", Ref: types.PortRef, Typ: lir.UIntT(1)}

	scratch := &lir.InternalModule{
		Name: "Scratch",
		Ports: []*lir.Port{
			{Name: "clock", Dir: types.Input, Typ: lir.ClockT()},
			{Name: "raddr", Dir: types.Input, Typ: lir.UIntT(2)},
			{Name: "rdata", Dir: types.Output, Typ: lir.UIntT(8)},
			{Name: "waddr", Dir: types.Input, Typ: lir.UIntT(2)},
			{Name: "wdata", Dir: types.Input, Typ: lir.UIntT(8)},
			{Name: "wen", Dir: types.Input, Typ: lir.UIntT(1)},
		},
		Body: &lir.Block{Stmts: []lir.Statement{
			&lir.DefMemory{Mem: mem},
			&lir.Connect{Loc: lir.MemPortField(mem, "r", "addr", lir.UIntT(2)), Rhs: raddr},
			&lir.Connect{Loc: lir.MemPortField(mem, "r", "clk", lir.ClockT()), Rhs: clk},
			&lir.Connect{Loc: rdata, Rhs: lir.MemPortField(mem, "r", "data", lir.UIntT(8))},
			&lir.Connect{Loc: lir.MemPortField(mem, "w", "addr", lir.UIntT(2)), Rhs: waddr},
			&lir.Connect{Loc: lir.MemPortField(mem, "w", "clk", lir.ClockT()), Rhs: clk},
			&lir.Connect{Loc: lir.MemPortField(mem, "w", "data", lir.UIntT(8)), Rhs: wdata},
			&lir.Connect{Loc: lir.MemPortField(mem, "w", "en", lir.UIntT(1)), Rhs: wen},
			&lir.Connect{Loc: lir.MemPortField(mem, "w", "mask", lir.UIntT(1)), Rhs: &lir.UIntLiteral{Width: 1, Value: big.NewInt(1)}},
		}},
	}

	return &lir.Circuit{
		Name:    "fixtures",
		Modules: []lir.Module{adder, counter, scratch},
		Top:     "Adder",
	}
}
