package prep

import "rtlgen/src/lir"

// verilogReserved is the set of Verilog-2001 keywords that cannot be used
// as identifiers; IdentifierRename appends an underscore to any declared
// name that collides with one.
var verilogReserved = map[string]bool{
	"always": true, "and": true, "assign": true, "begin": true, "buf": true,
	"case": true, "casex": true, "casez": true, "cmos": true, "deassign": true,
	"default": true, "defparam": true, "disable": true, "edge": true, "else": true,
	"end": true, "endcase": true, "endfunction": true, "endmodule": true,
	"endprimitive": true, "endspecify": true, "endtable": true, "endtask": true,
	"event": true, "for": true, "force": true, "forever": true, "fork": true,
	"function": true, "generate": true, "genvar": true, "if": true, "initial": true,
	"inout": true, "input": true, "integer": true, "join": true, "localparam": true,
	"macromodule": true, "module": true, "nand": true, "negedge": true, "nmos": true,
	"nor": true, "not": true, "or": true, "output": true, "parameter": true,
	"pmos": true, "posedge": true, "primitive": true, "pull0": true, "pull1": true,
	"pullup": true, "rcmos": true, "real": true, "realtime": true, "reg": true,
	"repeat": true, "rnmos": true, "rpmos": true, "rtran": true, "rtranif0": true,
	"rtranif1": true, "signed": true, "specify": true, "specparam": true,
	"strong0": true, "strong1": true, "supply0": true, "supply1": true,
	"table": true, "task": true, "time": true, "tran": true, "tranif0": true,
	"tranif1": true, "tri": true, "tri0": true, "tri1": true, "triand": true,
	"trior": true, "trireg": true, "unsigned": true, "vectored": true, "wait": true,
	"wand": true, "weak0": true, "weak1": true, "while": true, "wire": true,
	"wor": true, "xnor": true, "xor": true,
}

// IdentifierRename rewrites every declared name (ports and body
// declarations) that collides with a Verilog reserved word, and every
// Reference to it, by appending an underscore until the collision clears
// (spec.md §4.9).
func IdentifierRename(m *lir.InternalModule) *lir.InternalModule {
	renames := make(map[string]string)

	ports := make([]*lir.Port, len(m.Ports))
	for i, p := range m.Ports {
		name := renamed(p.Name, renames)
		ports[i] = &lir.Port{Name: name, Dir: p.Dir, Typ: p.Typ}
	}
	collectDeclNames(m.Body, renames)

	if len(renames) == 0 {
		return m
	}

	body := applyRenames(m.Body, renames)
	return &lir.InternalModule{Name: m.Name, Ports: ports, Body: body}
}

func renamed(name string, renames map[string]string) string {
	if !verilogReserved[name] {
		return name
	}
	if r, ok := renames[name]; ok {
		return r
	}
	r := name
	for verilogReserved[r] {
		r += "_"
	}
	renames[name] = r
	return r
}

func collectDeclNames(s lir.Statement, renames map[string]string) {
	switch v := s.(type) {
	case *lir.Block:
		for _, sub := range v.Stmts {
			collectDeclNames(sub, renames)
		}
	case *lir.DefWire:
		renamed(v.Name, renames)
	case *lir.DefRegister:
		renamed(v.Name, renames)
	case *lir.DefNode:
		renamed(v.Name, renames)
	case *lir.DefInstance:
		renamed(v.Name, renames)
	case *lir.DefMemory:
		renamed(v.Mem.Name, renames)
	}
}

func applyRenames(s lir.Statement, renames map[string]string) lir.Statement {
	s = mapStmtExprs(s, func(e lir.Expression) lir.Expression {
		ref, ok := e.(*lir.Reference)
		if !ok {
			return e
		}
		if r, ok := renames[ref.Name]; ok {
			return &lir.Reference{Name: r, Ref: ref.Ref, Typ: ref.Typ}
		}
		return e
	})
	return renameDecls(s, renames)
}

func renameDecls(s lir.Statement, renames map[string]string) lir.Statement {
	switch v := s.(type) {
	case *lir.Block:
		stmts := make([]lir.Statement, len(v.Stmts))
		for i, sub := range v.Stmts {
			stmts[i] = renameDecls(sub, renames)
		}
		return &lir.Block{Stmts: stmts}
	case *lir.DefWire:
		return &lir.DefWire{Name: lookupRename(v.Name, renames), Typ: v.Typ}
	case *lir.DefRegister:
		return &lir.DefRegister{Name: lookupRename(v.Name, renames), Typ: v.Typ, Clock: v.Clock, Reset: v.Reset, Init: v.Init}
	case *lir.DefNode:
		return &lir.DefNode{Name: lookupRename(v.Name, renames), Value: v.Value, Typ: v.Typ}
	case *lir.DefInstance:
		return &lir.DefInstance{Name: lookupRename(v.Name, renames), Module: v.Module, Ports: v.Ports}
	case *lir.DefMemory:
		mem := *v.Mem
		mem.Name = lookupRename(v.Mem.Name, renames)
		return &lir.DefMemory{Mem: &mem}
	default:
		return s
	}
}

func lookupRename(name string, renames map[string]string) string {
	if r, ok := renames[name]; ok {
		return r
	}
	return name
}
