package lir

import (
	"fmt"
	"strings"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// printer accumulates LIR text with indentation, the same buffer-then-render
// shape the Verilog module lowerer (package verilog) uses.
type printer struct {
	sb     strings.Builder
	indent int
}

// ---------------------
// ----- Functions -----
// ---------------------

func (p *printer) line(format string, args ...interface{}) {
	p.sb.WriteString(strings.Repeat("  ", p.indent))
	fmt.Fprintf(&p.sb, format, args...)
	p.sb.WriteRune('\n')
}

// PrintCircuit renders the full LIR textual form of an entire circuit: a
// "circuit <name>:" header naming the top module, followed by every
// module's text in declaration order.
func PrintCircuit(c *Circuit) string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "circuit %s:\n", c.Top)
	for _, m := range c.Modules {
		for _, line := range strings.Split(strings.TrimRight(PrintModule(m), "\n"), "\n") {
			sb.WriteString("  ")
			sb.WriteString(line)
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// PrintModule renders the full LIR textual form of a module: its port list
// and, for an InternalModule, its statement-tree body.
func PrintModule(m Module) string {
	p := &printer{}
	switch v := m.(type) {
	case *InternalModule:
		p.line("module %s:", v.Name)
		p.indent++
		for _, port := range v.Ports {
			p.line("%s %s: %s", strings.ToLower(port.Dir.String()), port.Name, port.Typ.String())
		}
		printStmt(p, v.Body)
		p.indent--
	case *ExternalModule:
		p.line("extmodule %s:", v.Name)
		p.indent++
		for _, port := range v.Ports {
			p.line("%s %s: %s", strings.ToLower(port.Dir.String()), port.Name, port.Typ.String())
		}
		p.line("defname = %s", v.Defname)
		for _, prm := range v.Params {
			p.line("parameter %s = %s", prm.Name, prm.Value)
		}
		p.indent--
	}
	return p.sb.String()
}

func printStmt(p *printer, s Statement) {
	if s == nil {
		return
	}
	switch v := s.(type) {
	case *Block:
		for _, sub := range v.Stmts {
			printStmt(p, sub)
		}
	case *Connect:
		p.line("%s <= %s", v.Loc.String(), v.Rhs.String())
	case *IsInvalid:
		p.line("%s is invalid", v.Target.String())
	case *DefNode:
		p.line("node %s = %s", v.Name, v.Value.String())
	case *DefWire:
		p.line("wire %s: %s", v.Name, v.Typ.String())
	case *DefRegister:
		if v.Reset != nil {
			p.line("reg %s: %s, %s with reset => (%s, %s)", v.Name, v.Typ.String(), v.Clock.String(), v.Reset.String(), v.Init.String())
		} else {
			p.line("reg %s: %s, %s", v.Name, v.Typ.String(), v.Clock.String())
		}
	case *DefMemory:
		printMemory(p, v.Mem)
	case *DefInstance:
		p.line("inst %s of %s", v.Name, v.Module)
		p.indent++
		for _, pc := range v.Ports {
			p.line("%s.%s <= %s", v.Name, pc.Port, pc.Expr.String())
		}
		p.indent--
	case *Attach:
		parts := make([]string, len(v.Exprs))
		for i, e := range v.Exprs {
			parts[i] = e.String()
		}
		p.line("attach (%s)", strings.Join(parts, ", "))
	case *Stop:
		p.line("stop(%s, %s, %d)", v.Clock.String(), v.En.String(), v.Ret)
	case *Print:
		parts := make([]string, len(v.Args))
		for i, a := range v.Args {
			parts[i] = a.String()
		}
		if len(parts) > 0 {
			p.line("printf(%s, %s, %q, %s)", v.Clock.String(), v.En.String(), v.Fmt, strings.Join(parts, ", "))
		} else {
			p.line("printf(%s, %s, %q)", v.Clock.String(), v.En.String(), v.Fmt)
		}
	case *Skip:
		p.line("skip")
	default:
		panic(fmt.Sprintf("lir: printStmt: unhandled statement %T", s))
	}
}

func printMemory(p *printer, m *Memory) {
	p.line("mem %s:", m.Name)
	p.indent++
	p.line("data-type => %s", m.DataType.String())
	p.line("depth => %d", m.Depth)
	for _, r := range m.Readers {
		p.line("reader => %s", r)
	}
	for _, w := range m.Writers {
		p.line("writer => %s", w)
	}
	p.line("read-latency => %d", m.ReadLatency)
	p.line("write-latency => %d", m.WriteLatency)
	p.indent--
}
