// Package artifact defines the output type every back-end component returns
// through, replacing the process-wide annotation buffer the source material
// used to collect emitted text (see spec.md §5's "shared structures to
// avoid" note and DESIGN.md). Every component hands artifacts back through
// an ordinary return value; nothing is stashed in a global registry.
package artifact

// Kind distinguishes the textual dialect of an Artifact's contents.
type Kind uint

const (
	LIR Kind = iota
	Verilog
)

// Level distinguishes whether an Artifact describes a whole circuit or one
// module within it.
type Level uint

const (
	CircuitLevel Level = iota
	ModuleLevel
)

// Artifact is one named unit of emitted text.
type Artifact struct {
	Name  string
	Text  string
	Kind  Kind
	Level Level
}

func (k Kind) String() string {
	if k == LIR {
		return "lir"
	}
	return "verilog"
}

func (l Level) String() string {
	if l == CircuitLevel {
		return "circuit"
	}
	return "module"
}
