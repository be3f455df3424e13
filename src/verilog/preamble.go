package verilog

// Preamble is the fixed macro-derivation header (C7, spec.md §4.7) written
// once at the top of every emitted Verilog file, ahead of any module text:
// it collapses the four independent RANDOMIZE_* knobs into one RANDOMIZE
// macro that the module lowerer's initial blocks gate on.
const Preamble = "" +
	"`ifdef RANDOMIZE_GARBAGE_ASSIGN\n" +
	"`define RANDOMIZE\n" +
	"`endif\n" +
	"`ifdef RANDOMIZE_INVALID_ASSIGN\n" +
	"`define RANDOMIZE\n" +
	"`endif\n" +
	"`ifdef RANDOMIZE_REG_INIT\n" +
	"`define RANDOMIZE\n" +
	"`endif\n" +
	"`ifdef RANDOMIZE_MEM_INIT\n" +
	"`define RANDOMIZE\n" +
	"`endif\n"
