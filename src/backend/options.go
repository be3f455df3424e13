// Package backend drives the C1-C9 components over a whole circuit: it runs
// the C9 pre-passes over every internal module, lowers each one through C5
// (which in turn invokes C1-C4 and C6), and collects the resulting Verilog
// and, optionally, passthrough LIR artifacts.
//
// The driver's shape is grounded on vslc's src/main.go run/ParseArgs split
// and src/ir/llvm/transform.go's GenLLVM: a trimmed Options struct carries
// just the flags this backend needs (no TargetArch/Vendor/CPU/OS/LLVM/
// TokenStream fields, since this backend has exactly one output dialect),
// and Compile splits the module list across Options.Threads goroutines the
// same way GenLLVM splits root.Children, with a perror-style error
// collector gathering failures from every worker before Compile returns.
package backend

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Options controls a Compile run.
type Options struct {
	Src     string // Trailing positional argument; recorded only, cmd/rtlgen lowers backend.Fixtures.
	Out     string // Path to the output file, or "" for stdout.
	Threads int    // Worker count for per-module lowering; <= 1 means sequential.
	Verbose bool   // Print per-module progress to stderr.
	EmitLIR bool   // Also emit passthrough LIR artifacts (C8) alongside Verilog.
}

const maxThreads = 64
const appVersion = "rtlgen 1.0"

// ParseArgs parses command line arguments the same way vslc's
// util.ParseArgs does: flags in any position before the trailing source
// path, one lookahead argument per flag that takes one.
func ParseArgs(args []string) (Options, error) {
	opt := Options{}
	if len(args) == 0 {
		return opt, nil
	}
	for i1 := 0; i1 < len(args); i1++ {
		switch args[i1] {
		case "-h", "--h", "-help", "--help":
			printHelp()
			os.Exit(0)
		case "-o":
			if i1+1 >= len(args) {
				return opt, fmt.Errorf("got flag %s but no argument", args[i1])
			}
			if strings.HasPrefix(args[i1+1], "-") {
				return opt, fmt.Errorf("expected path to output file, got new flag %s", args[i1+1])
			}
			opt.Out = args[i1+1]
			i1++
		case "-t":
			if i1+1 >= len(args) {
				return opt, fmt.Errorf("got flag %s but no argument", args[i1])
			}
			t, err := strconv.Atoi(args[i1+1])
			if err != nil {
				return opt, fmt.Errorf("expected integer thread count, got: %s", args[i1+1])
			}
			if t < 1 || t > maxThreads {
				return opt, fmt.Errorf("thread count must be integer in range [1, %d]", maxThreads)
			}
			opt.Threads = t
			i1++
		case "-emit-lir":
			opt.EmitLIR = true
		case "-v", "--v", "-version", "--version":
			fmt.Println(appVersion)
			os.Exit(0)
		case "-vb":
			opt.Verbose = true
		default:
			if strings.HasPrefix(args[i1], "-") {
				return opt, fmt.Errorf("unexpected flag: %s", args[i1])
			}
			opt.Src = args[i1]
		}
	}
	return opt, nil
}

func printHelp() {
	fmt.Println("-h, -help\t\tPrints this help message and exits.")
	fmt.Println("-o <path>\t\tPath to the output Verilog file. Defaults to stdout.")
	fmt.Println("-t <n>\t\t\tNumber of worker threads for module lowering. Must be in range [1, 64].")
	fmt.Println("-emit-lir\t\tAlso emit passthrough LIR artifacts: one per module and one for the circuit.")
	fmt.Println("-v, -version\t\tPrints application version and exits.")
	fmt.Println("-vb\t\t\tVerbose mode: print per-module progress to stderr.")
}
