// Command rtlgen lowers a fixture LIR circuit of three small modules to Verilog-2001,
// standing in for the full compiler driver spec.md scopes out (no IR parser,
// no front end). It follows vslc's src/main.go shape: parse flags, run the
// pipeline, write the result to -o or stdout.
package main

import (
	"fmt"
	"os"

	"rtlgen/src/backend"
)

func run(opt backend.Options) (string, error) {
	c := backend.Fixtures()
	artifacts, err := backend.Compile(c, opt)
	if err != nil {
		return "", err
	}
	out := ""
	for _, a := range artifacts {
		if opt.Verbose {
			fmt.Fprintf(os.Stderr, "lowered %s (%s/%s)\n", a.Name, a.Kind, a.Level)
		}
		out += fmt.Sprintf("// ---- %s: %s ----\n%s\n", a.Kind, a.Name, a.Text)
	}
	return out, nil
}

func main() {
	opt, err := backend.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Command line argument error: %s\n", err)
		os.Exit(1)
	}

	out, err := run(opt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	if opt.Out != "" {
		if err := os.WriteFile(opt.Out, []byte(out), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %s\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Print(out)
}
