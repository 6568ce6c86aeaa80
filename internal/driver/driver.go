// Package driver wires the compiler passes together: lex/parse a
// source file, resolve and type-check it, run semantic analysis, and
// hand the result to the code generator. It is the one place that
// knows the full pass order, the way the teacher's cmd/ailang main.go
// knows the lex/parse/(eventually)check/run order for its own CLI
// commands.
package driver

import (
	"fmt"
	"os"

	"github.com/tay10r/pathway/internal/analyze"
	"github.com/tay10r/pathway/internal/codegen"
	"github.com/tay10r/pathway/internal/diag"
	"github.com/tay10r/pathway/internal/ir"
	"github.com/tay10r/pathway/internal/parser"
	"github.com/tay10r/pathway/internal/resolver"
	"github.com/tay10r/pathway/internal/typecheck"
)

// Result is the outcome of compiling a single source file.
type Result struct {
	// Path is the source file that was compiled.
	Path string
	// Module is the parsed IR (resolved and coerced when those passes
	// ran); nil only when CompileFile could not read the source file.
	Module *ir.Module
	// Output is the generated C++ header text, empty if compilation
	// failed before code generation.
	Output string
	// OK is false if any pass reported an Error-severity diagnostic.
	OK bool
}

// CompileFile reads path from disk and compiles it, reporting
// diagnostics to sink. The generated header is shaped for target.
func CompileFile(path string, target codegen.Target, sink diag.Sink) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path}, fmt.Errorf("failed to read source file: %w", err)
	}
	return CompileSource(data, path, target, sink), nil
}

// CompileSource runs the full pass pipeline over in-memory source data,
// reporting diagnostics to sink through an internal ErrorFilter so that
// later passes can be skipped once an earlier one has already failed.
// The generated header is shaped for target.
func CompileSource(data []byte, path string, target codegen.Target, sink diag.Sink) Result {
	filter := diag.NewErrorFilter(sink)

	filter.BeginFile(path, data)
	defer filter.EndFile()

	m := parser.New(data, path, filter).Parse()
	res := Result{Path: path, Module: m}
	if filter.ErrorFlag() {
		return res
	}

	resolver.Resolve(m)
	typecheck.ApplyCoercions(m)

	if !analyze.Run(m, filter) {
		return res
	}
	if filter.ErrorFlag() {
		return res
	}

	res.Output = codegen.Generate(m, target)
	res.OK = true
	return res
}
