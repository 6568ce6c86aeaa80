// Package replshell is an interactive shell for trying out snippets:
// each line (or block, for a multi-line module) is run through the
// same lex/parse/resolve/typecheck/analyze/codegen pipeline as a batch
// compile, and either the generated header or the diagnostics are
// printed. Grounded on internal/repl/repl.go's peterh/liner-based line
// editor and fatih/color palette.
package replshell

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/tay10r/pathway/internal/codegen"
	"github.com/tay10r/pathway/internal/diag"
	"github.com/tay10r/pathway/internal/driver"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

const historyFileName = ".pathwayc_history"

var commands = []string{":help", ":quit", ":exit", ":clear"}

// Shell is a single interactive session: one liner instance plus the
// buffer of lines accumulated for the module currently being typed.
type Shell struct {
	line    *liner.State
	buf     []string
	snippet int
}

// New creates a Shell. Callers must Close it when done.
func New() *Shell {
	l := liner.NewLiner()
	l.SetMultiLineMode(true)
	l.SetCompleter(func(line string) (c []string) {
		if strings.HasPrefix(line, ":") {
			for _, cmd := range commands {
				if strings.HasPrefix(cmd, line) {
					c = append(c, cmd)
				}
			}
		}
		return
	})

	s := &Shell{line: l}
	s.loadHistory()
	return s
}

// Close saves history and releases the terminal.
func (s *Shell) Close() {
	s.saveHistory()
	s.line.Close()
}

func historyPath() string {
	return filepath.Join(os.TempDir(), historyFileName)
}

func (s *Shell) loadHistory() {
	f, err := os.Open(historyPath())
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = s.line.ReadHistory(f)
}

func (s *Shell) saveHistory() {
	f, err := os.Create(historyPath())
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = s.line.WriteHistory(f)
}

// Run drives the prompt loop, writing results to out, until the user
// quits or input is exhausted.
func (s *Shell) Run(out io.Writer) {
	fmt.Fprintln(out, bold("pathwayc")+" interactive shell")
	fmt.Fprintln(out, dim("Type :help for help, :quit to exit."))
	fmt.Fprintln(out)

	for {
		prompt := "pt> "
		if len(s.buf) > 0 {
			prompt = "... "
		}

		input, err := s.line.Prompt(prompt)
		if err == io.EOF {
			fmt.Fprintln(out, green("goodbye"))
			return
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
			continue
		}

		s.line.AppendHistory(input)

		trimmed := strings.TrimSpace(input)
		if len(s.buf) == 0 && strings.HasPrefix(trimmed, ":") {
			if s.handleCommand(trimmed, out) {
				return
			}
			continue
		}

		s.buf = append(s.buf, input)
		if !snippetComplete(s.buf) {
			continue
		}

		s.compile(out)
		s.buf = nil
	}
}

func (s *Shell) handleCommand(cmd string, out io.Writer) (quit bool) {
	switch {
	case cmd == ":quit" || cmd == ":exit":
		fmt.Fprintln(out, green("goodbye"))
		return true
	case cmd == ":clear":
		s.buf = nil
		return false
	case cmd == ":help":
		printHelp(out)
		return false
	default:
		fmt.Fprintf(out, "%s: unknown command %q\n", red("error"), cmd)
		return false
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  :help    show this message")
	fmt.Fprintln(out, "  :clear   discard the snippet typed so far")
	fmt.Fprintln(out, "  :quit    leave the shell")
	fmt.Fprintln(out, "Anything else is treated as PT source and compiled once braces balance.")
}

// snippetComplete reports whether the accumulated lines have balanced
// braces, the same heuristic used to decide a module is ready to
// compile.
func snippetComplete(lines []string) bool {
	depth := 0
	for _, line := range lines {
		for _, r := range line {
			switch r {
			case '{':
				depth++
			case '}':
				depth--
			}
		}
	}
	return depth <= 0
}

func (s *Shell) compile(out io.Writer) {
	s.snippet++
	src := strings.Join(s.buf, "\n")
	name := fmt.Sprintf("<shell:%d>", s.snippet)

	sink := diag.NewConsoleSink(out, nil)
	result := driver.CompileSource([]byte(src), name, codegen.TargetCFamily, sink)

	if !result.OK {
		fmt.Fprintf(out, "%s\n", red("compilation failed"))
		return
	}
	fmt.Fprintln(out, green("ok"))
	fmt.Fprintln(out, result.Output)
}
