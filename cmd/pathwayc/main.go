// Command pathwayc compiles a PT shader module into a C++ header.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/tay10r/pathway/internal/clog"
	"github.com/tay10r/pathway/internal/codegen"
	"github.com/tay10r/pathway/internal/config"
	"github.com/tay10r/pathway/internal/diag"
	"github.com/tay10r/pathway/internal/driver"
	"github.com/tay10r/pathway/internal/fatal"
	"github.com/tay10r/pathway/internal/replshell"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "repl" {
		shell := replshell.New()
		defer shell.Close()
		shell.Run(os.Stdout)
		return
	}

	var (
		language        = flag.String("language", "", "emitted target: cfamily (default) or cxx_v1")
		output          = flag.String("output", "", "output header path (default: stdout)")
		configPath      = flag.String("config", "", "path to pathway.yaml (default: <dir>/pathway.yaml)")
		onlyIfDifferent = flag.Bool("only-if-different", false, "write the header only if its contents changed")
		syntaxOnly      = flag.Bool("syntax-only", false, "parse and check; do not write a header")
		listDeps        = flag.Bool("list-dependencies", false, "print consulted source files instead of emitting")
		noColor         = flag.Bool("no-color", false, "disable colored diagnostic output")
		verbose         = flag.Bool("verbose", false, "log debug progress lines (source file and target)")
	)
	flag.StringVar(language, "l", "", "shorthand for -language")
	flag.StringVar(output, "o", "", "shorthand for -output")
	flag.StringVar(configPath, "c", "", "shorthand for -config")
	flag.BoolVar(verbose, "v", false, "shorthand for -verbose")

	flag.Usage = printUsage
	flag.Parse()

	dir := "."
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	logLevel := clog.Info
	if *verbose {
		logLevel = clog.Debug
	}
	logger := clog.New(os.Stderr, logLevel)

	cfg, err := resolveConfig(dir, *configPath)
	if err != nil {
		fatal.Exitf("%v", err)
	}
	if *language != "" {
		cfg.Target = *language
	}
	if *output != "" {
		cfg.OutputDir = filepath.Dir(*output)
	}

	target, err := resolveTarget(cfg.Target)
	if err != nil {
		fatal.Exitf("%v", err)
	}

	// --only-if-different on the command line overrides the config
	// default; flag.Visit only reports flags the user actually set, so
	// its absence here means "no", not "false".
	onlyIfDifferentSet := cfg.OnlyIfDifferent
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "only-if-different" {
			onlyIfDifferentSet = *onlyIfDifferent
		}
	})

	sourcePath := filepath.Join(dir, "main.pt")
	logger.Debugf("compiling %s (target=%s)", sourcePath, target)

	if *listDeps {
		fmt.Println(sourcePath)
		return
	}

	var forceColor *bool
	if *noColor {
		disabled := false
		forceColor = &disabled
	}
	sink := diag.NewConsoleSink(os.Stderr, forceColor)

	result, err := driver.CompileFile(sourcePath, target, sink)
	if err != nil {
		fatal.Exitf("%v", err)
	}
	if !result.OK {
		fatal.Exitf("compilation of %s failed", sourcePath)
	}

	logger.Infof("compiled %s successfully", sourcePath)

	if *syntaxOnly {
		return
	}

	if err := writeOutput(result.Output, *output, onlyIfDifferentSet); err != nil {
		fatal.Exitf("%v", err)
	}
	logger.Infof("%s", green("done"))
}

// resolveTarget maps a pathway.yaml/--language value to a codegen.Target,
// rejecting anything but the two documented spellings.
func resolveTarget(name string) (codegen.Target, error) {
	switch codegen.Target(name) {
	case codegen.TargetCFamily, "":
		return codegen.TargetCFamily, nil
	case codegen.TargetCXXV1:
		return codegen.TargetCXXV1, nil
	default:
		return "", fmt.Errorf("unknown target %q (want cfamily or cxx_v1)", name)
	}
}

func resolveConfig(dir, explicitPath string) (*config.Config, error) {
	if explicitPath != "" {
		return config.Load(explicitPath)
	}
	return config.LoadFromDir(dir)
}

// writeOutput writes the generated header to path, or to stdout when
// path is empty. When onlyIfDifferent is set, an existing file is left
// untouched if its contents already match.
func writeOutput(output, path string, onlyIfDifferent bool) error {
	if path == "" {
		_, err := fmt.Println(output)
		return err
	}

	if onlyIfDifferent {
		existing, err := os.ReadFile(path)
		if err == nil && bytes.Equal(existing, []byte(output)) {
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return os.WriteFile(path, []byte(output), 0o644)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, bold("pathwayc")+" - PT shader compiler")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pathwayc [flags] [source-dir]")
	fmt.Fprintln(os.Stderr, "  pathwayc repl")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}
