// Package config loads pathway.yaml, the project-level compiler config:
// the default codegen target, the only-if-different default, scalar type
// aliases and an output path.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ScalarTypes names C++ types for the float_type/int_type template
// parameters (e.g. a fixed-point int_type, or double precision floats).
// The values are loaded but not applied: the code generator always emits
// float_type/int_type (or float/int for cxx_v1). Its fields are inlined into Config's YAML so a project writes
// top-level scalarFloat/scalarInt keys rather than a nested block.
type ScalarTypes struct {
	Float string `yaml:"scalarFloat"`
	Int   string `yaml:"scalarInt"`
}

// DefaultScalarTypes returns the scalar aliases used when pathway.yaml
// omits scalarFloat/scalarInt.
func DefaultScalarTypes() ScalarTypes {
	return ScalarTypes{Float: "float", Int: "int32_t"}
}

// Config is the parsed contents of pathway.yaml:
//
//	language: cfamily       # or cxx_v1
//	output: build/shader.h
//	scalarFloat: float
//	scalarInt: int32_t
//	onlyIfDifferent: true
type Config struct {
	// Target names the codegen backend: "cfamily" for the templated C++
	// header generator, "cxx_v1" for the legacy non-templated spellings.
	Target string `yaml:"language"`

	// OutputDir holds the `output` key. cmd/pathwayc does not write to it:
	// the header goes to the -o/--output path, or to stdout without one.
	OutputDir string `yaml:"output"`

	ScalarTypes `yaml:",inline"`

	// OnlyIfDifferent mirrors the CLI's --only-if-different flag as a
	// project-wide default; an explicit flag on the command line still
	// overrides it.
	OnlyIfDifferent bool `yaml:"onlyIfDifferent"`
}

// Default returns the configuration used when no pathway.yaml is present.
func Default() *Config {
	return &Config{
		Target:      "cfamily",
		OutputDir:   "generated",
		ScalarTypes: DefaultScalarTypes(),
	}
}

// Load reads and parses pathway.yaml at path, filling in defaults for any
// field the file leaves zero-valued.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse project config: %w", err)
	}

	if cfg.Target == "" {
		cfg.Target = "cfamily"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "generated"
	}
	if cfg.ScalarTypes.Float == "" {
		cfg.ScalarTypes.Float = DefaultScalarTypes().Float
	}
	if cfg.ScalarTypes.Int == "" {
		cfg.ScalarTypes.Int = DefaultScalarTypes().Int
	}

	return cfg, nil
}

// LoadFromDir tries pathway.yaml in dir, falling back to Default when
// the file doesn't exist.
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "pathway.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
