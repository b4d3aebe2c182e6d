// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strconv"

	"carvel.dev/yamlloader/pkg/loader"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/pflag"
)

// CmdFlags interface decouples flag sets from
// depending on cobra.Command/flags concrete types.
type CmdFlags interface {
	BoolVar(p *bool, name string, value bool, usage string)
	StringVarP(p *string, name, shorthand string, value string, usage string)
	Var(value pflag.Value, name string, usage string)
	VarP(value pflag.Value, name, shorthand string, usage string)
}

var _ CmdFlags = &pflag.FlagSet{}

var (
	_ pflag.Value = new(loader.DuplicateKeyPolicy)
	_ pflag.Value = new(loader.SequencePolicy)
)

// LoadFlags configure how a file is turned into a document.
type LoadFlags struct {
	File            string
	MaxScalarLength NonNegativeIntFlag
	MaxDepth        NonNegativeIntFlag
	DuplicateKeys   loader.DuplicateKeyPolicy
	Sequences       loader.SequencePolicy
	Debug           bool
}

func NewLoadFlags() LoadFlags {
	defaults := loader.NewDefaultOpts()
	return LoadFlags{
		MaxScalarLength: NonNegativeIntFlag{Name: "max-scalar-length", Value: defaults.MaxScalarLength},
		MaxDepth:        NonNegativeIntFlag{Name: "max-depth", Value: defaults.MaxDepth},
		DuplicateKeys:   defaults.DuplicateKeys,
		Sequences:       defaults.Sequences,
	}
}

func (s *LoadFlags) Set(cmd CmdFlags) {
	cmd.StringVarP(&s.File, "file", "f", "", "File (ie local path, HTTP URL, -)")
	cmd.Var(&s.MaxScalarLength, "max-scalar-length", "Truncate keys and values to this many characters (0 disables truncation)")
	cmd.Var(&s.MaxDepth, "max-depth", "Maximum nesting depth of maps (0 means unlimited)")
	cmd.Var(&s.DuplicateKeys, "duplicate-keys", "Handling of duplicate keys (reject, last-wins)")
	cmd.Var(&s.Sequences, "sequences", "Handling of sequence values (skip, reject)")
	cmd.BoolVar(&s.Debug, "debug", false, "Enable debug output")
}

func (s *LoadFlags) Opts(logger loader.Logger) loader.Opts {
	return loader.Opts{
		MaxScalarLength: s.MaxScalarLength.Value,
		MaxDepth:        s.MaxDepth.Value,
		DuplicateKeys:   s.DuplicateKeys,
		Sequences:       s.Sequences,
		Logger:          logger,
	}
}

// NonNegativeIntFlag accepts any integer while parsing
// and reports negative ones when flags are resolved.
type NonNegativeIntFlag struct {
	Name  string
	Value int
}

var (
	_ pflag.Value              = &NonNegativeIntFlag{}
	_ cobrautil.ResolvableFlag = &NonNegativeIntFlag{}
)

func (f *NonNegativeIntFlag) Set(val string) error {
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("Expected integer value: %s", err)
	}
	f.Value = intVal
	return nil
}

func (f *NonNegativeIntFlag) String() string { return strconv.Itoa(f.Value) }
func (f *NonNegativeIntFlag) Type() string   { return "int" }

func (f *NonNegativeIntFlag) Resolve() error {
	if f.Value < 0 {
		return fmt.Errorf("Expected flag '--%s' to be non-negative, but was %d", f.Name, f.Value)
	}
	return nil
}
