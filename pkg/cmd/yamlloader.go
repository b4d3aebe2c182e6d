// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/yamlloader/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

type YamlloaderOptions struct{}

func NewDefaultYamlloaderOptions() *YamlloaderOptions {
	return &YamlloaderOptions{}
}

func NewDefaultYamlloaderCmd() *cobra.Command {
	return NewYamlloaderCmd(NewDefaultYamlloaderOptions())
}

func NewYamlloaderCmd(o *YamlloaderOptions) *cobra.Command {
	cmd := NewPrintCmd(NewPrintOptions())

	cmd.Use = "yamlloader"
	cmd.Version = version.Version
	cmd.Short = "yamlloader loads YAML configuration into nested maps"
	cmd.Long = `yamlloader loads YAML configuration into nested maps of string keys
and string values, and prints them (default command is "print").

Sequences are not represented: they are skipped (or rejected with --sequences=reject).`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(NewPrintCmd(NewPrintOptions()))
	cmd.AddCommand(NewGetCmd(NewGetOptions()))
	cmd.AddCommand(NewTokensCmd(NewTokensOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
