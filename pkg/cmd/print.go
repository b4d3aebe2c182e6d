// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strings"
	"time"

	"carvel.dev/yamlloader/pkg/cmd/ui"
	"carvel.dev/yamlloader/pkg/document"
	"carvel.dev/yamlloader/pkg/loader"
	"github.com/spf13/cobra"
)

type PrintOptions struct {
	LoadFlags LoadFlags
	Output    string
	SortKeys  bool
}

func NewPrintOptions() *PrintOptions {
	return &PrintOptions{LoadFlags: NewLoadFlags(), Output: "text"}
}

func NewPrintCmd(o *PrintOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Load YAML file and print resulting nested map",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	o.Set(cmd)
	return cmd
}

func (o *PrintOptions) Set(cmd *cobra.Command) {
	o.LoadFlags.Set(cmd.Flags())
	cmd.Flags().StringVarP(&o.Output, "output", "o", o.Output,
		fmt.Sprintf("Output format (%s)", strings.Join(document.Formats(), ", ")))
	cmd.Flags().BoolVar(&o.SortKeys, "sort-keys", false, "Print keys in lexical order instead of file order")
}

func (o *PrintOptions) Run() error {
	return o.RunWithUI(ui.NewTTY(o.LoadFlags.Debug))
}

func (o *PrintOptions) RunWithUI(ui ui.UI) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	printer, err := document.NewDocumentPrinter(o.Output, ui.OutputWriter(), document.PrinterOpts{SortKeys: o.SortKeys})
	if err != nil {
		return err
	}

	doc, err := loader.Load(o.LoadFlags.File, o.LoadFlags.Opts(ui))
	if err != nil {
		return err
	}

	return printer.Print(doc)
}
