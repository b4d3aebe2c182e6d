// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"time"

	"carvel.dev/yamlloader/pkg/cmd/ui"
	"carvel.dev/yamlloader/pkg/document"
	"carvel.dev/yamlloader/pkg/loader"
	"github.com/spf13/cobra"
)

type GetOptions struct {
	LoadFlags LoadFlags
	Path      string
	Output    string
	SortKeys  bool
}

func NewGetOptions() *GetOptions {
	return &GetOptions{LoadFlags: NewLoadFlags(), Output: "text"}
}

func NewGetCmd(o *GetOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print value at a dotted path (eg server.tls.port)",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	o.LoadFlags.Set(cmd.Flags())
	cmd.Flags().StringVarP(&o.Path, "path", "p", "", "Dotted path of keys (empty selects whole document)")
	cmd.Flags().StringVarP(&o.Output, "output", "o", o.Output, "Output format for map values")
	cmd.Flags().BoolVar(&o.SortKeys, "sort-keys", false, "Print keys of map values in lexical order")
	return cmd
}

func (o *GetOptions) Run() error {
	return o.RunWithUI(ui.NewTTY(o.LoadFlags.Debug))
}

func (o *GetOptions) RunWithUI(ui ui.UI) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	doc, err := loader.Load(o.LoadFlags.File, o.LoadFlags.Opts(ui))
	if err != nil {
		return err
	}

	node, err := doc.Lookup(document.SplitPath(o.Path)...)
	if err != nil {
		return err
	}

	ui.Debugf("found value at %s\n", node.GetPosition().AsCompactString())

	switch typedNode := node.(type) {
	case *document.Scalar:
		ui.Printf("%s\n", typedNode.Value)
		return nil

	case *document.Map:
		printer, err := document.NewDocumentPrinter(o.Output, ui.OutputWriter(), document.PrinterOpts{SortKeys: o.SortKeys})
		if err != nil {
			return err
		}
		return printer.Print(typedNode)

	default:
		panic("Unknown document node")
	}
}
