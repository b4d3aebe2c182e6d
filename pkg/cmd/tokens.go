// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"carvel.dev/yamlloader/pkg/cmd/ui"
	"carvel.dev/yamlloader/pkg/files"
	"carvel.dev/yamlloader/pkg/scanner"
	"carvel.dev/yamlloader/pkg/token"
	"github.com/spf13/cobra"
)

type TokensOptions struct {
	File     string
	Comments bool
}

func NewTokensOptions() *TokensOptions {
	return &TokensOptions{}
}

func NewTokensCmd(o *TokensOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print token stream of YAML file (for debugging)",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVarP(&o.File, "file", "f", "", "File (ie local path, HTTP URL, -)")
	cmd.Flags().BoolVar(&o.Comments, "comments", false, "Include comment tokens")
	return cmd
}

func (o *TokensOptions) Run() error {
	return o.RunWithUI(ui.NewTTY(false))
}

func (o *TokensOptions) RunWithUI(ui ui.UI) error {
	src, err := files.NewSourceFromPath(o.File)
	if err != nil {
		return err
	}

	data, err := src.Bytes()
	if err != nil {
		return err
	}

	scan, err := scanner.New(data, scanner.Opts{AssociatedName: src.Name(), Comments: o.Comments})
	if err != nil {
		return err
	}

	for {
		tok, err := scan.Next()
		if err != nil {
			return err
		}

		if tok.Kind == token.Scalar {
			ui.Printf("%s %s %s\n", o.positionStr(tok), tok, tok.Style)
		} else {
			ui.Printf("%s %s\n", o.positionStr(tok), tok)
		}

		if tok.Kind == token.StreamEnd {
			return nil
		}
	}
}

func (o *TokensOptions) positionStr(tok token.Token) string {
	return fmt.Sprintf("%s:%-3d", tok.Position.As4DigitString(), tok.Position.Column())
}
