// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"fmt"

	"carvel.dev/yamlloader/pkg/document"
	"carvel.dev/yamlloader/pkg/files"
	"carvel.dev/yamlloader/pkg/scanner"
	"carvel.dev/yamlloader/pkg/token"
)

// Load reads file at path ("-" for stdin, or an http(s) URL) and builds its map.
func Load(path string, opts Opts) (*document.Map, error) {
	if len(path) == 0 {
		return nil, InvalidInputError{Err: fmt.Errorf("Expected file path to be non-empty")}
	}

	src, err := files.NewSourceFromPath(path)
	if err != nil {
		return nil, InvalidInputError{Path: path, Err: err}
	}

	return LoadSource(src, opts)
}

func LoadSource(src files.Source, opts Opts) (*document.Map, error) {
	data, err := src.Bytes()
	if err != nil {
		return nil, InvalidInputError{Path: src.Description(), Err: err}
	}

	return LoadBytes(data, src.Name(), opts)
}

// LoadBytes builds the map of data; name is used in positions.
func LoadBytes(data []byte, name string, opts Opts) (*document.Map, error) {
	scan, err := scanner.New(data, scanner.Opts{AssociatedName: name})
	if err != nil {
		return nil, LexerInitError{Err: err}
	}

	return Build(scan, opts)
}

// Build builds the map of a whole token stream.
func Build(src token.Source, opts Opts) (*document.Map, error) {
	return NewBuilder(opts).BuildDocument(src)
}
