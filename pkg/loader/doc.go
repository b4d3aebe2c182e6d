// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package loader turns a YAML token stream into a document.Map.

The Builder pulls tokens from a token.Source and pairs KEY and VALUE
tokens into map entries. A BLOCK-MAPPING-START token seen in value
position opens a nested map for the pending key; the nested level ends
at its matching BLOCK-MAPPING-END. The first BLOCK-MAPPING-START seen by
a level that has not opened yet wraps that level's own entries.

Load, LoadBytes and LoadSource read input through package files and
scan it with package scanner before building.
*/
package loader
