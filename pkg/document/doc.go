// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package document contains the in-memory representation of a loaded YAML
configuration: a Map of string keys to Nodes, where every Node is either
a Scalar (leaf string value) or another Map.

Maps keep keys in the order they were first inserted, so printing and
encoding a Map is deterministic. Every Node remembers the Position of the
token it was built from.

Maps are populated by package loader and are meant to be read-only
afterwards.
*/
package document
