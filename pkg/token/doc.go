// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package token defines the typed YAML token stream consumed by the loader.

A Source yields tokens one at a time and is never asked to look behind.
Concrete sources are the YAML scanner (see package scanner) and SliceSource,
which replays a fixed list of tokens.
*/
package token
