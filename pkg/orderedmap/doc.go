// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a map implementation where the order of keys is
maintained (unlike the native Go map).

This flavor of map keeps the output of yamlloader deterministic and
stable: keys are iterated in the order they were first inserted.
*/
package orderedmap
