// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to the full set of yamlloader's "commands" -- instances of cobra.Command
(not to be confused with ./cmd which contains the bootstrapping for executing yamlloader).

A cobra.Command is the starting point of execution.

For a list of commands run:

	$ yamlloader help

The default command is "print".
*/
package cmd
