// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides Sources: file or file-like inputs (local files,
standard input, HTTP URLs, in-memory bytes) that yamlloader reads a
configuration document from.

This allows the loader to work with a single byte slice without becoming
entangled in the details of where the data came from.
*/
package files
