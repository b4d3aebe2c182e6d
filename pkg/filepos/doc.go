// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a source name (usually a file),
line number and column within that source.

File positions are crucial when reporting load errors to the user. It is often
even more useful to share the actual source line as well. For this reason
Position can also carry a copy of the source line at the Position.

Not all Positions point within a file (e.g. tokens replayed from memory). The
zero-value of Position (can be created using NewUnknownPosition()) represents
this case.
*/
package filepos
