// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"io"
)

// UI is where commands send their results (stdout) and diagnostics (stderr).
// It also serves as loader.Logger via Debugf.
type UI interface {
	Printf(string, ...interface{})
	Debugf(string, ...interface{})
	OutputWriter() io.Writer
}
