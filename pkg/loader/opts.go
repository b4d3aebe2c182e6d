// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"fmt"
)

const (
	DefaultMaxScalarLength = 256
	DefaultMaxDepth        = 1000
)

type Opts struct {
	// MaxScalarLength truncates keys and values to that many characters;
	// 0 disables truncation
	MaxScalarLength int
	DuplicateKeys   DuplicateKeyPolicy
	Sequences       SequencePolicy
	// MaxDepth limits how many maps may be nested below the root map;
	// 0 means no limit
	MaxDepth int
	Logger   Logger
}

func NewDefaultOpts() Opts {
	return Opts{
		MaxScalarLength: DefaultMaxScalarLength,
		DuplicateKeys:   DuplicateReject,
		Sequences:       SequenceSkip,
		MaxDepth:        DefaultMaxDepth,
		Logger:          NoopLogger{},
	}
}

type Logger interface {
	Debugf(str string, args ...interface{})
}

type NoopLogger struct{}

var _ Logger = NoopLogger{}

func (NoopLogger) Debugf(string, ...interface{}) {}

type DuplicateKeyPolicy int

const (
	DuplicateReject DuplicateKeyPolicy = iota
	DuplicateLastWins
)

var duplicateKeyPolicyNames = map[DuplicateKeyPolicy]string{
	DuplicateReject:   "reject",
	DuplicateLastWins: "last-wins",
}

func (p DuplicateKeyPolicy) String() string { return duplicateKeyPolicyNames[p] }

func (p *DuplicateKeyPolicy) Set(val string) error {
	for policy, name := range duplicateKeyPolicyNames {
		if name == val {
			*p = policy
			return nil
		}
	}
	return fmt.Errorf("Expected one of 'reject', 'last-wins', but was '%s'", val)
}

func (p *DuplicateKeyPolicy) Type() string { return "string" }

type SequencePolicy int

const (
	SequenceSkip SequencePolicy = iota
	SequenceReject
)

var sequencePolicyNames = map[SequencePolicy]string{
	SequenceSkip:   "skip",
	SequenceReject: "reject",
}

func (p SequencePolicy) String() string { return sequencePolicyNames[p] }

func (p *SequencePolicy) Set(val string) error {
	for policy, name := range sequencePolicyNames {
		if name == val {
			*p = policy
			return nil
		}
	}
	return fmt.Errorf("Expected one of 'skip', 'reject', but was '%s'", val)
}

func (p *SequencePolicy) Type() string { return "string" }
