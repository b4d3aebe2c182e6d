// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package scanner turns YAML text into a token.Source.

The scanner follows the design of libyaml's scanner: tokens are kept in a
queue so that KEY and BLOCK-MAPPING-START tokens can be inserted in front of
a scalar once the ':' indicator that follows it is found ("simple keys"), and
an indentation stack produces explicit block start and end tokens.

Only the block-style subset used by configuration files is supported:
block mappings and sequences, plain, quoted and block scalars, comments and
document markers. Flow collections, anchors, aliases, tags, directives and
explicit ('?') keys are rejected with an Error.

Unlike libyaml, the end of a block is reported as either BLOCK-MAPPING-END or
BLOCK-SEQUENCE-END, and indentless sequences (a sequence at the same column
as its parent key) are still wrapped into BLOCK-SEQUENCE-START/END.
*/
package scanner
