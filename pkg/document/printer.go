// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Printer writes maps as indented "key:value" lines. Output is meant
// for humans and is not guaranteed to be valid YAML.
type Printer struct {
	writer io.Writer
	opts   PrinterOpts
}

type PrinterOpts struct {
	SortKeys bool
}

func NewPrinter(writer io.Writer) Printer {
	return Printer{writer, PrinterOpts{}}
}

func NewPrinterWithOpts(writer io.Writer, opts PrinterOpts) Printer {
	return Printer{writer, opts}
}

func (p Printer) Print(m *Map) error {
	_, err := io.WriteString(p.writer, p.PrintStr(m))
	return err
}

func (p Printer) PrintStr(m *Map) string {
	buf := new(bytes.Buffer)
	p.print(m, 0, buf)
	return buf.String()
}

func (p Printer) print(m *Map, indent int, writer io.Writer) {
	const indentLvl = 2

	prefix := strings.Repeat(" ", indent)

	for _, item := range p.opts.items(m) {
		switch typedVal := item.Value.(type) {
		case *Scalar:
			fmt.Fprintf(writer, "%s%s:%s\n", prefix, item.Key, typedVal.Value)
		case *Map:
			fmt.Fprintf(writer, "%s%s:\n", prefix, item.Key)
			p.print(typedVal, indent+indentLvl, writer)
		default:
			panic(fmt.Sprintf("Unknown node type %T", typedVal))
		}
	}
}

func (o PrinterOpts) items(m *Map) []*MapItem {
	if o.SortKeys {
		return m.SortedItems()
	}
	return m.Items()
}
