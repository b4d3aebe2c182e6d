// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type DocumentPrinter interface {
	Print(*Map) error
}

type PrinterFactory func(io.Writer, PrinterOpts) DocumentPrinter

var printers = map[string]PrinterFactory{
	"text": func(w io.Writer, opts PrinterOpts) DocumentPrinter { return NewPrinterWithOpts(w, opts) },
	"json": func(w io.Writer, opts PrinterOpts) DocumentPrinter { return JSONPrinter{w, opts} },
	"yaml": func(w io.Writer, opts PrinterOpts) DocumentPrinter { return YAMLPrinter{w, opts} },
	"toml": func(w io.Writer, opts PrinterOpts) DocumentPrinter { return TOMLPrinter{w} },
}

// Formats lists names accepted by NewDocumentPrinter.
func Formats() []string {
	var result []string
	for name := range printers {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

func NewDocumentPrinter(format string, writer io.Writer, opts PrinterOpts) (DocumentPrinter, error) {
	factory, found := printers[format]
	if !found {
		return nil, fmt.Errorf("Unknown output format '%s' (supported: %s)", format, strings.Join(Formats(), ", "))
	}
	return factory(writer, opts), nil
}

// JSONPrinter writes indented JSON preserving key order.
type JSONPrinter struct {
	buf  io.Writer
	opts PrinterOpts
}

var _ DocumentPrinter = JSONPrinter{}

func (p JSONPrinter) Print(m *Map) error {
	var compact bytes.Buffer
	err := p.writeMap(m, &compact)
	if err != nil {
		return fmt.Errorf("marshaling doc: %s", err)
	}

	var indented bytes.Buffer
	err = json.Indent(&indented, compact.Bytes(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling doc: %s", err)
	}
	indented.WriteByte('\n')

	_, err = p.buf.Write(indented.Bytes())
	return err
}

func (p JSONPrinter) writeMap(m *Map, buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, item := range p.opts.items(m) {
		if i > 0 {
			buf.WriteByte(',')
		}
		err := writeJSONString(item.Key, buf)
		if err != nil {
			return err
		}
		buf.WriteByte(':')

		switch typedVal := item.Value.(type) {
		case *Map:
			err = p.writeMap(typedVal, buf)
		case *Scalar:
			err = writeJSONString(typedVal.Value, buf)
		default:
			panic(fmt.Sprintf("Unknown node type %T", typedVal))
		}
		if err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeJSONString(val string, buf *bytes.Buffer) error {
	var strBuf bytes.Buffer
	encoder := json.NewEncoder(&strBuf)
	encoder.SetEscapeHTML(false)
	err := encoder.Encode(val)
	if err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(strBuf.Bytes(), []byte("\n")))
	return nil
}

// YAMLPrinter writes YAML where every value is an explicit string,
// so "1" does not turn into a number when read back.
type YAMLPrinter struct {
	buf  io.Writer
	opts PrinterOpts
}

var _ DocumentPrinter = YAMLPrinter{}

func (p YAMLPrinter) Print(m *Map) error {
	encoder := yaml.NewEncoder(p.buf)
	encoder.SetIndent(2)

	err := encoder.Encode(p.node(m))
	if err != nil {
		return fmt.Errorf("marshaling doc: %s", err)
	}
	return encoder.Close()
}

func (p YAMLPrinter) node(m *Map) *yaml.Node {
	result := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, item := range p.opts.items(m) {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: item.Key}

		switch typedVal := item.Value.(type) {
		case *Map:
			result.Content = append(result.Content, keyNode, p.node(typedVal))
		case *Scalar:
			valNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: typedVal.Value}
			result.Content = append(result.Content, keyNode, valNode)
		default:
			panic(fmt.Sprintf("Unknown node type %T", typedVal))
		}
	}
	return result
}

// TOMLPrinter writes TOML. Keys are always sorted by the encoder.
type TOMLPrinter struct {
	buf io.Writer
}

var _ DocumentPrinter = TOMLPrinter{}

func (p TOMLPrinter) Print(m *Map) error {
	encoder := toml.NewEncoder(p.buf)
	encoder.Indent = "  "

	err := encoder.Encode(m.AsInterface())
	if err != nil {
		return fmt.Errorf("marshaling doc: %s", err)
	}
	return nil
}
