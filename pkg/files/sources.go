// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Source is a named input whose bytes can be read.
type Source interface {
	Description() string
	// Name is used as the file name within positions
	Name() string
	Bytes() ([]byte, error)
}

var _ []Source = []Source{BytesSource{}, StdinSource{}, LocalSource{}, HTTPSource{}}

// NewSourceFromPath picks a Source based on the shape of path:
// "-" is stdin, http(s) URLs are fetched, anything else is a local file.
func NewSourceFromPath(path string) (Source, error) {
	switch {
	case len(path) == 0:
		return nil, fmt.Errorf("Expected file path to be non-empty")
	case path == "-":
		return NewStdinSource(), nil
	case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
		return NewHTTPSource(path), nil
	default:
		fileInfo, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("Checking file '%s': %s", path, err)
		}
		if fileInfo.IsDir() {
			return nil, fmt.Errorf("Expected file '%s' to not be a directory", path)
		}
		return NewLocalSource(path), nil
	}
}

type BytesSource struct {
	name string
	data []byte
}

func NewBytesSource(name string, data []byte) BytesSource { return BytesSource{name, data} }

func (s BytesSource) Description() string    { return s.name }
func (s BytesSource) Name() string           { return s.name }
func (s BytesSource) Bytes() ([]byte, error) { return s.data, nil }

type StdinSource struct{}

func NewStdinSource() StdinSource { return StdinSource{} }

func (s StdinSource) Description() string    { return "stdin" }
func (s StdinSource) Name() string           { return "stdin.yml" }
func (s StdinSource) Bytes() ([]byte, error) { return ReadStdin() }

type LocalSource struct {
	path string
}

func NewLocalSource(path string) LocalSource { return LocalSource{path} }

func (s LocalSource) Description() string { return fmt.Sprintf("file '%s'", s.path) }

func (s LocalSource) Name() string { return filepath.Base(s.path) }

func (s LocalSource) Bytes() ([]byte, error) {
	bs, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("Reading file '%s': %s", s.path, err)
	}
	return bs, nil
}

type HTTPSource struct {
	url    string
	Client *http.Client
}

func NewHTTPSource(path string) HTTPSource { return HTTPSource{path, &http.Client{}} }

func (s HTTPSource) Description() string {
	return fmt.Sprintf("HTTP URL '%s'", s.url)
}

func (s HTTPSource) Name() string { return path.Base(s.url) }

func (s HTTPSource) Bytes() ([]byte, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("Requesting URL '%s': %s", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("Requesting URL '%s': %s", s.url, resp.Status)
	}

	result, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("Reading URL '%s': %s", s.url, err)
	}

	return result, nil
}
