// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"carvel.dev/yamlloader/pkg/cmd"
	"carvel.dev/yamlloader/pkg/cmd/ui"
	"carvel.dev/yamlloader/pkg/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configYAML = `name: demo
server:
  port: 8080
  host: localhost
list:
  - a
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func newTestUI(debug bool) (ui.UI, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return ui.NewCustomWriterTTY(debug, &stdout, &stderr), &stdout, &stderr
}

func TestPrintText(t *testing.T) {
	opts := cmd.NewPrintOptions()
	opts.LoadFlags.File = writeConfig(t, configYAML)

	testUI, stdout, stderr := newTestUI(false)
	require.NoError(t, opts.RunWithUI(testUI))

	assert.Equal(t, "name:demo\nserver:\n  port:8080\n  host:localhost\n", stdout.String())
	assert.Equal(t, "", stderr.String())
}

func TestPrintSortedJSON(t *testing.T) {
	opts := cmd.NewPrintOptions()
	opts.LoadFlags.File = writeConfig(t, configYAML)
	opts.Output = "json"
	opts.SortKeys = true

	testUI, stdout, _ := newTestUI(false)
	require.NoError(t, opts.RunWithUI(testUI))

	expected := `{
  "name": "demo",
  "server": {
    "host": "localhost",
    "port": "8080"
  }
}
`
	assert.Equal(t, expected, stdout.String())
}

func TestPrintDebugOutput(t *testing.T) {
	opts := cmd.NewPrintOptions()
	opts.LoadFlags.File = writeConfig(t, configYAML)
	opts.LoadFlags.Debug = true

	testUI, _, stderr := newTestUI(true)
	require.NoError(t, opts.RunWithUI(testUI))

	assert.Contains(t, stderr.String(), "Skipping sequence value of key 'list' (config.yml:6)\n")
	assert.Contains(t, stderr.String(), "total: ")
}

func TestPrintRejectsSequences(t *testing.T) {
	opts := cmd.NewPrintOptions()
	opts.LoadFlags.File = writeConfig(t, configYAML)
	opts.LoadFlags.Sequences = loader.SequenceReject

	testUI, stdout, _ := newTestUI(false)
	err := opts.RunWithUI(testUI)
	require.EqualError(t, err, "Unsupported sequence as value of key 'list' at config.yml:6")
	assert.Equal(t, "", stdout.String())
}

func TestPrintUnknownOutput(t *testing.T) {
	opts := cmd.NewPrintOptions()
	opts.LoadFlags.File = writeConfig(t, configYAML)
	opts.Output = "xml"

	testUI, _, _ := newTestUI(false)
	require.EqualError(t, opts.RunWithUI(testUI), "Unknown output format 'xml' (supported: json, text, toml, yaml)")
}

func TestGetScalarAndMap(t *testing.T) {
	path := writeConfig(t, configYAML)

	opts := cmd.NewGetOptions()
	opts.LoadFlags.File = path
	opts.Path = "server.port"

	testUI, stdout, _ := newTestUI(false)
	require.NoError(t, opts.RunWithUI(testUI))
	assert.Equal(t, "8080\n", stdout.String())

	opts = cmd.NewGetOptions()
	opts.LoadFlags.File = path
	opts.Path = "server"
	opts.Output = "yaml"

	testUI, stdout, _ = newTestUI(false)
	require.NoError(t, opts.RunWithUI(testUI))
	assert.Equal(t, "port: \"8080\"\nhost: localhost\n", stdout.String())
}

func TestGetMapDefaultsToText(t *testing.T) {
	opts := cmd.NewGetOptions()
	opts.LoadFlags.File = writeConfig(t, configYAML)
	opts.Path = "server"

	testUI, stdout, _ := newTestUI(false)
	require.NoError(t, opts.RunWithUI(testUI))
	assert.Equal(t, "port:8080\nhost:localhost\n", stdout.String())
}

func TestOutputDefaults(t *testing.T) {
	printOpts := cmd.NewPrintOptions()
	assert.Equal(t, "text", printOpts.Output)
	assert.Equal(t, "text", cmd.NewPrintCmd(printOpts).Flags().Lookup("output").DefValue)

	getOpts := cmd.NewGetOptions()
	assert.Equal(t, "text", getOpts.Output)
	assert.Equal(t, "text", cmd.NewGetCmd(getOpts).Flags().Lookup("output").DefValue)
}

func TestGetMissingKey(t *testing.T) {
	opts := cmd.NewGetOptions()
	opts.LoadFlags.File = writeConfig(t, configYAML)
	opts.Path = "server.tls"

	testUI, _, _ := newTestUI(false)
	require.EqualError(t, opts.RunWithUI(testUI), "Expected to find key 'tls' (path 'server.tls') in map at config.yml:3")
}

func TestTokens(t *testing.T) {
	opts := cmd.NewTokensOptions()
	opts.File = writeConfig(t, "a: \"1\"\n")

	testUI, stdout, _ := newTestUI(false)
	require.NoError(t, opts.RunWithUI(testUI))

	expected := `   1:1   STREAM-START
   1:1   BLOCK-MAPPING-START
   1:1   KEY
   1:1   SCALAR("a") plain
   1:2   VALUE
   1:4   SCALAR("1") double-quoted
   2:1   BLOCK-MAPPING-END
   2:1   STREAM-END
`
	assert.Equal(t, expected, stdout.String())
}

func TestVersion(t *testing.T) {
	testUI, stdout, _ := newTestUI(false)
	require.NoError(t, cmd.NewVersionOptions().RunWithUI(testUI))
	assert.Equal(t, "yamlloader version develop\n", stdout.String())
}

func TestRootCmdFlagValidation(t *testing.T) {
	path := writeConfig(t, configYAML)

	rootCmd := cmd.NewDefaultYamlloaderCmd()
	rootCmd.SetArgs([]string{"-f", path, "--max-depth=-1"})
	require.EqualError(t, rootCmd.Execute(), "Expected flag '--max-depth' to be non-negative, but was -1")

	rootCmd = cmd.NewDefaultYamlloaderCmd()
	rootCmd.SetArgs([]string{"get", "-f", path, "--duplicate-keys", "first-wins"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected one of 'reject', 'last-wins', but was 'first-wins'")

	rootCmd = cmd.NewDefaultYamlloaderCmd()
	rootCmd.SetArgs([]string{"print", "-f", path, "extra"})
	require.EqualError(t, rootCmd.Execute(), "command 'yamlloader print' does not accept extra arguments 'extra'")
}

func TestLoadFlagsDefaults(t *testing.T) {
	flags := cmd.NewLoadFlags()
	opts := flags.Opts(loader.NoopLogger{})

	defaults := loader.NewDefaultOpts()
	assert.Equal(t, defaults.MaxScalarLength, opts.MaxScalarLength)
	assert.Equal(t, defaults.MaxDepth, opts.MaxDepth)
	assert.Equal(t, defaults.DuplicateKeys, opts.DuplicateKeys)
	assert.Equal(t, defaults.Sequences, opts.Sequences)
}
