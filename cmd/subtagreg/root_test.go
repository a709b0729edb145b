/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

const sampleRegistry = `File-Date: 2025-08-18
%%
Type: language
Subtag: de
Description: German
Suppress-Script: Latn
%%
Type: language
Subtag: in
Description: Indonesian
Preferred-Value: id
Suppress-Script: Latn
%%
Type: region
Subtag: DE
Description: Germany
`

func writeSampleRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registry.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_rootCommand(t *testing.T) {
	t.Run("compiles a snapshot to standard output", func(t *testing.T) {
		src := writeSampleRegistry(t, sampleRegistry)
		out := &bytes.Buffer{}

		cmd := newRootCommand(out)
		cmd.SetArgs([]string{"--file", src, "--output", "-"})
		cmd.SetErr(io.Discard)
		require.NoError(t, cmd.Execute())

		artifact := out.String()
		assert.True(t, strings.HasPrefix(artifact, "// Code generated by subtagreg. DO NOT EDIT.\n"))
		assert.Contains(t, artifact, "package iana\n")
		assert.Contains(t, artifact, `const FileDate = "2025-08-18"`)
		assert.Contains(t, artifact, "var Languages = [...]Language{\n")
		assert.Contains(t, artifact, "\t{'d', 'e', ' '},\n")
		assert.Contains(t, artifact, "\t{Language{'i', 'n', ' '}, Language{'i', 'd', ' '}},\n")
		assert.Contains(t, artifact, "var Regions = [...]Region{\n")
	})

	t.Run("writes the artifact file with the requested package", func(t *testing.T) {
		src := writeSampleRegistry(t, sampleRegistry)
		dst := filepath.Join(t.TempDir(), "iana_registry.go")
		out := &bytes.Buffer{}

		cmd := newRootCommand(out)
		cmd.SetArgs([]string{"--file", src, "--output", dst, "--package", "registrydata"})
		cmd.SetErr(io.Discard)
		require.NoError(t, cmd.Execute())

		data, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Contains(t, string(data), "package registrydata\n")
		assert.Empty(t, out.String(), "nothing may reach standard output when a file is written")
	})

	t.Run("malformed snapshot fails", func(t *testing.T) {
		src := writeSampleRegistry(t, "Type: language\nDescription: nameless\n")

		cmd := newRootCommand(io.Discard)
		cmd.SetArgs([]string{"--file", src, "--output", "-"})
		cmd.SetErr(io.Discard)
		require.ErrorContains(t, cmd.Execute(), "no Subtag field")
	})

	t.Run("unwritable output path fails", func(t *testing.T) {
		src := writeSampleRegistry(t, sampleRegistry)
		dst := filepath.Join(t.TempDir(), "no-such-dir", "iana_registry.go")

		cmd := newRootCommand(io.Discard)
		cmd.SetArgs([]string{"--file", src, "--output", dst})
		cmd.SetErr(io.Discard)
		require.ErrorContains(t, cmd.Execute(), "write")
	})

	t.Run("positional arguments are rejected", func(t *testing.T) {
		cmd := newRootCommand(io.Discard)
		cmd.SetArgs([]string{"bogus"})
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		require.Error(t, cmd.Execute())
	})
}

func Test_newLogger(t *testing.T) {
	quiet, err := newLogger(false)
	require.NoError(t, err)
	assert.False(t, quiet.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, quiet.Core().Enabled(zapcore.WarnLevel))

	verbose, err := newLogger(true)
	require.NoError(t, err)
	assert.True(t, verbose.Core().Enabled(zapcore.DebugLevel))
}
