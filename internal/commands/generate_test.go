// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The quicktype Authors

package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicktype/quicktype/internal/cmdctx"
)

func TestGenerate_UsesProjectConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quicktype.yaml"),
		[]byte("version: 1\nlang: go\npackage: models\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "person.json"),
		[]byte(`{"id": 1, "name": "x"}`), 0o644))

	origDir, _ := os.Getwd()
	defer func() { _ = os.Chdir(origDir) }()
	require.NoError(t, os.Chdir(dir))

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"person.json"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	got := out.String()
	assert.Contains(t, got, "package models")
	assert.Contains(t, got, "type Person struct {")
	assert.Contains(t, got, "ID int64 `json:\"id\"`")
}

func TestGenerate_InvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quicktype.yaml"),
		[]byte("version: 99\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "in.json"),
		[]byte(`{"x": 1}`), 0o644))

	origDir, _ := os.Getwd()
	defer func() { _ = os.Chdir(origDir) }()
	require.NoError(t, os.Chdir(dir))

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"in.json", "--lang", "go"})

	err := cmd.ExecuteContext(context.Background())
	assert.ErrorIs(t, err, cmdctx.ErrInvalidConfig)
}
