package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjoyce/pipeliner/internal/ipc"
)

func execCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := runCLI(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeIPC(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ipc.properties")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewCommand(t *testing.T) {
	dir := t.TempDir()

	code, stdout, stderr := execCLI(t, "new", "--dir", dir)
	require.Equal(t, 0, code, stderr)

	path := strings.TrimSpace(stdout)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), ipc.TempFilePrefix))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestShowCommand(t *testing.T) {
	path := writeIPC(t, "# IpcMap\nalpha=1\nmulti=wor\\nld\n")

	code, stdout, stderr := execCLI(t, "show", path)
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "(2 properties)")
	assert.Contains(t, stdout, "alpha")
	assert.Contains(t, stdout, `wor\nld`)
	assert.Equal(t, 3, strings.Count(stdout, "\n"))
}

func TestShowStrictAndPermissive(t *testing.T) {
	path := writeIPC(t, "alpha=1\nbroken\n")

	code, _, stderr := execCLI(t, "show", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "malformed line")

	code, stdout, _ := execCLI(t, "show", "--permissive", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "(1 properties)")
}

func TestExportYAMLKeepsOrder(t *testing.T) {
	path := writeIPC(t, "zeta=true\nalpha=line1\\nline2\n")

	code, stdout, stderr := execCLI(t, "export", path)
	require.Equal(t, 0, code, stderr)

	assert.Less(t, strings.Index(stdout, "zeta"), strings.Index(stdout, "alpha"))

	p, err := decodeYAML([]byte(stdout))
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha"}, p.Keys())
	assert.Equal(t, map[string]string{"zeta": "true", "alpha": "line1\nline2"}, p.Map())
}

func TestExportJSON(t *testing.T) {
	path := writeIPC(t, "b=2\na=1\n")

	code, stdout, stderr := execCLI(t, "export", "--format", "json", path)
	require.Equal(t, 0, code, stderr)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, got)
}

func TestExportUnknownFormat(t *testing.T) {
	path := writeIPC(t, "a=1\n")

	code, _, stderr := execCLI(t, "export", "--format", "toml", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unsupported format")
}

func TestImportCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.yaml")
	dst := filepath.Join(dir, "out.properties")
	require.NoError(t, os.WriteFile(src, []byte("extension.property.2: bar\nextension.property.1: |\n  two\n  lines\nempty:\n"), 0o600))

	code, stdout, stderr := execCLI(t, "import", "--header", src, dst)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "wrote 3 properties")

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "# IpcMap\nextension.property.2=bar\nextension.property.1=two\\nlines\\n\nempty=\n", string(data))
}

func TestImportRejectsNestedValues(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.yaml")
	dst := filepath.Join(dir, "out.properties")
	require.NoError(t, os.WriteFile(src, []byte("a: 1\nnested:\n  b: 2\n"), 0o600))

	code, _, stderr := execCLI(t, "import", src, dst)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "not a scalar")

	_, err := os.Stat(dst)
	assert.True(t, os.IsNotExist(err))
}

func TestImportInvalidNameLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.yaml")
	dst := filepath.Join(dir, "out.properties")
	require.NoError(t, os.WriteFile(src, []byte("\"a=b\": 1\n"), 0o600))

	code, _, stderr := execCLI(t, "import", src, dst)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid property name")

	_, err := os.Stat(dst)
	assert.True(t, os.IsNotExist(err))
}

func TestDigestCommand(t *testing.T) {
	a := writeIPC(t, "# IpcMap\nx=1\ny=2\n")
	b := writeIPC(t, "x=1\n\ny=2\n")

	code, outA, stderr := execCLI(t, "digest", a)
	require.Equal(t, 0, code, stderr)
	_, outB, _ := execCLI(t, "digest", b)

	assert.True(t, strings.HasPrefix(outA, "blake3:"))
	assert.Equal(t, outA, outB, "comments and blank lines do not change the fingerprint")
}

func TestRmCommand(t *testing.T) {
	dir := t.TempDir()
	code, stdout, stderr := execCLI(t, "new", "--dir", dir)
	require.Equal(t, 0, code, stderr)
	path := strings.TrimSpace(stdout)

	code, _, stderr = execCLI(t, "rm", path, filepath.Join(dir, "never-created"))
	require.Equal(t, 0, code, stderr)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Removing again is not an error.
	code, _, stderr = execCLI(t, "rm", path)
	assert.Equal(t, 0, code, stderr)
}

func TestRmRequiresArgument(t *testing.T) {
	code, _, stderr := execCLI(t, "rm")
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, stderr)
}

func TestMissingFile(t *testing.T) {
	code, _, stderr := execCLI(t, "show", filepath.Join(t.TempDir(), "nope"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "failed to read IPC file")
}
