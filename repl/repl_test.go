package repl

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomix-k/gomix-k/eval"
)

func TestExecuteWithRecovery_PrintsResult(t *testing.T) {
	var buf bytes.Buffer
	r := NewRepl("", "v1", "a", "-", "MIT", "> ")
	r.executeWithRecovery(&buf, "3+4", eval.NewEvaluator())
	assert.Equal(t, "7\n", buf.String())
}

func TestExecuteWithRecovery_SuppressesAssignment(t *testing.T) {
	var buf bytes.Buffer
	r := NewRepl("", "v1", "a", "-", "MIT", "> ")
	r.executeWithRecovery(&buf, "x:5", eval.NewEvaluator())
	assert.Equal(t, "", buf.String())
}

func TestExecuteWithRecovery_PrintsErrorTag(t *testing.T) {
	var buf bytes.Buffer
	r := NewRepl("", "v1", "a", "-", "MIT", "> ")
	r.executeWithRecovery(&buf, "nosuchname", eval.NewEvaluator())
	assert.Equal(t, "^var\n", buf.String())
}

func TestRunFile_RunsEachExprAndSuppressesAssign(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.k")
	require.NoError(t, os.WriteFile(path, []byte("x:3; x+4"), 0o644))

	var buf bytes.Buffer
	err := RunFile(path, &buf, eval.NewEvaluator())
	require.NoError(t, err)
	assert.Equal(t, "7\n", buf.String())
}

func TestDumpWorkspace_WritesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dump.yaml")

	ev := eval.NewEvaluator()
	var buf bytes.Buffer
	r := NewRepl("", "v1", "a", "-", "MIT", "> ")
	r.executeWithRecovery(&buf, "x:42", ev)

	r.dumpWorkspace(&buf, path, ev)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "x:")
	assert.Contains(t, string(data), "42")
}
