//go:build linux || darwin
// +build linux darwin

package shell_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemakit/schemakit/options"
	"github.com/schemakit/schemakit/shell"
)

func newTestOptions(t *testing.T) (*options.Options, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	opts, err := options.NewOptionsForTest(t.TempDir())
	require.NoError(t, err)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	opts.Writer = stdout
	opts.ErrWriter = stderr

	return opts, stdout, stderr
}

func TestRunShellCommandWithOutput(t *testing.T) {
	t.Parallel()

	opts, stdout, stderr := newTestOptions(t)

	output, err := shell.RunShellCommandWithOutput(context.Background(), opts, opts.Writer, "echo", "hello", "world")
	require.NoError(t, err)

	assert.Equal(t, "hello world\n", output.Stdout.String())
	assert.Empty(t, output.Stderr.String())

	// Output is streamed to the configured writers as well as captured.
	assert.Equal(t, "hello world\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunShellCommandStderr(t *testing.T) {
	t.Parallel()

	opts, stdout, stderr := newTestOptions(t)

	output, err := shell.RunShellCommandWithOutput(context.Background(), opts, opts.Writer, "sh", "-c", "echo oops >&2")
	require.NoError(t, err)

	assert.Equal(t, "oops\n", output.Stderr.String())
	assert.Equal(t, "oops\n", stderr.String())
	assert.Empty(t, stdout.String())
}

func TestRunShellCommandFailure(t *testing.T) {
	t.Parallel()

	opts, _, _ := newTestOptions(t)

	_, err := shell.RunShellCommandWithOutput(context.Background(), opts, opts.Writer, "sh", "-c", "exit 3")
	require.Error(t, err)

	exitCode, exitCodeErr := shell.GetExitCode(err)
	require.NoError(t, exitCodeErr)
	assert.Equal(t, 3, exitCode)
}

func TestRunShellCommandNotFound(t *testing.T) {
	t.Parallel()

	opts, _, _ := newTestOptions(t)

	_, err := shell.RunShellCommandWithOutput(context.Background(), opts, opts.Writer, "definitely-not-a-real-command")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "definitely-not-a-real-command")
}

func TestRunTerraformCommandWithStdout(t *testing.T) {
	t.Parallel()

	opts, stdout, _ := newTestOptions(t)
	opts.TerraformPath = "sh"

	redirected := new(bytes.Buffer)

	err := shell.RunTerraformCommandWithStdout(context.Background(), opts, redirected, "-c", "echo schema-json")
	require.NoError(t, err)

	// Stdout goes solely to the given writer, just like a shell redirection.
	assert.Equal(t, "schema-json\n", redirected.String())
	assert.Empty(t, stdout.String())
}

func TestRunCommandRunsInWorkingDir(t *testing.T) {
	t.Parallel()

	opts, _, _ := newTestOptions(t)
	require.NoError(t, os.WriteFile(filepath.Join(opts.WorkingDir, "marker.txt"), []byte("x"), 0o644))

	output, err := shell.RunShellCommandWithOutput(context.Background(), opts, opts.Writer, "ls")
	require.NoError(t, err)

	assert.Contains(t, output.Stdout.String(), "marker.txt")
}

func TestGetExitCodeUnrelatedError(t *testing.T) {
	t.Parallel()

	unrelated := assert.AnError

	_, err := shell.GetExitCode(unrelated)
	assert.Equal(t, unrelated, err)
}
