// Package shell provides functions to run shell commands and terraform commands.
package shell

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/schemakit/schemakit/errors"
	"github.com/schemakit/schemakit/options"
)

// CmdOutput holds the captured stdout and stderr of a completed command.
type CmdOutput struct {
	Stdout bytes.Buffer
	Stderr bytes.Buffer
}

// RunTerraformCommand runs the given terraform command, streaming its output to the configured writers.
func RunTerraformCommand(ctx context.Context, opts *options.Options, args ...string) error {
	_, err := RunShellCommandWithOutput(ctx, opts, opts.Writer, opts.TerraformPath, args...)
	return err
}

// RunTerraformCommandWithOutput runs the given terraform command and returns its captured output in
// addition to streaming it.
func RunTerraformCommandWithOutput(ctx context.Context, opts *options.Options, args ...string) (*CmdOutput, error) {
	return RunShellCommandWithOutput(ctx, opts, opts.Writer, opts.TerraformPath, args...)
}

// RunTerraformCommandWithStdout runs the given terraform command with its stdout connected solely to
// the given writer, without capturing it. This is how `providers schema -json` output is redirected
// straight into the schema file, since provider schemas can be hundreds of megabytes.
func RunTerraformCommandWithStdout(ctx context.Context, opts *options.Options, stdout io.Writer, args ...string) error {
	return runShellCommand(ctx, opts, stdout, opts.ErrWriter, opts.TerraformPath, args...)
}

// RunShellCommandWithOutput runs the specified shell command with the specified arguments. The
// command's stdout is streamed to the given writer and its stderr to the options' ErrWriter, while
// both are also captured and returned.
func RunShellCommandWithOutput(ctx context.Context, opts *options.Options, stdout io.Writer, command string, args ...string) (*CmdOutput, error) {
	output := CmdOutput{}

	cmdStdout := io.MultiWriter(stdout, &output.Stdout)
	cmdStderr := io.MultiWriter(opts.ErrWriter, &output.Stderr)

	err := runShellCommand(ctx, opts, cmdStdout, cmdStderr, command, args...)

	return &output, err
}

func runShellCommand(ctx context.Context, opts *options.Options, stdout io.Writer, stderr io.Writer, command string, args ...string) error {
	opts.Logger.Debugf("Running command: %s %s", command, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = opts.WorkingDir
	cmd.Env = toEnvVarsList(opts.Env)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		// bad path, binary not executable, &c
		return errors.WithStackTrace(ProcessExecutionError{
			Err:        err,
			Command:    command,
			Args:       args,
			WorkingDir: cmd.Dir,
		})
	}

	cmdChannel := make(chan error)
	signalChannel := NewSignalsForwarder(forwardSignals, cmd, opts, cmdChannel)

	defer func(signalChannel SignalsForwarder) {
		_ = signalChannel.Close()
	}(signalChannel)

	err := cmd.Wait()
	cmdChannel <- err

	if err != nil {
		return errors.WithStackTrace(ProcessExecutionError{
			Err:        err,
			Command:    command,
			Args:       args,
			WorkingDir: cmd.Dir,
		})
	}

	return nil
}

func toEnvVarsList(envVarsAsMap map[string]string) []string {
	envVarsAsList := make([]string, 0, len(envVarsAsMap))
	for key, value := range envVarsAsMap {
		envVarsAsList = append(envVarsAsList, fmt.Sprintf("%s=%s", key, value))
	}

	return envVarsAsList
}

// GetExitCode returns the exit code of a command. If the error does not implement errors.IErrorCode
// or is not an exec.ExitError type, the error is returned.
func GetExitCode(err error) (int, error) {
	var exitCoder errors.IErrorCode
	if errors.As(err, &exitCoder) {
		return exitCoder.ExitStatus()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	return 0, err
}

// ProcessExecutionError is returned when a command fails to start or exits with a non-zero status.
type ProcessExecutionError struct {
	Err        error
	Command    string
	Args       []string
	WorkingDir string
}

func (err ProcessExecutionError) Error() string {
	return fmt.Sprintf("failed to run %s %s in %s: %v", err.Command, strings.Join(err.Args, " "), err.WorkingDir, err.Err)
}

func (err ProcessExecutionError) Unwrap() error {
	return err.Err
}

// ExitStatus implements errors.IErrorCode.
func (err ProcessExecutionError) ExitStatus() (int, error) {
	var exitErr *exec.ExitError
	if errors.As(err.Err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	return -1, err
}
