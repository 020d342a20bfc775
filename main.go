package main

import (
	"context"
	"os"

	"github.com/schemakit/schemakit/cli"
	"github.com/schemakit/schemakit/errors"
	"github.com/schemakit/schemakit/options"
	"github.com/schemakit/schemakit/shell"
)

// The main entrypoint for schemakit
func main() {
	opts := options.NewOptions()

	defer errors.Recover(checkForErrorsAndExit(opts))

	app := cli.NewApp(opts)

	err := app.RunContext(context.Background(), os.Args)

	checkForErrorsAndExit(opts)(err)
}

// If there is an error, display it in the console and exit with a non-zero exit code. Otherwise, exit 0.
func checkForErrorsAndExit(opts *options.Options) func(error) {
	return func(err error) {
		if err == nil {
			os.Exit(0)
		}

		opts.Logger.Error(err.Error())

		if errStack := errors.ErrorStack(err); errStack != "" {
			opts.Logger.Trace(errStack)
		}

		exitCode, exitCodeErr := shell.GetExitCode(err)
		if exitCodeErr != nil || exitCode <= 0 {
			exitCode = 1
		}

		os.Exit(exitCode)
	}
}
