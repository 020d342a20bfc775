package tf

import (
	"context"
	"fmt"
	"io"
	"regexp"

	"github.com/hashicorp/go-version"

	"github.com/schemakit/schemakit/errors"
	"github.com/schemakit/schemakit/options"
	"github.com/schemakit/schemakit/shell"
)

// The terraform version output is of the format: Terraform v0.9.5-dev (cad024a5fe131a546936674ef85445215bbc4226+CHANGES)
// where -dev and (commitid+CHANGES) appear for custom builds. OpenTofu reports itself the same way.
var versionRegex = regexp.MustCompile(`(?:Terraform|OpenTofu) (v?[\d.]+)(?:-dev)?(?: .+)?`)

// PopulateTerraformVersion populates the currently installed version of terraform into the given options.
func PopulateTerraformVersion(ctx context.Context, opts *options.Options) error {
	// Discard all output to make sure we don't pollute stdout or stderr with this extra call to 'version'
	optsCopy := opts.Clone()
	optsCopy.Writer = io.Discard
	optsCopy.ErrWriter = io.Discard

	output, err := shell.RunTerraformCommandWithOutput(ctx, optsCopy, CommandNameVersion)
	if err != nil {
		return err
	}

	terraformVersion, err := ParseTerraformVersion(output.Stdout.String())
	if err != nil {
		return err
	}

	opts.TerraformVersion = terraformVersion

	return nil
}

// ParseTerraformVersion parses the output of the terraform version command.
func ParseTerraformVersion(versionCommandOutput string) (*version.Version, error) {
	matches := versionRegex.FindStringSubmatch(versionCommandOutput)

	if len(matches) != 2 {
		return nil, errors.WithStackTrace(InvalidTerraformVersionSyntax(versionCommandOutput))
	}

	return version.NewVersion(matches[1])
}

// InvalidTerraformVersionSyntax is returned when the version command output cannot be parsed.
type InvalidTerraformVersionSyntax string

func (err InvalidTerraformVersionSyntax) Error() string {
	return fmt.Sprintf("Unable to parse Terraform version output: %s", string(err))
}
