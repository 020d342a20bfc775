// Package tf holds the names and paths of the terraform commands and directories schemakit touches.
package tf

const (
	// TF commands.

	CommandNameInit      = "init"
	CommandNameProviders = "providers"
	CommandNameSchema    = "schema"
	CommandNameVersion   = "version"

	// TF flags.

	FlagNameJSON = "-json"

	// DataDir is terraform's working-directory state dir, created by `terraform init`.
	DataDir = ".terraform"

	// ProvidersDirName is the subdirectory of DataDir holding downloaded provider plugin binaries.
	ProvidersDirName = "providers"
)
