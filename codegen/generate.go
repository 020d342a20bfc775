package codegen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/schemakit/schemakit/errors"
	"github.com/schemakit/schemakit/util"
)

// GenerateConfigExists is an enum of valid values for if_exists.
type GenerateConfigExists int

const (
	ExistsError GenerateConfigExists = iota
	ExistsSkip
	ExistsOverwrite
	ExistsUnknown
)

const (
	ExistsErrorStr     = "error"
	ExistsSkipStr      = "skip"
	ExistsOverwriteStr = "overwrite"
)

// GenerateConfig is the configuration for generating a file.
type GenerateConfig struct {
	Path     string
	IfExists GenerateConfigExists
	Contents string
}

// WriteToFile will generate a new file at the given target path with the given contents. If a file
// already exists at the target path, the behavior depends on the value of IfExists:
// - if ExistsError, return an error.
// - if ExistsSkip, do nothing and return
// - if ExistsOverwrite, overwrite the existing file
func WriteToFile(logger *logrus.Entry, basePath string, config GenerateConfig) error {
	// Figure out the target path to generate the code in. If relative, merge with basePath.
	var targetPath string
	if filepath.IsAbs(config.Path) {
		targetPath = config.Path
	} else {
		targetPath = filepath.Join(basePath, config.Path)
	}

	targetFileExists := util.FileExists(targetPath)

	switch {
	case targetFileExists && config.IfExists == ExistsError:
		return errors.WithStackTrace(GenerateFileExistsError{path: targetPath})
	case targetFileExists && config.IfExists == ExistsSkip:
		// Do nothing since file exists and skip was configured
		logger.Debugf("The file path %s already exists and if_exists set to \"skip\". Will not regenerate file.", targetPath)
		return nil
	case targetFileExists:
		logger.Debugf("The file path %s already exists and if_exists set to \"overwrite\". Regenerating file.", targetPath)
	case config.IfExists == ExistsUnknown:
		return errors.WithStackTrace(UnknownGenerateIfExistsVal{""})
	}

	if err := util.EnsureDirectory(filepath.Dir(targetPath)); err != nil {
		return err
	}

	if err := os.WriteFile(targetPath, []byte(config.Contents), 0o644); err != nil {
		return errors.WithStackTrace(err)
	}

	logger.Infof("Generated file %s.", targetPath)

	return nil
}

// GenerateConfigExistsFromString converts a string representation of if_exists into the enum,
// returning an error if it is not set to one of the known values.
func GenerateConfigExistsFromString(val string) (GenerateConfigExists, error) {
	switch val {
	case ExistsErrorStr:
		return ExistsError, nil
	case ExistsSkipStr:
		return ExistsSkip, nil
	case ExistsOverwriteStr:
		return ExistsOverwrite, nil
	}

	return ExistsUnknown, errors.WithStackTrace(UnknownGenerateIfExistsVal{val: val})
}

// Custom error types

type UnknownGenerateIfExistsVal struct {
	val string
}

func (err UnknownGenerateIfExistsVal) Error() string {
	if err.val != "" {
		return fmt.Sprintf("%s is not a valid value for if_exists", err.val)
	}

	return "Received unknown value for if_exists"
}

type GenerateFileExistsError struct {
	path string
}

func (err GenerateFileExistsError) Error() string {
	return fmt.Sprintf("Can not generate file: %s already exists", err.path)
}
