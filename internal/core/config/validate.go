package config

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/acrodrill/internal/core/styles"
)

// ValidateDeep performs comprehensive validation of the configuration including
// source resolution, file accessibility and executables. The configPath argument
// specifies the config file location to validate (empty string skips config file check).
// This calls Validate() first for basic structural validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		c.validateSources(),
		criterio.Run("tui.theme", c.TUI.Theme, themeExists),
		criterio.Run("open_command", c.OpenCommand, executableExists),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// validateSources checks that every enabled source resolves to readable files.
// Disabled sources are skipped so a missing optional deck does not block startup.
func (c *Config) validateSources() error {
	var errs criterio.FieldErrorsBuilder
	for i, src := range c.Sources {
		if !src.IsEnabled() {
			continue
		}

		field := fmt.Sprintf("sources[%d]", i)
		files, err := src.Resolve(c.BaseDir)
		if err != nil {
			errs = errs.Append(field, err)
			continue
		}

		for _, f := range files {
			info, err := os.Stat(f)
			switch {
			case err != nil:
				errs = errs.Append(field, fmt.Errorf("cannot access %s: %w", f, err))
			case info.IsDir():
				errs = errs.Append(field, fmt.Errorf("%s is a directory, not a file", f))
			}
		}
	}
	return errs.ToError()
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

// executableExists validates an optional command is on PATH.
func executableExists(path string) error {
	if path == "" {
		return nil
	}
	if _, err := exec.LookPath(path); err != nil {
		return fmt.Errorf("executable not found: %s", path)
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}
