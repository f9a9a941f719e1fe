package config

import (
	"fmt"
	"strings"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Provider.Model) == "" {
		errs = append(errs, "provider.model must not be empty")
	}

	// Tools validation
	if c.Tools.MaxFileSize < 1 {
		errs = append(errs, "tools.max_file_size must be >= 1")
	}
	if c.Tools.MaxReadChars < 1 {
		errs = append(errs, "tools.max_read_chars must be >= 1")
	}
	if c.Tools.MaxCommandOutputSize < 1 {
		errs = append(errs, "tools.max_command_output_size must be >= 1")
	}
	if c.Tools.Interpreter == "" {
		errs = append(errs, "tools.interpreter must not be empty")
	}
	if !strings.HasPrefix(c.Tools.ScriptSuffix, ".") || len(c.Tools.ScriptSuffix) < 2 {
		errs = append(errs, "tools.script_suffix must start with '.' and name an extension")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
