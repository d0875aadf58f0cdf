package conf

import (
	"os"
	"path/filepath"

	"github.com/tphakala/hamkit/internal/errors"
)

// GetDefaultConfigPaths returns the directories searched for config.yaml:
// the working directory, the user config directory and /etc/hamkit.
func GetDefaultConfigPaths() ([]string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryConfiguration).
			Context("operation", "get-home-directory").
			Build()
	}

	return []string{
		".",
		filepath.Join(homeDir, ".config", "hamkit"),
		"/etc/hamkit",
	}, nil
}
