package cmd

import (
	"fmt"
	"os"
)

// validateInputFile checks that the provided path exists and is a regular
// file before any decoding is attempted.
func validateInputFile(path string) error {
	if path == "" {
		return fmt.Errorf("input file path is required")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("input file does not exist: %s", path)
		}
		return fmt.Errorf("error accessing input file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("provided path is a directory, not a file: %s", path)
	}

	return nil
}
