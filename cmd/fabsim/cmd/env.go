package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/go-drift/fab/pkg/platform"
)

// defaultEnvFile is loaded when present and no --env flag is given.
const defaultEnvFile = ".env"

// loadEnv loads environment files and applies any FAB_PLATFORM_*
// override. Variables already set in the process win over the file.
func loadEnv(file string) error {
	if file != "" {
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	} else if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", defaultEnvFile, err)
	}

	id, err := platform.FromEnv(os.LookupEnv)
	if err != nil {
		return err
	}
	if id.OS != "" {
		platform.SetCurrent(id)
	}
	return nil
}
