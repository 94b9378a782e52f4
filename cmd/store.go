package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"gitprobe/internal/constants"
	"gitprobe/internal/objects"
)

// openStore resolves the objects directory and returns a store over it.
// Resolution order: --git-dir flag / GITPROBE env / config file, then
// walk-up discovery from the working directory. The resolved root is
// passed into the store as a plain value; nothing below the CLI layer
// reads configuration.
func openStore() (*objects.ObjectStore, error) {
	gitDir := viper.GetString(constants.CfgGitDir)

	if gitDir == "" {
		repoRoot, err := findRepoRoot()
		if err != nil {
			return nil, err
		}
		gitDir = filepath.Join(repoRoot, constants.GitDir)
	}

	objectsRoot := filepath.Join(gitDir, constants.ObjectsDir)
	if info, err := os.Stat(objectsRoot); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("no object store at %s", objectsRoot)
	}

	return objects.NewObjectStore(objectsRoot, log), nil
}

// findRepoRoot locates the .git directory by walking up the directory tree.
func findRepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		gitPath := filepath.Join(dir, constants.GitDir)
		if info, err := os.Stat(gitPath); err == nil && info.IsDir() {
			return dir, nil
		}

		// Dir returns all but the last element of path
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding .git
			return "", fmt.Errorf("%s directory not found", constants.GitDir)
		}
		dir = parent
	}
}
