package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/KostasZigo/gogitobj/internal/compression"
	"github.com/KostasZigo/gogitobj/internal/config"
	"github.com/KostasZigo/gogitobj/internal/constants"
	"github.com/KostasZigo/gogitobj/internal/objects"
)

// openObjectStore locates the .gogit directory and opens its object store
// with the repository config applied.
func openObjectStore() (*objects.ObjectStore, error) {
	gogitDir, err := resolveGogitDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(gogitDir)
	if err != nil {
		return nil, err
	}
	if settings.IsSet(strictFlag) {
		cfg.Strict = settings.GetBool(strictFlag)
	}

	codec := compression.NewCodec(
		compression.WithLevel(cfg.CompressionLevel),
		compression.WithMaxSize(cfg.MaxObjectSize),
	)
	return objects.NewObjectStore(gogitDir,
		objects.WithCodec(codec),
		objects.WithStrict(cfg.Strict),
	), nil
}

// resolveGogitDir prefers an explicit --git-dir / GOGIT_DIR over discovery.
func resolveGogitDir() (string, error) {
	if dir := settings.GetString(gitDirFlag); dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return "", fmt.Errorf("invalid %s %s: %w", gitDirFlag, dir, err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("invalid %s %s: not a directory", gitDirFlag, dir)
		}
		return dir, nil
	}

	repoPath, err := findRepoRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(repoPath, constants.Gogit), nil
}

// findRepoRoot locates .gogit directory by walking up directory tree.
func findRepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		gogitPath := filepath.Join(dir, constants.Gogit)
		if info, err := os.Stat(gogitPath); err == nil && info.IsDir() {
			return dir, nil
		}

		// Dir returns all but the last element of path
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding .gogit
			return "", fmt.Errorf("%s directory not found", constants.Gogit)
		}
		dir = parent
	}
}
