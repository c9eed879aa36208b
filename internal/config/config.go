// Package config reads and writes the INI repository configuration file
// stored at <root>/config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/KostasZigo/gogitobj/internal/constants"
	"gopkg.in/ini.v1"
)

// Sections and keys understood in the config file.
const (
	coreSection          = "core"
	compressionKey       = "compression"
	repositoryVersionKey = "repositoryformatversion"

	gogitSection     = "gogit"
	strictKey        = "strict"
	maxObjectSizeKey = "maxObjectSize"
)

// Config holds the settings the object store is opened with.
type Config struct {
	// CompressionLevel is the zlib level, -1 selects the library default.
	CompressionLevel int
	// Strict verifies declared sizes and digests on every read.
	Strict bool
	// MaxObjectSize caps decompressed objects in bytes, 0 disables the cap.
	MaxObjectSize int64
}

func Default() Config {
	return Config{
		CompressionLevel: constants.DefaultCompressionLevel,
		Strict:           false,
		MaxObjectSize:    constants.DefaultMaxObjectSize,
	}
}

// Path returns the config file location inside a metadata directory.
func Path(root string) string {
	return filepath.Join(root, constants.Config)
}

// Load reads <root>/config. A missing file yields Default.
func Load(root string) (Config, error) {
	cfg := Default()
	configPath := Path(root)

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	file, err := ini.Load(configPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config %s: %w", configPath, err)
	}

	core := file.Section(coreSection)
	if core.HasKey(compressionKey) {
		level, err := core.Key(compressionKey).Int()
		if err != nil {
			return cfg, fmt.Errorf("invalid %s.%s: %w", coreSection, compressionKey, err)
		}
		if level < -1 || level > 9 {
			return cfg, fmt.Errorf("invalid %s.%s: %d is outside -1..9", coreSection, compressionKey, level)
		}
		cfg.CompressionLevel = level
	}

	gogit := file.Section(gogitSection)
	if gogit.HasKey(strictKey) {
		strict, err := gogit.Key(strictKey).Bool()
		if err != nil {
			return cfg, fmt.Errorf("invalid %s.%s: %w", gogitSection, strictKey, err)
		}
		cfg.Strict = strict
	}
	if gogit.HasKey(maxObjectSizeKey) {
		maxSize, err := gogit.Key(maxObjectSizeKey).Int64()
		if err != nil {
			return cfg, fmt.Errorf("invalid %s.%s: %w", gogitSection, maxObjectSizeKey, err)
		}
		if maxSize < 0 {
			return cfg, fmt.Errorf("invalid %s.%s: %d is negative", gogitSection, maxObjectSizeKey, maxSize)
		}
		cfg.MaxObjectSize = maxSize
	}

	return cfg, nil
}

// Save writes cfg to <root>/config.
func Save(root string, cfg Config) error {
	file := ini.Empty()

	core := file.Section(coreSection)
	core.Key(repositoryVersionKey).SetValue("0")
	core.Key(compressionKey).SetValue(fmt.Sprint(cfg.CompressionLevel))

	gogit := file.Section(gogitSection)
	gogit.Key(strictKey).SetValue(fmt.Sprint(cfg.Strict))
	gogit.Key(maxObjectSizeKey).SetValue(fmt.Sprint(cfg.MaxObjectSize))

	if err := file.SaveTo(Path(root)); err != nil {
		return fmt.Errorf("failed to write config %s: %w", Path(root), err)
	}
	return nil
}
