package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultFile is read when no file is named and it exists.
const DefaultFile = "config.yaml"

// Load reads the file named by CONFIG_PATH, see LoadFile.
func Load() (*Config, error) {
	return LoadFile(os.Getenv("CONFIG_PATH"))
}

// LoadFile reads path and then the environment, which wins over the file;
// unset values take their env-default. A named file must exist. With an
// empty path DefaultFile is used when present and the environment alone
// otherwise.
func LoadFile(path string) (*Config, error) {
	file, err := resolveFile(path)
	if err != nil {
		return nil, err
	}

	cfg := new(Config)
	if file == "" {
		err = cleanenv.ReadEnv(cfg)
	} else {
		err = cleanenv.ReadConfig(file, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", sourceName(file), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

func resolveFile(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config: file %s: %w", path, err)
		}
		return path, nil
	}

	_, err := os.Stat(DefaultFile)
	switch {
	case err == nil:
		return DefaultFile, nil
	case errors.Is(err, fs.ErrNotExist):
		return "", nil
	default:
		return "", fmt.Errorf("config: file %s: %w", DefaultFile, err)
	}
}

func sourceName(file string) string {
	if file == "" {
		return "environment"
	}
	return file
}

// EnvHelp describes every environment variable the configuration reads,
// with its default.
func EnvHelp() (string, error) {
	return cleanenv.GetDescription(new(Config), nil)
}
