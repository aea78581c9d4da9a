package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/easydelivery/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in a directory.
const FileName = ".easydelivery.yaml"

// Environment variables overriding values from the file.
const (
	EnvAPIURL    = "EASY_DELIVERY_API_URL"
	EnvAuthToken = "EASY_DELIVERY_AUTH_TOKEN"
	EnvDSN       = "EASY_DELIVERY_DSN"
)

// YAMLLoader reads .easydelivery.yaml and applies environment overrides.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads FileName from dir.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	return l.LoadFile(filepath.Join(dir, FileName))
}

// LoadFile reads the config at path.
// Returns DefaultConfig with environment overrides if the file does not exist.
func (l *YAMLLoader) LoadFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// fall through to env overrides
	case err != nil:
		return domain.Config{}, err
	default:
		var fileCfg domain.Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return domain.Config{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
		}
		cfg = mergeConfig(cfg, fileCfg)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}

	return cfg, nil
}

// mergeConfig overlays explicit file values on top of defaults.
func mergeConfig(base, override domain.Config) domain.Config {
	result := base

	if len(override.Parameters) > 0 {
		result.Parameters = override.Parameters
	}
	result.Company = override.Company

	if override.Storage.Driver != "" {
		result.Storage.Driver = override.Storage.Driver
	}
	if override.Storage.Dir != "" {
		result.Storage.Dir = override.Storage.Dir
	}
	if override.Storage.DSN != "" {
		result.Storage.DSN = override.Storage.DSN
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}

	return result
}

func applyEnv(cfg *domain.Config) {
	if v, ok := os.LookupEnv(EnvAPIURL); ok {
		cfg.SetParam(domain.ParamAPIURL, v)
	}
	if v, ok := os.LookupEnv(EnvAuthToken); ok {
		cfg.SetParam(domain.ParamAuthToken, v)
	}
	if v, ok := os.LookupEnv(EnvDSN); ok {
		cfg.Storage.DSN = v
	}
}
