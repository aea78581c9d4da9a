package domain

import "fmt"

// StorageDriver selects where label attachments are persisted.
type StorageDriver string

const (
	StorageFile     StorageDriver = "file"
	StoragePostgres StorageDriver = "postgres"
)

// ValidStorageDrivers enumerates all recognized storage drivers.
var ValidStorageDrivers = []StorageDriver{StorageFile, StoragePostgres}

// ValidLogLevels enumerates the accepted log_level values.
var ValidLogLevels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

// DefaultAttachmentDir is where the file store keeps attachments.
const DefaultAttachmentDir = ".easydelivery/attachments"

// Config holds the connector configuration loaded from .easydelivery.yaml.
type Config struct {
	Parameters map[string]string `yaml:"parameters" json:"parameters,omitempty"`
	Company    Partner           `yaml:"company"    json:"company"`
	Storage    StorageConfig     `yaml:"storage"    json:"storage"`
	LogLevel   string            `yaml:"log_level"  json:"log_level,omitempty"`
}

// StorageConfig configures the attachment store.
type StorageConfig struct {
	Driver StorageDriver `yaml:"driver" json:"driver,omitempty"`
	Dir    string        `yaml:"dir"    json:"dir,omitempty"`
	DSN    string        `yaml:"dsn"    json:"-"`
}

// DefaultConfig returns a config storing attachments on disk with no credentials.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Driver: StorageFile,
			Dir:    DefaultAttachmentDir,
		},
		LogLevel: "info",
	}
}

// Param implements ParameterStore.
func (c Config) Param(key string) (string, bool) {
	v, ok := c.Parameters[key]
	return v, ok
}

// SetParam sets a system parameter, allocating the map if needed.
func (c *Config) SetParam(key, value string) {
	if c.Parameters == nil {
		c.Parameters = make(map[string]string)
	}
	c.Parameters[key] = value
}

// Validate checks the config for invalid values and returns a descriptive error.
// Missing credentials are not a config error: they are reported when a label
// is requested.
func (c Config) Validate() error {
	if c.Storage.Driver != "" {
		valid := false
		for _, d := range ValidStorageDrivers {
			if c.Storage.Driver == d {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown storage.driver %q (valid: file, postgres)", c.Storage.Driver)
		}
	}

	if c.Storage.Driver == StoragePostgres && c.Storage.DSN == "" {
		return fmt.Errorf("storage.dsn is required when storage.driver is postgres")
	}

	if c.LogLevel != "" {
		valid := false
		for _, l := range ValidLogLevels {
			if c.LogLevel == l {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown log_level %q", c.LogLevel)
		}
	}

	return nil
}
