package configuration

import (
	"errors"
	"io/fs"
)

const (
	// DefaultConfigFile is the settings file consulted when no other path
	// was given on the command line.
	DefaultConfigFile = "/etc/bprop.env"

	// SettingLogLevel is the key selecting the minimum log level
	// (debug, info, warn, error).
	SettingLogLevel = "BPROP_LOG_LEVEL"

	// SettingNoColor is the key disabling colorized log output.
	SettingNoColor = "BPROP_NO_COLOR"

	// DefaultLogLevel is used when [SettingLogLevel] is unset.
	DefaultLogLevel = "info"
)

// AppConfiguration is the principal structure holding the application configuration.
type AppConfiguration struct {
	LogLevel string
	NoColor  bool
}

// NewAppConfiguration returns a pointer to a new [AppConfiguration] with
// default settings.
func NewAppConfiguration() *AppConfiguration {
	return &AppConfiguration{
		LogLevel: DefaultLogLevel,
	}
}

// LoadAppConfiguration reads the settings file at path into an
// [AppConfiguration]. A missing file is not an error and yields the
// defaults.
func (c *ConfigProviderImpl) LoadAppConfiguration(path string) (*AppConfiguration, error) {
	config := NewAppConfiguration()

	configMap, err := c.ReadGeneric(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}

		return nil, err
	}

	if level := c.MapKeyToString(configMap, SettingLogLevel); level != "" {
		config.LogLevel = level
	}
	config.NoColor = c.MapKeyToBool(configMap, SettingNoColor, false)

	return config, nil
}
