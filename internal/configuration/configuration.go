// Package configuration implements the reading of program settings from
// Unix-type configuration files.
package configuration

import (
	"strconv"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// ConfigProviderImpl is the principal implementation for reading settings.
type ConfigProviderImpl struct {
	GenericConfigReader genericConfigProvider
}

// ReadGeneric reads generic Unix-type configuration files into a map (map[key]value).
func (c *ConfigProviderImpl) ReadGeneric(filenames ...string) (envMap map[string]string, err error) {
	return c.GenericConfigReader.Read(filenames...)
}

// MapKeyToString returns the value for a key in a map, or "" when unset.
func (c *ConfigProviderImpl) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// MapKeyToBool returns the boolean value for a key in a map, or the given
// fallback when the key is unset or not parseable as a boolean.
func (c *ConfigProviderImpl) MapKeyToBool(envMap map[string]string, key string, fallback bool) bool {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return fallback
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}

	return boolValue
}
