package resource

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var properties = viper.New()

// envPattern matches ${NAME} and ${NAME:default}
var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)

// LoadFile reads application properties from a YAML file.
func LoadFile(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read properties %s: %w", filepath, err)
	}

	merge(v)
	return nil
}

// Load reads application properties from YAML content.
func Load(content []byte) error {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return fmt.Errorf("fail to read properties: %w", err)
	}

	merge(v)
	return nil
}

// Set overrides a single property, mostly useful in tests.
func Set(key string, value any) {
	properties.Set(key, value)
}

func merge(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		value := v.Get(key)
		if s, ok := value.(string); ok {
			value = resolveEnvVariables(s)
		}
		properties.Set(key, value)
	}
}

// resolveEnvVariables replaces every ${NAME:default} in value with the environment value or the default
func resolveEnvVariables(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

// GetStringOrDefault returns defaultValue when the property is missing or empty.
func GetStringOrDefault(key, defaultValue string) string {
	if value := properties.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

// GetDurationOrDefault returns defaultValue when the property is missing or not positive.
func GetDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := properties.GetDuration(key); value > 0 {
		return value
	}
	return defaultValue
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetIntOrDefault(key string, defaultValue int) int {
	if !properties.IsSet(key) || properties.GetString(key) == "" {
		return defaultValue
	}
	return properties.GetInt(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
