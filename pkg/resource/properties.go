package resource

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)

// Init merges the YAML properties file at filepath over the loaded properties.
func Init(filepath string) error {
	file, err := os.Open(filepath)
	if err != nil {
		return fmt.Errorf("open properties %s: %w", filepath, err)
	}
	defer file.Close()

	return Merge(file)
}

// Load replaces the current properties with the YAML document read from reader.
func Load(reader io.Reader) error {
	viper.SetConfigType("yml")
	if err := viper.ReadConfig(reader); err != nil {
		return fmt.Errorf("read properties: %w", err)
	}
	return resolve()
}

// Merge overlays the YAML document read from reader on top of the current properties.
func Merge(reader io.Reader) error {
	viper.SetConfigType("yml")
	if err := viper.MergeConfig(reader); err != nil {
		return fmt.Errorf("merge properties: %w", err)
	}
	return resolve()
}

// resolve replaces every ${ENV:default} placeholder with its environment value
func resolve() error {
	resolved := resolvePropertiesMap(viper.AllSettings())
	if err := viper.MergeConfigMap(resolved); err != nil {
		return fmt.Errorf("resolve properties: %w", err)
	}
	return nil
}

func resolvePropertiesMap(data map[string]any) map[string]any {
	result := make(map[string]any, len(data))
	for key, value := range data {
		switch v := value.(type) {
		case string:
			result[key] = resolveEnvVariable(v)
		case map[string]any:
			result[key] = resolvePropertiesMap(v)
		default:
			result[key] = v
		}
	}
	return result
}

// resolveEnvVariable expands placeholders inside value, leaving plain strings untouched
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(placeholder string) string {
		matches := envPattern.FindStringSubmatch(placeholder)
		if envValue, exists := os.LookupEnv(matches[1]); exists {
			return envValue
		}
		return matches[2]
	})
}

func Get(key string) any {
	return viper.Get(key)
}

func IsSet(key string) bool {
	return viper.IsSet(key)
}

func GetString(key string) string {
	return viper.GetString(key)
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

func GetInt(key string) int {
	return viper.GetInt(key)
}

func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}
