package configs

import (
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	Environment     string
}

// IsDevelopment reports whether the service runs with APP_ENV=development.
func (env *EnvConfig) IsDevelopment() bool {
	return env.Environment == "development"
}

var Env *EnvConfig

func loadEnv() *EnvConfig {
	viper.AutomaticEnv()

	return &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "workon"),
		Environment:     getStringOrDefault("APP_ENV", "production"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
